package setup

import (
	"context"
	"errors"
	"fmt"

	"github.com/IsaacDSC/eventory/internal/catalog"
	"github.com/IsaacDSC/eventory/internal/cfg"
	"github.com/IsaacDSC/eventory/internal/eventstore"
	"github.com/IsaacDSC/eventory/pkg/cachemanager"
	"github.com/IsaacDSC/eventory/pkg/fetchcache"
	"github.com/IsaacDSC/eventory/pkg/logs"
	"github.com/IsaacDSC/eventory/pkg/publisher"
	"github.com/benbjohnson/clock"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Dependencies holds the clients shared by the API server and the worker.
type Dependencies struct {
	Mongo     *mongo.Client
	Redis     *redis.Client
	Asynq     *asynq.Client
	Store     catalog.Repository
	Cache     *cachemanager.Strategy
	Fetch     *fetchcache.Manager
	Publisher *publisher.Task
}

func NewDependencies(ctx context.Context, conf cfg.Config) (*Dependencies, error) {
	var (
		mongoClient *mongo.Client
		store       catalog.Repository
	)
	switch conf.ConfigDatabase.Driver {
	case cfg.DriverMemory:
		logs.Warn("Using the in-memory event store, data is lost on restart")
		store = eventstore.NewMemStore(clock.New())
	default:
		var err error
		mongoClient, err = mongo.Connect(options.Client().ApplyURI(conf.ConfigDatabase.DbConn))
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		if err := mongoClient.Ping(ctx, nil); err != nil {
			return nil, fmt.Errorf("ping mongo: %w", err)
		}

		mongoStore := eventstore.NewMongoStore(mongoClient, conf.ConfigDatabase.DbName)
		if err := mongoStore.EnsureIndexes(ctx); err != nil {
			return nil, fmt.Errorf("ensure indexes: %w", err)
		}
		store = mongoStore
	}

	redisClient := redis.NewClient(&redis.Options{Addr: conf.Cache.CacheAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	var opts []fetchcache.Option
	if conf.FetchCache.SingleFlight {
		opts = append(opts, fetchcache.WithSingleFlight())
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: conf.Cache.CacheAddr})

	return &Dependencies{
		Mongo:     mongoClient,
		Redis:     redisClient,
		Asynq:     asynqClient,
		Store:     store,
		Cache:     cachemanager.NewStrategy(conf.Cache.Prefix, conf.Cache.DefaultTTL.Std(), redisClient),
		Fetch:     fetchcache.New(conf.FetchCache.ToConfig(), opts...),
		Publisher: publisher.NewPublisher(asynqClient),
	}, nil
}

func (d *Dependencies) Close(ctx context.Context) error {
	errs := []error{d.Asynq.Close(), d.Redis.Close()}
	if d.Mongo != nil {
		errs = append(errs, d.Mongo.Disconnect(ctx))
	}
	return errors.Join(errs...)
}
