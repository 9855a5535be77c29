package cfg

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/IsaacDSC/eventory/pkg/fetchcache"
	"github.com/IsaacDSC/eventory/pkg/intertime"
	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigDatabase selects the event store. DB_DRIVER=memory keeps everything
// in process and ignores the connection string.
type ConfigDatabase struct {
	Driver string `env:"DB_DRIVER" env-default:"mongo"`
	DbConn string `env:"DB_CONNECTION_STRING" env-default:"mongodb://localhost:27017"`
	DbName string `env:"DB_NAME" env-default:"eventory"`
}

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Cache struct {
	CacheAddr  string             `env:"CACHE_ADDR" env-default:"localhost:6379"`
	Prefix     string             `env:"CACHE_PREFIX" env-default:"eventory"`
	DefaultTTL intertime.Duration `env:"CACHE_DEFAULT_TTL" env-default:"10m"`
}

// FetchCache configures the in-process request cache.
type FetchCache struct {
	CacheTimeout   intertime.Duration `env:"FETCH_CACHE_TIMEOUT" env-default:"5m"`
	MaxRetries     int                `env:"FETCH_MAX_RETRIES" env-default:"3"`
	RequestTimeout intertime.Duration `env:"FETCH_REQUEST_TIMEOUT" env-default:"10s"`
	SingleFlight   bool               `env:"FETCH_SINGLE_FLIGHT" env-default:"false"`
}

func (f FetchCache) ToConfig() fetchcache.Config {
	return fetchcache.Config{
		CacheTimeout:   f.CacheTimeout.Std(),
		MaxRetries:     f.MaxRetries,
		RequestTimeout: f.RequestTimeout.Std(),
	}
}

type AsynqConfig struct {
	Concurrency int         `env:"WQ_CONCURRENCY" env-default:"10"`
	Queues      AsynqQueues `env:"WQ_QUEUES" env-default:"{\"critical\":6,\"default\":3,\"low\":1}"`
}

// AsynqQueues maps queue name to priority weight.
type AsynqQueues map[string]int

// SetValue decodes WQ_QUEUES, a JSON object.
func (aq *AsynqQueues) SetValue(s string) error {
	queues := AsynqQueues{}
	if err := json.Unmarshal([]byte(s), &queues); err != nil {
		return fmt.Errorf("invalid WQ_QUEUES: %w", err)
	}
	*aq = queues
	return nil
}

func (aq AsynqQueues) Contains(queueName string) bool {
	_, exists := aq[queueName]
	return exists
}

// IsValid requires the queues the publishers use and positive weights.
func (aq AsynqQueues) IsValid() bool {
	for _, q := range domain.GetQueues() {
		if !aq.Contains(q) {
			return false
		}
	}
	for _, v := range aq {
		if v <= 0 {
			return false
		}
	}
	return true
}

type Notify struct {
	RelayURL string             `env:"NOTIFY_RELAY_URL" env-default:"http://localhost:8081/notifications"`
	Timeout  intertime.Duration `env:"NOTIFY_TIMEOUT" env-default:"10s"`
}

// Admin guards the cache admin routes. An empty password leaves them open.
type Admin struct {
	User     string `env:"ADMIN_USER" env-default:"admin"`
	Password string `env:"ADMIN_PASSWORD"`
}

type Config struct {
	ApiPort        string `env:"API_PORT" env-default:"8080"`
	LogLevel       string `env:"LOG_LEVEL" env-default:"info"`
	ConfigDatabase ConfigDatabase
	Cache          Cache
	FetchCache     FetchCache
	AsynqConfig    AsynqConfig
	Notify         Notify
	Admin          Admin
}

var (
	cfg    Config
	loaded bool
	mu     sync.Mutex
)

// Load reads the environment into a fresh Config.
func Load() (Config, error) {
	var c Config
	if err := cleanenv.ReadEnv(&c); err != nil {
		return Config{}, err
	}

	if c.ConfigDatabase.Driver != DriverMongo && c.ConfigDatabase.Driver != DriverMemory {
		return Config{}, fmt.Errorf("invalid DB_DRIVER %q: use %s or %s", c.ConfigDatabase.Driver, DriverMongo, DriverMemory)
	}

	if !c.AsynqConfig.Queues.IsValid() {
		return Config{}, fmt.Errorf("invalid WQ_QUEUES: queues %v are required with positive weights", domain.GetQueues())
	}

	return c, nil
}

// Get returns the process config, reading the environment on first use.
func Get() Config {
	mu.Lock()
	defer mu.Unlock()

	if loaded {
		return cfg
	}

	c, err := Load()
	if err != nil {
		panic(err)
	}

	cfg = c
	loaded = true
	return cfg
}

func SetConfig(c Config) {
	mu.Lock()
	cfg = c
	loaded = true
	mu.Unlock()
}
