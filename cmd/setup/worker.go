package setup

import (
	"context"
	"fmt"

	"github.com/IsaacDSC/eventory/internal/cfg"
	"github.com/IsaacDSC/eventory/pkg/asynqsvc"
	"github.com/IsaacDSC/eventory/pkg/ctxlogger"
	"github.com/IsaacDSC/eventory/pkg/logs"
	"github.com/hibiken/asynq"
)

// asynqLogger routes asynq's own logs through the service logger.
type asynqLogger struct {
	l *logs.Logger
}

func (a asynqLogger) Debug(args ...any) { a.l.Debug(fmt.Sprint(args...)) }
func (a asynqLogger) Info(args ...any)  { a.l.Info(fmt.Sprint(args...)) }
func (a asynqLogger) Warn(args ...any)  { a.l.Warn(fmt.Sprint(args...)) }
func (a asynqLogger) Error(args ...any) { a.l.Error(fmt.Sprint(args...)) }
func (a asynqLogger) Fatal(args ...any) { a.l.Error(fmt.Sprint(args...)) }

// reportFailure flags tasks that will not be retried again.
func reportFailure(ctx context.Context, task *asynq.Task, err error) {
	retried, _ := asynq.GetRetryCount(ctx)
	maxRetry, _ := asynq.GetMaxRetry(ctx)
	if retried < maxRetry {
		return
	}
	ctxlogger.GetLogger(ctx).Error("Task archived after last retry",
		"task_type", task.Type(),
		"retried", retried,
		"error", err,
	)
}

// NewWorker builds the asynq server and a mux with every handle mounted.
func NewWorker(conf cfg.Config, handles ...asynqsvc.AsynqHandle) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: conf.Cache.CacheAddr},
		asynq.Config{
			Concurrency:  conf.AsynqConfig.Concurrency,
			Queues:       conf.AsynqConfig.Queues,
			Logger:       asynqLogger{l: logs.With("component", "asynq")},
			ErrorHandler: asynq.ErrorHandlerFunc(reportFailure),
		},
	)

	mux := asynq.NewServeMux()
	mux.Use(AsynqLogger)
	asynqsvc.Register(mux, handles...)

	return srv, mux
}
