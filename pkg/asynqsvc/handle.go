package asynqsvc

import (
	"context"

	"github.com/hibiken/asynq"
)

// AsynqHandle binds a task type to its processor.
type AsynqHandle struct {
	TaskType string
	Handler  func(ctx context.Context, task *asynq.Task) error
}

func Register(mux *asynq.ServeMux, handles ...AsynqHandle) {
	for _, h := range handles {
		mux.HandleFunc(h.TaskType, h.Handler)
	}
}
