package publisher

import (
	"context"

	"github.com/hibiken/asynq"
)

// Publisher enqueues a background job of the given task type.
type Publisher interface {
	Publish(ctx context.Context, taskType string, payload any, opts ...asynq.Option) error
}
