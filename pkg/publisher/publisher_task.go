package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IsaacDSC/eventory/pkg/ctxlogger"
	"github.com/hibiken/asynq"
)

// Enqueuer is the part of *asynq.Client the publisher needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Task struct {
	client Enqueuer
}

var _ Publisher = (*Task)(nil)

func NewPublisher(client Enqueuer) *Task {
	return &Task{client: client}
}

// Publish marshals payload to JSON and enqueues it. opts are applied after
// the defaults, so they win.
func (t *Task) Publish(ctx context.Context, taskType string, payload any, opts ...asynq.Option) error {
	defaultOpts := NewDefaultOpt()
	definedOpts := make([]asynq.Option, 0, len(defaultOpts)+len(opts))
	definedOpts = append(definedOpts, defaultOpts...)
	definedOpts = append(definedOpts, opts...)

	p, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("could not marshal payload: %w", err)
	}

	task := asynq.NewTask(taskType, p)
	info, err := t.client.EnqueueContext(ctx, task, definedOpts...)
	if err != nil {
		return fmt.Errorf("could not schedule task: %w", err)
	}

	ctxlogger.GetLogger(ctx).Info("Enqueued task", "task_type", taskType, "task_id", info.ID, "queue", info.Queue)

	return nil
}

func WithQueue(queue string) asynq.Option {
	return asynq.Queue(queue)
}

func WithMaxRetry(maxRetry int) asynq.Option {
	return asynq.MaxRetry(maxRetry)
}

func WithRetention(retention time.Duration) asynq.Option {
	return asynq.Retention(retention)
}

func WithProcessIn(processIn time.Duration) asynq.Option {
	return asynq.ProcessIn(processIn)
}

func NewDefaultOpt() []asynq.Option {
	return []asynq.Option{
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Retention(168 * time.Hour), // 7 days
	}
}
