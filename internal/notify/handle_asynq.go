package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/IsaacDSC/eventory/pkg/asynqsvc"
	"github.com/IsaacDSC/eventory/pkg/ctxlogger"
	"github.com/hibiken/asynq"
)

var subjects = map[string]string{
	domain.TaskTicketPurchased:  "Your tickets for %s",
	domain.TaskWaitlistJoined:   "You are on the waitlist for %s",
	domain.TaskWaitlistPromoted: "A spot opened up for %s",
	domain.TaskEventCancelled:   "%s has been cancelled",
}

// Subject renders the subject line of a task type for an event title.
func Subject(taskType, title string) string {
	format, ok := subjects[taskType]
	if !ok {
		return title
	}
	return fmt.Sprintf(format, title)
}

// GetHandles returns one processor per notification task type.
func GetHandles(sender Sender) []asynqsvc.AsynqHandle {
	handles := make([]asynqsvc.AsynqHandle, 0, len(domain.GetTaskTypes()))
	for _, taskType := range domain.GetTaskTypes() {
		handles = append(handles, GetNotifyHandle(taskType, sender))
	}
	return handles
}

// GetNotifyHandle relays a notification task. Malformed payloads are not
// retried; relay failures are, with asynq's backoff.
func GetNotifyHandle(taskType string, sender Sender) asynqsvc.AsynqHandle {
	return asynqsvc.AsynqHandle{
		TaskType: taskType,
		Handler: func(ctx context.Context, task *asynq.Task) error {
			var payload domain.Notification
			if err := json.Unmarshal(task.Payload(), &payload); err != nil {
				return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
			}
			if payload.To == "" {
				return fmt.Errorf("notification without recipient: %w", asynq.SkipRetry)
			}

			msg := Message{
				Type:    taskType,
				To:      payload.To,
				Subject: Subject(taskType, payload.Title),
				Data:    payload,
			}

			if err := sender.Send(ctx, msg); err != nil {
				return fmt.Errorf("send notification: %w", err)
			}

			ctxlogger.GetLogger(ctx).Info("Notification relayed", "to", payload.To, "event_id", payload.EventID)
			return nil
		},
	}
}
