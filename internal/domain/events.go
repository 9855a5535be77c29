package domain

// Background task types handled by the notification worker.
const (
	TaskTicketPurchased  = "ticket.purchased"
	TaskWaitlistJoined   = "waitlist.joined"
	TaskWaitlistPromoted = "waitlist.promoted"
	TaskEventCancelled   = "event.cancelled"
)

func GetTaskTypes() []string {
	return []string{
		TaskTicketPurchased,
		TaskWaitlistJoined,
		TaskWaitlistPromoted,
		TaskEventCancelled,
	}
}

// Queues the notify worker must serve.
const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

func GetQueues() []string {
	return []string{QueueCritical, QueueDefault}
}

// Cache key prefixes. List keys are invalidated by prefix on every write.
const (
	CacheKeyEventPrefix     = "event"
	CacheKeyEventListPrefix = "events:list:"
	CacheKeyDashboardPrefix = "dashboard:"
)
