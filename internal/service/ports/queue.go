package ports

import "context"

// Task types the services enqueue.
const (
	TaskSendConfirmationEmail = "send_confirmation_email"
	TaskSetFeaturedSpeaker    = "set_featured_speaker"
)

// Task parameter keys.
const (
	ParamEmail      = "email"
	ParamConference = "conference"
)

type Task struct {
	ID     string
	Type   string
	Params map[string]string
}

// TaskQueue accepts fire-and-forget work items. Enqueue only guarantees
// "accepted", never "delivered"; delivery is at-least-once.
type TaskQueue interface {
	Enqueue(ctx context.Context, task Task) error
}
