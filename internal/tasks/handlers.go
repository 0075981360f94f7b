package tasks

import (
	"context"

	"github.com/confcentral/confcentral/internal/service"
	"github.com/confcentral/confcentral/internal/service/ports"
)

// RegisterHandlers wires the task types the services enqueue to their
// executors.
func RegisterHandlers(q *Queue, notifier ports.Notifier, announcements *service.AnnouncementService) {
	q.Handle(ports.TaskSendConfirmationEmail, func(ctx context.Context, task ports.Task) error {
		return notifier.SendConfirmation(ctx,
			task.Params[ports.ParamEmail],
			task.Params[ports.ParamConference],
		)
	})
	q.Handle(ports.TaskSetFeaturedSpeaker, func(ctx context.Context, task ports.Task) error {
		_, err := announcements.RefreshSpeakers(ctx)
		return err
	})
}
