package ports

import "context"

// Notifier delivers the conference-creation confirmation to the organizer.
type Notifier interface {
	SendConfirmation(ctx context.Context, email, conferenceName string) error
}
