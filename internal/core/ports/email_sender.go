package ports

import "context"

// EmailSender is the outbound mail transport used by the notification
// dispatch job. Implementations deliver a single message per call.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
