package ports

import (
	"context"

	"shoporders/internal/core/domain/model/outbox"
)

// NotificationOutbox stores notification messages for asynchronous delivery.
// Messages are added in the same transaction as the order that produced them;
// a background job later fetches unsent messages, sends them, and marks them.
type NotificationOutbox interface {
	// Add queues a new message for delivery.
	Add(ctx context.Context, message *outbox.Message) error

	// GetUnsent retrieves up to limit messages that have not been sent yet,
	// oldest first.
	GetUnsent(ctx context.Context, limit int) ([]*outbox.Message, error)

	// MarkSent persists the message's delivery timestamp.
	MarkSent(ctx context.Context, message *outbox.Message) error
}
