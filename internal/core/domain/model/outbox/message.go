// Package outbox models notification messages queued for asynchronous delivery.
//
// Messages are written to storage inside the same transaction as the order that
// produced them, then picked up and sent by a background dispatch job. A failing
// mail transport therefore never aborts an already-committed order; the message
// simply stays unsent and is retried on the next dispatch tick.
package outbox

import (
	"errors"
	"time"

	"shoporders/internal/core/domain/model/kernel"
	"shoporders/internal/pkg/errs"
)

// ErrMessageIsNotConstructed is returned when a Message instance was not created
// through the NewMessage or RestoreMessage factory methods.
var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")

// Message is a single queued notification email.
type Message struct {
	id            kernel.UUID
	recipient     string
	subject       string
	body          string
	createdAt     time.Time
	sentAt        *time.Time
	isConstructed bool
}

// NewMessage creates an unsent notification message.
func NewMessage(id kernel.UUID, recipient, subject, body string, createdAt time.Time) (*Message, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if recipient == "" {
		return nil, errs.NewValueIsRequiredError("recipient")
	}
	if subject == "" {
		return nil, errs.NewValueIsRequiredError("subject")
	}

	return &Message{
		id:            id,
		recipient:     recipient,
		subject:       subject,
		body:          body,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreMessage reconstructs a message from persistence, including its sent mark.
func RestoreMessage(
	id kernel.UUID, recipient, subject, body string, createdAt time.Time, sentAt *time.Time,
) (*Message, error) {
	m, err := NewMessage(id, recipient, subject, body, createdAt)
	if err != nil {
		return nil, err
	}

	m.sentAt = sentAt
	return m, nil
}

// Validate ensures the Message instance was properly constructed.
func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

// ID returns the message identifier.
func (m *Message) ID() kernel.UUID {
	return m.id
}

// Recipient returns the destination email address.
func (m *Message) Recipient() string {
	return m.recipient
}

// Subject returns the email subject line.
func (m *Message) Subject() string {
	return m.subject
}

// Body returns the rendered email body.
func (m *Message) Body() string {
	return m.body
}

// CreatedAt returns when the message was queued.
func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

// SentAt returns when the message was delivered, or nil while it is pending.
func (m *Message) SentAt() *time.Time {
	return m.sentAt
}

// IsSent reports whether the message has been delivered.
func (m *Message) IsSent() bool {
	return m.sentAt != nil
}

// MarkSent records the delivery time.
func (m *Message) MarkSent(at time.Time) {
	m.sentAt = &at
}
