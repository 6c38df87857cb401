package outbox_test

import (
	"testing"
	"time"

	"shoporders/internal/core/domain/model/kernel"
	"shoporders/internal/core/domain/model/outbox"
	"shoporders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Now()

	message, err := outbox.NewMessage(id, "jane@example.com", "Order placed", "Thanks for your order.", createdAt)
	require.NoError(t, err)

	assert.Equal(t, id, message.ID())
	assert.Equal(t, "jane@example.com", message.Recipient())
	assert.Equal(t, "Order placed", message.Subject())
	assert.Equal(t, "Thanks for your order.", message.Body())
	assert.Equal(t, createdAt, message.CreatedAt())
	assert.False(t, message.IsSent())
	assert.Nil(t, message.SentAt())
	require.NoError(t, message.Validate())
}

func TestNewMessage_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		id        kernel.UUID
		recipient string
		subject   string
	}{
		{"empty id", kernel.UUID{}, "jane@example.com", "Order placed"},
		{"empty recipient", kernel.NewUUID(), "", "Order placed"},
		{"empty subject", kernel.NewUUID(), "jane@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := outbox.NewMessage(tt.id, tt.recipient, tt.subject, "Body", time.Now())
			require.Error(t, err)
		})
	}
}

func TestMessage_MarkSent(t *testing.T) {
	message, err := outbox.NewMessage(
		kernel.NewUUID(), "jane@example.com", "Order placed", "Body", time.Now())
	require.NoError(t, err)

	sentAt := time.Now()
	message.MarkSent(sentAt)

	assert.True(t, message.IsSent())
	require.NotNil(t, message.SentAt())
	assert.Equal(t, sentAt, *message.SentAt())
}

func TestRestoreMessage(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Now().Add(-time.Hour)
	sentAt := time.Now()

	message, err := outbox.RestoreMessage(
		id, "jane@example.com", "Order shipped", "Body", createdAt, &sentAt)
	require.NoError(t, err)

	assert.True(t, message.IsSent())
	assert.Equal(t, &sentAt, message.SentAt())
}

func TestRestoreMessage_Unsent(t *testing.T) {
	message, err := outbox.RestoreMessage(
		kernel.NewUUID(), "jane@example.com", "Order shipped", "Body", time.Now(), nil)
	require.NoError(t, err)

	assert.False(t, message.IsSent())
}

func TestRestoreMessage_InvalidRecipient(t *testing.T) {
	_, err := outbox.RestoreMessage(kernel.NewUUID(), "", "Order shipped", "Body", time.Now(), nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestMessage_Validate_NotConstructed(t *testing.T) {
	var message outbox.Message
	require.ErrorIs(t, message.Validate(), outbox.ErrMessageIsNotConstructed)

	var nilMessage *outbox.Message
	require.ErrorIs(t, nilMessage.Validate(), outbox.ErrMessageIsNotConstructed)
}
