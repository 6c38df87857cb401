// Package outboxrepo persists queued notification messages.
// Messages land here in the same transaction as the order that produced them;
// the dispatch job reads unsent rows and marks them after delivery.
package outboxrepo

import (
	"context"
	"time"

	"shoporders/internal/core/domain/model/kernel"
	"shoporders/internal/core/domain/model/outbox"
	"shoporders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageDTO represents the database structure for queued notifications.
type MessageDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Recipient string     `gorm:"type:varchar(255);not null"`
	Subject   string     `gorm:"type:varchar(255);not null"`
	Body      string     `gorm:"type:text"`
	CreatedAt time.Time  `gorm:"not null;index"`
	SentAt    *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox messages.
func (MessageDTO) TableName() string {
	return "notification_outbox"
}

// GormOutboxRepository implements NotificationOutbox using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add queues a new message for delivery.
func (r *GormOutboxRepository) Add(ctx context.Context, message *outbox.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	dto := fromDomain(message)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetUnsent retrieves up to limit unsent messages, oldest first.
func (r *GormOutboxRepository) GetUnsent(ctx context.Context, limit int) ([]*outbox.Message, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*outbox.Message, 0, len(dtos))
	for _, dto := range dtos {
		message, msgErr := toDomain(dto)
		if msgErr != nil {
			return nil, msgErr
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// MarkSent persists the message's delivery timestamp.
func (r *GormOutboxRepository) MarkSent(ctx context.Context, message *outbox.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&MessageDTO{}).
		Where("id = ?", message.ID().Bytes()).
		Update("sent_at", message.SentAt())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox message", message.ID().String())
	}

	return nil
}

func fromDomain(message *outbox.Message) MessageDTO {
	return MessageDTO{
		ID:        message.ID().Bytes(),
		Recipient: message.Recipient(),
		Subject:   message.Subject(),
		Body:      message.Body(),
		CreatedAt: message.CreatedAt(),
		SentAt:    message.SentAt(),
	}
}

func toDomain(dto MessageDTO) (*outbox.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return outbox.RestoreMessage(id, dto.Recipient, dto.Subject, dto.Body, dto.CreatedAt, dto.SentAt)
}
