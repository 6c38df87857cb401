package jobs

import (
	"context"
	"log/slog"
	"time"

	"shoporders/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// dispatchBatchSize caps how many queued messages one tick will attempt to send.
const dispatchBatchSize = 100

// NotificationDispatchJob delivers queued order notifications.
// Runs every five seconds, fetching unsent outbox messages and handing them to
// the mail transport. A failed send leaves the message queued for the next tick.
type NotificationDispatchJob struct {
	outbox ports.NotificationOutbox
	sender ports.EmailSender
	cron   *cron.Cron
	logger *slog.Logger
}

// NewNotificationDispatchJob creates a job that drains the notification outbox.
func NewNotificationDispatchJob(
	outbox ports.NotificationOutbox,
	sender ports.EmailSender,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		outbox: outbox,
		sender: sender,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the dispatch job, running every five seconds.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		if err := j.Dispatch(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch tick failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every 5 seconds)")
	return nil
}

// Stop stops the dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}

// Dispatch sends one batch of unsent messages.
// Individual send failures are logged and skipped so one bad recipient does not
// block the rest of the queue; the failed message stays unsent and is retried
// on a later tick.
func (j *NotificationDispatchJob) Dispatch(ctx context.Context) error {
	messages, err := j.outbox.GetUnsent(ctx, dispatchBatchSize)
	if err != nil {
		return err
	}

	for _, message := range messages {
		if err := j.sender.Send(ctx, message.Recipient(), message.Subject(), message.Body()); err != nil {
			j.logger.ErrorContext(ctx, "Failed to send notification",
				"message_id", message.ID().String(), "recipient", message.Recipient(), "error", err)
			continue
		}

		message.MarkSent(time.Now())
		if err := j.outbox.MarkSent(ctx, message); err != nil {
			// The email went out but the mark failed; it will be re-sent next tick.
			j.logger.ErrorContext(ctx, "Failed to mark notification as sent",
				"message_id", message.ID().String(), "error", err)
		}
	}

	return nil
}
