package notification

import (
	"context"
	"fmt"

	"photostudio/models"
	"photostudio/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Enqueuer is the subset of *asynq.Client the notifier needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueNotifier hands notifications to the asynq worker.
type QueueNotifier struct {
	client Enqueuer
	logger *zap.Logger
}

func NewQueueNotifier(client Enqueuer, logger *zap.Logger) *QueueNotifier {
	return &QueueNotifier{client: client, logger: logger}
}

func (q *QueueNotifier) Notify(ctx context.Context, n models.StudioNotification) error {
	task, opts, err := tasks.NewStudioNotificationTask(n)
	if err != nil {
		return err
	}
	info, err := q.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s notification: %w", n.Kind, err)
	}
	q.logger.Debug("studio notification enqueued",
		zap.String("taskID", info.ID),
		zap.String("kind", n.Kind),
		zap.String("recordID", n.RecordID))
	return nil
}
