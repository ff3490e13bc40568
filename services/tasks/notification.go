package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"photostudio/models"

	"github.com/hibiken/asynq"
)

const (
	TypeBookingNotification = "notify:booking"
	TypeContactNotification = "notify:contact"

	// QueueNotifications is the asynq queue studio notifications run on.
	QueueNotifications = "notifications"
)

// NewStudioNotificationTask wraps n in an asynq task. Delivery is attempted
// once; a failed e-mail is logged by the worker and not retried.
func NewStudioNotificationTask(n models.StudioNotification) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(n)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal notification: %w", err)
	}

	taskType := TypeContactNotification
	if n.Kind == "booking" {
		taskType = TypeBookingNotification
	}

	task := asynq.NewTask(taskType, b)
	opts := []asynq.Option{
		asynq.Queue(QueueNotifications),
		asynq.MaxRetry(0),
		asynq.Timeout(30 * time.Second),
	}
	return task, opts, nil
}

// ParseStudioNotification decodes a task payload produced by
// NewStudioNotificationTask.
func ParseStudioNotification(task *asynq.Task) (models.StudioNotification, error) {
	var n models.StudioNotification
	if err := json.Unmarshal(task.Payload(), &n); err != nil {
		return n, fmt.Errorf("invalid notification payload: %w", err)
	}
	return n, nil
}
