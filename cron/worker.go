package cron

import (
	"context"

	"photostudio/config"
	"photostudio/services/notification"
	"photostudio/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NewNotificationWorker builds the asynq server and mux that deliver studio
// notifications.
func NewNotificationWorker(mailer notification.Mailer, logger *zap.Logger) (*asynq.Server, *asynq.ServeMux) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				tasks.QueueNotifications: 1,
			},
			Logger: logger.Sugar(),
		},
	)

	handler := handleNotificationTask(mailer, config.AppConfig.StudioEmail, logger)
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingNotification, handler)
	mux.HandleFunc(tasks.TypeContactNotification, handler)
	return srv, mux
}

// StartNotificationWorker runs the worker in the background. The returned
// function stops it.
func StartNotificationWorker(mailer notification.Mailer, logger *zap.Logger) func() {
	srv, mux := NewNotificationWorker(mailer, logger)
	go func() {
		logger.Info("[NotificationWorker] starting")
		if err := srv.Run(mux); err != nil {
			logger.Error("[NotificationWorker] stopped", zap.Error(err))
		}
	}()
	return srv.Shutdown
}

func handleNotificationTask(mailer notification.Mailer, studioEmail string, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := tasks.ParseStudioNotification(task)
		if err != nil {
			logger.Error("[NotificationHandler] invalid payload", zap.Error(err))
			return asynq.SkipRetry
		}

		subject, body, err := notification.RenderEmail(n)
		if err != nil {
			return err
		}

		if err := mailer.Send(studioEmail, subject, body); err != nil {
			logger.Error("[NotificationHandler] failed to send notification",
				zap.String("kind", n.Kind),
				zap.String("recordID", n.RecordID),
				zap.Error(err))
			return err
		}
		logger.Info("[NotificationHandler] notification sent",
			zap.String("kind", n.Kind),
			zap.String("recordID", n.RecordID))
		return nil
	}
}
