package cron

import (
	"context"
	"errors"
	"testing"

	"photostudio/models"
	"photostudio/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingMailer struct {
	to, subject, body string
	err               error
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.to, m.subject, m.body = to, subject, body
	return m.err
}

func TestHandleNotificationTask_SendsToStudio(t *testing.T) {
	mailer := &recordingMailer{}
	handler := handleNotificationTask(mailer, "studio@example.com", zap.NewNop())

	task, _, err := tasks.NewStudioNotificationTask(models.StudioNotification{
		Kind:    "contact",
		Name:    "Ravi",
		Message: "Do you shoot pre-wedding?",
	})
	require.NoError(t, err)

	require.NoError(t, handler(context.Background(), task))
	assert.Equal(t, "studio@example.com", mailer.to)
	assert.Equal(t, "New contact message from Ravi", mailer.subject)
	assert.Contains(t, mailer.body, "Do you shoot pre-wedding?")
}

func TestHandleNotificationTask_BadPayloadSkipsRetry(t *testing.T) {
	handler := handleNotificationTask(&recordingMailer{}, "studio@example.com", zap.NewNop())

	err := handler(context.Background(), asynq.NewTask(tasks.TypeContactNotification, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleNotificationTask_PropagatesSendFailure(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp timeout")}
	handler := handleNotificationTask(mailer, "studio@example.com", zap.NewNop())

	task, _, err := tasks.NewStudioNotificationTask(models.StudioNotification{Kind: "booking", Service: "video", Date: "2026-11-01"})
	require.NoError(t, err)
	assert.Error(t, handler(context.Background(), task))
}
