package email

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewService_ConsoleMode(t *testing.T) {
	svc := NewService("ops@example.com", "Backoffice", "")
	assert.False(t, svc.useSendGrid)
	assert.Equal(t, "ops@example.com", svc.fromEmail)
	assert.Equal(t, "Backoffice", svc.fromName)
}

func TestNewService_SendGridMode(t *testing.T) {
	svc := NewService("ops@example.com", "Backoffice", "SG.test-key")
	assert.True(t, svc.useSendGrid)
	assert.Equal(t, "SG.test-key", svc.sendGridKey)
}

func TestSendSyncFailureAlert_ConsoleMode(t *testing.T) {
	svc := NewService("ops@example.com", "Backoffice", "")

	err := svc.SendSyncFailureAlert(
		"admin@example.com",
		"Admin",
		"2025-11-07",
		"2025-11-08",
		3, 1, 2,
		errors.New("fetch page 2: status 502"),
	)
	assert.NoError(t, err, "Console mode should not error")
}

func TestSendRawEmail_ConsoleMode(t *testing.T) {
	svc := NewService("ops@example.com", "Backoffice", "")

	err := svc.SendRawEmail("admin@example.com", "Admin", "Subject", "<p>Body</p>", "Body")
	assert.NoError(t, err, "Console mode should not error")
}
