package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestMailer_Disabled_LogsOnly(t *testing.T) {
	m := NewMailer("", 0, "noreply@example.com", newTestLogger(t))

	err := m.SendConfirmation(context.Background(), "alice@example.com", "GopherCon")

	assert.NoError(t, err)
}

func TestMailer_SkipsEmptyRecipient(t *testing.T) {
	m := NewMailer("smtp.example.com", 587, "noreply@example.com", newTestLogger(t))

	err := m.SendConfirmation(context.Background(), "", "GopherCon")

	assert.NoError(t, err)
}

func TestMailer_RespectsCancelledContext(t *testing.T) {
	m := NewMailer("smtp.example.com", 587, "noreply@example.com", newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.SendConfirmation(ctx, "alice@example.com", "GopherCon")

	assert.ErrorIs(t, err, context.Canceled)
}
