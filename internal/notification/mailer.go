package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/wb-go/wbf/logger"
)

// Mailer sends conference-creation confirmations over SMTP. With no host
// configured it only logs, which keeps local runs working without a relay.
type Mailer struct {
	addr   string
	from   string
	logger logger.Logger
}

func NewMailer(host string, port int, from string, log logger.Logger) *Mailer {
	m := &Mailer{from: from, logger: log}
	if host == "" {
		log.Warn("smtp host is empty, confirmation emails disabled")
		return m
	}
	m.addr = fmt.Sprintf("%s:%d", host, port)
	return m
}

func (m *Mailer) SendConfirmation(ctx context.Context, email, conferenceName string) error {
	if email == "" {
		m.logger.Debug("confirmation skipped (no email)",
			logger.String("conference", conferenceName),
		)
		return nil
	}

	subject := "You created a new conference!"
	body := fmt.Sprintf("Hi, you have created the conference %q.", conferenceName)

	if m.addr == "" {
		m.logger.Info("confirmation email (smtp disabled)",
			logger.String("to", email),
			logger.String("subject", subject),
		)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + email,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(m.addr, nil, m.from, []string{email}, []byte(msg)); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	return nil
}
