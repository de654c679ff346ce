package notify

import (
	"context"
	"fmt"
	"os"

	"github.com/wneessen/go-mail"

	"github.com/reignorshine/plansmith/internal/config"
	"github.com/reignorshine/plansmith/internal/logger"
	planerrors "github.com/reignorshine/plansmith/pkg/errors"
)

// Sender delivers notification emails over SMTP.
type Sender struct {
	smtp config.SMTP
	log  *logger.Logger
}

// NewSender validates the SMTP settings and builds a sender. The password is
// taken from the SMTP_PASSWORD environment variable.
func NewSender(smtp config.SMTP, log *logger.Logger) (*Sender, error) {
	if smtp.Host == "" {
		return nil, planerrors.NewNotifyError("", fmt.Errorf("smtp host not configured"))
	}
	if smtp.From == "" {
		return nil, planerrors.NewNotifyError("", fmt.Errorf("smtp from address not configured"))
	}
	return &Sender{smtp: smtp, log: log}, nil
}

// Send delivers a single HTML email.
func (s *Sender) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.smtp.From); err != nil {
		return planerrors.NewNotifyError(to, err)
	}
	if err := msg.To(to); err != nil {
		return planerrors.NewNotifyError(to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	opts := []mail.Option{
		mail.WithPort(s.smtp.Port),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	}
	if s.smtp.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.smtp.Username),
			mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		)
	}

	client, err := mail.NewClient(s.smtp.Host, opts...)
	if err != nil {
		return planerrors.NewNotifyError(to, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return planerrors.NewNotifyError(to, err)
	}

	s.log.WithFields(map[string]any{
		"to":   to,
		"host": s.smtp.Host,
	}).Info("notification sent")
	return nil
}
