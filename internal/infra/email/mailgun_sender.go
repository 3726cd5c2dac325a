package email

import (
	"context"
	"log/slog"

	"stampshop/config"
	deliverycontext "stampshop/internal/delivery/context"
	"stampshop/internal/domain/service"
	"stampshop/internal/errors"

	"github.com/mailgun/mailgun-go/v4"
)

// ErrEmailDisabled is returned when no mail provider is configured.
var ErrEmailDisabled = errors.New("email delivery is not configured")

type mailgunSender struct {
	mg     *mailgun.MailgunImpl
	from   string
	logger *slog.Logger
}

// NewEmailSender returns a Mailgun sender, or a logging no-op sender when
// Mailgun credentials are absent (local development).
func NewEmailSender(cfg *config.Config, logger *slog.Logger) service.EmailSender {
	mgCfg := cfg.Mailgun
	if mgCfg.Domain == "" || mgCfg.APIKey == "" {
		logger.Warn("Mailgun not configured, emails will be skipped")

		return &disabledSender{logger: logger}
	}

	mg := mailgun.NewMailgun(mgCfg.Domain, mgCfg.APIKey)
	if mgCfg.APIBase != "" {
		mg.SetAPIBase(mgCfg.APIBase)
	}

	return &mailgunSender{
		mg:     mg,
		from:   mgCfg.From,
		logger: logger,
	}
}

// Send delivers a rendered email through Mailgun.
func (s *mailgunSender) Send(ctx context.Context, email *service.Email) (string, error) {
	msg := s.mg.NewMessage(s.from, email.Subject, email.Text, email.To)
	if email.HTML != "" {
		msg.SetHtml(email.HTML)
	}

	_, id, err := s.mg.Send(ctx, msg)
	if err != nil {
		return "", errors.Wrap(err, "mailgun: send")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Email sent",
		slog.String("message_id", id),
		slog.String("subject", email.Subject),
	)

	return id, nil
}

type disabledSender struct {
	logger *slog.Logger
}

func (s *disabledSender) Send(ctx context.Context, email *service.Email) (string, error) {
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Skipping email, Mailgun not configured",
		slog.String("subject", email.Subject),
	)

	return "", ErrEmailDisabled
}
