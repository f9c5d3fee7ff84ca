package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"salon/config"
	"salon/infras/otel"
	"salon/shared/constant"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	"gopkg.in/gomail.v2"
)

const (
	otelAttrRecipients = "mail.recipients"
	otelAttrSubject    = "mail.subject"

	defaultPerMinute = 30
)

var (
	ErrDisabled     = errors.New("smtp is disabled")
	ErrNoRecipients = errors.New("mail has no recipients")
)

type Mail struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

type Mailer interface {
	Send(ctx context.Context, msg Mail) error
}

// SendFunc delivers composed messages. The default dials the configured SMTP server per call.
type SendFunc func(messages ...*gomail.Message) error

type mailerImpl struct {
	config  *config.Config
	otel    otel.Otel
	limiter *rate.Limiter
	send    SendFunc
}

func New(cfg *config.Config, otl otel.Otel) Mailer {
	dialer := gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)

	return NewWithSender(cfg, otl, dialer.DialAndSend)
}

func NewWithSender(cfg *config.Config, otl otel.Otel, send SendFunc) Mailer {
	perMinute := cfg.Notification.EmailPerMin
	if perMinute <= 0 {
		perMinute = defaultPerMinute
	}

	return &mailerImpl{
		config:  cfg,
		otel:    otl,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		send:    send,
	}
}

// Send waits for the throttle and then delivers the mail. It returns ctx.Err() if the wait is cancelled.
func (m *mailerImpl) Send(ctx context.Context, msg Mail) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !m.config.SMTP.Enable {
		return ErrDisabled
	}

	if len(msg.To) == 0 {
		return ErrNoRecipients
	}

	scope.SetAttributes(map[string]any{
		otelAttrRecipients: strings.Join(msg.To, constant.Comma),
		otelAttrSubject:    msg.Subject,
	})

	if err = m.limiter.Wait(ctx); err != nil {
		log.Warn().Err(err).Str("subject", msg.Subject).Msg("mail throttle wait aborted")

		return fmt.Errorf("failed to wait for mail throttle: %w", err)
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.config.SMTP.From)
	message.SetHeader("To", msg.To...)
	message.SetHeader("Subject", msg.Subject)
	message.SetBody(constant.ContentTypeTextPlain, msg.Body)

	if msg.HTMLBody != "" {
		message.AddAlternative(constant.ContentTypeHTML, msg.HTMLBody)
	}

	if err = m.send(message); err != nil {
		log.Error().Err(err).Strs("to", msg.To).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Strs("to", msg.To).Str("subject", msg.Subject).Msg("mail sent")

	return nil
}
