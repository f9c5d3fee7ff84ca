package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"salon/config"
	"salon/infras/kafka"
	"salon/infras/mail"
	"salon/infras/otel"
	"salon/internal/domains/notification/model"
	"salon/shared/constant"
	"salon/shared/failure"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
)

const (
	deliveryTimeout = 30 * time.Second
	defaultWorkers  = 4
)

// Notifier tells the salon staff about new bookings. NotifyAdmin returns immediately and
// never reports delivery problems to the caller.
type Notifier interface {
	NotifyAdmin(ctx context.Context, notice model.Notice)
	Close()
}

type notifierImpl struct {
	cfg    *config.Config
	kafka  kafka.Client
	mailer mail.Mailer
	otel   otel.Otel
	pool   *ants.Pool
}

func New(cfg *config.Config, kafka kafka.Client, mailer mail.Mailer, otel otel.Otel) Notifier {
	workers := cfg.Notification.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	pool, err := ants.NewPool(workers,
		ants.WithNonblocking(true),
		ants.WithPanicHandler(func(p any) {
			log.Error().Interface("panic", p).Msg("notification worker panicked")
		}),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create notification worker pool")
	}

	return &notifierImpl{
		cfg:    cfg,
		kafka:  kafka,
		mailer: mailer,
		otel:   otel,
		pool:   pool,
	}
}

func (n *notifierImpl) NotifyAdmin(ctx context.Context, notice model.Notice) {
	detached := context.WithoutCancel(ctx)

	err := n.pool.Submit(func() {
		n.deliver(detached, notice)
	})
	if err != nil {
		log.Error().Err(failure.NotificationFailure(err)).Str("booking", notice.BookingID).Msg("notification dropped")
	}
}

func (n *notifierImpl) deliver(ctx context.Context, notice model.Notice) {
	ctx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()

	ctx, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".NotifyAdmin")
	defer scope.End()

	defer func() {
		if p := recover(); p != nil {
			log.Error().Interface("panic", p).Str("booking", notice.BookingID).Msg("notification delivery panicked")
		}
	}()

	log.Info().
		Str("booking", notice.BookingID).
		Str("client", notice.ClientName).
		Str("location", notice.LocationName).
		Str("date", notice.Date).
		Str("time", notice.Time).
		Str("services", notice.Services).
		Msg("new booking")

	if err := n.publish(ctx, notice); err != nil {
		scope.TraceError(err)
		log.Error().Err(failure.NotificationFailure(err)).Str("booking", notice.BookingID).Msg("failed to publish booking event")
	}

	if err := n.email(ctx, notice); err != nil {
		scope.TraceError(err)
		log.Error().Err(failure.NotificationFailure(err)).Str("booking", notice.BookingID).Msg("failed to email booking notice")
	}
}

func (n *notifierImpl) publish(ctx context.Context, notice model.Notice) error {
	if !n.cfg.Kafka.Enable || n.cfg.Notification.KafkaTopic == "" {
		return nil
	}

	err := n.kafka.SendMessages(ctx, n.cfg.Notification.KafkaTopic, kafka.Message{
		Key:   notice.BookingID,
		Event: model.EventBookingCreated,
		Value: notice,
	})
	if err != nil && !errors.Is(err, kafka.ErrDisabled) {
		return fmt.Errorf("failed to send booking event: %w", err)
	}

	return nil
}

func (n *notifierImpl) email(ctx context.Context, notice model.Notice) error {
	if !n.cfg.SMTP.Enable || len(n.cfg.Notification.AdminEmails) == 0 {
		return nil
	}

	err := n.mailer.Send(ctx, mail.Mail{
		To:      n.cfg.Notification.AdminEmails,
		Subject: notice.Subject(),
		Body:    notice.Body(),
	})
	if err != nil {
		return fmt.Errorf("failed to send booking mail: %w", err)
	}

	return nil
}

// Close waits for queued deliveries before releasing the pool.
func (n *notifierImpl) Close() {
	if err := n.pool.ReleaseTimeout(deliveryTimeout); err != nil {
		log.Warn().Err(err).Msg("notification pool did not drain in time")
	}
}
