package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salon/config"
	"salon/infras/kafka"
	kafkaMocks "salon/infras/kafka/mocks"
	"salon/infras/mail"
	mailMocks "salon/infras/mail/mocks"
	"salon/infras/otel/mocks"
	"salon/internal/domains/notification/model"
	"salon/internal/domains/notification/service"
)

var notice = model.Notice{
	BookingID:    "b-1",
	ClientName:   "Ane",
	ClientEmail:  "ane@example.com",
	ClientPhone:  "600000000",
	Date:         "02/06/2025",
	Time:         "10:00",
	LocationName: "Basauri",
	Services:     "Manicura, Pedicura",
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Notification.Workers = 2
	cfg.Notification.KafkaTopic = "salon.bookings"
	cfg.Notification.AdminEmails = []string{"admin@example.com"}
	cfg.Kafka.Enable = true
	cfg.SMTP.Enable = true

	return cfg
}

func waitFor(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("delivery did not happen")
	}
}

func TestNotifier_DeliversEventAndMail(t *testing.T) {
	ctrl := gomock.NewController(t)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)
	mailer := mailMocks.NewMockMailer(ctrl)

	notifier := service.New(newConfig(), kafkaClient, mailer, mocks.NewOtel())
	defer notifier.Close()

	done := make(chan struct{})

	kafkaClient.EXPECT().
		SendMessages(gomock.Any(), "salon.bookings", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			require.Len(t, messages, 1)
			assert.Equal(t, "b-1", messages[0].Key)
			assert.Equal(t, model.EventBookingCreated, messages[0].Event)

			return nil
		})

	mailer.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg mail.Mail) error {
			defer close(done)

			assert.Equal(t, []string{"admin@example.com"}, msg.To)
			assert.Contains(t, msg.Subject, "02/06/2025 10:00 Basauri")
			assert.Contains(t, msg.Body, "Servicios: Manicura, Pedicura")
			assert.NotContains(t, msg.Body, "Notas")

			return nil
		})

	notifier.NotifyAdmin(context.Background(), notice)
	waitFor(t, done)
}

func TestNotifier_FailuresStayInside(t *testing.T) {
	ctrl := gomock.NewController(t)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)
	mailer := mailMocks.NewMockMailer(ctrl)

	notifier := service.New(newConfig(), kafkaClient, mailer, mocks.NewOtel())
	defer notifier.Close()

	done := make(chan struct{})

	kafkaClient.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ mail.Mail) error {
			defer close(done)

			return errors.New("smtp refused")
		})

	assert.NotPanics(t, func() {
		notifier.NotifyAdmin(context.Background(), notice)
	})
	waitFor(t, done)
}

func TestNotifier_PanicIsRecovered(t *testing.T) {
	ctrl := gomock.NewController(t)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)
	mailer := mailMocks.NewMockMailer(ctrl)

	cfg := newConfig()
	cfg.SMTP.Enable = false

	notifier := service.New(cfg, kafkaClient, mailer, mocks.NewOtel())

	done := make(chan struct{})

	kafkaClient.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ ...kafka.Message) error {
			close(done)
			panic("writer closed")
		})

	notifier.NotifyAdmin(context.Background(), notice)
	waitFor(t, done)
	notifier.Close()
}

func TestNotifier_DisabledChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)
	mailer := mailMocks.NewMockMailer(ctrl)

	cfg := newConfig()
	cfg.Kafka.Enable = false
	cfg.SMTP.Enable = false

	notifier := service.New(cfg, kafkaClient, mailer, mocks.NewOtel())

	notifier.NotifyAdmin(context.Background(), notice)
	notifier.Close()
}

func TestNotifier_CallerContextCancelDoesNotAbortDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)
	mailer := mailMocks.NewMockMailer(ctrl)

	cfg := newConfig()
	cfg.Kafka.Enable = false

	notifier := service.New(cfg, kafkaClient, mailer, mocks.NewOtel())
	defer notifier.Close()

	done := make(chan struct{})

	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ mail.Mail) error {
			defer close(done)

			assert.NoError(t, ctx.Err())

			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	notifier.NotifyAdmin(ctx, notice)
	cancel()

	waitFor(t, done)
}

func TestNotice_Body(t *testing.T) {
	withNotes := notice
	withNotes.Notes = "llegará 5 minutos tarde"

	assert.Contains(t, withNotes.Body(), "Notas: llegará 5 minutos tarde")
	assert.Contains(t, withNotes.Body(), "Reserva b-1")
}
