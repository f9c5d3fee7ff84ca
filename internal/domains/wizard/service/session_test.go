package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salon/config"
	"salon/infras/otel/mocks"
	catalogMocks "salon/internal/domains/catalog/mocks"
	"salon/internal/domains/wizard/model"
	"salon/internal/domains/wizard/service"
	"salon/shared/failure"
)

func TestSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := catalogMocks.NewMockCatalogService(ctrl)

	cfg := &config.Config{}
	cfg.Booking.SessionIdleMinutes = 10

	now := fixedNow()

	sessions := service.NewSessions(service.Dependencies{
		Catalog:  catalog,
		Calendar: service.NewCalendar(30, nil, []string{"10:00"}, time.UTC, fixedNow),
		Config:   cfg,
		Otel:     mocks.NewOtel(),
		Clock:    func() time.Time { return now },
	})

	catalog.EXPECT().ListLocations(gomock.Any()).Return(locations, nil).Times(2)

	id, wizard := sessions.Start(context.Background(), "visitor-1")
	require.NotEmpty(t, id)
	assert.Len(t, wizard.Snapshot().Locations, 2, "locations are loaded on start")
	assert.Equal(t, model.StepSelectLocation, wizard.Snapshot().Step)

	other, _ := sessions.Start(context.Background(), "visitor-1")
	assert.NotEqual(t, id, other)

	got, err := sessions.Get("visitor-1", id)
	require.NoError(t, err)
	assert.Same(t, wizard, got)

	_, err = sessions.Get("visitor-2", id)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	_, err = sessions.Get("visitor-1", "missing")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	now = now.Add(9 * time.Minute)
	_, err = sessions.Get("visitor-1", id)
	require.NoError(t, err, "access keeps the session alive")

	now = now.Add(9 * time.Minute)
	_, err = sessions.Get("visitor-1", id)
	require.NoError(t, err)

	_, err = sessions.Get("visitor-1", other)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err), "idle session is evicted")

	now = now.Add(11 * time.Minute)
	_, err = sessions.Get("visitor-1", id)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
