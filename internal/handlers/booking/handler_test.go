package booking_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	otelMocks "salon/infras/otel/mocks"
	"salon/internal/domains/booking/mocks"
	"salon/internal/domains/booking/model/dto"
	"salon/internal/handlers/booking"
	"salon/shared/failure"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mocks.MockBookingService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockBookingService(ctrl)
	handler := booking.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return service, router
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestHandler_GetBlockedSlots(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().BlockedSlots(gomock.Any(), int64(3), "2025-06-02").Return([]string{"10:00", "16:30"}, nil)

	rec := get(router, "/locations/3/blocked-slots?date=2025-06-02")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.BlockedSlotsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body.Data.LocationID)
	assert.Equal(t, []string{"10:00", "16:30"}, body.Data.Blocked)
}

func TestHandler_GetBlockedSlotsNoneBooked(t *testing.T) {
	service, router := setup(t)

	service.EXPECT().BlockedSlots(gomock.Any(), int64(3), "2025-06-02").Return(nil, nil)

	rec := get(router, "/locations/3/blocked-slots?date=2025-06-02")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"blocked":[]`)
}

func TestHandler_GetBlockedSlotsInvalidLocation(t *testing.T) {
	_, router := setup(t)

	rec := get(router, "/locations/abc/blocked-slots?date=2025-06-02")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"location_id"`)
}

func TestHandler_GetBlockedSlotsErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "invalid date", err: failure.Validation("date", "date must be a valid day"), code: http.StatusBadRequest},
		{name: "store down", err: failure.SlotCheckUnavailable(errors.New("timeout")), code: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, router := setup(t)

			service.EXPECT().BlockedSlots(gomock.Any(), int64(1), "x").Return(nil, tt.err)

			rec := get(router, "/locations/1/blocked-slots?date=x")

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
