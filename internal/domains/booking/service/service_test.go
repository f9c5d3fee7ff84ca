package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salon/config"
	"salon/infras/otel/mocks"
	bookingMocks "salon/internal/domains/booking/mocks"
	"salon/internal/domains/booking/model"
	"salon/internal/domains/booking/model/dto"
	"salon/internal/domains/booking/service"
	"salon/shared/constant"
	"salon/shared/failure"
	gRepo "salon/shared/repository"
)

func newService(t *testing.T) (service.Booking, *bookingMocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := bookingMocks.NewMockBooking(ctrl)

	return service.New(mockRepo, &config.Config{}, mocks.NewOtel()), mockRepo
}

func validRequest() dto.ReserveRequest {
	return dto.ReserveRequest{
		LocationID:  1,
		Services:    []string{"service:1", "service:2"},
		BookingDate: "2025-06-02",
		BookingTime: "10:00",
		ClientName:  " Ane Etxeberria ",
		ClientPhone: "+34 600 000 000",
		ClientEmail: "ane@example.com",
		Notes:       "alergia al látex",
	}
}

func TestBookingService_BlockedSlots(t *testing.T) {
	tests := []struct {
		name       string
		locationID int64
		date       string
		setupMock  func(repo *bookingMocks.MockBooking)
		want       []string
		wantKind   failure.Kind
	}{
		{
			name:       "returns the taken times",
			locationID: 1,
			date:       "2025-06-02",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().BookedTimes(gomock.Any(), int64(1), "2025-06-02").Return([]string{"10:00", "11:30"}, nil)
			},
			want: []string{"10:00", "11:30"},
		},
		{
			name:       "nothing taken",
			locationID: 1,
			date:       "2025-06-02",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().BookedTimes(gomock.Any(), int64(1), "2025-06-02").Return([]string{}, nil)
			},
			want: []string{},
		},
		{
			name:       "store failure",
			locationID: 1,
			date:       "2025-06-02",
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().BookedTimes(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantKind: failure.KindSlotCheckUnavailable,
		},
		{
			name:       "invalid location",
			locationID: 0,
			date:       "2025-06-02",
			setupMock:  func(_ *bookingMocks.MockBooking) {},
			wantKind:   failure.KindValidation,
		},
		{
			name:       "invalid date",
			locationID: 1,
			date:       "02/06/2025",
			setupMock:  func(_ *bookingMocks.MockBooking) {},
			wantKind:   failure.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			tt.setupMock(repo)

			got, err := svc.BlockedSlots(context.Background(), tt.locationID, tt.date)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, failure.Is(err, tt.wantKind), "got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBookingService_Reserve(t *testing.T) {
	t.Run("writes one row per slot", func(t *testing.T) {
		svc, repo := newService(t)

		var inserted model.Booking

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				inserted = booking

				return nil
			}).Times(1)

		res, err := svc.Reserve(context.Background(), validRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, inserted.ID)
		assert.Equal(t, inserted.ID, res.ID)
		assert.Equal(t, int64(1), inserted.LocationID)
		assert.Equal(t, []string{"service:1", "service:2"}, []string(inserted.Services))
		assert.Equal(t, "2025-06-02", inserted.BookingDate)
		assert.Equal(t, "10:00", inserted.BookingTime)
		assert.Equal(t, "Ane Etxeberria", inserted.ClientName)
		assert.Equal(t, constant.ContextGuest, inserted.CreatedBy)
		assert.Equal(t, "Ane Etxeberria", res.ClientName)
	})

	t.Run("unique violation is a slot conflict", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("failed to insert data (booking): %w", gRepo.ErrUniqueViolation))

		_, err := svc.Reserve(context.Background(), validRequest())
		require.Error(t, err)
		assert.True(t, failure.Is(err, failure.KindSlotConflict))
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("unknown location", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("failed to insert data (booking): %w", gRepo.ErrForeignKeyViolation))

		_, err := svc.Reserve(context.Background(), validRequest())
		require.Error(t, err)
		assert.True(t, failure.Is(err, failure.KindValidation))
	})

	t.Run("other store errors pass through", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		_, err := svc.Reserve(context.Background(), validRequest())
		require.Error(t, err)
		assert.False(t, failure.Is(err, failure.KindSlotConflict))
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("invalid request never reaches the store", func(t *testing.T) {
		svc, _ := newService(t)

		req := validRequest()
		req.ClientEmail = "not-an-email"
		req.Services = nil

		_, err := svc.Reserve(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
