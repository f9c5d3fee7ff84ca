package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"salon/config"
	"salon/infras/otel"
	"salon/internal/domains/booking/model"
	"salon/internal/domains/booking/model/dto"
	"salon/internal/domains/booking/repository"
	"salon/shared/constant"
	"salon/shared/failure"
	gRepo "salon/shared/repository"
	"salon/shared/validator"

	"github.com/rs/zerolog/log"
)

// Booking checks and writes slots. BlockedSlots is advisory; Reserve is the only authority
// on whether a slot is free.
type Booking interface {
	BlockedSlots(ctx context.Context, locationID int64, date string) ([]string, error)
	Reserve(ctx context.Context, req dto.ReserveRequest) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo repository.Booking
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) BlockedSlots(ctx context.Context, locationID int64, date string) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BlockedSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if locationID <= 0 {
		return nil, failure.Validation(model.FieldLocationID, "location_id must be a positive number") //nolint:wrapcheck
	}

	if err = validator.ValidateVar(date, "required,day"); err != nil {
		return nil, failure.Validation(constant.RequestParamDate, "date must be a valid date (YYYY-MM-DD)") //nolint:wrapcheck
	}

	times, err := s.repo.BookedTimes(ctx, locationID, date)
	if err != nil {
		log.Error().Err(err).Int64("location", locationID).Str("date", date).Msg("failed to query booked times")

		return nil, failure.SlotCheckUnavailable(err) //nolint:wrapcheck
	}

	scope.SetAttributes(map[string]any{"location_id": locationID, "date": date, "blocked": len(times)})

	return times, nil
}

func (s *serviceImpl) Reserve(ctx context.Context, req dto.ReserveRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	booking := req.ToModel(constant.ContextGuest)

	err = s.repo.Insert(ctx, booking)

	switch {
	case err == nil:
	case errors.Is(err, gRepo.ErrUniqueViolation):
		log.Warn().Int64("location", req.LocationID).Str("date", req.BookingDate).Str("time", req.BookingTime).
			Msg("slot taken by a concurrent booking")

		return res, failure.SlotConflictError
	case errors.Is(err, gRepo.ErrForeignKeyViolation):
		return res, failure.Validation(model.FieldLocationID, "location does not exist") //nolint:wrapcheck
	default:
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	log.Info().Str("booking", booking.ID).Int64("location", booking.LocationID).
		Str("date", booking.BookingDate).Str("time", booking.BookingTime).Msg("booking created")

	res.FromModel(booking)

	return res, nil
}
