package repository

import (
	"context"
	"fmt"
	"salon/infras/otel"
	"salon/infras/supabase"
	"salon/internal/domains/booking/model"
	"salon/shared/constant"
	gRepo "salon/shared/repository"
	"strconv"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
)

type supabaseImpl struct {
	client *supa.Client
	otel   otel.Otel
}

func NewSupabase(client *supa.Client, otel otel.Otel) Booking {
	return &supabaseImpl{
		client: client,
		otel:   otel,
	}
}

func (s *supabaseImpl) Insert(ctx context.Context, booking model.Booking) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".supabase.booking.Insert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if s.client == nil {
		return supabase.ErrNotConfigured
	}

	row := map[string]any{
		model.FieldID:            booking.ID,
		model.FieldLocationID:    booking.LocationID,
		model.FieldServices:      []string(booking.Services),
		model.FieldBookingDate:   booking.BookingDate,
		model.FieldBookingTime:   booking.BookingTime,
		model.FieldClientName:    booking.ClientName,
		model.FieldClientPhone:   booking.ClientPhone,
		model.FieldClientEmail:   booking.ClientEmail,
		model.FieldNotes:         booking.Notes,
		constant.FieldCreatedAt:  booking.CreatedAt,
		constant.FieldModifiedAt: booking.ModifiedAt,
		constant.FieldCreatedBy:  booking.CreatedBy,
		constant.FieldModifiedBy: booking.ModifiedBy,
	}

	_, _, err = s.client.From(model.TableName).Insert(row, false, "", "minimal", "").Execute()
	if err != nil {
		if supabase.IsUniqueViolation(err) {
			return fmt.Errorf("failed to insert booking: %w: %w", gRepo.ErrUniqueViolation, err)
		}

		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

func (s *supabaseImpl) BookedTimes(ctx context.Context, locationID int64, date string) (res []string, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".supabase.booking.BookedTimes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if s.client == nil {
		return nil, supabase.ErrNotConfigured
	}

	rows := []struct {
		BookingTime string `json:"booking_time"`
	}{}

	_, err = s.client.From(model.TableName).
		Select(model.FieldBookingTime, "", false).
		Eq(model.FieldLocationID, strconv.FormatInt(locationID, 10)).
		Eq(model.FieldBookingDate, date).
		Order(model.FieldBookingTime, &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to select booked times: %w", err)
	}

	res = make([]string, len(rows))
	for i, row := range rows {
		res[i] = row.BookingTime
	}

	return res, nil
}
