package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"salon/config"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/internal/domains/booking/model"
	"salon/shared"
	gDto "salon/shared/dto"
	gRepo "salon/shared/repository"

	supa "github.com/supabase-community/supabase-go"
)

// Booking writes reservations and lists the times already taken.
// Insert fails with gRepo.ErrUniqueViolation when the slot is taken.
type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	BookedTimes(ctx context.Context, locationID int64, date string) ([]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	otel otel.Otel
}

// New returns the store matching the configured driver.
func New(cfg *config.Config, db *postgres.Connection, client *supa.Client, otel otel.Otel) Booking {
	if cfg.DB.Driver == config.DriverSupabase {
		return NewSupabase(client, otel)
	}

	return NewPostgres(db, otel)
}

func NewPostgres(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) BookedTimes(ctx context.Context, locationID int64, date string) ([]string, error) {
	filter := shared.FilterByField(model.FieldLocationID, locationID, model.TableName)
	filter.Filters = append(filter.Filters,
		gDto.Filter{Field: model.FieldBookingDate, Value: date, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	filter.Operator = gDto.FilterGroupOperatorAnd

	params := gDto.QueryParams{SortBy: model.FieldBookingTime, SortDir: gDto.SortDirAsc}

	bookings, err := r.GetAll(ctx, params, filter, model.FieldBookingTime)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	times := make([]string, len(bookings))
	for i, booking := range bookings {
		times[i] = booking.BookingTime
	}

	return times, nil
}
