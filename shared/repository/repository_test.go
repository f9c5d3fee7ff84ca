package repository_test

import (
	"context"
	"errors"
	"fmt"
	"salon/infras/otel/mocks"
	"salon/shared"
	"salon/shared/dto"
	"salon/shared/model"
	"salon/shared/repository"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type slotRow struct {
	ID         string `db:"id"`
	LocationID int64  `db:"location_id"`
	Time       string `db:"booking_time"`
	Ignored    string `db:"-"`
	Transient  string
	model.Metadata
}

func TestNewRepository_Columns(t *testing.T) {
	repo := repository.NewRepository[slotRow]("slot", "bookings", "id", nil, mocks.NewOtel())

	assert.Equal(t, []string{
		"id", "location_id", "booking_time",
		"created_at", "modified_at", "created_by", "modified_by",
	}, repo.Columns)
}

func TestBuildWhereClause(t *testing.T) {
	repo := repository.NewRepository[slotRow]("slot", "bookings", "id", nil, mocks.NewOtel())

	where, args := repo.BuildWhereClause(context.Background(), shared.FilterByField("location_id", int64(2), "bookings"))
	assert.Equal(t, " WHERE (bookings.location_id = :location_id) ", where)
	assert.Equal(t, int64(2), args["location_id"])

	where, args = repo.BuildWhereClause(context.Background(), dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestConstraintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unique violation", err: &pq.Error{Code: "23505"}, want: repository.ErrUniqueViolation},
		{name: "wrapped unique violation", err: fmt.Errorf("exec: %w", &pq.Error{Code: "23505"}), want: repository.ErrUniqueViolation},
		{name: "foreign key violation", err: &pq.Error{Code: "23503"}, want: repository.ErrForeignKeyViolation},
		{name: "other pq error", err: &pq.Error{Code: "42P01"}, want: nil},
		{name: "plain error", err: errors.New("connection reset"), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repository.ConstraintError(tt.err))
		})
	}
}
