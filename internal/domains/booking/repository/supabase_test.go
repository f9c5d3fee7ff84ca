package repository_test

import (
	"context"
	"salon/infras/otel/mocks"
	"salon/infras/supabase"
	"salon/internal/domains/booking/model"
	"salon/internal/domains/booking/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupabase_NotConfigured(t *testing.T) {
	repo := repository.NewSupabase(nil, mocks.NewOtel())

	err := repo.Insert(context.Background(), model.Booking{ID: "b1"})
	assert.ErrorIs(t, err, supabase.ErrNotConfigured)

	_, err = repo.BookedTimes(context.Background(), 1, "2025-06-02")
	assert.ErrorIs(t, err, supabase.ErrNotConfigured)
}
