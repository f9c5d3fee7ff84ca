package repository_test

import (
	"context"
	"salon/infras/otel/mocks"
	"salon/infras/supabase"
	"salon/internal/domains/catalog/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupabase_NotConfigured(t *testing.T) {
	repo := repository.NewSupabase(nil, mocks.NewOtel())

	_, err := repo.Locations(context.Background())
	assert.ErrorIs(t, err, supabase.ErrNotConfigured)

	_, err = repo.Services(context.Background())
	assert.ErrorIs(t, err, supabase.ErrNotConfigured)

	_, err = repo.Packages(context.Background())
	assert.ErrorIs(t, err, supabase.ErrNotConfigured)
}
