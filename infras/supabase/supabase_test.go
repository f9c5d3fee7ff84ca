package supabase_test

import (
	"errors"
	"salon/config"
	"salon/infras/supabase"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_SkippedForPostgres(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Driver = config.DriverPostgres

	assert.Nil(t, supabase.New(cfg))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, supabase.IsUniqueViolation(errors.New(`(23505) duplicate key value violates unique constraint "bookings_slot_key"`)))
	assert.False(t, supabase.IsUniqueViolation(errors.New("(42P01) relation does not exist")))
	assert.False(t, supabase.IsUniqueViolation(nil))
}
