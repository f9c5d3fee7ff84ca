package supabase

import (
	"errors"
	"salon/config"
	"salon/shared/constant"
	"strings"

	"github.com/rs/zerolog/log"
	supa "github.com/supabase-community/supabase-go"
)

var ErrNotConfigured = errors.New("supabase client is not configured")

// New creates the PostgREST client. It returns nil unless the supabase driver is configured.
func New(cfg *config.Config) *supa.Client {
	if cfg.DB.Driver != config.DriverSupabase {
		return nil
	}

	client, err := supa.NewClient(cfg.DB.Supabase.URL, cfg.DB.Supabase.ServiceKey, nil)
	if err != nil {
		log.Fatal().Err(err).Str("url", cfg.DB.Supabase.URL).Msg("Failed to create Supabase client")
	}

	log.Info().Str("url", cfg.DB.Supabase.URL).Msg("Connected to Supabase")

	return client
}

// IsUniqueViolation reports whether a PostgREST error carries the postgres unique violation code.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	return strings.Contains(err.Error(), constant.PqErrorCodeUniqueViolation)
}
