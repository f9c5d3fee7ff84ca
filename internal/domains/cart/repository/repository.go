package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"salon/config"
	"salon/internal/domains/cart/model"
	"salon/shared"
	"salon/shared/cache"

	"github.com/rs/zerolog/log"
)

// Cart keeps one JSON array of entries per visitor in Redis.
type Cart interface {
	Load(ctx context.Context, visitorID string) ([]model.Entry, error)
	Save(ctx context.Context, visitorID string, entries []model.Entry) error
	Delete(ctx context.Context, visitorID string) error
}

type repositoryImpl struct {
	cache cache.RedisCache
	cfg   *config.Config
}

func New(cache cache.RedisCache, cfg *config.Config) Cart {
	return &repositoryImpl{
		cache: cache,
		cfg:   cfg,
	}
}

func cacheKey(visitorID string) string {
	return shared.BuildCacheKey(model.CacheKeyPrefix, visitorID)
}

// Load returns an empty cart when nothing is stored or the stored value cannot be decoded.
func (r *repositoryImpl) Load(ctx context.Context, visitorID string) ([]model.Entry, error) {
	entries := []model.Entry{}

	err := r.cache.Get(ctx, cacheKey(visitorID), &entries)
	if err == nil {
		return entries, nil
	}

	if errors.Is(err, cache.Nil) {
		return []model.Entry{}, nil
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		log.Warn().Err(err).Str("visitor", visitorID).Msg("discarding unreadable cart")

		return []model.Entry{}, nil
	}

	return nil, fmt.Errorf("failed to load cart: %w", err)
}

func (r *repositoryImpl) Save(ctx context.Context, visitorID string, entries []model.Entry) error {
	if entries == nil {
		entries = []model.Entry{}
	}

	if err := r.cache.Save(ctx, cacheKey(visitorID), entries, r.cfg.Cart.TTLSeconds); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, visitorID string) error {
	if err := r.cache.Delete(ctx, cacheKey(visitorID)); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	return nil
}
