package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Catalog=MockCatalogService

import (
	"context"
	"errors"
	"fmt"
	"salon/config"
	"salon/infras/otel"
	"salon/internal/domains/catalog/model"
	"salon/internal/domains/catalog/repository"
	"salon/shared"
	"salon/shared/cache"
	"salon/shared/constant"
	"salon/shared/failure"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	cachePrefix      = "catalog"
	cacheLocations   = "catalog:locations"
	cacheServices    = "catalog:services"
	cachePackages    = "catalog:packages"
	defaultCacheTTLs = 300
)

// Catalog serves read only reference data. Store failures come back as CatalogUnavailable.
type Catalog interface {
	ListLocations(ctx context.Context) ([]model.Location, error)
	ListServices(ctx context.Context) ([]model.Service, error)
	ListPackages(ctx context.Context) ([]model.Package, error)
	ListItems(ctx context.Context) ([]model.Item, error)
	FindItem(ctx context.Context, key string) (model.Item, error)
	Invalidate(ctx context.Context)
}

type serviceImpl struct {
	repo  repository.Catalog
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	group singleflight.Group
}

func New(repo repository.Catalog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) ttl() int {
	if s.cfg.Cache.TTL > 0 {
		return s.cfg.Cache.TTL
	}

	return defaultCacheTTLs
}

// readThrough serves key from the cache and collapses concurrent misses into one store query.
func readThrough[T any](ctx context.Context, s *serviceImpl, key string, load func(ctx context.Context) ([]T, error)) ([]T, error) {
	var res []T

	err := s.cache.Get(ctx, key, &res)
	if err == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit for catalog")

		return res, nil
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Str("cacheKey", key).Msg("catalog cache unavailable, reading from store")
	}

	value, err, collapsed := s.group.Do(key, func() (any, error) {
		items, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		if err := s.cache.Save(ctx, key, items, s.ttl()); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save catalog to cache")
		}

		return items, nil
	})
	if err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to load catalog")

		return nil, failure.CatalogUnavailable(err) //nolint:wrapcheck
	}

	if collapsed {
		log.Debug().Str("cacheKey", key).Msg("catalog load shared with a concurrent request")
	}

	items, _ := value.([]T)

	return items, nil
}

func (s *serviceImpl) ListLocations(ctx context.Context) (res []model.Location, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListLocations")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return readThrough(ctx, s, cacheLocations, s.repo.Locations)
}

func (s *serviceImpl) ListServices(ctx context.Context) (res []model.Service, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListServices")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return readThrough(ctx, s, cacheServices, s.repo.Services)
}

func (s *serviceImpl) ListPackages(ctx context.Context) (res []model.Package, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPackages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return readThrough(ctx, s, cachePackages, s.repo.Packages)
}

// ListItems returns services followed by packages.
func (s *serviceImpl) ListItems(ctx context.Context) (res []model.Item, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListItems")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	services, err := s.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	packages, err := s.ListPackages(ctx)
	if err != nil {
		return nil, err
	}

	res = make([]model.Item, 0, len(services)+len(packages))
	for _, service := range services {
		res = append(res, service.Item())
	}

	for _, pack := range packages {
		res = append(res, pack.Item())
	}

	return res, nil
}

func (s *serviceImpl) FindItem(ctx context.Context, key string) (res model.Item, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindItem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	kind, id, err := model.ParseKey(key)
	if err != nil {
		return res, failure.Validation("key", err.Error()) //nolint:wrapcheck
	}

	switch kind {
	case model.KindService:
		services, err := s.ListServices(ctx)
		if err != nil {
			return res, err
		}

		for _, service := range services {
			if service.ID == id {
				return service.Item(), nil
			}
		}
	case model.KindPackage:
		packages, err := s.ListPackages(ctx)
		if err != nil {
			return res, err
		}

		for _, pack := range packages {
			if pack.ID == id {
				return pack.Item(), nil
			}
		}
	}

	return res, failure.NotFound(fmt.Sprintf("catalog item %s not found", key)) //nolint:wrapcheck
}

// Invalidate drops every cached catalog list.
func (s *serviceImpl) Invalidate(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cachePrefix+":")
}
