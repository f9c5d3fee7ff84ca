package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salon/config"
	"salon/infras/otel/mocks"
	catalogMocks "salon/internal/domains/catalog/mocks"
	"salon/internal/domains/catalog/model"
	"salon/internal/domains/catalog/service"
	"salon/shared/cache"
	cacheMocks "salon/shared/cache/mocks"
	"salon/shared/failure"
)

var errCacheMiss = fmt.Errorf("failed to get cache value: %w", cache.Nil)

func newService(t *testing.T) (service.Catalog, *catalogMocks.MockCatalog, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := catalogMocks.NewMockCatalog(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestCatalogService_ListLocations(t *testing.T) {
	locations := []model.Location{{ID: 1, Name: "Basauri", Address: "Kale Nagusia 1"}}

	tests := []struct {
		name      string
		setupMock func(repo *catalogMocks.MockCatalog, redisCache *cacheMocks.MockRedisCache)
		want      []model.Location
		wantKind  failure.Kind
	}{
		{
			name: "cache hit",
			setupMock: func(_ *catalogMocks.MockCatalog, redisCache *cacheMocks.MockRedisCache) {
				redisCache.EXPECT().
					Get(gomock.Any(), "catalog:locations", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*[]model.Location) = locations

						return nil
					})
			},
			want: locations,
		},
		{
			name: "cache miss reads the store and saves",
			setupMock: func(repo *catalogMocks.MockCatalog, redisCache *cacheMocks.MockRedisCache) {
				redisCache.EXPECT().Get(gomock.Any(), "catalog:locations", gomock.Any()).Return(errCacheMiss)
				repo.EXPECT().Locations(gomock.Any()).Return(locations, nil)
				redisCache.EXPECT().Save(gomock.Any(), "catalog:locations", locations, 3600).Return(nil)
			},
			want: locations,
		},
		{
			name: "cache failure still reads the store",
			setupMock: func(repo *catalogMocks.MockCatalog, redisCache *cacheMocks.MockRedisCache) {
				redisCache.EXPECT().Get(gomock.Any(), "catalog:locations", gomock.Any()).Return(errors.New("redis down"))
				repo.EXPECT().Locations(gomock.Any()).Return(locations, nil)
				redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			want: locations,
		},
		{
			name: "store error is catalog unavailable",
			setupMock: func(repo *catalogMocks.MockCatalog, redisCache *cacheMocks.MockRedisCache) {
				redisCache.EXPECT().Get(gomock.Any(), "catalog:locations", gomock.Any()).Return(errCacheMiss)
				repo.EXPECT().Locations(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantKind: failure.KindCatalogUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, redisCache := newService(t)
			tt.setupMock(repo, redisCache)

			got, err := svc.ListLocations(context.Background())

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, failure.Is(err, tt.wantKind))
				assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogService_ListItems(t *testing.T) {
	svc, repo, redisCache := newService(t)

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	repo.EXPECT().Services(gomock.Any()).Return([]model.Service{
		{ID: 5, Name: "Manicura", Duration: "30 min", Price: "9,90€", Category: "nails"},
	}, nil)
	repo.EXPECT().Packages(gomock.Any()).Return([]model.Package{
		{ID: 1, Name: "Novia", Duration: "120 min", Price: "80,00€"},
	}, nil)

	items, err := svc.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "service:5", items[0].Key())
	assert.Equal(t, "package:1", items[1].Key())
}

func TestCatalogService_ListItemsServicesUnavailable(t *testing.T) {
	svc, repo, redisCache := newService(t)

	redisCache.EXPECT().Get(gomock.Any(), "catalog:services", gomock.Any()).Return(errCacheMiss)
	repo.EXPECT().Services(gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := svc.ListItems(context.Background())
	assert.True(t, failure.Is(err, failure.KindCatalogUnavailable))
}

func TestCatalogService_FindItem(t *testing.T) {
	services := []model.Service{{ID: 5, Name: "Manicura", Duration: "30 min", Price: "9,90€"}}

	t.Run("found", func(t *testing.T) {
		svc, _, redisCache := newService(t)

		redisCache.EXPECT().
			Get(gomock.Any(), "catalog:services", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*[]model.Service) = services

				return nil
			})

		item, err := svc.FindItem(context.Background(), "service:5")
		require.NoError(t, err)
		assert.Equal(t, "Manicura", item.Name)
		assert.Equal(t, model.KindService, item.Kind)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _, redisCache := newService(t)

		redisCache.EXPECT().
			Get(gomock.Any(), "catalog:services", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*[]model.Service) = services

				return nil
			})

		_, err := svc.FindItem(context.Background(), "service:9")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("invalid key", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.FindItem(context.Background(), "voucher-1")
		assert.True(t, failure.Is(err, failure.KindValidation))
	})
}

func TestCatalogService_Invalidate(t *testing.T) {
	svc, _, redisCache := newService(t)

	redisCache.EXPECT().Clear(gomock.Any(), "catalog:*").Return(nil)

	svc.Invalidate(context.Background())
}
