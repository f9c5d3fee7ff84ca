package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Cart=MockCartService

import (
	"context"
	"hash/fnv"
	"salon/config"
	"salon/infras/otel"
	"salon/internal/domains/cart/model"
	"salon/internal/domains/cart/repository"
	catalogModel "salon/internal/domains/catalog/model"
	"salon/shared/constant"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const lockStripes = 64

// Cart is the visitor's pre-selection of services and packages. Entries are unique by key
// and kept in insertion order.
type Cart interface {
	Add(ctx context.Context, visitorID string, item catalogModel.Item) (model.AddResult, error)
	Remove(ctx context.Context, visitorID string, key string) error
	Clear(ctx context.Context, visitorID string) error
	List(ctx context.Context, visitorID string) ([]model.Entry, error)
	Total(ctx context.Context, visitorID string) (model.Totals, error)
}

type serviceImpl struct {
	repo  repository.Cart
	cfg   *config.Config
	otel  otel.Otel
	locks [lockStripes]sync.Mutex
	now   func() time.Time
}

func New(repo repository.Cart, cfg *config.Config, otel otel.Otel) Cart {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
		now:  time.Now,
	}
}

// lock serialises read-modify-write cycles of one visitor's cart inside this process.
func (s *serviceImpl) lock(visitorID string) func() {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(visitorID))

	mu := &s.locks[hash.Sum32()%lockStripes]
	mu.Lock()

	return mu.Unlock
}

func (s *serviceImpl) Add(ctx context.Context, visitorID string, item catalogModel.Item) (res model.AddResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cart.Add")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock := s.lock(visitorID)
	defer unlock()

	entries, err := s.repo.Load(ctx, visitorID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	key := item.Key()
	for _, entry := range entries {
		if entry.Key() == key {
			return model.Duplicate, nil
		}
	}

	entries = append(entries, model.Entry{Item: item, AddedAt: s.now().UTC()})

	if err = s.repo.Save(ctx, visitorID, entries); err != nil {
		return res, err //nolint:wrapcheck
	}

	scope.SetAttribute("cart.size", len(entries))

	return model.Added, nil
}

// Remove drops the entry with key. Removing a key that is not in the cart is a no-op.
func (s *serviceImpl) Remove(ctx context.Context, visitorID string, key string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cart.Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock := s.lock(visitorID)
	defer unlock()

	entries, err := s.repo.Load(ctx, visitorID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	kept := make([]model.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Key() != key {
			kept = append(kept, entry)
		}
	}

	if len(kept) == len(entries) {
		return nil
	}

	return s.repo.Save(ctx, visitorID, kept) //nolint:wrapcheck
}

func (s *serviceImpl) Clear(ctx context.Context, visitorID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cart.Clear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock := s.lock(visitorID)
	defer unlock()

	return s.repo.Delete(ctx, visitorID) //nolint:wrapcheck
}

// List never fails on storage problems; an unreadable cart is reported empty.
func (s *serviceImpl) List(ctx context.Context, visitorID string) (res []model.Entry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cart.List")
	defer scope.End()

	entries, err := s.repo.Load(ctx, visitorID)
	if err != nil {
		log.Warn().Err(err).Str("visitor", visitorID).Msg("cart unavailable, showing it empty")

		return []model.Entry{}, nil
	}

	return entries, nil
}

func (s *serviceImpl) Total(ctx context.Context, visitorID string) (res model.Totals, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cart.Total")
	defer scope.End()

	entries, err := s.List(ctx, visitorID)
	if err != nil {
		return res, err
	}

	return model.Sum(model.Items(entries), s.cfg.App.Currency), nil
}
