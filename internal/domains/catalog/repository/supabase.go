package repository

import (
	"context"
	"fmt"
	"salon/infras/otel"
	"salon/infras/supabase"
	"salon/internal/domains/catalog/model"
	"salon/shared/constant"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
)

type supabaseImpl struct {
	client *supa.Client
	otel   otel.Otel
}

func NewSupabase(client *supa.Client, otel otel.Otel) Catalog {
	return &supabaseImpl{
		client: client,
		otel:   otel,
	}
}

func selectAll[T any](ctx context.Context, s *supabaseImpl, table string) (res []T, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".supabase."+table)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if s.client == nil {
		return nil, supabase.ErrNotConfigured
	}

	res = []T{}

	_, err = s.client.From(table).
		Select("*", "", false).
		Order(model.FieldID, &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&res)
	if err != nil {
		return nil, fmt.Errorf("failed to select %s: %w", table, err)
	}

	return res, nil
}

func (s *supabaseImpl) Locations(ctx context.Context) ([]model.Location, error) {
	return selectAll[model.Location](ctx, s, model.TableLocations)
}

func (s *supabaseImpl) Services(ctx context.Context) ([]model.Service, error) {
	return selectAll[model.Service](ctx, s, model.TableServices)
}

func (s *supabaseImpl) Packages(ctx context.Context) ([]model.Package, error) {
	return selectAll[model.Package](ctx, s, model.TablePackages)
}
