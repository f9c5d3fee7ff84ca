package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"salon/config"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/internal/domains/catalog/model"
	gDto "salon/shared/dto"
	gRepo "salon/shared/repository"

	supa "github.com/supabase-community/supabase-go"
)

// Catalog reads the reference data. Every list is ordered by id.
type Catalog interface {
	Locations(ctx context.Context) ([]model.Location, error)
	Services(ctx context.Context) ([]model.Service, error)
	Packages(ctx context.Context) ([]model.Package, error)
}

type repositoryImpl struct {
	locations gRepo.Repository[model.Location]
	services  gRepo.Repository[model.Service]
	packages  gRepo.Repository[model.Package]
}

// New returns the store matching the configured driver.
func New(cfg *config.Config, db *postgres.Connection, client *supa.Client, otel otel.Otel) Catalog {
	if cfg.DB.Driver == config.DriverSupabase {
		return NewSupabase(client, otel)
	}

	return NewPostgres(db, otel)
}

func NewPostgres(db *postgres.Connection, otel otel.Otel) Catalog {
	return &repositoryImpl{
		locations: gRepo.NewRepository[model.Location](model.EntityLocation, model.TableLocations, model.FieldID, db, otel),
		services:  gRepo.NewRepository[model.Service](model.EntityService, model.TableServices, model.FieldID, db, otel),
		packages:  gRepo.NewRepository[model.Package](model.EntityPackage, model.TablePackages, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) Locations(ctx context.Context) ([]model.Location, error) {
	return r.locations.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (r *repositoryImpl) Services(ctx context.Context) ([]model.Service, error) {
	return r.services.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (r *repositoryImpl) Packages(ctx context.Context) ([]model.Package, error) {
	return r.packages.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}) //nolint:wrapcheck
}
