package catalog

import (
	"net/http"
	"salon/infras/otel"
	"salon/internal/domains/catalog/model/dto"
	"salon/internal/domains/catalog/service"
	"salon/shared/constant"
	"salon/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/locations", handler.ListLocations)
	r.Get("/services", handler.ListServices)
	r.Get("/packages", handler.ListPackages)
}

// ListLocations returns every salon location
// @Summary List locations
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[[]dto.LocationResponse] "Locations"
// @Failure 503 {object} response.Error "Catalog unavailable"
// @Router /v1/locations [get]
func (handler *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListLocations")
	defer scope.End()

	locations, err := handler.service.ListLocations(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list locations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.FromLocations(locations))
}

// ListServices returns every bookable treatment
// @Summary List services
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[[]dto.ItemResponse] "Services"
// @Failure 503 {object} response.Error "Catalog unavailable"
// @Router /v1/services [get]
func (handler *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListServices")
	defer scope.End()

	services, err := handler.service.ListServices(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list services")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.FromServices(services))
}

// ListPackages returns the bundled offers
// @Summary List packages
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[[]dto.ItemResponse] "Packages"
// @Failure 503 {object} response.Error "Catalog unavailable"
// @Router /v1/packages [get]
func (handler *Handler) ListPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListPackages")
	defer scope.End()

	packages, err := handler.service.ListPackages(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list packages")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.FromPackages(packages))
}
