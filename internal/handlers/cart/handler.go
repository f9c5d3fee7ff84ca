package cart

import (
	"net/http"
	"salon/infras/otel"
	"salon/internal/domains/cart/model"
	"salon/internal/domains/cart/model/dto"
	"salon/internal/domains/cart/service"
	catalogService "salon/internal/domains/catalog/service"
	"salon/shared"
	"salon/shared/constant"
	"salon/shared/validator"
	"salon/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Cart
	catalog catalogService.Catalog
	otel    otel.Otel
}

func New(service service.Cart, catalog catalogService.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		catalog: catalog,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", handler.GetCart)
		r.Delete("/", handler.ClearCart)
		r.Post("/items", handler.AddItem)
		r.Delete("/items/{key}", handler.RemoveItem)
	})
}

// GetCart lists the visitor's cart with its totals
// @Summary Get cart
// @Tags Cart
// @Produce json
// @Success 200 {object} response.Data[dto.CartResponse] "Cart"
// @Failure 401 {object} response.Error
// @Router /v1/cart [get]
// @Security BearerAuth
func (handler *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCart")
	defer scope.End()

	visitorID, err := shared.VisitorID(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	entries, err := handler.service.List(ctx, visitorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list cart")

		response.WithError(w, err)

		return
	}

	totals, err := handler.service.Total(ctx, visitorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to total cart")

		response.WithError(w, err)

		return
	}

	res := dto.CartResponse{}
	res.FromModel(entries, totals)

	response.WithJSON(w, http.StatusOK, res)
}

// AddItem puts a catalog item into the cart. Adding an item twice leaves the cart unchanged.
// @Summary Add item to cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body dto.AddItemRequest true "Item key, e.g. service:5"
// @Success 201 {object} response.Data[dto.AddItemResponse] "Item added"
// @Success 200 {object} response.Data[dto.AddItemResponse] "Item already in cart"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/cart/items [post]
// @Security BearerAuth
func (handler *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddItem")
	defer scope.End()

	visitorID, err := shared.VisitorID(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.AddItemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	item, err := handler.catalog.FindItem(ctx, req.Key)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", req.Key).Msg("failed to find catalog item")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.Add(ctx, visitorID, item)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add cart item")

		response.WithError(w, err)

		return
	}

	code := http.StatusCreated
	if result == model.Duplicate {
		code = http.StatusOK
	}

	response.WithJSON(w, code, dto.AddItemResponse{Key: item.Key(), Result: string(result)})
}

// RemoveItem drops an item from the cart. Unknown keys are ignored.
// @Summary Remove item from cart
// @Tags Cart
// @Produce json
// @Param key path string true "Item key"
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Router /v1/cart/items/{key} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveItem")
	defer scope.End()

	visitorID, err := shared.VisitorID(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Remove(ctx, visitorID, chi.URLParam(r, constant.RequestParamKey)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove cart item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Item removed from cart")
}

// ClearCart empties the cart
// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Router /v1/cart [delete]
// @Security BearerAuth
func (handler *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearCart")
	defer scope.End()

	visitorID, err := shared.VisitorID(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Clear(ctx, visitorID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to clear cart")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Cart cleared")
}
