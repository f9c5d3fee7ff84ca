package router

import (
	"salon/internal/handlers/booking"
	"salon/internal/handlers/cart"
	"salon/internal/handlers/catalog"
	"salon/internal/handlers/visitor"
	"salon/internal/handlers/wizard"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Visitor visitor.Handler
	Catalog catalog.Handler
	Booking booking.Handler
	Cart    cart.Handler
	Wizard  wizard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Visitor.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Cart.Router(routerGroup)
		r.DomainHandlers.Wizard.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
