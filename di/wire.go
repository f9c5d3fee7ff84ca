//go:build wireinject
// +build wireinject

package di

import (
	"salon/config"
	"salon/infras/jwt"
	"salon/infras/kafka"
	"salon/infras/mail"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/infras/redis"
	"salon/infras/supabase"
	"salon/permissions"
	"salon/shared/cache"
	"salon/transport/http"
	"salon/transport/http/middleware"
	"salon/transport/http/router"

	bookingRepository "salon/internal/domains/booking/repository"
	bookingService "salon/internal/domains/booking/service"
	cartRepository "salon/internal/domains/cart/repository"
	cartService "salon/internal/domains/cart/service"
	catalogRepository "salon/internal/domains/catalog/repository"
	catalogService "salon/internal/domains/catalog/service"
	notificationService "salon/internal/domains/notification/service"
	wizardService "salon/internal/domains/wizard/service"

	bookingHandler "salon/internal/handlers/booking"
	cartHandler "salon/internal/handlers/cart"
	catalogHandler "salon/internal/handlers/catalog"
	visitorHandler "salon/internal/handlers/visitor"
	wizardHandler "salon/internal/handlers/wizard"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	supabase.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	mail.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewVisitorMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var cartDomain = wire.NewSet(
	cartRepository.New,
	cartService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var wizardDomain = wire.NewSet(
	wizardService.NewCalendarFromConfig,
	wire.Struct(new(wizardService.Dependencies), "Catalog", "Booking", "Cart", "Notifier", "Calendar", "Config", "Otel"),
	wizardService.NewSessions,
)

var domains = wire.NewSet(
	catalogDomain,
	cartDomain,
	bookingDomain,
	notificationDomain,
	wizardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	visitorHandler.New,
	catalogHandler.New,
	bookingHandler.New,
	cartHandler.New,
	wizardHandler.New,
	router.New,
)

func InitializeService() *Application {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		NewApplication,
	)

	return &Application{}
}
