package di

import (
	"context"
	"salon/internal/domains/catalog/service"
	notificationService "salon/internal/domains/notification/service"
	"salon/transport/http"
)

// Application is the HTTP server with the lifecycle hooks of the booking domains attached.
type Application struct {
	*http.HTTP
}

// NewApplication drops catalog entries cached by a previous release and drains pending
// admin notifications on shutdown.
func NewApplication(server *http.HTTP, catalog service.Catalog, notifier notificationService.Notifier) *Application {
	catalog.Invalidate(context.Background())
	server.OnShutdown(notifier.Close)

	return &Application{HTTP: server}
}
