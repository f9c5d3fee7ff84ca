package http

import (
	"net/http"
	"net/http/httptest"
	"salon/config"
	"salon/infras/jwt"
	otelMocks "salon/infras/otel/mocks"
	"salon/permissions"
	"salon/transport/http/middleware"
	"salon/transport/http/router"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestServer() *HTTP {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.VisitorSecret = "visitor-secret"

	ot := otelMocks.NewOtel()

	return New(
		cfg,
		router.New(router.DomainHandlers{}),
		middleware.NewAppMiddleware(ot, cfg, nil),
		middleware.NewVisitorMiddleware(jwt.New(cfg), ot, permissions.Get()),
	)
}

func get(server *HTTP, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestHTTP_HealthFollowsShutdownState(t *testing.T) {
	server := newTestServer()

	rec := get(server, healthPath)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ServerStateReady, server.State())

	server.state.Store(int32(ServerStateInGracePeriod))
	rec = get(server, healthPath)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "PREPARING TO SHUT DOWN")

	server.state.Store(int32(ServerStateInCleanupPeriod))
	rec = get(server, healthPath)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNHEALTHY")
}

func TestHTTP_VisitorRoutesNeedToken(t *testing.T) {
	server := newTestServer()

	assert.Equal(t, http.StatusUnauthorized, get(server, "/v1/cart").Code)
	assert.Equal(t, http.StatusUnauthorized, get(server, "/v1/booking/sessions/abc").Code)
	assert.Equal(t, http.StatusNotFound, get(server, "/v1/unknown").Code)
}

func TestHTTP_ShutdownRunsHooks(t *testing.T) {
	server := newTestServer()

	var calls []string
	server.OnShutdown(func() { calls = append(calls, "notifier") })
	server.OnShutdown(func() { calls = append(calls, "cache") })

	server.shutdown(0)

	assert.Equal(t, []string{"notifier", "cache"}, calls)
}
