package handler

import (
	"net/http"
	"salon/config"
	"salon/di"
	"salon/shared/logger"
	"sync"
)

var (
	app  *di.Application
	once sync.Once
)

// Handler serves the API as a single serverless function. Warm invocations reuse the
// application so wizard sessions and pools survive between requests.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app = di.InitializeService()
	})

	app.ServeHTTP(w, r)
}
