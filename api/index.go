package handler

import (
	"net/http"
	"sync"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
	"frontdesk/transport/http/response"

	"github.com/rs/zerolog/log"
)

var (
	app     *di.App
	initErr error
	once    sync.Once
)

// Handler serves the API from a serverless function. The container is built
// on the first request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.Configure(cfg)

		app, _, initErr = di.InitializeApp()
	})

	if initErr != nil {
		log.Error().Err(initErr).Msg("failed to initialize application")
		response.WithUnhealthy(w)

		return
	}

	app.HTTP.ServeHTTP(w, r)
}
