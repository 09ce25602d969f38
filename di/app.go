package di

import (
	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/scheduler"
	"frontdesk/internal/jobs"
	"frontdesk/transport/http"

	"github.com/rs/zerolog/log"
)

// App holds what cmd/app drives after wiring: the HTTP server, the
// background jobs and the tracer to flush on exit.
type App struct {
	HTTP      *http.HTTP
	Jobs      *jobs.Jobs
	Scheduler scheduler.Scheduler
	Otel      otel.Otel
}

// provideKafka pairs the notifications producer with its cleanup.
func provideKafka(cfg *config.Config) (kafka.Client, func()) {
	client := kafka.New(cfg)

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka client")
		}
	}
}
