package logger

import (
	"io"
	"os"
	"time"

	"frontdesk/config"
	"frontdesk/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	log.Trace().Msg("Zerolog initialized.")
}

// Configure applies the configured level and switches to JSON lines with
// the app name attached when running in production.
func Configure(cfg *config.Config) {
	SetLogLevel(cfg)

	if cfg.Server.Env != constant.ServerEnvProduction {
		return
	}

	log.Logger = newJSONLogger(os.Stdout, cfg.App.Name)
}

func newJSONLogger(out io.Writer, appName string) zerolog.Logger {
	ctx := zerolog.New(out).With().Timestamp()
	if appName != "" {
		ctx = ctx.Str("app", appName)
	}

	return ctx.Logger()
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
