package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"frontdesk/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keepGlobals(t *testing.T) {
	t.Helper()

	logger := log.Logger
	level := zerolog.GlobalLevel()
	format := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = logger
		zerolog.SetGlobalLevel(level)
		zerolog.TimeFieldFormat = format
	})
}

func TestInitLogger(t *testing.T) {
	keepGlobals(t)

	InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "info", want: zerolog.InfoLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "", want: zerolog.TraceLevel},
		{level: "loud", want: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			keepGlobals(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level

			SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestErrorWithStack(t *testing.T) {
	keepGlobals(t)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	ErrorWithStack(errors.New("failed to upload revenue report"))

	assert.Contains(t, buf.String(), "failed to upload revenue report")
	assert.Contains(t, buf.String(), "logger_test.go")
}

func TestConfigure(t *testing.T) {
	t.Run("development keeps the current writer", func(t *testing.T) {
		keepGlobals(t)

		var buf bytes.Buffer
		log.Logger = zerolog.New(&buf)

		cfg := &config.Config{}
		cfg.Server.Env = "development"
		cfg.Server.LogLevel = "warn"

		Configure(cfg)
		log.Warn().Msg("room 101 needs cleaning")

		assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
		assert.Contains(t, buf.String(), "room 101 needs cleaning")
	})

	t.Run("production writes json lines with the app name", func(t *testing.T) {
		keepGlobals(t)

		var buf bytes.Buffer
		log.Logger = newJSONLogger(&buf, "frontdesk")

		log.Info().Str("booking", "12").Msg("guest checked in")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "frontdesk", line["app"])
		assert.Equal(t, "guest checked in", line["message"])
		assert.Equal(t, "12", line["booking"])
		assert.Contains(t, line, "time")
	})
}
