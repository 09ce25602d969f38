package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/metrics"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/guest"
	"frontdesk/internal/handlers/room"
	"frontdesk/internal/handlers/statistics"
	"frontdesk/internal/handlers/transaction"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	transportHTTP "frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) *transportHTTP.HTTP {
	t.Helper()

	ctrl := gomock.NewController(t)
	ot := otelMocks.NewOtel()
	cfg := &config.Config{}

	handlers := router.DomainHandlers{
		Room:        room.New(nil, ot),
		Guest:       guest.New(nil, ot),
		Booking:     booking.New(nil, ot),
		Transaction: transaction.New(nil, ot),
		Statistics:  statistics.New(nil, ot),
	}

	mw := middleware.NewAppMiddleware(ot, cfg, cacheMocks.NewMockRedisCache(ctrl))

	return transportHTTP.New(cfg, router.New(handlers), mw, metrics.New())
}

func TestHealth(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, transportHTTP.ServerStateReady, server.State())
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestMetricsEndpoint(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "frontdesk_")
}

func TestAPIIsMountedUnderV1(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms/not-a-number", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
