package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m, ok := New().(*prometheusMetrics)
	require.True(t, ok)

	m.BookingCreated(2)
	m.BookingCreated(1)
	m.BookingTransition("confirmed", "checked-in")
	m.BookingTransition("confirmed", "checked-in")
	m.TransactionRecorded("booking", 100)
	m.TransactionRecorded("refund", -20)

	assert.InDelta(t, 3, testutil.ToFloat64(m.bookingsCreated), 0.001)
	assert.InDelta(t, 2, testutil.ToFloat64(m.transitions.WithLabelValues("confirmed", "checked-in")), 0.001)
	assert.InDelta(t, 100, testutil.ToFloat64(m.revenue.WithLabelValues("booking")), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(m.transactions.WithLabelValues("refund")), 0.001)
	assert.InDelta(t, 0, testutil.ToFloat64(m.revenue.WithLabelValues("refund")), 0.001)
}

func TestMetrics_RoomStatus(t *testing.T) {
	m, ok := New().(*prometheusMetrics)
	require.True(t, ok)

	m.RoomStatus(map[string]int{"occupied": 3, "available": 7}, 30)

	assert.InDelta(t, 3, testutil.ToFloat64(m.rooms.WithLabelValues("occupied")), 0.001)
	assert.InDelta(t, 30, testutil.ToFloat64(m.occupancy), 0.001)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.BookingCreated(1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "frontdesk_bookings_created_total 1")
}
