package metrics

//go:generate go run go.uber.org/mock/mockgen -source=./metrics.go -destination=./mocks/metrics_mock.go -package=mocks

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "frontdesk"

// Metrics records front desk activity for the /metrics endpoint.
type Metrics interface {
	BookingCreated(count int)
	BookingTransition(from, to string)
	TransactionRecorded(kind string, amount float64)
	RoomStatus(counts map[string]int, occupancyRate float64)
	Handler() http.Handler
}

type prometheusMetrics struct {
	registry        *prometheus.Registry
	bookingsCreated prometheus.Counter
	transitions     *prometheus.CounterVec
	transactions    *prometheus.CounterVec
	revenue         *prometheus.CounterVec
	rooms           *prometheus.GaugeVec
	occupancy       prometheus.Gauge
}

func New() Metrics {
	m := &prometheusMetrics{
		registry: prometheus.NewRegistry(),
		bookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Number of bookings created.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_status_transitions_total",
			Help:      "Booking status writes by source and target status.",
		}, []string{"from", "to"}),
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_recorded_total",
			Help:      "Ledger entries recorded by type.",
		}, []string{"type"}),
		revenue: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transaction_amount_total",
			Help:      "Sum of recorded non-negative transaction amounts by type.",
		}, []string{"type"}),
		rooms: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rooms",
			Help:      "Rooms by status at the last statistics refresh.",
		}, []string{"status"}),
		occupancy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "occupancy_rate_percent",
			Help:      "Occupancy rate at the last statistics refresh.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.bookingsCreated,
		m.transitions,
		m.transactions,
		m.revenue,
		m.rooms,
		m.occupancy,
	)

	return m
}

func (m *prometheusMetrics) BookingCreated(count int) {
	m.bookingsCreated.Add(float64(count))
}

func (m *prometheusMetrics) BookingTransition(from, to string) {
	m.transitions.WithLabelValues(from, to).Inc()
}

func (m *prometheusMetrics) TransactionRecorded(kind string, amount float64) {
	m.transactions.WithLabelValues(kind).Inc()

	// counters cannot go down
	if amount > 0 {
		m.revenue.WithLabelValues(kind).Add(amount)
	}
}

func (m *prometheusMetrics) RoomStatus(counts map[string]int, occupancyRate float64) {
	for status, count := range counts {
		m.rooms.WithLabelValues(status).Set(float64(count))
	}

	m.occupancy.Set(occupancyRate)
}

func (m *prometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
