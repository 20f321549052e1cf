package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "padelhub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "padelhub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ReservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "padelhub_reservations_total",
			Help: "Total number of reservations created",
		},
		[]string{"status"},
	)

	ReservationCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "padelhub_reservation_cancellations_total",
			Help: "Total number of reservation cancellations",
		},
	)

	EquipmentTransactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "padelhub_equipment_transactions_total",
			Help: "Total number of equipment transactions",
		},
		[]string{"type", "status"},
	)

	TokenPacksPurchasedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "padelhub_token_packs_purchased_total",
			Help: "Total number of token pack purchases",
		},
	)

	TokensConsumedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "padelhub_tokens_consumed_total",
			Help: "Total number of prepaid tokens consumed",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordReservation(status string) {
	ReservationsTotal.WithLabelValues(status).Inc()
}

func RecordReservationCancellation() {
	ReservationCancellationsTotal.Inc()
}

func RecordEquipmentTransaction(txType, status string) {
	EquipmentTransactionsTotal.WithLabelValues(txType, status).Inc()
}

func RecordTokenPackPurchase() {
	TokenPacksPurchasedTotal.Inc()
}

func RecordTokensConsumed(count int) {
	TokensConsumedTotal.Add(float64(count))
}
