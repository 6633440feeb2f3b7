package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gym_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	MembersRegisteredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_members_registered_total",
			Help: "Total number of members registered",
		},
		[]string{"plan"},
	)

	MembersDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_members_deleted_total",
			Help: "Total number of members deleted",
		},
	)

	CheckInsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_checkins_total",
			Help: "Total number of attendance check-ins",
		},
	)

	CheckOutsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_checkouts_total",
			Help: "Total number of attendance check-outs",
		},
	)

	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_payments_total",
			Help: "Total number of payments recorded",
		},
		[]string{"payment_method"},
	)

	PaymentAmountTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gym_payment_amount_total",
			Help: "Sum of recorded payment amounts",
		},
	)

	ReceiptsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_receipts_generated_total",
			Help: "Total number of receipts generated",
		},
		[]string{"status"},
	)

	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_login_attempts_total",
			Help: "Total number of staff login attempts",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordMemberRegistered(plan string) {
	MembersRegisteredTotal.WithLabelValues(plan).Inc()
}

func RecordMemberDeleted() {
	MembersDeletedTotal.Inc()
}

func RecordCheckIn() {
	CheckInsTotal.Inc()
}

func RecordCheckOut() {
	CheckOutsTotal.Inc()
}

func RecordPayment(paymentMethod string, amount float64) {
	PaymentsTotal.WithLabelValues(paymentMethod).Inc()
	PaymentAmountTotal.Add(amount)
}

func RecordReceipt(status string) {
	ReceiptsGeneratedTotal.WithLabelValues(status).Inc()
}

func RecordLogin(result string) {
	LoginAttemptsTotal.WithLabelValues(result).Inc()
}
