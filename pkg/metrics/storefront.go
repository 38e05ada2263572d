package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records delivery-quote and cart activity.
type StorefrontMetrics struct {
	quoteDuration *prometheus.HistogramVec
	quoteOutcome  *prometheus.CounterVec
	cartMutations *prometheus.CounterVec
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	quoteDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "delivery_quote_duration_seconds",
		Help:    "Duration of delivery quote computations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	quoteOutcome := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_quote_total",
		Help: "Delivery quote attempts by outcome.",
	}, []string{"outcome"})
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations by operation.",
	}, []string{"operation"})
	reg.MustRegister(quoteDuration, quoteOutcome, cartMutations)
	return &StorefrontMetrics{
		quoteDuration: quoteDuration,
		quoteOutcome:  quoteOutcome,
		cartMutations: cartMutations,
	}
}

// ObserveQuote records one delivery quote attempt with its outcome label.
func (m *StorefrontMetrics) ObserveQuote(outcome string, duration time.Duration) {
	if m == nil || m.quoteDuration == nil {
		return
	}
	label := normalizeLabel(outcome)
	m.quoteDuration.WithLabelValues(label).Observe(duration.Seconds())
	m.quoteOutcome.WithLabelValues(label).Inc()
}

// IncCartMutation counts one cart mutation for the named operation.
func (m *StorefrontMetrics) IncCartMutation(operation string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(normalizeLabel(operation)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
