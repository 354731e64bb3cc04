package metrics

import (
	"strings"

	"gin-jewelry-b2b/internal/pkg/config"
	"gin-jewelry-b2b/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics implements shared.Metrics on prometheus counters.
type Metrics struct {
	quotationTransitions *prometheus.CounterVec
	priceComputations    *prometheus.CounterVec
	ordersCreated        prometheus.Counter
	orderLines           prometheus.Counter
	orderStatusChanges   *prometheus.CounterVec
}

var _ shared.Metrics = (*Metrics)(nil)

func New(registerer prometheus.Registerer, cfg config.MetricsConfig) (*Metrics, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	namespace := strings.TrimSpace(cfg.Namespace)
	if namespace == "" {
		namespace = "jewelry"
	}

	m := &Metrics{
		quotationTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotation_transitions_total",
			Help:      "Quotation lifecycle events by outcome.",
		}, []string{"event", "outcome"}),
		priceComputations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_computations_total",
			Help:      "Price computations by outcome.",
		}, []string{"outcome"}),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Orders created from approved quotations.",
		}),
		orderLines: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_lines_created_total",
			Help:      "Order items created from approved quotations.",
		}),
		orderStatusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_changes_total",
			Help:      "Order status transitions by target status.",
		}, []string{"to"}),
	}

	for _, c := range []prometheus.Collector{
		m.quotationTransitions,
		m.priceComputations,
		m.ordersCreated,
		m.orderLines,
		m.orderStatusChanges,
	} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) QuotationTransition(event, outcome string) {
	if m == nil {
		return
	}
	m.quotationTransitions.WithLabelValues(strings.TrimSpace(event), outcome).Inc()
}

func (m *Metrics) PriceComputed(outcome string) {
	if m == nil {
		return
	}
	m.priceComputations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) OrderCreated(lines int) {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
	m.orderLines.Add(float64(lines))
}

func (m *Metrics) OrderStatusChanged(to string) {
	if m == nil {
		return
	}
	m.orderStatusChanges.WithLabelValues(to).Inc()
}
