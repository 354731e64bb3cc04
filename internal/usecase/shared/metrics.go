package shared

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics records business counters. Implementations must be safe for concurrent use.
type Metrics interface {
	QuotationTransition(event, outcome string)
	PriceComputed(outcome string)
	OrderCreated(lines int)
	OrderStatusChanged(to string)
}

type NopMetrics struct{}

func (NopMetrics) QuotationTransition(string, string) {}
func (NopMetrics) PriceComputed(string)               {}
func (NopMetrics) OrderCreated(int)                   {}
func (NopMetrics) OrderStatusChanged(string)          {}

// Outcome maps an error to a metric label.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
