package repository

// Metrics abstracts telemetry so use cases do not depend on a concrete
// metrics backend.
type Metrics interface {
	RecordQuery(metric, source string)
	RecordCacheHit(metric string)
	RecordCacheMiss(metric string)
	RecordLatency(op string, seconds float64)
	RecordBroadcast(subscribers int)
	RecordSubscriberDrop()
	SetSubscribers(n int)
}

// NopMetrics is a no-op Metrics implementation for tests and wiring
// paths that do not need telemetry.
type NopMetrics struct{}

func (NopMetrics) RecordQuery(string, string)    {}
func (NopMetrics) RecordCacheHit(string)         {}
func (NopMetrics) RecordCacheMiss(string)        {}
func (NopMetrics) RecordLatency(string, float64) {}
func (NopMetrics) RecordBroadcast(int)           {}
func (NopMetrics) RecordSubscriberDrop()         {}
func (NopMetrics) SetSubscribers(int)            {}
