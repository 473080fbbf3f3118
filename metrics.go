package authform

import "sync/atomic"

// MetricID identifies one internal counter.
type MetricID uint16

const (
	// MetricLoginSuccess counts credential logins that succeeded.
	MetricLoginSuccess MetricID = iota
	// MetricLoginFailure counts credential logins that were denied.
	MetricLoginFailure
	// MetricCookieReauth counts silent logins from the reauthentication cookie.
	MetricCookieReauth
	// MetricLogout counts explicit logouts.
	MetricLogout
	// MetricRegisterSuccess counts users created via registration.
	MetricRegisterSuccess
	// MetricRegisterRejected counts registrations rejected by validation.
	MetricRegisterRejected
	// MetricResetSuccess counts password resets that replaced a hash.
	MetricResetSuccess
	// MetricResetRejected counts password resets rejected by validation.
	MetricResetRejected
	// MetricForgotIssued counts replacement passwords issued.
	MetricForgotIssued
	// MetricForgotUnknown counts forgotten-password requests for unknown users.
	MetricForgotUnknown
	metricIDCount
)

const cacheLineSize = 64

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics holds per-outcome counters. All methods are safe for concurrent
// use and are no-ops on a nil or disabled receiver.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]paddedCounter
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// NewMetrics builds a counter set. Disabled metrics record nothing.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Enabled reports whether the counters record anything.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Inc adds one to the identified counter.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Value returns the current value of the identified counter.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot copies every counter into a map.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}

	s := MetricsSnapshot{Counters: make(map[MetricID]uint64, int(metricIDCount))}
	for id := MetricID(0); id < metricIDCount; id++ {
		s.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	return s
}
