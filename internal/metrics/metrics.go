package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Requests aggregates request counters for the HTTP server.
type Requests struct {
	Total         Counter
	ClientErrors  Counter
	ServerErrors  Counter
	LatencyMillis Counter
}

// Observe records a finished request by its status code and duration.
func (m *Requests) Observe(status int, elapsed time.Duration) {
	m.Total.Inc()
	m.LatencyMillis.Add(uint64(elapsed.Milliseconds()))
	switch {
	case status >= 500:
		m.ServerErrors.Inc()
	case status >= 400:
		m.ClientErrors.Inc()
	}
}

// Snapshot returns the current counter values.
func (m *Requests) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"total":            m.Total.Load(),
		"client_errors":    m.ClientErrors.Load(),
		"server_errors":    m.ServerErrors.Load(),
		"latency_ms_total": m.LatencyMillis.Load(),
	}
}
