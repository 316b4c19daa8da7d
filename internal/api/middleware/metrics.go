package middleware

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Metrics counts requests per method+path and per response class. It backs
// the /metrics route of the metrics-enabled deployment revision and is
// mounted only when that revision flag is on.
type Metrics struct {
	mu       sync.Mutex
	requests map[string]*uint64
	statuses [6]uint64 // index by status/100
}

// NewMetrics creates an empty Metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{requests: make(map[string]*uint64)}
}

// statusRecorder captures the status code written by the downstream handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Collect is the middleware that records one count per request.
func (m *Metrics) Collect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		atomic.AddUint64(m.counter(r.Method+" "+r.URL.Path), 1)
		if class := rec.status / 100; class >= 1 && class <= 5 {
			atomic.AddUint64(&m.statuses[class], 1)
		}
	})
}

func (m *Metrics) counter(key string) *uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.requests[key]
	if !ok {
		c = new(uint64)
		m.requests[key] = c
	}
	return c
}

// Handler serves the plaintext metrics snapshot.
func (m *Metrics) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, m.Snapshot())
	}
}

// Snapshot renders the counters as sorted "name value" lines.
func (m *Metrics) Snapshot() string {
	m.mu.Lock()
	keys := make([]string, 0, len(m.requests))
	for k := range m.requests {
		keys = append(keys, k)
	}
	m.mu.Unlock()
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "requests{route=%q} %d\n", k, atomic.LoadUint64(m.counter(k)))
	}
	for class := 1; class <= 5; class++ {
		if n := atomic.LoadUint64(&m.statuses[class]); n > 0 {
			fmt.Fprintf(&b, "responses{class=\"%dxx\"} %d\n", class, n)
		}
	}
	return b.String()
}
