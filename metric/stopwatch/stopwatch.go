// Package stopwatch measures the wall time of named stages of a
// pipeline. It is much simpler than tracing: measurements live only in
// runtime and are read back as zap fields or exported to a prometheus
// histogram.
package stopwatch

import (
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const stageLabel = "stage"

type Metric interface {
	Stop()
}

type stage struct {
	sw    *Stopwatch
	name  string
	start time.Time
}

func (s *stage) Stop() {
	s.sw.totals[s.name] += time.Since(s.start)
	s.sw.counts[s.name]++
}

// Stopwatch accumulates per-stage durations. Not safe for concurrent
// use; the build pipeline is single-threaded.
type Stopwatch struct {
	totals map[string]time.Duration
	counts map[string]uint32
}

func New() *Stopwatch {
	sw := &Stopwatch{}
	sw.Reset()
	return sw
}

func (s *Stopwatch) Reset() {
	s.totals = map[string]time.Duration{}
	s.counts = map[string]uint32{}
}

// Start begins measuring a stage. Starting the same name again adds to
// its total.
func (s *Stopwatch) Start(name string) Metric {
	return &stage{sw: s, name: name, start: time.Now()}
}

func (s *Stopwatch) GetValues() map[string]time.Duration {
	return s.totals
}

func (s *Stopwatch) GetCounts() map[string]uint32 {
	return s.counts
}

// Fields renders the accumulated stage durations as zap fields, in
// stable name order.
func (s *Stopwatch) Fields() []zap.Field {
	stages := make([]string, 0, len(s.totals))
	for name := range s.totals {
		stages = append(stages, name)
	}
	sort.Strings(stages)

	fields := make([]zap.Field, 0, len(stages))
	for _, name := range stages {
		fields = append(fields, zap.Duration(name, s.totals[name]))
	}
	return fields
}

// Export observes every stage total on a histogram labeled by stage
// name and resets the stopwatch.
func (s *Stopwatch) Export(m *prometheus.HistogramVec) {
	for name, val := range s.totals {
		m.With(prometheus.Labels{stageLabel: name}).Observe(val.Seconds())
	}
	s.Reset()
}
