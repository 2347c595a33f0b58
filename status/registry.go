package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Well-known metric keys written by the frame driver
const (
	KeyFrames    = "frames"
	KeySteps     = "steps"
	KeyKills     = "kills"
	KeyLivesLost = "lives_lost"
	KeyRounds    = "rounds"
	KeyLastDelta = "last_dt"
	KeyState     = "state"
	KeySession   = "session"
	KeyPaused    = "paused"
)

// Registry is the central metrics facade
// The driver caches pointers at construction; the frame loop writes directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Attrs flattens every metric into alternating key/value pairs, grouped by type
// and sorted by key, suitable for a structured log call
func (r *Registry) Attrs() []any {
	out := make([]any, 0, 2*r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) { out = append(out, k, v.Load()) })
	r.Ints.Range(func(k string, v *atomic.Int64) { out = append(out, k, v.Load()) })
	r.Floats.Range(func(k string, v *AtomicFloat) { out = append(out, k, v.Get()) })
	r.Strings.Range(func(k string, v *AtomicString) { out = append(out, k, v.Load()) })
	return out
}

// String renders the registry as space separated key=value pairs
func (r *Registry) String() string {
	attrs := r.Attrs()
	parts := make([]string, 0, len(attrs)/2)
	for i := 0; i+1 < len(attrs); i += 2 {
		parts = append(parts, fmt.Sprintf("%v=%v", attrs[i], attrs[i+1]))
	}
	return strings.Join(parts, " ")
}
