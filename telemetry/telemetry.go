// Package telemetry provides timing collection for the render pipeline.
//
// Collectors travel through context so instrumentation does not change
// function signatures: commands that want timings install a collector, and
// code along the way records stages against whatever collector is present.
// Without one, recording is a no-op.
//
// Example usage:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	stop := telemetry.FromContext(ctx).Start("decode")
//	// ... work ...
//	stop()
//
//	collector.Report(os.Stderr)
package telemetry

import (
	"context"
	"io"
	"sync"
	"time"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{}

var collectorKey = contextKey{}

// Collector records named operation timings.
type Collector interface {
	// Start begins timing the named stage and returns a function that
	// stops it.
	Start(name string) func()

	// Report writes the collected timings to a writer.
	Report(w io.Writer)
}

// WithCollector returns a context carrying the collector.
func WithCollector(ctx context.Context, c Collector) context.Context {
	return context.WithValue(ctx, collectorKey, c)
}

// FromContext extracts the collector from the context, or a no-op collector
// when none is present.
func FromContext(ctx context.Context) Collector {
	if c, ok := ctx.Value(collectorKey).(Collector); ok {
		return c
	}
	return noopCollector{}
}

// stage is one completed timing entry.
type stage struct {
	name     string
	duration time.Duration
}

// TimingCollector records stages in completion order.
type TimingCollector struct {
	mu     sync.Mutex
	stages []stage
}

// NewTimingCollector creates an empty timing collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start begins timing a stage. The returned function records the entry; it
// must be called exactly once.
func (c *TimingCollector) Start(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)

		c.mu.Lock()
		defer c.mu.Unlock()
		c.stages = append(c.stages, stage{name: name, duration: d})
	}
}

// Report writes one line per recorded stage plus a total.
func (c *TimingCollector) Report(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	formatReport(w, c.stages)
}

// Stages returns the recorded stage names in completion order.
func (c *TimingCollector) Stages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, len(c.stages))
	for i, s := range c.stages {
		names[i] = s.name
	}
	return names
}

// noopCollector discards everything.
type noopCollector struct{}

func (noopCollector) Start(string) func() { return func() {} }
func (noopCollector) Report(io.Writer)    {}
