package trace

import (
	"sync"

	"github.com/on-the-ground/effect_ive_store/effects/config"
	"github.com/on-the-ground/effect_ive_store/shared/orderedbuffer"
	"go.uber.org/zap"
)

// Recorder keeps the most recent sampled entries, oldest first.
type Recorder struct {
	mu      sync.Mutex
	sampler Sampler
	history *orderedbuffer.OrderedBoundedBuffer[Entry]
	evicted int
}

func NewRecorder(cfg config.TraceConfig) *Recorder {
	cfg = config.NewTraceConfig(cfg.Enabled, cfg.Capacity, cfg.SampleRate)
	return &Recorder{
		sampler: NewSampler(cfg.SampleRate),
		history: orderedbuffer.NewOrderedBoundedBuffer(cfg.Capacity, func(a, b Entry) int {
			return a.At.Compare(b.At)
		}),
	}
}

func (r *Recorder) Trace(e Entry) {
	if !r.sampler.Sample(e.Type) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.history.Insert(e); ok {
		r.evicted++
	}
}

func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history.Items()
}

// Count returns how many retained entries have the given outcome.
func (r *Recorder) Count(outcome Outcome) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.history.Items() {
		if e.Outcome == outcome {
			n++
		}
	}
	return n
}

// Evicted returns how many entries fell out of the history.
func (r *Recorder) Evicted() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.evicted
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history.Reset()
	r.evicted = 0
}

// LogTracer writes every entry to a zap logger at debug level.
type LogTracer struct {
	Logger *zap.Logger
}

func (l LogTracer) Trace(e Entry) {
	if l.Logger == nil {
		return
	}
	fields := []zap.Field{
		zap.String("scope", e.Scope),
		zap.String("owner", e.Owner),
		zap.String("category", string(e.Category)),
		zap.String("type", e.Type),
		zap.Bool("prepend", e.Prepend),
		zap.String("outcome", string(e.Outcome)),
	}
	if e.Stage != "" {
		fields = append(fields, zap.String("stage", string(e.Stage)))
	}
	if e.Outcome == OutcomeFired || e.Outcome == OutcomeFailed {
		fields = append(fields, zap.Duration("took", e.Span.Duration()))
	}
	if e.Err != nil {
		fields = append(fields, zap.Error(e.Err))
	}
	l.Logger.Debug("effect dispatch", fields...)
}
