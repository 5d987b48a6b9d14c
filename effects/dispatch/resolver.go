package dispatch

import (
	"time"

	"github.com/on-the-ground/effect_ive_store/effects/descriptor"
	"github.com/on-the-ground/effect_ive_store/effects/log"
	"github.com/on-the-ground/effect_ive_store/effects/match"
	effectmodel "github.com/on-the-ground/effect_ive_store/effects/model"
	"github.com/on-the-ground/effect_ive_store/effects/trace"
	"go.uber.org/zap"
)

// Resolver dispatches notifications of one category to one owner's table.
// It keeps no state between notifications.
type Resolver struct {
	owner  effectmodel.Owner
	table  descriptor.Table
	diag   log.Diagnostics
	tracer trace.Tracer
	scope  string
	alive  func() bool
}

type Option func(*Resolver)

// WithDiagnostics sets where match failures are reported.
func WithDiagnostics(diag log.Diagnostics) Option {
	return func(r *Resolver) {
		r.diag = diag
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(r *Resolver) {
		if t != nil {
			r.tracer = t
		}
	}
}

// WithScope tags trace entries with the owning scope and stops dispatch as
// soon as alive reports false.
func WithScope(id string, alive func() bool) Option {
	return func(r *Resolver) {
		r.scope = id
		if alive != nil {
			r.alive = alive
		}
	}
}

func New(owner effectmodel.Owner, table descriptor.Table, opts ...Option) *Resolver {
	r := &Resolver{
		owner:  owner,
		table:  table,
		diag:   log.NewDiagnostics(nil, log.LogWarn),
		tracer: trace.Nop,
		alive:  func() bool { return true },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) Category() effectmodel.Category {
	return r.table.Category
}

// ActionListener returns the listener pair for one action pass.
func (r *Resolver) ActionListener(prepend bool) effectmodel.ActionListener {
	return effectmodel.ActionListener{
		Before: func(ev effectmodel.Event, state any) error {
			return r.Dispatch(effectmodel.StageBefore, prepend, ev, state)
		},
		After: func(ev effectmodel.Event, state any) error {
			return r.Dispatch(effectmodel.StageAfter, prepend, ev, state)
		},
	}
}

// MutationListener returns the listener for one mutation pass.
func (r *Resolver) MutationListener(prepend bool) effectmodel.Listener {
	return func(ev effectmodel.Event, state any) error {
		return r.Dispatch("", prepend, ev, state)
	}
}

// Dispatch handles one notification. stage is empty for mutations.
func (r *Resolver) Dispatch(stage effectmodel.Stage, prepend bool, ev effectmodel.Event, state any) error {
	if !r.alive() {
		return nil
	}

	d, declared := r.table.Lookup(ev.Type)
	if !declared {
		return nil
	}

	entry := trace.Entry{
		Scope:    r.scope,
		Owner:    r.owner.ID(),
		Category: r.table.Category,
		Type:     ev.Type,
		Stage:    stage,
		Prepend:  prepend,
		At:       time.Now(),
	}

	fn := d.Resolve(r.table.Category, stage, prepend)
	if fn == nil {
		entry.Outcome = trace.OutcomeSkipped
		r.tracer.Trace(entry)
		return nil
	}

	if len(d.Match) > 0 {
		entries, _ := match.EntriesOf(ev.Payload)
		diag := r.diag.With(
			zap.String("category", string(r.table.Category)),
			zap.String("type", ev.Type),
		)
		if !match.Matches(diag, d.Match, r.owner, entries) {
			entry.Outcome = trace.OutcomeGated
			r.tracer.Trace(entry)
			return nil
		}
	}

	err := fn(r.owner, ev, state)

	entry.Span = effectmodel.Since(entry.At)
	entry.Outcome = trace.OutcomeFired
	if err != nil {
		entry.Outcome = trace.OutcomeFailed
		entry.Err = err
	}
	r.tracer.Trace(entry)
	return err
}
