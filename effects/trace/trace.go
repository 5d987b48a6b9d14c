// Package trace records the decisions the dispatch resolver takes for each
// notification that reaches a declared event type.
package trace

import (
	"time"

	effectmodel "github.com/on-the-ground/effect_ive_store/effects/model"
)

// Outcome is the terminal state of one notification for one owner.
type Outcome string

const (
	// OutcomeSkipped: the descriptor resolves no callable for this stage and pass.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeGated: the property matcher rejected the payload.
	OutcomeGated Outcome = "gated"
	// OutcomeFired: the handler ran and returned nil.
	OutcomeFired Outcome = "fired"
	// OutcomeFailed: the handler ran and returned an error.
	OutcomeFailed Outcome = "failed"
)

type Entry struct {
	Scope    string
	Owner    string
	Category effectmodel.Category
	Type     string
	Stage    effectmodel.Stage
	Prepend  bool
	Outcome  Outcome
	At       time.Time
	// Span covers handler execution; zero unless the handler ran.
	Span effectmodel.TimeSpan
	Err  error
}

type Tracer interface {
	Trace(Entry)
}

// Multi fans an entry out to every tracer in order.
type Multi []Tracer

func (m Multi) Trace(e Entry) {
	for _, t := range m {
		t.Trace(e)
	}
}

type nop struct{}

func (nop) Trace(Entry) {}

// Nop discards every entry.
var Nop Tracer = nop{}
