package descriptor

import effectmodel "github.com/on-the-ground/effect_ive_store/effects/model"

// Func is an effect callable. It runs on behalf of owner with the triggering
// event and the container's current state. A returned error travels back to
// the container unmodified.
type Func func(owner effectmodel.Owner, ev effectmodel.Event, state any) error

// Handler is a sealed interface for the accepted handler shapes:
// Func, Simple and Staged.
type Handler interface {
	normalize() Descriptor
}

// Simple is the explicit form of a bare Func with optional match gating.
//
// Prepend is accepted but a Simple handler never runs in the prepend pass:
// it declares no stage the pass could be aligned with.
type Simple struct {
	Handle  Func
	Prepend bool
	Match   []string
}

// Staged assigns callables to the before and after notifications of an action.
// For mutations, which are observed once, the single assigned stage runs.
type Staged struct {
	Before  Func
	After   Func
	Prepend bool
	Match   []string
}

func (f Func) normalize() Descriptor {
	return Descriptor{Shape: ShapeFunc, Handle: f}
}

func (s Simple) normalize() Descriptor {
	return Descriptor{
		Shape:   ShapeSimple,
		Prepend: s.Prepend,
		Handle:  s.Handle,
		Match:   cloneProps(s.Match),
	}
}

func (s Staged) normalize() Descriptor {
	return Descriptor{
		Shape:   ShapeStaged,
		Prepend: s.Prepend,
		Before:  s.Before,
		After:   s.After,
		Match:   cloneProps(s.Match),
	}
}

func cloneProps(props []string) []string {
	if len(props) == 0 {
		return nil
	}
	return append([]string(nil), props...)
}
