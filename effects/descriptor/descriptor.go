package descriptor

import (
	"fmt"

	effectmodel "github.com/on-the-ground/effect_ive_store/effects/model"
)

// Shape records which handler variant a descriptor was normalized from.
type Shape int

const (
	ShapeFunc Shape = iota
	ShapeSimple
	ShapeStaged
)

func (s Shape) String() string {
	switch s {
	case ShapeFunc:
		return "func"
	case ShapeSimple:
		return "simple"
	case ShapeStaged:
		return "staged"
	default:
		return "unknown"
	}
}

// Descriptor is the uniform view of a registered handler.
type Descriptor struct {
	Shape   Shape
	Prepend bool
	Handle  Func
	Before  Func
	After   Func
	Match   []string
}

// Normalize resolves a handler shape into a Descriptor. A nil handler
// yields a descriptor that never resolves a callable.
func Normalize(h Handler) Descriptor {
	if h == nil {
		return Descriptor{Shape: ShapeSimple}
	}
	return h.normalize()
}

// Resolve returns the callable for one notification slot, or nil when the
// slot is empty. stage is ignored for mutations.
func (d Descriptor) Resolve(category effectmodel.Category, stage effectmodel.Stage, prepend bool) Func {
	if d.Prepend != prepend {
		return nil
	}

	switch d.Shape {
	case ShapeFunc, ShapeSimple:
		if d.Prepend {
			return nil
		}
		if category == effectmodel.Mutations || stage == effectmodel.StageBefore {
			return d.Handle
		}
		return nil

	case ShapeStaged:
		if category == effectmodel.Mutations {
			if d.After != nil {
				return d.After
			}
			return d.Before
		}
		switch stage {
		case effectmodel.StageBefore:
			return d.Before
		case effectmodel.StageAfter:
			return d.After
		}
		return nil

	default:
		// Shapes are produced only by normalize; anything else is a bug.
		panic(fmt.Sprintf("unknown descriptor shape: %d", d.Shape))
	}
}

// Lint lists registrations that are accepted but can never fire as written.
func (d Descriptor) Lint(category effectmodel.Category) []string {
	var problems []string
	switch d.Shape {
	case ShapeFunc, ShapeSimple:
		if d.Handle == nil {
			problems = append(problems, "handler has no callable")
		}
		if d.Prepend {
			problems = append(problems, "prepend requires a staged handler (before/after); this handler never runs")
		}
	case ShapeStaged:
		if d.Before == nil && d.After == nil {
			problems = append(problems, "staged handler has neither before nor after")
		}
		if category == effectmodel.Mutations && d.Before != nil && d.After != nil {
			problems = append(problems, "mutations are observed once; before is ignored in favor of after")
		}
	}
	return problems
}
