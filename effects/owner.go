package effects

import (
	"github.com/on-the-ground/effect_ive_store/effects/descriptor"
	effectmodel "github.com/on-the-ground/effect_ive_store/effects/model"
)

type (
	Tree    = descriptor.Tree
	Section = descriptor.Section
	Func    = descriptor.Func
	Simple  = descriptor.Simple
	Staged  = descriptor.Staged
	Owner   = effectmodel.Owner
	Event   = effectmodel.Event
	Attrs   = effectmodel.Attrs
)

const (
	Actions   = effectmodel.Actions
	Mutations = effectmodel.Mutations
)

// Lifecycle is a component instance as seen by the registry: an owner with a
// destruction hook.
type Lifecycle interface {
	effectmodel.Owner
	// OnDestroy registers hook to run when the instance is torn down.
	OnDestroy(hook func())
}

// Component is a Lifecycle that declares its own effects.
type Component interface {
	Lifecycle
	// Effects returns the instance's declarations; nil when it has none.
	Effects() Tree
}

// Global is a registrant that lives as long as the process.
type Global struct {
	Name    string
	Attrs   Attrs
	Effects Tree
}

func (g Global) ID() string {
	return g.Name
}

func (g Global) Attr(name string) (any, bool) {
	return g.Attrs.Attr(name)
}
