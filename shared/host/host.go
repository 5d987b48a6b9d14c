// Package host mounts component instances and runs their creation and
// destruction hooks.
package host

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/on-the-ground/effect_ive_store/effects/descriptor"
)

// Mixin runs once for every instance right after it is created.
type Mixin func(*Instance) error

// Options describes a component to mount.
type Options struct {
	Name    string
	Props   map[string]any
	Effects descriptor.Tree
}

type Framework struct {
	mu     sync.Mutex
	mixins []Mixin
}

func New() *Framework {
	return &Framework{}
}

// Use installs a creation mixin for every instance mounted afterwards.
func (f *Framework) Use(m Mixin) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mixins = append(f.mixins, m)
}

// Mount creates an instance and runs every mixin on it in installation order.
// When a mixin fails the instance is destroyed and the error returned.
func (f *Framework) Mount(opts Options) (*Instance, error) {
	f.mu.Lock()
	mixins := append([]Mixin(nil), f.mixins...)
	f.mu.Unlock()

	inst := &Instance{
		id:      fmt.Sprintf("%s#%s", opts.Name, uuid.New().String()),
		name:    opts.Name,
		props:   opts.Props,
		effects: opts.Effects,
	}
	for _, m := range mixins {
		if err := m(inst); err != nil {
			inst.Destroy()
			return nil, fmt.Errorf("mount %s: %w", opts.Name, err)
		}
	}
	return inst, nil
}

// Instance is a mounted component.
type Instance struct {
	id      string
	name    string
	props   map[string]any
	effects descriptor.Tree

	mu        sync.Mutex
	hooks     []func()
	destroyed bool
}

func (i *Instance) ID() string {
	return i.id
}

func (i *Instance) Name() string {
	return i.name
}

// Attr looks up a prop. A prop set to a zero value is still present.
func (i *Instance) Attr(name string) (any, bool) {
	v, ok := i.props[name]
	return v, ok
}

func (i *Instance) Effects() descriptor.Tree {
	return i.effects
}

// OnDestroy registers hook to run on Destroy. Hooks registered after the
// instance was destroyed run immediately.
func (i *Instance) OnDestroy(hook func()) {
	i.mu.Lock()
	if i.destroyed {
		i.mu.Unlock()
		hook()
		return
	}
	i.hooks = append(i.hooks, hook)
	i.mu.Unlock()
}

// Destroy runs the destruction hooks in registration order. Only the first
// call has any effect.
func (i *Instance) Destroy() {
	i.mu.Lock()
	if i.destroyed {
		i.mu.Unlock()
		return
	}
	i.destroyed = true
	hooks := i.hooks
	i.hooks = nil
	i.mu.Unlock()

	for _, hook := range hooks {
		hook()
	}
}

func (i *Instance) Destroyed() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.destroyed
}
