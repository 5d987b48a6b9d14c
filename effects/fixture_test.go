package effects_test

import (
	"github.com/on-the-ground/effect_ive_store/effects"
	effectmodel "github.com/on-the-ground/effect_ive_store/effects/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// testComponent is a hand-driven Lifecycle for registry tests that do not
// need a host.
type testComponent struct {
	id      string
	attrs   effects.Attrs
	effects effects.Tree
	hooks   []func()
}

func (c *testComponent) ID() string                   { return c.id }
func (c *testComponent) Attr(name string) (any, bool) { return c.attrs.Attr(name) }
func (c *testComponent) Effects() effects.Tree        { return c.effects }
func (c *testComponent) OnDestroy(hook func())        { c.hooks = append(c.hooks, hook) }

func (c *testComponent) destroy() {
	for _, hook := range c.hooks {
		hook()
	}
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

func noop(effectmodel.Owner, effectmodel.Event, any) error { return nil }
