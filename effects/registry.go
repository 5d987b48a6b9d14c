package effects

import (
	"fmt"
	"sync"

	"github.com/on-the-ground/effect_ive_store/effects/config"
	"github.com/on-the-ground/effect_ive_store/effects/descriptor"
	"github.com/on-the-ground/effect_ive_store/effects/dispatch"
	"github.com/on-the-ground/effect_ive_store/effects/log"
	effectmodel "github.com/on-the-ground/effect_ive_store/effects/model"
	"github.com/on-the-ground/effect_ive_store/effects/trace"
	"go.uber.org/zap"
)

// Registry binds owners' effect declarations to a container.
//
// Construct one per container at process start and hand it to whatever
// creates components. Registration is safe from multiple goroutines;
// dispatch follows the container's own delivery model.
type Registry struct {
	container Container
	logger    *zap.Logger
	level     log.LogLevel
	diag      log.Diagnostics
	tracers   []trace.Tracer
	tracer    trace.Tracer
	recorder  *trace.Recorder

	mu     sync.Mutex
	scopes []*Scope
}

type Option func(*Registry)

func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithDiagnosticLevel sets the level match failures are logged at.
func WithDiagnosticLevel(level log.LogLevel) Option {
	return func(r *Registry) {
		r.level = level
	}
}

// WithTracer adds t to the tracers every dispatch decision is reported to.
func WithTracer(t trace.Tracer) Option {
	return func(r *Registry) {
		if t != nil {
			r.tracers = append(r.tracers, t)
		}
	}
}

// WithRecorder traces into rec and exposes it through Registry.Recorder.
func WithRecorder(rec *trace.Recorder) Option {
	return func(r *Registry) {
		if rec != nil {
			r.recorder = rec
			r.tracers = append(r.tracers, rec)
		}
	}
}

func NewRegistry(container Container, opts ...Option) *Registry {
	r := &Registry{
		container: container,
		logger:    zap.NewNop(),
		level:     log.LogWarn,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.diag = log.NewDiagnostics(r.logger, r.level)
	switch len(r.tracers) {
	case 0:
		r.tracer = trace.Nop
	case 1:
		r.tracer = r.tracers[0]
	default:
		r.tracer = trace.Multi(r.tracers)
	}
	return r
}

// NewRegistryFromConfig builds the registry logger from cfg.Log and, when
// cfg.Trace is enabled, records and debug-logs every dispatch decision.
func NewRegistryFromConfig(container Container, cfg config.Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := log.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	level, err := log.ParseLevel(cfg.Log.Diagnostics)
	if err != nil {
		return nil, err
	}

	opts := []Option{WithLogger(logger), WithDiagnosticLevel(level)}
	if cfg.Trace.Enabled {
		opts = append(opts,
			WithTracer(trace.LogTracer{Logger: logger}),
			WithRecorder(trace.NewRecorder(cfg.Trace)),
		)
	}
	return NewRegistry(container, opts...), nil
}

func (r *Registry) Logger() *zap.Logger {
	return r.logger
}

// Recorder returns the trace recorder, or nil when tracing is not recorded.
func (r *Registry) Recorder() *trace.Recorder {
	return r.recorder
}

// RegisterComponentEffects attaches tree on behalf of a component and closes
// the resulting scope from the component's destruction hook.
//
// The tree is validated before anything is attached: an unrecognized
// category returns an error wrapping effectmodel.ErrUnrecognizedCategory.
func (r *Registry) RegisterComponentEffects(c Lifecycle, tree Tree) (*Scope, error) {
	tables, err := r.compile(c, tree)
	if err != nil {
		return nil, err
	}
	scope := r.attach(c, tables, false)
	c.OnDestroy(scope.Close)
	return scope, nil
}

// Created is the creation hook for components: it registers whatever the
// component declares and does nothing when it declares nothing.
func (r *Registry) Created(c Component) error {
	tree := c.Effects()
	if len(tree) == 0 {
		return nil
	}
	_, err := r.RegisterComponentEffects(c, tree)
	return err
}

// RegisterGlobalEffects attaches the declarations of every global for the
// lifetime of the process. All trees are validated before any is attached.
func (r *Registry) RegisterGlobalEffects(globals ...Global) error {
	compiled := make([]map[effectmodel.Category]descriptor.Table, len(globals))
	for i, g := range globals {
		tables, err := r.compile(g, g.Effects)
		if err != nil {
			return err
		}
		compiled[i] = tables
	}
	for i, g := range globals {
		r.attach(g, compiled[i], true)
	}
	return nil
}

// MustRegisterGlobalEffects is the panic-on-failure variant of RegisterGlobalEffects.
func (r *Registry) MustRegisterGlobalEffects(globals ...Global) {
	if err := r.RegisterGlobalEffects(globals...); err != nil {
		panic(err)
	}
}

// Scopes lists the live scopes in registration order.
func (r *Registry) Scopes() []*Scope {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Scope(nil), r.scopes...)
}

func (r *Registry) compile(owner effectmodel.Owner, tree Tree) (map[effectmodel.Category]descriptor.Table, error) {
	tables, err := descriptor.Compile(tree)
	if err != nil {
		return nil, fmt.Errorf("register effects of %q: %w", owner.ID(), err)
	}
	for _, problem := range descriptor.Lint(tables) {
		r.logger.Warn("effect registration can never fire",
			zap.String("owner", owner.ID()),
			zap.String("problem", problem),
		)
	}
	return tables, nil
}

// attach subscribes two listeners per declared category: a normal pass and
// a prepend pass.
func (r *Registry) attach(owner effectmodel.Owner, tables map[effectmodel.Category]descriptor.Table, global bool) *Scope {
	scope := newScope(owner, global, r.untrack)

	for _, category := range effectmodel.Categories {
		table, ok := tables[category]
		if !ok {
			continue
		}
		res := dispatch.New(owner, table,
			dispatch.WithDiagnostics(r.diag),
			dispatch.WithTracer(r.tracer),
			dispatch.WithScope(scope.ID, scope.alive),
		)

		switch category {
		case effectmodel.Actions:
			scope.add(
				r.container.SubscribeToActions(res.ActionListener(false), effectmodel.SubscribeOptions{}),
				r.container.SubscribeToActions(res.ActionListener(true), effectmodel.SubscribeOptions{Prepend: true}),
			)
		case effectmodel.Mutations:
			scope.add(
				r.container.SubscribeToMutations(res.MutationListener(false), effectmodel.SubscribeOptions{}),
				r.container.SubscribeToMutations(res.MutationListener(true), effectmodel.SubscribeOptions{Prepend: true}),
			)
		default:
			panic(fmt.Sprintf("exhaustive match fallback, category: %s", category))
		}
	}

	r.mu.Lock()
	r.scopes = append(r.scopes, scope)
	r.mu.Unlock()

	r.logger.Debug("registered effects",
		zap.String("scope", scope.ID),
		zap.String("owner", owner.ID()),
		zap.Bool("global", global),
		zap.Int("subscriptions", scope.Subscriptions()),
	)
	return scope
}

func (r *Registry) untrack(scope *Scope) {
	r.mu.Lock()
	for i, s := range r.scopes {
		if s == scope {
			r.scopes = append(r.scopes[:i], r.scopes[i+1:]...)
			break
		}
	}
	r.mu.Unlock()

	r.logger.Debug("closed effect scope",
		zap.String("scope", scope.ID),
		zap.String("owner", scope.owner.ID()),
	)
}
