package effects

import (
	"sync/atomic"

	"github.com/google/uuid"
	effectmodel "github.com/on-the-ground/effect_ive_store/effects/model"
)

// Scope holds the subscriptions one owner attached to the container.
//
// A component scope is closed by its owner's destruction hook; a global
// scope is never closed.
type Scope struct {
	ID        string
	owner     effectmodel.Owner
	global    bool
	disposers []effectmodel.Disposer
	closed    atomic.Bool
	onClose   func(*Scope)
}

func newScope(owner effectmodel.Owner, global bool, onClose func(*Scope)) *Scope {
	return &Scope{
		ID:      uuid.New().String(),
		owner:   owner,
		global:  global,
		onClose: onClose,
	}
}

func (s *Scope) add(disposers ...effectmodel.Disposer) {
	s.disposers = append(s.disposers, disposers...)
}

// Close disposes every subscription exactly once. The scope is marked closed
// before any disposer runs, so a notification already in flight cannot fire.
// Calling Close again, or on a global scope, does nothing.
func (s *Scope) Close() {
	if s.global || !s.closed.CompareAndSwap(false, true) {
		return
	}
	for _, dispose := range s.disposers {
		if dispose != nil {
			dispose()
		}
	}
	if s.onClose != nil {
		s.onClose(s)
	}
}

func (s *Scope) Closed() bool {
	return s.closed.Load()
}

func (s *Scope) alive() bool {
	return !s.closed.Load()
}

func (s *Scope) Owner() effectmodel.Owner {
	return s.owner
}

func (s *Scope) Global() bool {
	return s.global
}

// Subscriptions returns how many listeners the scope attached.
func (s *Scope) Subscriptions() int {
	return len(s.disposers)
}
