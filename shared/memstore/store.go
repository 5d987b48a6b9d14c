// Package memstore is a small in-memory state container with named mutations,
// named actions and ordered subscriber streams for both.
package memstore

import (
	"errors"
	"fmt"
	"sync"

	effectmodel "github.com/on-the-ground/effect_ive_store/effects/model"
)

var (
	ErrUnknownMutation = errors.New("unknown mutation type")
	ErrUnknownAction   = errors.New("unknown action type")
)

// MutationFunc changes state synchronously.
type MutationFunc[S any] func(state *S, payload any) error

// ActionFunc may commit mutations and dispatch further actions through s.
type ActionFunc[S any] func(s *Store[S], payload any) error

// Store holds a single state value of type S.
//
// Notifications are delivered synchronously on the caller's goroutine and no
// lock is held while a listener runs, so listeners may commit and dispatch.
type Store[S any] struct {
	stateMu sync.RWMutex
	state   S

	mu        sync.Mutex
	mutations map[string]MutationFunc[S]
	actions   map[string]ActionFunc[S]
	actionSub []*subscription[effectmodel.ActionListener]
	mutSub    []*subscription[effectmodel.Listener]
}

type subscription[L any] struct {
	listener L
}

func New[S any](initial S) *Store[S] {
	return &Store[S]{
		state:     initial,
		mutations: map[string]MutationFunc[S]{},
		actions:   map[string]ActionFunc[S]{},
	}
}

// RegisterMutation binds fn to typ, replacing any previous binding.
func (s *Store[S]) RegisterMutation(typ string, fn MutationFunc[S]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutations[typ] = fn
}

// RegisterAction binds fn to typ, replacing any previous binding.
func (s *Store[S]) RegisterAction(typ string, fn ActionFunc[S]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions[typ] = fn
}

// State returns a copy of the current state.
func (s *Store[S]) State() S {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

// Commit applies the mutation typ and then notifies mutation subscribers.
// The first listener error stops delivery and is returned.
func (s *Store[S]) Commit(typ string, payload any) error {
	s.mu.Lock()
	fn, ok := s.mutations[typ]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMutation, typ)
	}

	s.stateMu.Lock()
	err := fn(&s.state, payload)
	s.stateMu.Unlock()
	if err != nil {
		return err
	}

	ev := effectmodel.Event{Type: typ, Payload: payload}
	for _, sub := range s.mutationSnapshot() {
		if err := sub.listener(ev, s.State()); err != nil {
			return err
		}
	}
	return nil
}

// Dispatch notifies the before listeners of action subscribers, runs the
// action, then notifies their after listeners. A failing action skips the
// after notification.
func (s *Store[S]) Dispatch(typ string, payload any) error {
	s.mu.Lock()
	fn, ok := s.actions[typ]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, typ)
	}

	ev := effectmodel.Event{Type: typ, Payload: payload}
	for _, sub := range s.actionSnapshot() {
		if sub.listener.Before == nil {
			continue
		}
		if err := sub.listener.Before(ev, s.State()); err != nil {
			return err
		}
	}

	if err := fn(s, payload); err != nil {
		return err
	}

	for _, sub := range s.actionSnapshot() {
		if sub.listener.After == nil {
			continue
		}
		if err := sub.listener.After(ev, s.State()); err != nil {
			return err
		}
	}
	return nil
}

// SubscribeToActions attaches l. With opts.Prepend it runs ahead of every
// listener attached so far.
func (s *Store[S]) SubscribeToActions(l effectmodel.ActionListener, opts effectmodel.SubscribeOptions) effectmodel.Disposer {
	sub := &subscription[effectmodel.ActionListener]{listener: l}
	s.mu.Lock()
	s.actionSub = insert(s.actionSub, sub, opts.Prepend)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.actionSub = remove(s.actionSub, sub)
			s.mu.Unlock()
		})
	}
}

// SubscribeToMutations attaches l. With opts.Prepend it runs ahead of every
// listener attached so far.
func (s *Store[S]) SubscribeToMutations(l effectmodel.Listener, opts effectmodel.SubscribeOptions) effectmodel.Disposer {
	sub := &subscription[effectmodel.Listener]{listener: l}
	s.mu.Lock()
	s.mutSub = insert(s.mutSub, sub, opts.Prepend)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.mutSub = remove(s.mutSub, sub)
			s.mu.Unlock()
		})
	}
}

// Subscribers reports how many action and mutation listeners are attached.
func (s *Store[S]) Subscribers() (actions, mutations int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.actionSub), len(s.mutSub)
}

func (s *Store[S]) actionSnapshot() []*subscription[effectmodel.ActionListener] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*subscription[effectmodel.ActionListener](nil), s.actionSub...)
}

func (s *Store[S]) mutationSnapshot() []*subscription[effectmodel.Listener] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*subscription[effectmodel.Listener](nil), s.mutSub...)
}

func insert[L any](subs []*subscription[L], sub *subscription[L], prepend bool) []*subscription[L] {
	if prepend {
		return append([]*subscription[L]{sub}, subs...)
	}
	return append(subs, sub)
}

func remove[L any](subs []*subscription[L], sub *subscription[L]) []*subscription[L] {
	for i, cur := range subs {
		if cur == sub {
			return append(subs[:i:i], subs[i+1:]...)
		}
	}
	return subs
}
