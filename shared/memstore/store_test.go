package memstore_test

import (
	"errors"
	"testing"

	effectmodel "github.com/on-the-ground/effect_ive_store/effects/model"
	"github.com/on-the-ground/effect_ive_store/shared/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	N    int
	Name string
}

func newCounterStore() *memstore.Store[counter] {
	s := memstore.New(counter{})
	s.RegisterMutation("INC", func(st *counter, _ any) error {
		st.N++
		return nil
	})
	s.RegisterMutation("SET_NAME", func(st *counter, payload any) error {
		st.Name = payload.(string)
		return nil
	})
	s.RegisterAction("BUMP", func(s *memstore.Store[counter], _ any) error {
		return s.Commit("INC", nil)
	})
	return s
}

func TestCommit_AppliesThenNotifies(t *testing.T) {
	s := newCounterStore()

	var seen []counter
	s.SubscribeToMutations(func(ev effectmodel.Event, state any) error {
		assert.Equal(t, "SET_NAME", ev.Type)
		seen = append(seen, state.(counter))
		return nil
	}, effectmodel.SubscribeOptions{})

	require.NoError(t, s.Commit("SET_NAME", "Ann"))
	require.Len(t, seen, 1)
	assert.Equal(t, "Ann", seen[0].Name)
	assert.Equal(t, "Ann", s.State().Name)
}

func TestCommit_UnknownType(t *testing.T) {
	s := newCounterStore()
	err := s.Commit("NOPE", nil)
	assert.ErrorIs(t, err, memstore.ErrUnknownMutation)

	err = s.Dispatch("NOPE", nil)
	assert.ErrorIs(t, err, memstore.ErrUnknownAction)
}

func TestDispatch_BeforeActionAfter(t *testing.T) {
	s := newCounterStore()

	var order []string
	s.SubscribeToActions(effectmodel.ActionListener{
		Before: func(ev effectmodel.Event, state any) error {
			order = append(order, "before")
			assert.Equal(t, 0, state.(counter).N)
			return nil
		},
		After: func(ev effectmodel.Event, state any) error {
			order = append(order, "after")
			assert.Equal(t, 1, state.(counter).N)
			return nil
		},
	}, effectmodel.SubscribeOptions{})
	s.SubscribeToMutations(func(ev effectmodel.Event, _ any) error {
		order = append(order, "mutation:"+ev.Type)
		return nil
	}, effectmodel.SubscribeOptions{})

	require.NoError(t, s.Dispatch("BUMP", nil))
	assert.Equal(t, []string{"before", "mutation:INC", "after"}, order)
}

func TestSubscribe_PrependRunsFirst(t *testing.T) {
	s := newCounterStore()

	var order []string
	listener := func(name string) effectmodel.Listener {
		return func(effectmodel.Event, any) error {
			order = append(order, name)
			return nil
		}
	}
	s.SubscribeToMutations(listener("normal-1"), effectmodel.SubscribeOptions{})
	s.SubscribeToMutations(listener("prepend"), effectmodel.SubscribeOptions{Prepend: true})
	s.SubscribeToMutations(listener("normal-2"), effectmodel.SubscribeOptions{})

	require.NoError(t, s.Commit("INC", nil))
	assert.Equal(t, []string{"prepend", "normal-1", "normal-2"}, order)
}

func TestDisposer_IsIdempotent(t *testing.T) {
	s := newCounterStore()

	calls := 0
	dispose := s.SubscribeToMutations(func(effectmodel.Event, any) error {
		calls++
		return nil
	}, effectmodel.SubscribeOptions{})
	other := s.SubscribeToActions(effectmodel.ActionListener{}, effectmodel.SubscribeOptions{})

	dispose()
	dispose()
	actions, mutations := s.Subscribers()
	assert.Equal(t, 1, actions)
	assert.Equal(t, 0, mutations)

	require.NoError(t, s.Commit("INC", nil))
	assert.Zero(t, calls)

	other()
	actions, _ = s.Subscribers()
	assert.Zero(t, actions)
}

func TestListenerError_StopsDelivery(t *testing.T) {
	s := newCounterStore()
	boom := errors.New("boom")

	after := 0
	s.SubscribeToActions(effectmodel.ActionListener{
		Before: func(effectmodel.Event, any) error { return boom },
	}, effectmodel.SubscribeOptions{})
	s.SubscribeToActions(effectmodel.ActionListener{
		After: func(effectmodel.Event, any) error {
			after++
			return nil
		},
	}, effectmodel.SubscribeOptions{})

	err := s.Dispatch("BUMP", nil)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, s.State().N)
	assert.Zero(t, after)
}

func TestListener_CanReenter(t *testing.T) {
	s := newCounterStore()

	s.SubscribeToMutations(func(ev effectmodel.Event, state any) error {
		if ev.Type == "SET_NAME" {
			return s.Commit("INC", nil)
		}
		return nil
	}, effectmodel.SubscribeOptions{})

	require.NoError(t, s.Commit("SET_NAME", "Bo"))
	assert.Equal(t, 1, s.State().N)
}

func TestDisposeDuringDelivery_SkipsAfter(t *testing.T) {
	s := newCounterStore()

	after := 0
	var dispose effectmodel.Disposer
	dispose = s.SubscribeToActions(effectmodel.ActionListener{
		Before: func(effectmodel.Event, any) error {
			dispose()
			return nil
		},
		After: func(effectmodel.Event, any) error {
			after++
			return nil
		},
	}, effectmodel.SubscribeOptions{})

	require.NoError(t, s.Dispatch("BUMP", nil))
	assert.Zero(t, after)
}
