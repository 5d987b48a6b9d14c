package effects_test

import (
	"testing"

	"github.com/on-the-ground/effect_ive_store/effects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttrOf(t *testing.T) {
	owner := effects.Global{Name: "g", Attrs: effects.Attrs{"id": 7, "name": "row"}}

	id, ok := effects.AttrOf[int](owner, "id")
	assert.True(t, ok)
	assert.Equal(t, 7, id)

	_, ok = effects.AttrOf[string](owner, "id")
	assert.False(t, ok)

	_, ok = effects.AttrOf[int](owner, "missing")
	assert.False(t, ok)
}

func TestStateOf(t *testing.T) {
	type cart struct{ Items int }

	got, err := effects.StateOf[cart](cart{Items: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Items)

	_, err = effects.StateOf[cart]("not a cart")
	assert.Error(t, err)

	assert.Equal(t, 3, effects.MustStateOf[cart](cart{Items: 3}).Items)
	assert.Panics(t, func() { effects.MustStateOf[cart](nil) })
}
