package host_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/on-the-ground/effect_ive_store/effects/descriptor"
	effectmodel "github.com/on-the-ground/effect_ive_store/effects/model"
	"github.com/on-the-ground/effect_ive_store/shared/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMount_RunsMixinsInOrder(t *testing.T) {
	fw := host.New()

	var order []string
	fw.Use(func(i *host.Instance) error {
		order = append(order, "first:"+i.Name())
		return nil
	})
	fw.Use(func(i *host.Instance) error {
		order = append(order, "second:"+i.Name())
		return nil
	})

	inst, err := fw.Mount(host.Options{Name: "card"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first:card", "second:card"}, order)
	assert.True(t, strings.HasPrefix(inst.ID(), "card#"))
}

func TestMount_UniqueIDs(t *testing.T) {
	fw := host.New()
	a, err := fw.Mount(host.Options{Name: "row"})
	require.NoError(t, err)
	b, err := fw.Mount(host.Options{Name: "row"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestMount_MixinFailureDestroys(t *testing.T) {
	fw := host.New()
	boom := errors.New("boom")

	destroyed := 0
	fw.Use(func(i *host.Instance) error {
		i.OnDestroy(func() { destroyed++ })
		return nil
	})
	fw.Use(func(*host.Instance) error { return boom })

	inst, err := fw.Mount(host.Options{Name: "broken"})
	assert.Nil(t, inst)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, destroyed)
}

func TestInstance_Attr(t *testing.T) {
	fw := host.New()
	inst, err := fw.Mount(host.Options{
		Name:  "item",
		Props: map[string]any{"id": 7, "hidden": false},
	})
	require.NoError(t, err)

	v, ok := inst.Attr("id")
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	v, ok = inst.Attr("hidden")
	assert.True(t, ok)
	assert.Equal(t, false, v)

	_, ok = inst.Attr("missing")
	assert.False(t, ok)
}

func TestInstance_Effects(t *testing.T) {
	tree := descriptor.Tree{
		effectmodel.Mutations: descriptor.Section{
			"SET_NAME": descriptor.Func(func(effectmodel.Owner, effectmodel.Event, any) error { return nil }),
		},
	}
	inst, err := host.New().Mount(host.Options{Name: "named", Effects: tree})
	require.NoError(t, err)
	assert.Len(t, inst.Effects(), 1)
}

func TestInstance_DestroyOnce(t *testing.T) {
	inst, err := host.New().Mount(host.Options{Name: "x"})
	require.NoError(t, err)

	var order []int
	inst.OnDestroy(func() { order = append(order, 1) })
	inst.OnDestroy(func() { order = append(order, 2) })

	inst.Destroy()
	inst.Destroy()
	assert.True(t, inst.Destroyed())
	assert.Equal(t, []int{1, 2}, order)

	inst.OnDestroy(func() { order = append(order, 3) })
	assert.Equal(t, []int{1, 2, 3}, order)
}
