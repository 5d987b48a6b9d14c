package descriptor_test

import (
	"testing"

	"github.com/on-the-ground/effect_ive_store/effects/descriptor"
	effectmodel "github.com/on-the-ground/effect_ive_store/effects/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is an Owner that captures the name written by handlers built with tag.
type recorder struct{ tag string }

func (r *recorder) ID() string              { return "recorder" }
func (r *recorder) Attr(string) (any, bool) { return nil, false }

func tag(name string) descriptor.Func {
	return func(o effectmodel.Owner, _ effectmodel.Event, _ any) error {
		o.(*recorder).tag = name
		return nil
	}
}

type slot struct {
	category effectmodel.Category
	stage    effectmodel.Stage
	prepend  bool
}

var (
	actionBeforeNormal  = slot{effectmodel.Actions, effectmodel.StageBefore, false}
	actionAfterNormal   = slot{effectmodel.Actions, effectmodel.StageAfter, false}
	actionBeforePrepend = slot{effectmodel.Actions, effectmodel.StageBefore, true}
	actionAfterPrepend  = slot{effectmodel.Actions, effectmodel.StageAfter, true}
	mutationNormal      = slot{effectmodel.Mutations, "", false}
	mutationPrepend     = slot{effectmodel.Mutations, "", true}

	allSlots = []slot{
		actionBeforeNormal, actionAfterNormal,
		actionBeforePrepend, actionAfterPrepend,
		mutationNormal, mutationPrepend,
	}
)

// resolved maps every slot to the tag of the callable it resolves, "" for none.
func resolved(t *testing.T, h descriptor.Handler) map[slot]string {
	t.Helper()
	d := descriptor.Normalize(h)
	out := make(map[slot]string, len(allSlots))
	for _, s := range allSlots {
		fn := d.Resolve(s.category, s.stage, s.prepend)
		if fn == nil {
			out[s] = ""
			continue
		}
		var rec recorder
		require.NoError(t, fn(&rec, effectmodel.Event{}, nil))
		out[s] = rec.tag
	}
	return out
}

func TestNormalize_Shapes(t *testing.T) {
	d := descriptor.Normalize(descriptor.Func(tag("f")))
	assert.Equal(t, descriptor.ShapeFunc, d.Shape)
	assert.False(t, d.Prepend)
	assert.NotNil(t, d.Handle)
	assert.Empty(t, d.Match)

	d = descriptor.Normalize(descriptor.Simple{Handle: tag("h"), Match: []string{"id"}})
	assert.Equal(t, descriptor.ShapeSimple, d.Shape)
	assert.Equal(t, []string{"id"}, d.Match)

	d = descriptor.Normalize(descriptor.Staged{Before: tag("b"), Prepend: true})
	assert.Equal(t, descriptor.ShapeStaged, d.Shape)
	assert.True(t, d.Prepend)
	assert.NotNil(t, d.Before)
	assert.Nil(t, d.After)
}

func TestNormalize_NilHandlerNeverResolves(t *testing.T) {
	d := descriptor.Normalize(nil)
	for _, s := range allSlots {
		assert.Nil(t, d.Resolve(s.category, s.stage, s.prepend))
	}
}

func TestNormalize_CopiesMatchProps(t *testing.T) {
	props := []string{"id"}
	d := descriptor.Normalize(descriptor.Staged{Match: props})
	props[0] = "changed"
	assert.Equal(t, []string{"id"}, d.Match)
}

func TestResolve_Func(t *testing.T) {
	got := resolved(t, descriptor.Func(tag("f")))
	assert.Equal(t, map[slot]string{
		actionBeforeNormal:  "f",
		actionAfterNormal:   "",
		actionBeforePrepend: "",
		actionAfterPrepend:  "",
		mutationNormal:      "f",
		mutationPrepend:     "",
	}, got)
}

func TestResolve_Simple(t *testing.T) {
	got := resolved(t, descriptor.Simple{Handle: tag("h")})
	assert.Equal(t, "h", got[actionBeforeNormal])
	assert.Equal(t, "", got[actionAfterNormal])
	assert.Equal(t, "h", got[mutationNormal])
	assert.Equal(t, "", got[mutationPrepend])
}

func TestResolve_SimplePrependNeverRuns(t *testing.T) {
	got := resolved(t, descriptor.Simple{Handle: tag("h"), Prepend: true})
	for s, v := range got {
		assert.Empty(t, v, "slot %+v", s)
	}
}

func TestResolve_Staged(t *testing.T) {
	got := resolved(t, descriptor.Staged{Before: tag("b"), After: tag("a")})
	assert.Equal(t, map[slot]string{
		actionBeforeNormal:  "b",
		actionAfterNormal:   "a",
		actionBeforePrepend: "",
		actionAfterPrepend:  "",
		mutationNormal:      "a",
		mutationPrepend:     "",
	}, got)
}

func TestResolve_StagedPrepend(t *testing.T) {
	got := resolved(t, descriptor.Staged{Before: tag("b"), Prepend: true})
	assert.Equal(t, map[slot]string{
		actionBeforeNormal:  "",
		actionAfterNormal:   "",
		actionBeforePrepend: "b",
		actionAfterPrepend:  "",
		mutationNormal:      "",
		mutationPrepend:     "b",
	}, got)
}

func TestLint(t *testing.T) {
	assert.Empty(t, descriptor.Normalize(descriptor.Func(tag("f"))).Lint(effectmodel.Actions))
	assert.Len(t, descriptor.Normalize(descriptor.Simple{Handle: tag("h"), Prepend: true}).Lint(effectmodel.Actions), 1)
	assert.Len(t, descriptor.Normalize(descriptor.Simple{}).Lint(effectmodel.Mutations), 1)
	assert.Len(t, descriptor.Normalize(descriptor.Staged{}).Lint(effectmodel.Actions), 1)

	both := descriptor.Normalize(descriptor.Staged{Before: tag("b"), After: tag("a")})
	assert.Empty(t, both.Lint(effectmodel.Actions))
	assert.Len(t, both.Lint(effectmodel.Mutations), 1)
}
