package effects

import (
	"github.com/on-the-ground/effect_ive_store/shared/helper"
)

// AttrOf reads the owner attribute name as a T.
// It reports false when the attribute is missing or holds another type.
func AttrOf[T any](owner Owner, name string) (T, bool) {
	return helper.GetTypedValueOf2[T](func() (any, bool) {
		return owner.Attr(name)
	})
}

// StateOf asserts the container state a handler received to T.
func StateOf[T any](state any) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		return state, nil
	})
}

// MustStateOf is the panic-on-failure variant of StateOf.
func MustStateOf[T any](state any) T {
	return helper.MustGetTypedValue[T](func() (any, error) {
		return state, nil
	})
}
