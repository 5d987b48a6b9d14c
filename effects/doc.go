// Package effects runs side effects in response to the actions and mutations
// of a state container.
//
// Owners (mounted components and process-wide globals) declare effects in a
// Tree keyed by category and event type. A Registry compiles the tree,
// attaches listeners to the Container and keeps them in a Scope until the
// owner is destroyed.
//
// # What runs, and when
//
// Actions are observed twice, before and after they apply; mutations once,
// after they applied. A handler is one of:
//   - Func: runs before an action, or on a mutation
//   - Simple: a Func with optional prop matching
//   - Staged: explicit Before and After callables, optionally in the prepend pass
//
// Every owner attaches exactly two listeners per declared category: one in
// the normal pass and one the container runs ahead of every normal listener.
// A handler fires in the pass its Prepend flag names.
//
// # Matching
//
// A handler with Match props fires only when the event payload carries a
// match list with, for every prop, at least one entry whose value equals the
// owner's attribute of the same name. Rejections are logged, never returned.
//
// # Errors
//
// A tree with a category other than actions or mutations is rejected before
// anything is attached, with an error wrapping
// effectmodel.ErrUnrecognizedCategory. Handler errors reach whoever committed
// or dispatched, unchanged.
//
// Example:
//
//	reg := effects.NewRegistry(store, effects.WithLogger(logger))
//	_, err := reg.RegisterComponentEffects(row, effects.Tree{
//	    effects.Actions: {
//	        "LOAD": effects.Staged{Before: showSpinner, Match: []string{"id"}},
//	    },
//	    effects.Mutations: {
//	        "SET_NAME": effects.Func(rename),
//	    },
//	})
package effects
