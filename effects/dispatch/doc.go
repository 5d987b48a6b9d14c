// Package dispatch decides, for every notification the container delivers,
// whether one owner's declared effect runs.
//
// A Resolver serves one (owner, category) pair and hands out two listeners
// per category: a normal-pass listener and a prepend-pass listener. The
// container orders prepend listeners ahead of normal ones; the resolver only
// checks that a descriptor's Prepend flag agrees with the pass it is called
// from. Each notification goes through:
//
//	idle     the event type is not declared: ignored
//	skipped  no callable resolves for this stage and pass
//	gated    the property matcher rejected the payload
//	fired    the callable ran; its error is returned to the container as is
//
// Delivery is synchronous. Handler panics are not recovered.
package dispatch
