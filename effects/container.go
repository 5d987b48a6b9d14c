package effects

import effectmodel "github.com/on-the-ground/effect_ive_store/effects/model"

//go:generate mockgen -destination=mock/container_mock.go -package=mock github.com/on-the-ground/effect_ive_store/effects Container

// Container is the state container effects are dispatched from.
//
// It must deliver notifications synchronously, one event at a time, run
// prepend-attached listeners ahead of normally attached ones, notify actions
// before and after they apply and mutations once after they applied.
// A listener error must reach the caller that triggered the notification.
type Container interface {
	SubscribeToActions(listener effectmodel.ActionListener, opts effectmodel.SubscribeOptions) effectmodel.Disposer
	SubscribeToMutations(listener effectmodel.Listener, opts effectmodel.SubscribeOptions) effectmodel.Disposer
}
