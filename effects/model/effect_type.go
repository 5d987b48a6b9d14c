package effectmodel

// Category names a section of an effect tree.
type Category string

const (
	Actions   Category = "actions"
	Mutations Category = "mutations"
)

// Categories lists the recognized sections in attach order.
var Categories = []Category{Actions, Mutations}

// Valid reports whether c is a recognized section.
func (c Category) Valid() bool {
	switch c {
	case Actions, Mutations:
		return true
	default:
		return false
	}
}

// Stage is the notification point of an action.
// Mutations are observed once, after they applied, and carry no stage.
type Stage string

const (
	StageBefore Stage = "before"
	StageAfter  Stage = "after"
)

// SubscribeOptions is passed to the container when a listener is attached.
type SubscribeOptions struct {
	// Prepend asks the container to run the listener ahead of normally
	// attached listeners.
	Prepend bool
}

// Listener observes a single notification with the container's current state.
type Listener func(ev Event, state any) error

// ActionListener observes both notification points of an action.
type ActionListener struct {
	Before Listener
	After  Listener
}

// Disposer detaches a listener from the container.
type Disposer func()
