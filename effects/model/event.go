package effectmodel

// Event is an action or mutation notification delivered by the container.
type Event struct {
	Type    string
	Payload any
}

// MatchList is the ordered sequence of property-bearing entries an event
// payload carries to gate effects against their owner's attributes.
type MatchList []map[string]any

// Matchable is implemented by payloads that carry a match list.
type Matchable interface {
	MatchEntries() MatchList
}

// Payload is a ready-made payload shape with a match list and arbitrary data.
type Payload struct {
	Match MatchList
	Data  any
}

func (p Payload) MatchEntries() MatchList {
	return p.Match
}

// Owner is the registering context an effect runs on behalf of:
// a component instance or a global registrant.
type Owner interface {
	ID() string
	// Attr returns the owner's attribute and whether it is present.
	// Presence matters, not the value: zero values are valid attributes.
	Attr(name string) (any, bool)
}

// Attrs is a map-backed attribute bag.
type Attrs map[string]any

func (a Attrs) Attr(name string) (any, bool) {
	v, ok := a[name]
	return v, ok
}
