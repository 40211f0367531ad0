package expandable

// Direction is a requested transition for a section.
type Direction int

const (
	Expand Direction = iota
	Collapse
)

// String returns "expand" or "collapse".
func (d Direction) String() string {
	if d == Expand {
		return "expand"
	}
	return "collapse"
}

// Phase is one step of a section's expand lifecycle, delivered to the
// section's header cell and the global ExpandObserver.
type Phase int

const (
	WillExpand Phase = iota
	DidExpand
	WillCollapse
	DidCollapse
)

// String returns the phase name, e.g. "willExpand".
func (p Phase) String() string {
	switch p {
	case WillExpand:
		return "willExpand"
	case DidExpand:
		return "didExpand"
	case WillCollapse:
		return "willCollapse"
	case DidCollapse:
		return "didCollapse"
	default:
		return "unknown"
	}
}

// will returns the before-phase for a transition direction.
func (d Direction) will() Phase {
	if d == Expand {
		return WillExpand
	}
	return WillCollapse
}

// did returns the after-phase for a transition direction.
func (d Direction) did() Phase {
	if d == Expand {
		return DidExpand
	}
	return DidCollapse
}

// stateStore tracks per-section expand flags. Entries appear lazily on the
// first toggle; a missing entry reads as collapsed. The store does no
// validation of its own: callers check expandability before mutating.
type stateStore struct {
	expanded map[int]bool
}

func newStateStore() *stateStore {
	return &stateStore{expanded: make(map[int]bool)}
}

func (s *stateStore) isExpanded(section int) bool {
	return s.expanded[section]
}

func (s *stateStore) setExpanded(section int, expanded bool) {
	s.expanded[section] = expanded
}

// capabilityGate decides whether a section may expand. The host capability
// is consulted fresh on every call, never cached, since a host may change
// its mind between calls.
type capabilityGate struct {
	host     *hostForwarder
	fallback func() bool
}

func (g *capabilityGate) canExpand(section int) bool {
	return g.host.canExpandSection(section, g.fallback())
}
