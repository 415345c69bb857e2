package perfdar

import "strings"

// LocationKind discriminates the closed set of location variants.
type LocationKind int

const (
	// NormalLocation is an ordinary named location with an invariant.
	NormalLocation LocationKind = iota
	// InitialLocation marks the unique starting location of an automaton.
	InitialLocation
	// ConjunctionLocation is a product of component locations.
	ConjunctionLocation
	// InconsistentLocation is the absorbing unsatisfiable element of the
	// composition algebra.
	InconsistentLocation
	// UniversalLocation is the absorbing unconstrained element of the
	// composition algebra.
	UniversalLocation
)

func (k LocationKind) String() string {
	switch k {
	case NormalLocation:
		return "normal"
	case InitialLocation:
		return "initial"
	case ConjunctionLocation:
		return "conjunction"
	case InconsistentLocation:
		return "inconsistent"
	case UniversalLocation:
		return "universal"
	}
	return "unknown"
}

// Location is a vertex of the automaton graph. Named variants compare by
// kind and name; conjunctions compare by their ordered component sequence.
type Location struct {
	kind      LocationKind
	name      string
	invariant Invariant
	parts     []Location
}

// NewNormal is an ordinary location.
func NewNormal(name string, invariant Invariant) Location {
	return Location{kind: NormalLocation, name: name, invariant: invariant}
}

// NewInitial is a starting location. Exactly one is allowed per automaton.
func NewInitial(name string, invariant Invariant) Location {
	return Location{kind: InitialLocation, name: name, invariant: invariant}
}

// NewInconsistent is the unsatisfiable location.
func NewInconsistent(name string) Location {
	return Location{kind: InconsistentLocation, name: name}
}

// NewUniversal is the unconstrained location.
func NewUniversal(name string) Location {
	return Location{kind: UniversalLocation, name: name}
}

// NewConjunctionLocation builds the product of one or more component
// locations under the absorbing algebra: any inconsistent component
// collapses the product to inconsistent, a product of only universal
// components is universal, and otherwise the non-absorbing components are
// retained with the conjunction of their invariants.
func NewConjunctionLocation(parts ...Location) Location {
	names := make([]string, len(parts))
	for i, part := range parts {
		names[i] = part.name
	}
	name := strings.Join(names, " && ")

	for _, part := range parts {
		if part.kind == InconsistentLocation {
			return NewInconsistent(name)
		}
	}

	universal := len(parts) > 0
	for _, part := range parts {
		if part.kind != UniversalLocation {
			universal = false
			break
		}
	}
	if universal {
		return NewUniversal(name)
	}

	var retained []Location
	var invariants []Invariant
	seen := make(map[string]bool)
	for _, part := range parts {
		switch part.kind {
		case NormalLocation, InitialLocation, ConjunctionLocation:
			retained = append(retained, part)
			if !seen[part.invariant.String()] {
				seen[part.invariant.String()] = true
				invariants = append(invariants, part.invariant)
			}
		}
	}

	invariant := TrueInvariant()
	switch len(invariants) {
	case 0:
	case 1:
		invariant = invariants[0]
	default:
		invariant, _ = ConjoinInvariants(invariants...)
	}
	return Location{kind: ConjunctionLocation, name: name, invariant: invariant, parts: retained}
}

func (l Location) Kind() LocationKind { return l.kind }

func (l Location) Name() string { return l.name }

// Invariant returns the location's invariant and whether the variant carries
// one; inconsistent and universal locations do not.
func (l Location) Invariant() (Invariant, bool) {
	switch l.kind {
	case NormalLocation, InitialLocation, ConjunctionLocation:
		return l.invariant, true
	}
	return Invariant{}, false
}

// Parts returns the component sequence of a conjunction location.
func (l Location) Parts() []Location {
	parts := make([]Location, len(l.parts))
	copy(parts, l.parts)
	return parts
}

// IsInitial reports whether this is the initial variant.
func (l Location) IsInitial() bool { return l.kind == InitialLocation }

// Equal compares named variants by kind and name and conjunctions by their
// ordered component sequence.
func (l Location) Equal(other Location) bool {
	if l.kind != other.kind {
		return false
	}
	if l.kind == ConjunctionLocation {
		if len(l.parts) != len(other.parts) {
			return false
		}
		for i := range l.parts {
			if !l.parts[i].Equal(other.parts[i]) {
				return false
			}
		}
		return true
	}
	return l.name == other.name
}

// Key is a canonical rendering of the location's identity used for set
// membership. Locations are equal exactly when their keys are equal.
func (l Location) Key() string {
	if l.kind == ConjunctionLocation {
		keys := make([]string, len(l.parts))
		for i, part := range l.parts {
			keys[i] = part.Key()
		}
		return "conjunction:[" + strings.Join(keys, ";") + "]"
	}
	return l.kind.String() + ":" + l.name
}

func (l Location) String() string {
	switch l.kind {
	case NormalLocation:
		return "Location (" + l.name + ", " + l.invariant.String() + ")"
	case InitialLocation:
		return "Initial location (" + l.name + ", " + l.invariant.String() + ")"
	case ConjunctionLocation:
		parts := make([]string, len(l.parts))
		for i, part := range l.parts {
			parts[i] = part.String()
		}
		return "Conjunction ([" + strings.Join(parts, ", ") + "], " + l.invariant.String() + ")"
	case InconsistentLocation:
		return "Inconsistent location " + l.name
	case UniversalLocation:
		return "Universal location " + l.name
	}
	return "Unknown location " + l.name
}
