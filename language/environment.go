package language

import (
	"sort"
	"strings"
)

// Environment maps identifiers to values. It is the state carrier of the
// language: declarations go through Insert, updates through Set, and two
// environments can only be concatenated when their identifiers are disjoint.
type Environment struct {
	values map[string]Value
}

// NewEnvironment returns an environment with no declarations.
func NewEnvironment() Environment {
	return Environment{values: make(map[string]Value)}
}

// Clone returns an independent copy of the environment.
func (env Environment) Clone() Environment {
	clone := NewEnvironment()
	for identifier, value := range env.values {
		clone.values[identifier] = value
	}
	return clone
}

// Contains reports whether the identifier is declared.
func (env Environment) Contains(identifier string) bool {
	_, ok := env.values[identifier]
	return ok
}

// Get returns the value bound to the identifier.
func (env Environment) Get(identifier string) (Value, bool) {
	value, ok := env.values[identifier]
	return value, ok
}

// Insert declares the identifier. It reports false without overwriting when
// the identifier is already declared.
func (env Environment) Insert(identifier string, value Value) bool {
	if env.Contains(identifier) {
		return false
	}
	env.values[identifier] = value
	return true
}

// Set updates an already declared identifier. It reports false when the
// identifier is undeclared; updates never implicitly declare.
func (env Environment) Set(identifier string, value Value) bool {
	if !env.Contains(identifier) {
		return false
	}
	env.values[identifier] = value
	return true
}

// Count returns the number of declared identifiers.
func (env Environment) Count() int { return len(env.values) }

// Disjoint reports whether no identifier of env is declared in other.
func (env Environment) Disjoint(other Environment) bool {
	for identifier := range env.values {
		if other.Contains(identifier) {
			return false
		}
	}
	return true
}

// Overlap returns the identifiers declared in both environments, sorted.
func (env Environment) Overlap(other Environment) []string {
	var overlap []string
	for identifier := range env.values {
		if other.Contains(identifier) {
			overlap = append(overlap, identifier)
		}
	}
	sort.Strings(overlap)
	return overlap
}

// Concat declares every identifier of other in env. It reports false and
// leaves env untouched when the two environments are not disjoint.
func (env Environment) Concat(other Environment) bool {
	if !env.Disjoint(other) {
		return false
	}
	for identifier, value := range other.values {
		env.values[identifier] = value
	}
	return true
}

// Missing returns the identifiers of the given list that are undeclared,
// preserving order and skipping duplicates.
func (env Environment) Missing(identifiers []string) []string {
	var missing []string
	seen := make(map[string]bool)
	for _, identifier := range identifiers {
		if !env.Contains(identifier) && !seen[identifier] {
			seen[identifier] = true
			missing = append(missing, identifier)
		}
	}
	return missing
}

// Identifiers returns the declared identifiers, sorted.
func (env Environment) Identifiers() []string {
	identifiers := make([]string, 0, len(env.values))
	for identifier := range env.values {
		identifiers = append(identifiers, identifier)
	}
	sort.Strings(identifiers)
	return identifiers
}

// Equal reports whether both environments declare the same identifiers with
// the same values.
func (env Environment) Equal(other Environment) bool {
	if len(env.values) != len(other.values) {
		return false
	}
	for identifier, value := range env.values {
		otherValue, ok := other.values[identifier]
		if !ok || otherValue != value {
			return false
		}
	}
	return true
}

// Key is a canonical rendering of the environment used for set membership
// of states during search. Equal environments have equal keys.
func (env Environment) Key() string {
	var sb strings.Builder
	for i, identifier := range env.Identifiers() {
		if i > 0 {
			sb.WriteByte(',')
		}
		value := env.values[identifier]
		sb.WriteString(identifier)
		sb.WriteByte('=')
		sb.WriteString(value.String())
	}
	return sb.String()
}

func (env Environment) String() string {
	return "{" + env.Key() + "}"
}
