package perfdar

import "github.com/Brandhoej/perfdar/language"

// Invariant is a logical condition constraining which environments may be at
// a location.
type Invariant struct {
	Expression language.Expression
}

// NewInvariant wraps an expression as an invariant.
func NewInvariant(expression language.Expression) Invariant {
	return Invariant{Expression: expression}
}

// TrueInvariant admits every environment.
func TrueInvariant() Invariant { return Invariant{Expression: language.NewBoolean(true)} }

// FalseInvariant admits no environment.
func FalseInvariant() Invariant { return Invariant{Expression: language.NewBoolean(false)} }

func (i Invariant) String() string { return i.Expression.String() }

// ConjoinInvariants folds two or more invariants into their logical
// conjunction. It is used when building composed locations.
func ConjoinInvariants(invariants ...Invariant) (Invariant, error) {
	if len(invariants) < 2 {
		return Invariant{}, &TooFewOperandsError{Operation: "invariant conjunction", Count: len(invariants)}
	}
	expression := invariants[0].Expression
	for _, invariant := range invariants[1:] {
		expression = language.NewAnd(expression, invariant.Expression)
	}
	return Invariant{Expression: expression}, nil
}
