package perfdar

import "github.com/Brandhoej/perfdar/language"

// Guard is a logical condition gating whether an edge may fire. It must type
// to logical to be usable on an edge; the automaton constructor enforces
// this.
type Guard struct {
	Expression language.Expression
}

// NewGuard wraps an expression as a guard.
func NewGuard(expression language.Expression) Guard {
	return Guard{Expression: expression}
}

// TrueGuard never blocks its edge.
func TrueGuard() Guard { return Guard{Expression: language.NewBoolean(true)} }

// FalseGuard always blocks its edge.
func FalseGuard() Guard { return Guard{Expression: language.NewBoolean(false)} }

func (g Guard) String() string { return g.Expression.String() }
