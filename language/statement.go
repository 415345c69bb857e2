package language

// Assignment stores the result of evaluating Value under the name the
// Identifier expression resolves to. That the left side resolves to an
// identifier is enforced by the interpreter at evaluation time, not here.
type Assignment struct {
	Identifier Expression
	Value      Expression
}

// NewAssignment builds an assignment from an identifier expression and a
// value expression.
func NewAssignment(identifier, value Expression) *Assignment {
	return &Assignment{Identifier: identifier, Value: value}
}

// NewSimpleAssignment assigns a literal value to a named identifier.
func NewSimpleAssignment(identifier string, value Value) *Assignment {
	return &Assignment{Identifier: NewIdentifier(identifier), Value: NewLiteral(value)}
}

func (a *Assignment) String() string {
	return a.Identifier.String() + " = " + a.Value.String()
}

// Identifiers collects every identifier referenced on either side of the
// assignment.
func (a *Assignment) Identifiers() []string {
	identifiers := Identifiers(a.Identifier)
	return append(identifiers, Identifiers(a.Value)...)
}
