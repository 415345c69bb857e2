package language

// Checker assigns each expression, statement, and value one of the two
// semantic types given an environment.
type Checker struct {
	environment Environment
}

// NewChecker clones the environment for the checker to resolve identifiers
// against.
func NewChecker(environment Environment) *Checker {
	return &Checker{environment: environment.Clone()}
}

// CheckExpression types an expression. Logical connectives require logical
// operands; equality requires both operands to have the same type.
func (c *Checker) CheckExpression(expr Expression) (Type, error) {
	switch node := expr.(type) {
	case *Literal:
		return c.CheckValue(node.Value)
	case *Parenthesized:
		return c.CheckExpression(node.Inner)
	case *Binary:
		lhs, err := c.CheckExpression(node.LHS)
		if err != nil {
			return 0, err
		}
		rhs, err := c.CheckExpression(node.RHS)
		if err != nil {
			return 0, err
		}
		switch node.Operator {
		case LogicalAnd, LogicalOr, Implication, BiImplication:
			if lhs != Logical || rhs != Logical {
				return 0, &TypeMismatchError{Operation: node.Operator.String(), Types: []Type{lhs, rhs}}
			}
			return Logical, nil
		case Equal, NotEqual:
			if lhs != rhs {
				return 0, &TypeMismatchError{Operation: node.Operator.String(), Types: []Type{lhs, rhs}}
			}
			return Logical, nil
		}
		return 0, &TypeMismatchError{Operation: node.Operator.String()}
	case *Unary:
		operand, err := c.CheckExpression(node.Operand)
		if err != nil {
			return 0, err
		}
		if operand != Logical {
			return 0, &TypeMismatchError{Operation: node.Operator.String(), Types: []Type{operand}}
		}
		return Logical, nil
	}
	return 0, &TypeMismatchError{Operation: "expression"}
}

// CheckStatement types a statement. Assignments are always void; their
// operand well-typedness is enforced by the interpreter at evaluation time.
func (c *Checker) CheckStatement(*Assignment) (Type, error) {
	return Void, nil
}

// CheckValue types a value. Booleans are logical; identifiers take the type
// of the value they are bound to. A cyclic binding chain has no type and is
// a type mismatch.
func (c *Checker) CheckValue(value Value) (Type, error) {
	seen := make(map[string]bool)
	for {
		switch v := value.(type) {
		case Bool:
			return Logical, nil
		case Identifier:
			if seen[string(v)] {
				return 0, &TypeMismatchError{Operation: "value"}
			}
			seen[string(v)] = true
			bound, ok := c.environment.Get(string(v))
			if !ok {
				return 0, &UnknownIdentifierError{Identifier: string(v)}
			}
			value = bound
		default:
			return 0, &TypeMismatchError{Operation: "value"}
		}
	}
}
