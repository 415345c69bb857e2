package language

// Interpreter evaluates expressions and statements against a private copy of
// an environment. Assignments mutate the copy; callers read the result back
// through Environment rather than observing in-place mutation of their own
// environment.
type Interpreter struct {
	environment Environment
}

// NewInterpreter clones the environment for the interpreter to work on.
func NewInterpreter(environment Environment) *Interpreter {
	return &Interpreter{environment: environment.Clone()}
}

// Environment returns a copy of the interpreter's current environment,
// including the effect of any evaluated assignments.
func (in *Interpreter) Environment() Environment {
	return in.environment.Clone()
}

// EvalExpression reduces an expression to a boolean evaluation. Identifiers
// resolve through the environment, chasing identifier-valued bindings until
// a boolean is found; an undeclared identifier is a runtime error.
func (in *Interpreter) EvalExpression(expr Expression) (Evaluation, error) {
	switch node := expr.(type) {
	case *Literal:
		value, err := in.resolve(node.Value)
		if err != nil {
			return Evaluation{}, err
		}
		return NewBooleanEvaluation(value), nil
	case *Parenthesized:
		return in.EvalExpression(node.Inner)
	case *Binary:
		lhs, err := in.evalBoolean(node.LHS)
		if err != nil {
			return Evaluation{}, err
		}
		rhs, err := in.evalBoolean(node.RHS)
		if err != nil {
			return Evaluation{}, err
		}
		switch node.Operator {
		case LogicalAnd:
			return NewBooleanEvaluation(lhs && rhs), nil
		case LogicalOr:
			return NewBooleanEvaluation(lhs || rhs), nil
		case Equal, BiImplication:
			return NewBooleanEvaluation(lhs == rhs), nil
		case NotEqual:
			return NewBooleanEvaluation(lhs != rhs), nil
		case Implication:
			return NewBooleanEvaluation(!lhs || rhs), nil
		}
		return Evaluation{}, &TypeMismatchError{Operation: node.Operator.String()}
	case *Unary:
		operand, err := in.evalBoolean(node.Operand)
		if err != nil {
			return Evaluation{}, err
		}
		return NewBooleanEvaluation(!operand), nil
	}
	return Evaluation{}, &TypeMismatchError{Operation: "expression"}
}

// EvalStatement executes an assignment against the interpreter's environment.
// The left side must resolve to an identifier and the identifier must already
// be declared.
func (in *Interpreter) EvalStatement(stmt *Assignment) error {
	identifier, err := lvalue(stmt.Identifier)
	if err != nil {
		return err
	}
	value, err := in.evalBoolean(stmt.Value)
	if err != nil {
		return err
	}
	if !in.environment.Set(identifier, Bool(value)) {
		return &UnknownIdentifierError{Identifier: identifier}
	}
	return nil
}

func (in *Interpreter) evalBoolean(expr Expression) (bool, error) {
	evaluation, err := in.EvalExpression(expr)
	if err != nil {
		return false, err
	}
	value, ok := evaluation.Boolean()
	if !ok {
		return false, &TypeMismatchError{Operation: "operand", Types: []Type{Void}}
	}
	return value, nil
}

// resolve reduces a value to a boolean, chasing identifier bindings. A
// cyclic binding chain never reaches a boolean and is a type mismatch.
func (in *Interpreter) resolve(value Value) (bool, error) {
	seen := make(map[string]bool)
	for {
		switch v := value.(type) {
		case Bool:
			return bool(v), nil
		case Identifier:
			if seen[string(v)] {
				return false, &TypeMismatchError{Operation: "value"}
			}
			seen[string(v)] = true
			bound, ok := in.environment.Get(string(v))
			if !ok {
				return false, &UnknownIdentifierError{Identifier: string(v)}
			}
			value = bound
		default:
			return false, &TypeMismatchError{Operation: "value"}
		}
	}
}

// lvalue extracts the identifier named by the left side of an assignment.
func lvalue(expr Expression) (string, error) {
	for {
		switch node := expr.(type) {
		case *Parenthesized:
			expr = node.Inner
		case *Literal:
			if identifier, ok := node.Value.(Identifier); ok {
				return string(identifier), nil
			}
			return "", &TypeMismatchError{Operation: "assignment target", Types: []Type{Logical}}
		default:
			return "", &TypeMismatchError{Operation: "assignment target", Types: []Type{Logical}}
		}
	}
}
