package language

// BinaryOperator connects two logical expressions.
type BinaryOperator int

const (
	LogicalAnd BinaryOperator = iota
	LogicalOr
	Equal
	NotEqual
	Implication
	BiImplication
)

func (op BinaryOperator) String() string {
	switch op {
	case LogicalAnd:
		return "&&"
	case LogicalOr:
		return "||"
	case Equal:
		return "=="
	case NotEqual:
		return "!="
	case Implication:
		return "-->"
	case BiImplication:
		return "<-->"
	}
	return "?"
}

// UnaryOperator is applied to a single logical expression.
type UnaryOperator int

const (
	Negation UnaryOperator = iota
)

func (op UnaryOperator) String() string {
	switch op {
	case Negation:
		return "!"
	}
	return "?"
}

// Expression is a pure tree over values and logical connectives. Each node
// exclusively owns its children; trees are never shared or cyclic.
type Expression interface {
	isExpression()
	String() string
}

// Literal wraps a Value as a leaf expression.
type Literal struct {
	Value Value
}

// Parenthesized preserves explicit grouping from the surface syntax.
type Parenthesized struct {
	Inner Expression
}

// Binary applies a BinaryOperator to two subexpressions.
type Binary struct {
	LHS      Expression
	Operator BinaryOperator
	RHS      Expression
}

// Unary applies a UnaryOperator to a subexpression.
type Unary struct {
	Operator UnaryOperator
	Operand  Expression
}

func (*Literal) isExpression()       {}
func (*Parenthesized) isExpression() {}
func (*Binary) isExpression()        {}
func (*Unary) isExpression()         {}

func (l *Literal) String() string { return l.Value.String() }

func (p *Parenthesized) String() string { return "(" + p.Inner.String() + ")" }

func (b *Binary) String() string {
	return b.LHS.String() + " " + b.Operator.String() + " " + b.RHS.String()
}

func (u *Unary) String() string { return u.Operator.String() + u.Operand.String() }

// NewLiteral wraps a value as an expression.
func NewLiteral(value Value) Expression { return &Literal{Value: value} }

// NewBoolean is a boolean literal expression.
func NewBoolean(value bool) Expression { return &Literal{Value: Bool(value)} }

// NewIdentifier is an identifier literal expression.
func NewIdentifier(name string) Expression { return &Literal{Value: Identifier(name)} }

// NewParenthesized wraps an expression in explicit grouping.
func NewParenthesized(inner Expression) Expression { return &Parenthesized{Inner: inner} }

// NewBinary combines two expressions with a binary operator.
func NewBinary(lhs Expression, op BinaryOperator, rhs Expression) Expression {
	return &Binary{LHS: lhs, Operator: op, RHS: rhs}
}

// NewNegation is the logical negation of an expression.
func NewNegation(operand Expression) Expression {
	return &Unary{Operator: Negation, Operand: operand}
}

func NewAnd(lhs, rhs Expression) Expression { return NewBinary(lhs, LogicalAnd, rhs) }

func NewOr(lhs, rhs Expression) Expression { return NewBinary(lhs, LogicalOr, rhs) }

func NewEqual(lhs, rhs Expression) Expression { return NewBinary(lhs, Equal, rhs) }

func NewNotEqual(lhs, rhs Expression) Expression { return NewBinary(lhs, NotEqual, rhs) }

func NewImplication(lhs, rhs Expression) Expression { return NewBinary(lhs, Implication, rhs) }

func NewBiImplication(lhs, rhs Expression) Expression { return NewBinary(lhs, BiImplication, rhs) }

// Identifiers collects every identifier referenced by the expression, in
// depth-first order. Duplicates are kept.
func Identifiers(expr Expression) []string {
	var identifiers []string
	worklist := []Expression{expr}
	for len(worklist) > 0 {
		current := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		switch node := current.(type) {
		case *Literal:
			if ident, ok := node.Value.(Identifier); ok {
				identifiers = append(identifiers, string(ident))
			}
		case *Parenthesized:
			worklist = append(worklist, node.Inner)
		case *Binary:
			worklist = append(worklist, node.LHS, node.RHS)
		case *Unary:
			worklist = append(worklist, node.Operand)
		}
	}
	return identifiers
}
