package language

// Evaluation is the result of interpreting an expression or statement:
// either a boolean or void.
type Evaluation struct {
	void  bool
	truth bool
}

// NewBooleanEvaluation is a boolean evaluation result.
func NewBooleanEvaluation(value bool) Evaluation {
	return Evaluation{truth: value}
}

// NewVoidEvaluation is the result of a statement.
func NewVoidEvaluation() Evaluation {
	return Evaluation{void: true}
}

// IsVoid reports whether the evaluation carries no value.
func (e Evaluation) IsVoid() bool { return e.void }

// IsTrue reports whether the evaluation is the boolean true.
func (e Evaluation) IsTrue() bool { return !e.void && e.truth }

// IsFalse reports whether the evaluation is the boolean false.
func (e Evaluation) IsFalse() bool { return !e.void && !e.truth }

// Boolean returns the boolean value and whether the evaluation carries one.
func (e Evaluation) Boolean() (bool, bool) {
	if e.void {
		return false, false
	}
	return e.truth, true
}

func (e Evaluation) String() string {
	if e.void {
		return "void"
	}
	return Bool(e.truth).String()
}
