package language

import (
	"fmt"
	"strings"
)

// UnknownIdentifierError is raised when an expression or statement references
// an identifier that is not declared in the environment.
type UnknownIdentifierError struct {
	Identifier string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown identifier %q", e.Identifier)
}

// TypeMismatchError is raised when an operator is applied to operands it is
// not defined for, or when a construct requires a value of a different type.
type TypeMismatchError struct {
	Operation string
	Types     []Type
}

func (e *TypeMismatchError) Error() string {
	if len(e.Types) == 0 {
		return fmt.Sprintf("type mismatch in %s", e.Operation)
	}
	names := make([]string, len(e.Types))
	for i, t := range e.Types {
		names[i] = t.String()
	}
	return fmt.Sprintf("%s cannot be applied to %s", e.Operation, strings.Join(names, " and "))
}
