package perfdar

import (
	"fmt"
	"strings"

	"github.com/Brandhoej/perfdar/language"
)

// Construction errors are structured values carrying enough context to
// pinpoint the cause. Construction is all-or-nothing: a failed construction
// yields no usable automaton or conjunction.

// MissingInitialLocationError is raised when no location is tagged initial.
type MissingInitialLocationError struct {
	Automaton string
}

func (e *MissingInitialLocationError) Error() string {
	return fmt.Sprintf("automaton %s is missing an initial location", e.Automaton)
}

// TooManyInitialLocationsError is raised when more than one location is
// tagged initial.
type TooManyInitialLocationsError struct {
	Automaton string
	Initials  []Location
}

func (e *TooManyInitialLocationsError) Error() string {
	names := make([]string, len(e.Initials))
	for i, location := range e.Initials {
		names[i] = location.Name()
	}
	return fmt.Sprintf("automaton %s has too many initial locations: %s", e.Automaton, strings.Join(names, ", "))
}

// EmptyAutomatonError is raised when the edge set derives no locations.
type EmptyAutomatonError struct {
	Automaton string
}

func (e *EmptyAutomatonError) Error() string {
	return fmt.Sprintf("automaton %s is empty", e.Automaton)
}

// PartitionError is raised when a channel name is used both as an input and
// as an output, within one automaton or across conjunction operands.
type PartitionError struct {
	Automaton string
	Violating []Channel
}

func (e *PartitionError) Error() string {
	names := make([]string, len(e.Violating))
	for i, channel := range e.Violating {
		names[i] = channel.Name()
	}
	return fmt.Sprintf("automaton %s actions are not partitioned, violating channels: %s", e.Automaton, strings.Join(names, ", "))
}

// InconsistentInitialLocationError is raised when the initial location's
// invariant does not evaluate to true under the initial environment.
type InconsistentInitialLocationError struct {
	Automaton string
	Location  Location
}

func (e *InconsistentInitialLocationError) Error() string {
	return fmt.Sprintf("automaton %s initial location %s is inconsistent", e.Automaton, e.Location)
}

// MissingIdentifiersInEdgeGuardError is raised in strict construction mode
// when a guard references undeclared identifiers.
type MissingIdentifiersInEdgeGuardError struct {
	Automaton string
	Edge      Edge
	Missing   []string
}

func (e *MissingIdentifiersInEdgeGuardError) Error() string {
	return fmt.Sprintf("automaton %s edge %s guard is missing the identifiers %s",
		e.Automaton, e.Edge, strings.Join(e.Missing, ", "))
}

// EdgeGuardIsNotLogicalError is raised when a guard does not type to logical.
type EdgeGuardIsNotLogicalError struct {
	Automaton string
	Edge      Edge
	Actual    language.Type
}

func (e *EdgeGuardIsNotLogicalError) Error() string {
	return fmt.Sprintf("automaton %s edge %s guard is not %s but instead %s",
		e.Automaton, e.Edge, language.Logical, e.Actual)
}

// MissingIdentifiersInEdgeUpdateError is raised in strict construction mode
// when an update references undeclared identifiers.
type MissingIdentifiersInEdgeUpdateError struct {
	Automaton string
	Edge      Edge
	Missing   []string
}

func (e *MissingIdentifiersInEdgeUpdateError) Error() string {
	return fmt.Sprintf("automaton %s edge %s update is missing the identifiers %s",
		e.Automaton, e.Edge, strings.Join(e.Missing, ", "))
}

// EdgeUpdateIsNotVoidError is raised when an update does not type to void.
type EdgeUpdateIsNotVoidError struct {
	Automaton string
	Edge      Edge
	Actual    language.Type
}

func (e *EdgeUpdateIsNotVoidError) Error() string {
	return fmt.Sprintf("automaton %s edge %s update is not %s but instead %s",
		e.Automaton, e.Edge, language.Void, e.Actual)
}

// MissingIdentifiersInLocationInvariantError is raised in strict
// construction mode when a location invariant references undeclared
// identifiers.
type MissingIdentifiersInLocationInvariantError struct {
	Automaton string
	Location  Location
	Missing   []string
}

func (e *MissingIdentifiersInLocationInvariantError) Error() string {
	return fmt.Sprintf("automaton %s location %s invariant is missing the identifiers %s",
		e.Automaton, e.Location, strings.Join(e.Missing, ", "))
}

// EdgeExecutionError is raised when the update of an edge that was confirmed
// enabled fails to evaluate. This is an internal-consistency violation, not
// a recoverable condition.
type EdgeExecutionError struct {
	Edge  Edge
	State State
	Cause error
}

func (e *EdgeExecutionError) Error() string {
	return fmt.Sprintf("edge %s failed to execute from state %s: %v", e.Edge, e.State, e.Cause)
}

func (e *EdgeExecutionError) Unwrap() error { return e.Cause }

// TooFewOperandsError is raised by n-ary combinators given fewer operands
// than they are defined for.
type TooFewOperandsError struct {
	Operation string
	Count     int
}

func (e *TooFewOperandsError) Error() string {
	return fmt.Sprintf("%s requires at least two operands, got %d", e.Operation, e.Count)
}

// OverlappingEnvironmentsError is raised when conjunction operands declare
// shared identifiers; operand variable namespaces must be pairwise disjoint.
type OverlappingEnvironmentsError struct {
	Identifiers []string
}

func (e *OverlappingEnvironmentsError) Error() string {
	return fmt.Sprintf("operand environments are not disjoint, shared identifiers: %s",
		strings.Join(e.Identifiers, ", "))
}
