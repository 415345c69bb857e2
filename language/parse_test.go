package language_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Brandhoej/perfdar/language"
)

func TestParse_RoundTrip(t *testing.T) {
	sources := []string{
		"true",
		"false",
		"locked",
		"!locked",
		"a && b",
		"a || b && c",
		"a == b",
		"a != b",
		"a --> b",
		"a <--> b",
		"(a || b) && c",
		"!(a && b)",
	}
	for _, source := range sources {
		expr, err := language.Parse(source)
		if err != nil {
			t.Errorf("parse %q: %v", source, err)
			continue
		}
		if expr.String() != source {
			t.Errorf("parse %q: rendered as %q", source, expr)
		}
	}
}

func TestParse_Precedence(t *testing.T) {
	expr, err := language.Parse("a || b && c")
	if err != nil {
		t.Fatal(err)
	}
	binary, ok := expr.(*language.Binary)
	if !ok || binary.Operator != language.LogicalOr {
		t.Fatalf("want disjunction at the top, got %s", expr)
	}
	rhs, ok := binary.RHS.(*language.Binary)
	if !ok || rhs.Operator != language.LogicalAnd {
		t.Fatalf("want conjunction under the disjunction, got %s", binary.RHS)
	}
}

func TestParse_ImplicationRightAssociative(t *testing.T) {
	expr, err := language.Parse("a --> b --> c")
	if err != nil {
		t.Fatal(err)
	}
	env := language.NewEnvironment()
	env.Insert("a", language.False)
	env.Insert("b", language.True)
	env.Insert("c", language.False)
	// Right-associatively this is a --> (b --> c), which holds vacuously
	// for a false antecedent; grouped the other way it would be false.
	evaluation, err := language.NewInterpreter(env).EvalExpression(expr)
	if err != nil {
		t.Fatal(err)
	}
	if !evaluation.IsTrue() {
		t.Error("a --> b --> c should group to the right")
	}
}

func TestParse_Errors(t *testing.T) {
	sources := []string{
		"",
		"a &&",
		"a & b",
		"a | b",
		"a -> b",
		"(a",
		"a b",
		"a = b",
	}
	for _, source := range sources {
		if _, err := language.Parse(source); err == nil {
			t.Errorf("parse %q: expected an error", source)
		} else {
			var parseError *language.ParseError
			if !errors.As(err, &parseError) {
				t.Errorf("parse %q: want ParseError, got %v", source, err)
			}
		}
	}
}

func TestParseStatement(t *testing.T) {
	statement, err := language.ParseStatement("locked = a && b")
	if err != nil {
		t.Fatal(err)
	}
	if statement.String() != "locked = a && b" {
		t.Errorf("rendered as %q", statement)
	}
	if _, err := language.ParseStatement("true = a"); err == nil {
		t.Error("a boolean is not assignable")
	}
	if _, err := language.ParseStatement("locked"); err == nil {
		t.Error("an assignment needs a right-hand side")
	}
}

func ExampleParse() {
	expr, _ := language.Parse("!locked && (open --> shut)")
	fmt.Println(expr)
	// Output:
	// !locked && (open --> shut)
}
