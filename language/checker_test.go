package language_test

import (
	"errors"
	"testing"

	"github.com/Brandhoej/perfdar/language"
)

func TestChecker_Expressions(t *testing.T) {
	env := language.NewEnvironment()
	env.Insert("a", language.True)
	env.Insert("b", language.Identifier("a"))
	checker := language.NewChecker(env)

	a := language.NewIdentifier("a")
	b := language.NewIdentifier("b")
	exprs := []language.Expression{
		language.NewBoolean(true),
		a,
		b,
		language.NewNegation(a),
		language.NewAnd(a, b),
		language.NewOr(a, b),
		language.NewEqual(a, b),
		language.NewNotEqual(a, b),
		language.NewImplication(a, b),
		language.NewBiImplication(a, b),
		language.NewParenthesized(language.NewAnd(a, b)),
	}
	for _, expr := range exprs {
		typ, err := checker.CheckExpression(expr)
		if err != nil {
			t.Errorf("check %s: %v", expr, err)
			continue
		}
		if typ != language.Logical {
			t.Errorf("check %s: got %s, want %s", expr, typ, language.Logical)
		}
	}
}

func TestChecker_UnknownIdentifier(t *testing.T) {
	checker := language.NewChecker(language.NewEnvironment())
	_, err := checker.CheckExpression(language.NewIdentifier("ghost"))
	var unknown *language.UnknownIdentifierError
	if !errors.As(err, &unknown) {
		t.Fatalf("want UnknownIdentifierError, got %v", err)
	}
}

func TestChecker_CyclicIdentifierChain(t *testing.T) {
	env := language.NewEnvironment()
	env.Insert("a", language.Identifier("b"))
	env.Insert("b", language.Identifier("a"))
	checker := language.NewChecker(env)
	_, err := checker.CheckExpression(language.NewIdentifier("a"))
	var mismatch *language.TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("a cyclic binding has no type, want TypeMismatchError, got %v", err)
	}
}

func TestChecker_Statement(t *testing.T) {
	checker := language.NewChecker(language.NewEnvironment())
	typ, err := checker.CheckStatement(language.NewSimpleAssignment("a", language.True))
	if err != nil {
		t.Fatal(err)
	}
	if typ != language.Void {
		t.Errorf("statements are void, got %s", typ)
	}
}
