package language_test

import (
	"fmt"
	"testing"

	"github.com/Brandhoej/perfdar/language"
)

func TestEnvironment_InsertAndSet(t *testing.T) {
	env := language.NewEnvironment()
	if !env.Insert("a", language.True) {
		t.Error("first insert of a should succeed")
	}
	if env.Insert("a", language.False) {
		t.Error("second insert of a should be rejected")
	}
	if value, _ := env.Get("a"); value != language.True {
		t.Error("rejected insert should not overwrite a")
	}
	if env.Set("b", language.True) {
		t.Error("set of undeclared b should be rejected")
	}
	if env.Contains("b") {
		t.Error("rejected set should not declare b")
	}
	if !env.Set("a", language.False) {
		t.Error("set of declared a should succeed")
	}
	if value, _ := env.Get("a"); value != language.False {
		t.Error("set should overwrite a")
	}
}

func TestEnvironment_CloneIsolation(t *testing.T) {
	env := language.NewEnvironment()
	env.Insert("a", language.True)
	clone := env.Clone()
	clone.Set("a", language.False)
	clone.Insert("b", language.True)
	if value, _ := env.Get("a"); value != language.True {
		t.Error("mutating the clone changed the original binding")
	}
	if env.Contains("b") {
		t.Error("inserting into the clone declared b in the original")
	}
}

func TestEnvironment_Concat(t *testing.T) {
	left := language.NewEnvironment()
	left.Insert("a", language.True)
	right := language.NewEnvironment()
	right.Insert("b", language.False)
	if !left.Disjoint(right) {
		t.Error("environments with distinct identifiers should be disjoint")
	}
	if !left.Concat(right) {
		t.Error("concat of disjoint environments should succeed")
	}
	if !left.Contains("a") || !left.Contains("b") {
		t.Error("concat should keep both bindings")
	}

	overlapping := language.NewEnvironment()
	overlapping.Insert("b", language.True)
	if left.Concat(overlapping) {
		t.Error("concat of overlapping environments should be rejected")
	}
	if value, _ := left.Get("b"); value != language.False {
		t.Error("rejected concat should leave the receiver untouched")
	}
	if overlap := left.Overlap(overlapping); len(overlap) != 1 || overlap[0] != "b" {
		t.Errorf("overlap should be [b], got %v", overlap)
	}
}

func TestEnvironment_Missing(t *testing.T) {
	env := language.NewEnvironment()
	env.Insert("a", language.True)
	missing := env.Missing([]string{"a", "b", "c", "b"})
	if len(missing) != 2 || missing[0] != "b" || missing[1] != "c" {
		t.Errorf("missing should be [b c], got %v", missing)
	}
}

func ExampleEnvironment() {
	env := language.NewEnvironment()
	env.Insert("b", language.True)
	env.Insert("a", language.False)
	fmt.Println(env)
	// Output:
	// {a=false,b=true}
}
