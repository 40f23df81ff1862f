package typeval_test

import (
	"strings"
	"testing"

	typeval "github.com/reoring/typeval"
)

func TestAllOf_ShortCircuitsOnFirstFailure(t *testing.T) {
	d := typeval.AllOf([]any{
		typeval.StringType(typeval.Options{"minLength": 3}),
		typeval.StringType(typeval.Options{"pattern": "^z"}),
	})
	errs := typeval.TypeErrors(d, "ab")
	if len(errs) != 1 || errs[0].Code != typeval.CodeMinLength {
		t.Fatalf("errs = %v, want only the first member's minLength error", errs)
	}
	if !typeval.IsValid(d, "zzz") {
		t.Fatalf("value satisfying every member rejected")
	}
	errs = typeval.TypeErrors(d, "abc")
	if len(errs) != 1 || errs[0].Code != typeval.CodePattern {
		t.Fatalf("errs = %v, want the second member's pattern error once the first passes", errs)
	}
}

func TestAnyOf_FirstMatchWins(t *testing.T) {
	d := typeval.AnyOf([]any{typeval.NumberType(), typeval.StringType()})
	if !typeval.IsValid(d, 5) {
		t.Fatalf("number member should match 5")
	}
	if !typeval.IsValid(d, "x") {
		t.Fatalf("string member should match \"x\"")
	}
	errs := typeval.TypeErrors(d, true)
	if len(errs) != 1 {
		t.Fatalf("errs = %v, want a single synthetic union error", errs)
	}
	if errs[0].Code != "" {
		t.Fatalf("union error must be uncoded, got %q", errs[0].Code)
	}
	if !strings.Contains(errs[0].Message, "number") || !strings.Contains(errs[0].Message, "string") {
		t.Fatalf("message %q must name the union members", errs[0].Message)
	}
}

func TestCombinators_AcceptAnyDescriptionForm(t *testing.T) {
	d := typeval.AnyOf([]any{"null", typeval.StringType(typeval.Options{"minLength": 1})})
	if !typeval.IsValid(d, nil) || !typeval.IsValid(d, "x") {
		t.Fatalf("mixed description forms not normalized")
	}
	mustPanic(t, func() { typeval.AnyOf(nil) })
	mustPanic(t, func() { typeval.AllOf([]any{}) })
}
