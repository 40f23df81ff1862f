package typeval_test

import (
	"errors"
	"strings"
	"testing"

	typeval "github.com/reoring/typeval"
)

func TestTypeErrorsAndIsValidAgree(t *testing.T) {
	d := typeval.ObjectType(map[string]any{
		"name": typeval.Required("string"),
		"age":  typeval.NumberType(typeval.Options{"minimum": 0}),
	})
	values := []any{
		map[string]any{"name": "a", "age": 1},
		map[string]any{"name": "a", "age": -1},
		map[string]any{},
		"not an object",
		nil,
	}
	for _, v := range values {
		errs := typeval.TypeErrors(d, v)
		if (errs == nil) != typeval.IsValid(d, v) {
			t.Fatalf("TypeErrors and IsValid disagree for %#v: %v", v, errs)
		}
	}
}

func TestValidate_ResultShapes(t *testing.T) {
	// false -> generic "is invalid"
	errs := typeval.TypeErrors(typeval.Validate(func(v any) bool { return false }), 1)
	if len(errs) != 1 || errs[0].Code != "" || errs[0].Message == "" {
		t.Fatalf("bool result not normalized: %v", errs)
	}

	// string -> that message
	errs = typeval.TypeErrors(typeval.Validate(func(v any) any { return "must be shiny" }), 1)
	if len(errs) != 1 || errs[0].Message != "must be shiny" {
		t.Fatalf("string result not normalized: %v", errs)
	}

	// error -> one specific error
	errs = typeval.TypeErrors(typeval.Validate(func(v any) error { return errors.New("broken") }), 1)
	if len(errs) != 1 || errs[0].Message != "broken" {
		t.Fatalf("error result not normalized: %v", errs)
	}

	// ordered sequence of messages
	errs = typeval.TypeErrors(typeval.Validate(func(v any) any {
		return []string{"first", "second"}
	}), 1)
	if len(errs) != 2 || errs[0].Message != "first" || errs[1].Message != "second" {
		t.Fatalf("message sequence not normalized in order: %v", errs)
	}

	// nil and true are both valid
	if !typeval.IsValid(typeval.Validate(func(v any) any { return nil }), 1) {
		t.Fatalf("nil result must be valid")
	}
	if !typeval.IsValid(typeval.Validate(func(v any) any { return true }), 1) {
		t.Fatalf("true result must be valid")
	}
}

func TestValidate_PathPropagation(t *testing.T) {
	d := typeval.ObjectType(map[string]any{
		"flag": typeval.Validate(func(v any) bool { return v == true }),
	})
	errs := typeval.TypeErrors(d, map[string]any{"flag": 0})
	if len(errs) != 1 || errs[0].Path.Pointer() != "/flag" {
		t.Fatalf("raw result must inherit the traversal path, got %v", errs)
	}
}

func TestValidate_FunctionNameBecomesTitle(t *testing.T) {
	d := typeval.Validate(isShiny)
	if d.Title != "isShiny" {
		t.Fatalf("title = %q, want isShiny", d.Title)
	}
}

func isShiny(v any) bool { return v == "shiny" }

func TestAssertType_AggregatesChildErrors(t *testing.T) {
	d := typeval.ObjectType(map[string]any{
		"a": "string",
		"b": "number",
	})
	err := typeval.AssertType(d, map[string]any{"a": 1, "b": "x"})
	if err == nil {
		t.Fatalf("expected error")
	}
	var agg *typeval.Error
	if !errors.As(err, &agg) {
		t.Fatalf("expected *typeval.Error, got %T", err)
	}
	if len(agg.Errors) != 2 {
		t.Fatalf("child errors = %v, want two", agg.Errors)
	}
	if !strings.Contains(agg.Message, "2 validation error") {
		t.Fatalf("summary message %q must count the failures", agg.Message)
	}
	if got := typeval.AssertType(d, map[string]any{"a": "x", "b": 1}); got != nil {
		t.Fatalf("valid value must return nil, got %v", got)
	}
}

func TestRequired_RoundTripWithStringForm(t *testing.T) {
	byString := typeval.TypeObject("number!")
	byCombinator := typeval.Required(typeval.TypeOf("number"))
	for _, d := range []*typeval.Type{byString, byCombinator} {
		if !d.IsRequired() {
			t.Fatalf("descriptor must be required")
		}
		obj := typeval.ObjectType(map[string]any{"n": d})
		if errs := typeval.TypeErrors(obj, map[string]any{}); len(errs) != 1 || errs[0].Code != typeval.CodeRequired {
			t.Fatalf("missing key: got %v, want one required error", errs)
		}
		if errs := typeval.TypeErrors(obj, map[string]any{"n": "x"}); len(errs) != 1 || errs[0].Code != typeval.CodeTypeOf {
			t.Fatalf("wrong kind: got %v, want one typeof error", errs)
		}
		if !typeval.IsValid(obj, map[string]any{"n": 5}) {
			t.Fatalf("conforming value rejected")
		}
	}
}

func TestRequired_DoesNotMutateInput(t *testing.T) {
	base := typeval.TypeOf("number")
	req := typeval.Required(base)
	if base.IsRequired() {
		t.Fatalf("Required must not mutate its input")
	}
	if !req.IsRequired() {
		t.Fatalf("Required result must be marked")
	}
}

func TestDeepNesting_FailsClosedWithCycleCode(t *testing.T) {
	desc := typeval.TypeObject("any")
	for i := 0; i < typeval.MaxDepth+20; i++ {
		desc = typeval.ObjectType(map[string]any{"child": desc})
	}
	value := map[string]any{}
	value["child"] = value
	errs := typeval.TypeErrors(desc, value)
	if len(errs) != 1 || errs[0].Code != typeval.CodeCycle {
		t.Fatalf("errs = %v, want a single cycle error", errs)
	}
	if len(errs[0].Path) != typeval.MaxDepth {
		t.Fatalf("cycle error depth = %d, want %d", len(errs[0].Path), typeval.MaxDepth)
	}
}

func TestDescriptorReuseIsStateless(t *testing.T) {
	d := typeval.ObjectType(map[string]any{"n": typeval.Required("number")})
	bad := map[string]any{"n": "x"}
	good := map[string]any{"n": 1}
	for i := 0; i < 3; i++ {
		if len(typeval.TypeErrors(d, bad)) != 1 {
			t.Fatalf("iteration %d: expected one error for bad value", i)
		}
		if !typeval.IsValid(d, good) {
			t.Fatalf("iteration %d: good value rejected after a failing call", i)
		}
	}
}
