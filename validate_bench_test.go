package typeval_test

import (
	"testing"

	typeval "github.com/reoring/typeval"
)

var benchDescription = typeval.ObjectType(map[string]any{
	"id":       typeval.Required("number"),
	"username": typeval.Required(typeval.StringType(typeval.Options{"minLength": 3, "maxLength": 32, "pattern": "^[a-z][a-z0-9_]*$"})),
	"email":    typeval.StringType(typeval.Options{"pattern": "^[^@]+@[^@]+$"}),
	"status":   typeval.Enum([]any{"active", "inactive", "banned"}),
	"tags":     typeval.ArrayType("string", typeval.Options{"maxItems": 8}),
	"profile": typeval.ObjectType(map[string]any{
		"age":  typeval.NumberType(typeval.Options{"minimum": 0, "maximum": 150}),
		"name": "string",
	}),
}, typeval.Options{"additionalProperties": false})

var benchValue = map[string]any{
	"id":       int64(42),
	"username": "john_doe",
	"email":    "john@example.com",
	"status":   "active",
	"tags":     []any{"a", "b", "c"},
	"profile":  map[string]any{"age": 30, "name": "John"},
}

var benchInvalid = map[string]any{
	"id":       "42",
	"username": "J",
	"status":   "gone",
	"tags":     []any{"a", 2},
	"profile":  map[string]any{"age": -1},
}

func BenchmarkTypeErrors_Valid(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if errs := typeval.TypeErrors(benchDescription, benchValue); errs != nil {
			b.Fatalf("unexpected errors: %v", errs)
		}
	}
}

func BenchmarkTypeErrors_Invalid(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if errs := typeval.TypeErrors(benchDescription, benchInvalid); len(errs) == 0 {
			b.Fatalf("expected errors")
		}
	}
}
