package typeval_test

import (
	"encoding/json"
	"testing"

	typeval "github.com/reoring/typeval"
)

var userDescription = typeval.ObjectType(map[string]any{
	"username": typeval.Required(typeval.StringType(typeval.Options{"minLength": 3})),
	"age":      typeval.NumberType(typeval.Options{"minimum": 0}),
	"status":   typeval.Enum([]any{"active", "inactive"}),
})

func TestValidateJSON_Valid(t *testing.T) {
	body := []byte(`{"username":"john","age":30,"status":"active"}`)
	if err := typeval.ValidateJSON(userDescription, body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateJSON_InvalidYieldsErrorList(t *testing.T) {
	body := []byte(`{"username":"j","age":-1,"status":"gone"}`)
	err := typeval.ValidateJSON(userDescription, body)
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	el, ok := typeval.AsErrorList(err)
	if !ok {
		t.Fatalf("expected ErrorList, got %T: %v", err, err)
	}
	if len(el) != 3 {
		t.Fatalf("errs = %v, want three", el)
	}
	findError(t, el, "/username", typeval.CodeMinLength)
	findError(t, el, "/age", typeval.CodeMinimum)
	findError(t, el, "/status", typeval.CodeEnum)
}

func TestValidateJSON_MalformedDocument(t *testing.T) {
	err := typeval.ValidateJSON(userDescription, []byte(`{"username":`))
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if _, ok := typeval.AsErrorList(err); ok {
		t.Fatalf("decode failures must not masquerade as validation errors")
	}
}

func TestDecodeJSON_PreservesNumbers(t *testing.T) {
	v, err := typeval.DecodeJSON([]byte(`{"n": 12345678901234567890}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := v.(map[string]any)
	if _, ok := m["n"].(json.Number); !ok {
		t.Fatalf("numbers must decode as json.Number, got %T", m["n"])
	}
	if got := typeval.KindOf(m["n"]); got != "number" {
		t.Fatalf("KindOf(json.Number) = %q, want number", got)
	}
}
