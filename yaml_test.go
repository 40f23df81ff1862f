package typeval_test

import (
	"testing"

	typeval "github.com/reoring/typeval"
)

func TestValidateYAML_Valid(t *testing.T) {
	doc := []byte("username: john\nage: 30\nstatus: active\n")
	if err := typeval.ValidateYAML(userDescription, doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateYAML_Invalid(t *testing.T) {
	doc := []byte("username: j\nstatus: gone\n")
	err := typeval.ValidateYAML(userDescription, doc)
	el, ok := typeval.AsErrorList(err)
	if !ok {
		t.Fatalf("expected ErrorList, got %T: %v", err, err)
	}
	findError(t, el, "/username", typeval.CodeMinLength)
	findError(t, el, "/status", typeval.CodeEnum)
}

func TestValidateYAML_NestedSequences(t *testing.T) {
	d := typeval.ObjectType(map[string]any{
		"tags": typeval.ArrayType("string", typeval.Options{"minItems": 1}),
	})
	if err := typeval.ValidateYAML(d, []byte("tags:\n  - a\n  - b\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := typeval.ValidateYAML(d, []byte("tags:\n  - a\n  - 2\n"))
	el, ok := typeval.AsErrorList(err)
	if !ok || len(el) != 1 {
		t.Fatalf("errs = %v, want one", err)
	}
	if el[0].Path.Pointer() != "/tags/1" {
		t.Fatalf("path = %s, want /tags/1", el[0].Path.Pointer())
	}
}

func TestValidateYAML_MalformedDocument(t *testing.T) {
	err := typeval.ValidateYAML(userDescription, []byte("username: [unclosed"))
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if _, ok := typeval.AsErrorList(err); ok {
		t.Fatalf("decode failures must not masquerade as validation errors")
	}
}
