// Package typeval is a runtime value-validation engine. A declarative type
// description (a kind-name string such as "string|number!", a predicate
// function, a composite combinator, or a nested object/array description) is
// normalized into a uniform *Type descriptor, and values are walked against
// that descriptor to produce a structured, path-annotated ErrorList.
//
// Descriptors are immutable after construction and safe for concurrent use;
// validation never mutates or coerces the input value. Data-validation
// failures are returned (never panicked), while constructor misuse (unknown
// options, bad arguments) panics at build time.
//
// The quickest entry points are TypeErrors, IsValid and AssertType:
//
//	user := typeval.ObjectType(map[string]any{
//		"username": typeval.Required(typeval.StringType(typeval.Options{"minLength": 3})),
//		"status":   typeval.Enum([]any{"active", "inactive"}),
//	})
//	errs := typeval.TypeErrors(user, map[string]any{"username": "j", "status": "foobar"})
package typeval
