package typeval

import (
	"fmt"
	"strings"
)

// TypeObject normalizes any accepted type description into a *Type
// descriptor:
//
//	*Type                       passed through unchanged (idempotent)
//	"string", "number|null!"    kind-name string; '|' separates alternative
//	                            kinds and a trailing '!' marks required
//	[]any{elem}                 sugar for ArrayType(elem)
//	func forms                  wrapped via Validate
//
// Any other description panics: descriptions are authored by programmers and
// misuse is a build-time error.
func TypeObject(description any) *Type {
	switch d := description.(type) {
	case *Type:
		return d
	case string:
		return typeFromString(d)
	case []any:
		if len(d) != 1 {
			panic(fmt.Sprintf("typeval: TypeObject: array shorthand must contain exactly one element, got %d", len(d)))
		}
		return ArrayType(d[0])
	case ValidateFunc:
		return Validate(d)
	case func(v any, p Path) any:
		return Validate(ValidateFunc(d))
	case func(v any) bool:
		return Validate(d)
	case func(v any) error:
		return Validate(d)
	case func(v any) any:
		return Validate(d)
	case nil:
		panic("typeval: TypeObject: nil type description")
	default:
		panic(fmt.Sprintf("typeval: TypeObject: unsupported type description %T", description))
	}
}

// typeFromString parses the string form: optional trailing '!' required
// marker, then one or more kind names separated by '|'.
func typeFromString(s string) *Type {
	src := s
	required := strings.HasSuffix(s, "!")
	if required {
		s = strings.TrimSuffix(s, "!")
	}
	if strings.TrimSpace(s) == "" {
		panic(fmt.Sprintf("typeval: TypeObject: blank type description %q", src))
	}
	kinds := strings.Split(s, "|")
	for _, k := range kinds {
		if strings.TrimSpace(k) == "" {
			panic(fmt.Sprintf("typeval: TypeObject: blank kind in type description %q", src))
		}
	}
	if required {
		return TypeOf(kinds, Options{"isRequired": true})
	}
	return TypeOf(kinds)
}
