package typeval

import (
	"fmt"

	"github.com/reoring/typeval/i18n"
)

// MaxDepth is the fail-closed recursion guard. Descriptors are acyclic by
// construction, so validation depth is bounded by schema depth; values nested
// (or cyclic) beyond this limit yield a single error with code "cycle" at the
// offending path.
const MaxDepth = 128

// TypeErrors normalizes description, validates value against it from the
// root, and returns the complete ordered error sequence, or nil when the
// value conforms.
func TypeErrors(description, value any) ErrorList {
	return errorsAt(TypeObject(description), value, nil)
}

// IsValid reports whether value conforms to description.
func IsValid(description, value any) bool {
	return len(TypeErrors(description, value)) == 0
}

// AssertType returns nil when value conforms to description, and otherwise a
// single aggregating *Error whose Errors field carries the full sequence.
func AssertType(description, value any) error {
	t := TypeObject(description)
	errs := errorsAt(t, value, nil)
	if len(errs) == 0 {
		return nil
	}
	return &Error{
		Message: fmt.Sprintf("%d validation error(s): %s", len(errs), errs.Error()),
		Type:    t,
		Value:   value,
		Errors:  errs,
	}
}

// AssertOptions validates a plain configuration object against a declared
// property-type shape by bridging onto the general engine: shape values are
// ordinary type descriptions, unknown keys are rejected, and the shared
// cross-cutting keys (name, title, description, isRequired) are always
// allowed.
func AssertOptions(options Options, shape map[string]any) error {
	props := make(map[string]any, len(shape)+len(sharedOptionKinds))
	for k, kind := range sharedOptionKinds {
		props[k] = kind
	}
	for k, d := range shape {
		props[k] = d
	}
	obj := ObjectType(props, Options{"additionalProperties": false})
	return AssertType(obj, map[string]any(options))
}

// errorsAt runs one descriptor against one value at the given path: depth
// guard, kind gate, then the descriptor routine with its raw result
// normalized into the Error model.
func errorsAt(t *Type, v any, p Path) ErrorList {
	if len(p) >= MaxDepth {
		return ErrorList{{
			Message: i18n.T(CodeCycle, nil),
			Type:    t, Value: v, Path: p, Code: CodeCycle,
		}}
	}
	if len(t.Kinds) > 0 && !matchKinds(v, t.Kinds) {
		return ErrorList{typeofError(t, v, p)}
	}
	if t.Validate == nil {
		return nil
	}
	return normalizeResult(t, v, p, t.Validate(v, p))
}

// normalizeResult converts the closed set of validation-routine result shapes
// into an ErrorList (see ValidateFunc). Unknown shapes are programmer errors.
func normalizeResult(t *Type, v any, p Path, res any) ErrorList {
	switch r := res.(type) {
	case nil:
		return nil
	case bool:
		if r {
			return nil
		}
		return ErrorList{invalidError(t, v, p)}
	case string:
		return ErrorList{{Message: r, Type: t, Value: v, Path: p}}
	case *Error:
		return ErrorList{fillError(r, t, v, p)}
	case ErrorList:
		return fillErrors(r, t, v, p)
	case []*Error:
		return fillErrors(r, t, v, p)
	case []string:
		out := make(ErrorList, 0, len(r))
		for _, msg := range r {
			out = append(out, &Error{Message: msg, Type: t, Value: v, Path: p})
		}
		return out
	case []any:
		var out ErrorList
		for _, item := range r {
			out = append(out, normalizeResult(t, v, p, item)...)
		}
		return out
	case error:
		if el, ok := AsErrorList(r); ok {
			return fillErrors(el, t, v, p)
		}
		return ErrorList{{Message: r.Error(), Type: t, Value: v, Path: p}}
	default:
		panic(fmt.Sprintf("typeval: unsupported validation result %T", res))
	}
}

func invalidError(t *Type, v any, p Path) *Error {
	return &Error{Message: i18n.T("invalid", nil), Type: t, Value: v, Path: p}
}

// fillError propagates context into an error that does not already carry a
// more specific one.
func fillError(e *Error, t *Type, v any, p Path) *Error {
	if e.Path == nil {
		e.Path = p
	}
	if e.Type == nil {
		e.Type = t
	}
	if e.Value == nil {
		e.Value = v
	}
	return e
}

func fillErrors(el ErrorList, t *Type, v any, p Path) ErrorList {
	if len(el) == 0 {
		return nil
	}
	for _, e := range el {
		fillError(e, t, v, p)
	}
	return el
}
