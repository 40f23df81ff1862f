package typeval

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/reoring/typeval/i18n"
)

// TypeOf returns the minimal kind-restriction descriptor. kind is a single
// kind name (optionally "a|b" for alternatives) or a []string of kind names.
// A blank argument panics.
func TypeOf(kind any, opts ...Options) *Type {
	var kinds []string
	switch k := kind.(type) {
	case string:
		if strings.TrimSpace(k) == "" {
			panic("typeval: TypeOf: blank kind")
		}
		kinds = strings.Split(k, "|")
	case []string:
		kinds = append([]string(nil), k...)
	default:
		panic(fmt.Sprintf("typeval: TypeOf: kind must be a string or []string, got %T", kind))
	}
	if len(kinds) == 0 {
		panic("typeval: TypeOf: empty kind list")
	}
	for i, k := range kinds {
		kinds[i] = strings.TrimSpace(k)
		if kinds[i] == "" {
			panic("typeval: TypeOf: blank kind")
		}
	}
	o := mergeOptions(opts)
	mustOptions("TypeOf", o, optionShape{})
	t := &Type{Kinds: kinds, Options: o.freeze(), Arg: kind}
	t.applyMeta(o, strings.Join(kinds, "|"))
	if t.Description == "" {
		t.Description = "value of kind " + strings.Join(kinds, "|")
	}
	return t
}

// BoolType is sugar for a kind-restriction-only descriptor over boolean.
func BoolType(opts ...Options) *Type {
	o := mergeOptions(opts)
	mustOptions("BoolType", o, optionShape{})
	t := &Type{Kinds: []string{KindBoolean}, Options: o.freeze(), Arg: KindBoolean}
	t.applyMeta(o, "boolean")
	if t.Description == "" {
		t.Description = "a boolean"
	}
	return t
}

// NullType is sugar for a kind-restriction-only descriptor over null.
func NullType(opts ...Options) *Type {
	o := mergeOptions(opts)
	mustOptions("NullType", o, optionShape{})
	t := &Type{Kinds: []string{KindNull}, Options: o.freeze(), Arg: KindNull}
	t.applyMeta(o, "null")
	if t.Description == "" {
		t.Description = "null"
	}
	return t
}

// Validate wraps an arbitrary predicate or error-producing function as a
// descriptor. Accepted forms:
//
//	func(v any) bool
//	func(v any) error
//	func(v any) any
//	func(v any, p Path) any   (ValidateFunc)
//
// The function's own name, when resolvable, becomes the default title.
func Validate(fn any, opts ...Options) *Type {
	if fn == nil {
		panic("typeval: Validate: nil function")
	}
	var vf ValidateFunc
	switch f := fn.(type) {
	case ValidateFunc:
		vf = f
	case func(v any, p Path) any:
		vf = f
	case func(v any) bool:
		vf = func(v any, _ Path) any { return f(v) }
	case func(v any) error:
		vf = func(v any, _ Path) any {
			if err := f(v); err != nil {
				return err
			}
			return nil
		}
	case func(v any) any:
		vf = func(v any, _ Path) any { return f(v) }
	default:
		panic(fmt.Sprintf("typeval: Validate: unsupported function form %T", fn))
	}
	o := mergeOptions(opts)
	mustOptions("Validate", o, optionShape{})
	t := &Type{Options: o.freeze(), Validate: vf, Arg: fn}
	t.applyMeta(o, "validate")
	if t.Title == "" {
		if name := funcName(fn); name != "" {
			t.Title = name
		}
	}
	if t.Description == "" {
		t.Description = "satisfies " + t.label()
	}
	return t
}

// funcName resolves the bare name of fn, stripping package path and
// anonymous-function suffixes like ".func1".
func funcName(fn any) string {
	pc := reflect.ValueOf(fn).Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if strings.HasPrefix(name, "func") {
		return ""
	}
	return name
}

// Required returns a new descriptor identical to the normalized input but
// with isRequired set. The input descriptor is not mutated.
func Required(description any) *Type {
	t := TypeObject(description)
	c := *t
	o := t.Options.freeze()
	o["isRequired"] = true
	c.Options = o
	return &c
}

// typeofError builds the kind-mismatch error the driver short-circuits with.
func typeofError(t *Type, v any, p Path) *Error {
	expected := strings.Join(t.Kinds, "|")
	return &Error{
		Message: i18n.T(CodeTypeOf, map[string]string{"expected": expected}),
		Type:    t,
		Value:   v,
		Path:    p,
		Code:    CodeTypeOf,
	}
}
