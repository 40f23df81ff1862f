package typeval

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/reoring/typeval/i18n"
)

// StringType returns a descriptor restricted to string values with optional
// minLength, maxLength and pattern constraints. Lengths are counted in runes.
// All violated constraints are reported as separate errors, not just the
// first. The pattern option accepts a string source or a *regexp.Regexp;
// string sources are compiled once here, never in the validation path.
func StringType(opts ...Options) *Type {
	o := mergeOptions(opts)
	mustOptions("StringType", o, optionShape{
		"minLength": "number",
		"maxLength": "number",
		"pattern":   "string|regexp",
	})
	minLen, hasMin := o.intOption("minLength")
	maxLen, hasMax := o.intOption("maxLength")
	var re *regexp.Regexp
	switch p := o["pattern"].(type) {
	case string:
		var err error
		re, err = regexp.Compile(p)
		if err != nil {
			panic(fmt.Sprintf("typeval: StringType: invalid pattern %q: %v", p, err))
		}
	case *regexp.Regexp:
		re = p
	}

	t := &Type{Kinds: []string{KindString}, Options: o.freeze(), Arg: KindString}
	t.applyMeta(o, "string")
	if t.Description == "" {
		t.Description = describeConstraints("a string", o, "minLength", "maxLength", "pattern")
	}
	t.Validate = func(v any, p Path) any {
		s, ok := stringValue(v)
		if !ok {
			return ErrorList{typeofError(t, v, p)}
		}
		var errs ErrorList
		n := utf8.RuneCountInString(s)
		if hasMin && n < minLen {
			errs = AppendErrors(errs, &Error{
				Message: i18n.T(CodeMinLength, map[string]string{"min": strconv.Itoa(minLen)}),
				Type:    t, Value: v, Path: p, Code: CodeMinLength,
			})
		}
		if hasMax && n > maxLen {
			errs = AppendErrors(errs, &Error{
				Message: i18n.T(CodeMaxLength, map[string]string{"max": strconv.Itoa(maxLen)}),
				Type:    t, Value: v, Path: p, Code: CodeMaxLength,
			})
		}
		if re != nil && !re.MatchString(s) {
			errs = AppendErrors(errs, &Error{
				Message: i18n.T(CodePattern, map[string]string{"pattern": re.String()}),
				Type:    t, Value: v, Path: p, Code: CodePattern,
			})
		}
		if len(errs) > 0 {
			return errs
		}
		return nil
	}
	return t
}

// NumberType returns a descriptor restricted to number values with optional
// minimum and maximum constraints; all violated constraints are reported.
// NaN is classified as its own kind and therefore rejected by the kind gate.
func NumberType(opts ...Options) *Type {
	o := mergeOptions(opts)
	mustOptions("NumberType", o, optionShape{
		"minimum": "number",
		"maximum": "number",
	})
	min, hasMin := o.floatOption("minimum")
	max, hasMax := o.floatOption("maximum")

	t := &Type{Kinds: []string{KindNumber}, Options: o.freeze(), Arg: KindNumber}
	t.applyMeta(o, "number")
	if t.Description == "" {
		t.Description = describeConstraints("a number", o, "minimum", "maximum")
	}
	t.Validate = func(v any, p Path) any {
		f, ok := numberOf(v)
		if !ok {
			return ErrorList{typeofError(t, v, p)}
		}
		var errs ErrorList
		if hasMin && f < min {
			errs = AppendErrors(errs, &Error{
				Message: i18n.T(CodeMinimum, map[string]string{"min": formatFloat(min)}),
				Type:    t, Value: v, Path: p, Code: CodeMinimum,
			})
		}
		if hasMax && f > max {
			errs = AppendErrors(errs, &Error{
				Message: i18n.T(CodeMaximum, map[string]string{"max": formatFloat(max)}),
				Type:    t, Value: v, Path: p, Code: CodeMaximum,
			})
		}
		if len(errs) > 0 {
			return errs
		}
		return nil
	}
	return t
}

// Enum returns a descriptor accepting only strict members of values. The
// failure message lists the allowed values verbatim, comma-joined, in
// declaration order. An empty value list panics.
func Enum(values []any, opts ...Options) *Type {
	if len(values) == 0 {
		panic("typeval: Enum: values must be a non-empty list")
	}
	o := mergeOptions(opts)
	mustOptions("Enum", o, optionShape{})
	allowed := append([]any(nil), values...)
	listed := joinValues(allowed)

	t := &Type{Options: o.freeze(), Enum: allowed, Arg: allowed}
	t.applyMeta(o, "enum")
	if t.Description == "" {
		t.Description = "one of: " + listed
	}
	t.Validate = func(v any, p Path) any {
		for _, a := range allowed {
			if equalValue(v, a) {
				return nil
			}
		}
		return ErrorList{{
			Message: i18n.T(CodeEnum, map[string]string{"allowed": listed}),
			Type:    t, Value: v, Path: p, Code: CodeEnum,
		}}
	}
	return t
}

// InstanceOf returns a descriptor whose values must nominally be instances of
// the given class reference: a reflect.Type or any sample value of the target
// type. Pointer values match their element type. A nil reference panics.
func InstanceOf(class any, opts ...Options) *Type {
	if class == nil {
		panic("typeval: InstanceOf: nil class reference")
	}
	target, ok := class.(reflect.Type)
	if !ok {
		target = reflect.TypeOf(class)
	}
	if target.Kind() == reflect.Pointer {
		target = target.Elem()
	}
	o := mergeOptions(opts)
	mustOptions("InstanceOf", o, optionShape{})

	t := &Type{Options: o.freeze(), Arg: target}
	t.applyMeta(o, target.String())
	if t.Description == "" {
		t.Description = "an instance of " + target.String()
	}
	t.Validate = func(v any, p Path) any {
		if isInstance(v, target) {
			return nil
		}
		return ErrorList{{
			Message: i18n.T(CodeInstanceOf, map[string]string{"expected": target.String()}),
			Type:    t, Value: v, Path: p, Code: CodeInstanceOf,
		}}
	}
	return t
}

func isInstance(v any, target reflect.Type) bool {
	if v == nil {
		return false
	}
	rt := reflect.TypeOf(v)
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == target {
		return true
	}
	if target.Kind() == reflect.Interface {
		return reflect.TypeOf(v).Implements(target) ||
			reflect.PointerTo(reflect.TypeOf(v)).Implements(target)
	}
	return false
}

// describeConstraints derives the auto description from constraint options,
// listed in the given key order.
func describeConstraints(base string, o Options, keys ...string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if v, ok := o[k]; ok {
			parts = append(parts, fmt.Sprintf("%s: %v", k, v))
		}
	}
	if len(parts) == 0 {
		return base
	}
	return base + " (" + strings.Join(parts, ", ") + ")"
}

func joinValues(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatValue(v)
	}
	return strings.Join(parts, ", ")
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
