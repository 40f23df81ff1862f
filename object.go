package typeval

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/reoring/typeval/i18n"
)

// ObjectType returns the recursive object descriptor. properties maps
// property names to nested type descriptions, each normalized up front.
// Recognized options beyond the shared keys:
//
//	required              []string: property names that must be present
//	additionalProperties  boolean gate, default true
//	patternProperties     map from regexp source to a type description,
//	                      applied to keys not covered by properties
//
// The effective required set is the union of the required option and of
// properties individually marked required, deduplicated and order-stable
// (explicit entries first, then marked properties in sorted key order).
//
// Validation is exhaustive: every declared property present in the value is
// checked and all resulting errors are collected; missing required keys are
// reported as one error listing every missing key.
func ObjectType(properties map[string]any, opts ...Options) *Type {
	o := mergeOptions(opts)
	mustOptions("ObjectType", o, optionShape{
		"required":             []string{KindString},
		"additionalProperties": KindBoolean,
		"patternProperties":    KindObject,
	})

	props := make(map[string]*Type, len(properties))
	for k, d := range properties {
		props[k] = TypeObject(d)
	}

	required := o.stringSliceOption("required")
	seen := make(map[string]struct{}, len(required))
	for _, k := range required {
		seen[k] = struct{}{}
	}
	for _, k := range sortedKeys(props) {
		if _, dup := seen[k]; !dup && props[k].IsRequired() {
			required = append(required, k)
			seen[k] = struct{}{}
		}
	}

	additional := true
	if b, ok := o["additionalProperties"].(bool); ok {
		additional = b
	}

	patterns := compilePatterns(o["patternProperties"])

	t := &Type{
		Kinds:                []string{KindObject},
		Options:              o.freeze(),
		Properties:           props,
		Patterns:             patterns,
		Required:             required,
		AdditionalProperties: additional,
	}
	t.applyMeta(o, "object")
	if t.Description == "" {
		t.Description = describeObject(props, required, additional)
	}
	t.Validate = func(v any, p Path) any {
		return validateObject(t, v, p)
	}
	return t
}

// ExactObject is ObjectType with additionalProperties forced to false.
func ExactObject(properties map[string]any, opts ...Options) *Type {
	merged := mergeOptions(opts)
	merged["additionalProperties"] = false
	return ObjectType(properties, merged)
}

// ObjectOf validates every value of an arbitrary-keyed mapping against one
// type: ObjectType(nil, {patternProperties: {".*": valueType}}).
func ObjectOf(valueType any, opts ...Options) *Type {
	merged := mergeOptions(opts)
	merged["patternProperties"] = map[string]any{".*": valueType}
	return ObjectType(nil, merged)
}

// validateObject walks an object value: required presence, per-property
// recursion, pattern properties, then the additionalProperties gate. Errors
// are collected exhaustively and flattened one level.
func validateObject(t *Type, v any, p Path) any {
	m, ok := stringKeyedMap(v)
	if !ok {
		return ErrorList{typeofError(t, v, p)}
	}

	var errs ErrorList

	var missing []string
	for _, k := range t.Required {
		if _, present := m[k]; !present {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		errs = AppendErrors(errs, &Error{
			Message: i18n.T(CodeRequired, map[string]string{"keys": strings.Join(missing, ", ")}),
			Type:    t, Value: v, Path: p, Code: CodeRequired,
		})
	}

	for _, k := range sortedKeys(t.Properties) {
		val, present := m[k]
		if !present {
			continue
		}
		errs = AppendErrors(errs, errorsAt(t.Properties[k], val, p.Field(k))...)
	}

	var extras []string
	for _, k := range sortedMapKeys(m) {
		if _, declared := t.Properties[k]; declared {
			continue
		}
		matched := false
		for _, pat := range t.Patterns {
			if pat.Regexp.MatchString(k) {
				errs = AppendErrors(errs, errorsAt(pat.Type, m[k], p.Field(k))...)
				matched = true
				break
			}
		}
		if !matched && !t.AdditionalProperties {
			extras = append(extras, k)
		}
	}
	if len(extras) > 0 {
		errs = AppendErrors(errs, &Error{
			Message: i18n.T(CodeAdditionalProperties, map[string]string{"keys": strings.Join(extras, ", ")}),
			Type:    t, Value: v, Path: p, Code: CodeAdditionalProperties,
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// compilePatterns normalizes a patternProperties option into compiled
// Patterns. Go maps are unordered, so "declaration order" is realized as
// deterministic sorted-source order.
func compilePatterns(v any) []Pattern {
	if v == nil {
		return nil
	}
	m, ok := stringKeyedMap(v)
	if !ok {
		panic("typeval: ObjectType: patternProperties must be a string-keyed map")
	}
	sources := sortedMapKeys(m)
	out := make([]Pattern, 0, len(sources))
	for _, src := range sources {
		re, err := regexp.Compile(src)
		if err != nil {
			panic(fmt.Sprintf("typeval: ObjectType: invalid patternProperties source %q: %v", src, err))
		}
		out = append(out, Pattern{Source: src, Regexp: re, Type: TypeObject(m[src])})
	}
	return out
}

func describeObject(props map[string]*Type, required []string, additional bool) string {
	d := "an object"
	if len(props) > 0 {
		d += " with properties " + strings.Join(sortedKeys(props), ", ")
	}
	if len(required) > 0 {
		d += " (required: " + strings.Join(required, ", ") + ")"
	}
	if !additional {
		d += ", no additional properties"
	}
	return d
}

// sortedKeys returns descriptor-map keys in ascending order for
// deterministic behavior.
func sortedKeys(m map[string]*Type) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedMapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
