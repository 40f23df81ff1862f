package typeval

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Options configures a descriptor constructor. Every constructor recognizes
// the shared keys "name", "title", "description" and "isRequired" in addition
// to its own constraints; unrecognized keys panic at construction time.
type Options map[string]any

// optionShape declares the keys a constructor accepts beyond the shared ones.
// A string value names the expected kind(s) of the option ("number",
// "string|regexp"); a one-element []string denotes an array whose every item
// must have that kind.
type optionShape map[string]any

// sharedOptionKinds are always allowed regardless of the constructor's shape.
var sharedOptionKinds = map[string]string{
	"name":        KindString,
	"title":       KindString,
	"description": KindString,
	"isRequired":  KindBoolean,
}

// mergeOptions flattens variadic options, later maps overriding earlier ones.
func mergeOptions(opts []Options) Options {
	out := Options{}
	for _, o := range opts {
		for k, v := range o {
			out[k] = v
		}
	}
	return out
}

// mustOptions is the build-time contract check on schema authors: every key
// present in opts must be declared by shape (or be a shared key) and carry a
// value of the declared kind. It panics on violation and never feeds the
// data-validation error stream.
func mustOptions(ctor string, opts Options, shape optionShape) {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := opts[k]
		if kind, ok := sharedOptionKinds[k]; ok {
			mustOptionKind(ctor, k, v, kind)
			continue
		}
		decl, ok := shape[k]
		if !ok {
			panic(fmt.Sprintf("typeval: %s: unrecognized option %q", ctor, k))
		}
		switch d := decl.(type) {
		case string:
			mustOptionKind(ctor, k, v, d)
		case []string:
			if len(d) != 1 {
				panic(fmt.Sprintf("typeval: %s: malformed shape for option %q", ctor, k))
			}
			if KindOf(v) != KindArray {
				panic(fmt.Sprintf("typeval: %s: option %q must be an array of %s, got %s", ctor, k, d[0], KindOf(v)))
			}
			for i, item := range anySlice(v) {
				if !matchKinds(item, strings.Split(d[0], "|")) {
					panic(fmt.Sprintf("typeval: %s: option %q item %d must be of kind %q, got %q", ctor, k, i, d[0], KindOf(item)))
				}
			}
		default:
			panic(fmt.Sprintf("typeval: %s: malformed shape for option %q", ctor, k))
		}
	}
}

func mustOptionKind(ctor, key string, v any, kindExpr string) {
	if !matchKinds(v, strings.Split(kindExpr, "|")) {
		panic(fmt.Sprintf("typeval: %s: option %q must be of kind %q, got %q", ctor, key, kindExpr, KindOf(v)))
	}
}

// freeze copies the merged options so later caller mutation of the original
// map cannot leak into the descriptor.
func (o Options) freeze() Options {
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// intOption reads a numeric option as int.
func (o Options) intOption(key string) (int, bool) {
	v, ok := o[key]
	if !ok {
		return 0, false
	}
	f, ok := numberOf(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// floatOption reads a numeric option as float64.
func (o Options) floatOption(key string) (float64, bool) {
	v, ok := o[key]
	if !ok {
		return 0, false
	}
	return numberOf(v)
}

// stringSliceOption reads a []string-ish option ([]string or []any of
// strings).
func (o Options) stringSliceOption(key string) []string {
	v, ok := o[key]
	if !ok {
		return nil
	}
	switch s := v.(type) {
	case []string:
		return append([]string(nil), s...)
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// numberOf extracts a float64 from any numeric kind, including json.Number.
func numberOf(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
