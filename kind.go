package typeval

import (
	"encoding/json"
	"math"
	"reflect"
	"regexp"
	"time"
)

// Canonical runtime kinds (exported consts for IDE completion and type safety
// by convention).
const (
	KindAny       = "any"
	KindNull      = "null"
	KindUndefined = "undefined"
	KindBoolean   = "boolean"
	KindString    = "string"
	KindNumber    = "number"
	KindNaN       = "NaN"
	KindArray     = "array"
	KindObject    = "object"
	KindFunction  = "function"
	KindDate      = "date"
	KindError     = "error"
	KindRegexp    = "regexp"
)

// undefinedValue backs the Undefined sentinel.
type undefinedValue struct{}

// Undefined is a sentinel classified as kind "undefined". Go has no undefined
// value; the sentinel lets schemas ported from dynamic environments express a
// present-but-valueless slot. Plain nil classifies as "null".
var Undefined undefinedValue

// KnownKinds returns the canonical kind vocabulary in stable order.
func KnownKinds() []string {
	return []string{
		KindAny, KindNull, KindUndefined, KindBoolean, KindString, KindNumber,
		KindNaN, KindArray, KindObject, KindFunction, KindDate, KindError,
		KindRegexp,
	}
}

// KindOf computes the canonical runtime kind of v. Classification is
// structural/nominal only and never recurses into v's contents, so it is O(1)
// and total over cyclic values.
func KindOf(v any) string {
	if v == nil {
		return KindNull
	}
	switch t := v.(type) {
	case undefinedValue:
		return KindUndefined
	case bool:
		return KindBoolean
	case string:
		return KindString
	case json.Number:
		return KindNumber
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return KindNumber
	case float64:
		if math.IsNaN(t) {
			return KindNaN
		}
		return KindNumber
	case float32:
		if math.IsNaN(float64(t)) {
			return KindNaN
		}
		return KindNumber
	case time.Time:
		return KindDate
	case *time.Time:
		if t == nil {
			return KindNull
		}
		return KindDate
	case *regexp.Regexp:
		if t == nil {
			return KindNull
		}
		return KindRegexp
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return KindNull
		}
	}
	if _, ok := v.(error); ok {
		return KindError
	}
	switch rv.Kind() {
	case reflect.Bool:
		return KindBoolean
	case reflect.String:
		return KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindNumber
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(rv.Float()) {
			return KindNaN
		}
		return KindNumber
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map, reflect.Struct:
		return KindObject
	case reflect.Func:
		return KindFunction
	case reflect.Pointer:
		return KindOf(rv.Elem().Interface())
	default:
		// chan, complex64/128, unsafe pointer: report the reflect kind verbatim.
		return rv.Kind().String()
	}
}

// matchKinds reports whether v's kind is one of kinds; "any" matches every
// value.
func matchKinds(v any, kinds []string) bool {
	k := KindOf(v)
	for _, want := range kinds {
		if want == KindAny || want == k {
			return true
		}
	}
	return false
}
