package typeval

import (
	"errors"
	"fmt"
	"strings"
)

// Failure codes (exported consts for IDE completion and type safety by
// convention).
const (
	CodeTypeOf               = "typeof"
	CodeMinLength            = "minLength"
	CodeMaxLength            = "maxLength"
	CodePattern              = "pattern"
	CodeMinimum              = "minimum"
	CodeMaximum              = "maximum"
	CodeMinItems             = "minItems"
	CodeMaxItems             = "maxItems"
	CodeEnum                 = "enum"
	CodeInstanceOf           = "instanceof"
	CodeRequired             = "required"
	CodeAdditionalProperties = "additionalProperties"
	// CodeCycle is produced when validation exceeds MaxDepth, the fail-closed
	// guard against cyclic or pathologically deep values.
	CodeCycle = "cycle"
)

// Error is a single validation failure. Custom predicate failures carry an
// empty Code.
type Error struct {
	Message string `json:"message"`
	// Type is the descriptor responsible for the failure.
	Type *Type `json:"-"`
	// Value is the offending value as given; it may be a sub-value of a larger
	// structure.
	Value any `json:"value,omitempty"`
	// Path locates the failure inside the root value; nil at the root.
	Path Path   `json:"path,omitempty"`
	Code string `json:"code,omitempty"`
	// Errors carries nested child errors, used by AssertType to bundle the
	// full failure sequence under one returned error.
	Errors ErrorList `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s at %s", e.Code, e.Path.Pointer())
	}
	if len(e.Path) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s at %s", e.Message, e.Path.Pointer())
}

// ErrorAt creates an Error at the given path with the provided code and
// message.
func ErrorAt(p Path, code, msg string) *Error {
	return &Error{Path: p, Code: code, Message: msg}
}

// ErrorList is an ordered sequence of validation errors that implements
// error.
type ErrorList []*Error

// Error summarizes the first few entries.
func (el ErrorList) Error() string {
	if len(el) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(el)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		e := el[i]
		code := e.Code
		if code == "" {
			code = "invalid"
		}
		fmt.Fprintf(b, "%s at %s", code, e.Path.Pointer())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendErrors appends errors to the destination, initializing the slice when
// needed.
func AppendErrors(dst ErrorList, more ...*Error) ErrorList {
	if dst == nil {
		dst = ErrorList{}
	}
	return append(dst, more...)
}

// AsErrorList extracts an ErrorList from an error using errors.As internally.
// A bare *Error produced by AssertType unwraps to its child sequence.
func AsErrorList(err error) (ErrorList, bool) {
	if err == nil {
		return nil, false
	}
	var el ErrorList
	if errors.As(err, &el) {
		return el, true
	}
	var e *Error
	if errors.As(err, &e) {
		if len(e.Errors) > 0 {
			return e.Errors, true
		}
		return ErrorList{e}, true
	}
	return nil, false
}
