package typeval

import "regexp"

// ValidateFunc is the per-descriptor validation routine: a pure function from
// (value, path) to one of the recognized result shapes. The Validation Driver
// normalizes every shape into the Error model:
//
//	nil or true          valid
//	false                invalid with a generic "is invalid" message
//	string               invalid with that message
//	*Error / error       invalid, one specific error
//	ErrorList, []*Error,
//	[]string, []any      invalid, one or more specific errors
type ValidateFunc func(v any, p Path) any

// Pattern pairs a compiled regular expression with the descriptor applied to
// matching keys. Patterns are compiled once at descriptor construction.
type Pattern struct {
	Source string
	Regexp *regexp.Regexp
	Type   *Type
}

// Type is the uniform descriptor every accepted type description normalizes
// into. Descriptors are immutable after construction: validation never
// mutates them, and the same descriptor may be used concurrently from
// independent call sites. Treat all fields as read-only.
type Type struct {
	// Kinds restricts accepted values to the listed canonical kinds; empty
	// means unrestricted and "any" matches everything. The driver
	// short-circuits with a typeof error before invoking Validate.
	Kinds []string

	Name        string
	Title       string
	Description string

	// Options is the frozen configuration supplied at construction, including
	// the shared cross-cutting keys name, title, description and isRequired.
	Options Options

	// Validate is the descriptor's validation routine; nil for descriptors
	// that are a pure kind restriction.
	Validate ValidateFunc

	// Composite-specific attributes.
	Properties           map[string]*Type
	Items                *Type
	Patterns             []Pattern
	Required             []string
	AdditionalProperties bool
	Enum                 []any
	// Arg records the backing kind name(s) or class reference.
	Arg any
}

// IsRequired reports whether the descriptor was marked required, either via
// the isRequired option or the Required decorator.
func (t *Type) IsRequired() bool {
	b, _ := t.Options["isRequired"].(bool)
	return b
}

// label picks the human-facing identifier used in messages.
func (t *Type) label() string {
	if t.Title != "" {
		return t.Title
	}
	if t.Name != "" {
		return t.Name
	}
	if t.Description != "" {
		return t.Description
	}
	return "value"
}

// applyMeta populates Name/Title/Description from options with constructor
// defaults. Descriptions left empty here are auto-derived by the constructor
// from its constraint options.
func (t *Type) applyMeta(o Options, defaultName string) {
	t.Name = defaultName
	if s, ok := o["name"].(string); ok && s != "" {
		t.Name = s
	}
	if s, ok := o["title"].(string); ok {
		t.Title = s
	}
	if s, ok := o["description"].(string); ok {
		t.Description = s
	}
}
