package typeval

import (
	"strings"

	"github.com/reoring/typeval/i18n"
)

// AllOf returns an intersection descriptor: every member must validate.
// Members run in declaration order and evaluation stops at the first failing
// member, whose error set is returned as-is.
func AllOf(types []any, opts ...Options) *Type {
	members := normalizeMembers("AllOf", types)
	o := mergeOptions(opts)
	mustOptions("AllOf", o, optionShape{})

	t := &Type{Options: o.freeze(), Arg: members}
	t.applyMeta(o, "allOf")
	if t.Description == "" {
		t.Description = joinMemberLabels(members, " and ")
	}
	t.Validate = func(v any, p Path) any {
		for _, m := range members {
			if errs := errorsAt(m, v, p); len(errs) > 0 {
				return errs
			}
		}
		return nil
	}
	return t
}

// AnyOf returns a union descriptor: the first member that validates cleanly
// wins. When no member matches, a single synthetic error names the union by
// its member descriptions; individual member failures are deliberately not
// surfaced, since the cross product of every branch's errors is noise.
func AnyOf(types []any, opts ...Options) *Type {
	members := normalizeMembers("AnyOf", types)
	o := mergeOptions(opts)
	mustOptions("AnyOf", o, optionShape{})
	labels := joinMemberLabels(members, ", ")

	t := &Type{Options: o.freeze(), Arg: members}
	t.applyMeta(o, "anyOf")
	if t.Description == "" {
		t.Description = "any of: " + labels
	}
	t.Validate = func(v any, p Path) any {
		for _, m := range members {
			if len(errorsAt(m, v, p)) == 0 {
				return nil
			}
		}
		return ErrorList{{
			Message: i18n.T("anyOf", map[string]string{"types": labels}),
			Type:    t, Value: v, Path: p,
		}}
	}
	return t
}

func normalizeMembers(ctor string, types []any) []*Type {
	if len(types) == 0 {
		panic("typeval: " + ctor + ": member types must be a non-empty list")
	}
	members := make([]*Type, len(types))
	for i, d := range types {
		members[i] = TypeObject(d)
	}
	return members
}

func joinMemberLabels(members []*Type, sep string) string {
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = m.label()
	}
	return strings.Join(parts, sep)
}
