package typeval

import (
	"strconv"

	"github.com/reoring/typeval/i18n"
)

// ArrayType returns a descriptor for arrays whose every element matches
// items (normalized once). Validation never short-circuits: every element is
// checked with the path extended by its index, then minItems/maxItems are
// appended at the array's own path.
func ArrayType(items any, opts ...Options) *Type {
	elem := TypeObject(items)
	o := mergeOptions(opts)
	mustOptions("ArrayType", o, optionShape{
		"minItems": "number",
		"maxItems": "number",
	})
	minItems, hasMin := o.intOption("minItems")
	maxItems, hasMax := o.intOption("maxItems")

	t := &Type{Kinds: []string{KindArray}, Options: o.freeze(), Items: elem, Arg: elem}
	t.applyMeta(o, "array")
	if t.Description == "" {
		t.Description = describeConstraints("an array of "+elem.label(), o, "minItems", "maxItems")
	}
	t.Validate = func(v any, p Path) any {
		s := anySlice(v)
		if s == nil {
			return ErrorList{typeofError(t, v, p)}
		}
		var errs ErrorList
		for i, item := range s {
			errs = AppendErrors(errs, errorsAt(elem, item, p.Index(i))...)
		}
		if hasMin && len(s) < minItems {
			errs = AppendErrors(errs, &Error{
				Message: i18n.T(CodeMinItems, map[string]string{"min": strconv.Itoa(minItems)}),
				Type:    t, Value: v, Path: p, Code: CodeMinItems,
			})
		}
		if hasMax && len(s) > maxItems {
			errs = AppendErrors(errs, &Error{
				Message: i18n.T(CodeMaxItems, map[string]string{"max": strconv.Itoa(maxItems)}),
				Type:    t, Value: v, Path: p, Code: CodeMaxItems,
			})
		}
		if len(errs) > 0 {
			return errs
		}
		return nil
	}
	return t
}
