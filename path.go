package typeval

import (
	"strconv"
	"strings"
)

// Path locates a nested failure within a root value as an ordered sequence of
// property-name (string) and array-index (int) segments. A nil Path denotes
// the root. Paths are copy-on-append, so a Path handed to child validation
// never aliases its parent's backing array.
type Path []any

// Field returns a new Path extended by a property name.
func (p Path) Field(name string) Path {
	cp := make(Path, len(p), len(p)+1)
	copy(cp, p)
	return append(cp, name)
}

// Index returns a new Path extended by an array index.
func (p Path) Index(i int) Path {
	cp := make(Path, len(p), len(p)+1)
	copy(cp, p)
	return append(cp, i)
}

// Pointer renders the path as a JSON Pointer (for example: /items/2/price).
// Property names are escaped per RFC 6901 ('~' -> '~0', '/' -> '~1').
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, seg := range p {
		b.WriteByte('/')
		switch s := seg.(type) {
		case string:
			b.WriteString(strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1"))
		case int:
			b.WriteString(strconv.Itoa(s))
		default:
			b.WriteString("?")
		}
	}
	return b.String()
}

func (p Path) String() string { return p.Pointer() }
