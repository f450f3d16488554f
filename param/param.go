// SPDX-License-Identifier: EPL-2.0

package param

import (
	"strings"

	"github.com/ik5/audfx/utils"
)

// Kind is the value type of a parameter field.
type Kind int

const (
	String Kind = iota
	Float
	Bool
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Float:
		return "float"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Field describes one named effect parameter: its kind, default value and
// bounds. Fields are declared in a fixed order so hosts can serialize them
// deterministically.
type Field struct {
	Name string
	Kind Kind

	// Numeric bounds and default, used when Kind == Float.
	Def float64
	Min float64
	Max float64

	// String default and allowed alphabet, used when Kind == String. An
	// empty Alphabet accepts any string.
	DefString string
	Alphabet  string

	// Bool default, used when Kind == Bool.
	DefBool bool
}

// ClampFloat bounds v to the field's [Min, Max] range.
func (f Field) ClampFloat(v float64) float64 {
	return utils.Clamp(v, f.Min, f.Max)
}

// ValidFloat reports whether v lies within the field's bounds.
func (f Field) ValidFloat(v float64) bool {
	return v >= f.Min && v <= f.Max
}

// ValidString reports whether every rune of s belongs to the field's
// alphabet. The empty string is always valid at this level; effects decide
// whether an empty value can produce output.
func (f Field) ValidString(s string) bool {
	if f.Alphabet == "" {
		return true
	}
	for _, r := range s {
		if !strings.ContainsRune(f.Alphabet, r) {
			return false
		}
	}
	return true
}

// Lookup finds a field by name in a descriptor list.
func Lookup(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
