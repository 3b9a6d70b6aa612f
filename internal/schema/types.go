// Package schema declares the positional layout of the delimited files the
// solver writes, so that row decoding can fail with a named field instead of
// an anonymous index.
package schema

// FieldType represents the expected data type for a delimited field.
type FieldType int

const (
	FieldText FieldType = iota
	FieldNumeric
)

func (t FieldType) String() string {
	switch t {
	case FieldNumeric:
		return "numeric"
	default:
		return "text"
	}
}

// FieldSpec defines the decode rules for a single positional field.
type FieldSpec struct {
	Name     string    // Field name, also used in diagnostics
	Type     FieldType // Expected data type
	Required bool      // Field must be present for the row to decode
	Retain   bool      // Field is decoded into the parsed record
}

// Layout is an ordered list of positional fields.
type Layout []FieldSpec

// Position returns the zero-based index of the named field, or -1.
func (l Layout) Position(name string) int {
	for i, spec := range l {
		if spec.Name == name {
			return i
		}
	}
	return -1
}

// MinArity returns the number of leading fields that must be present.
// Optional fields are only allowed at the tail of a layout.
func (l Layout) MinArity() int {
	n := 0
	for _, spec := range l {
		if !spec.Required {
			break
		}
		n++
	}
	return n
}

// Names returns the field names in positional order.
func (l Layout) Names() []string {
	names := make([]string, len(l))
	for i, spec := range l {
		names[i] = spec.Name
	}
	return names
}

// Retained returns the specs that end up in a parsed record.
func (l Layout) Retained() []FieldSpec {
	out := make([]FieldSpec, 0, len(l))
	for _, spec := range l {
		if spec.Retain {
			out = append(out, spec)
		}
	}
	return out
}
