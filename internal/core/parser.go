package core

// parser.go turns one raw row of the solutions log into a typed Record.
//
// Validation happens at two levels, with different severity:
//  1. Shape: rows with fewer than two fields are blank or trailing artifacts
//     and are skipped silently (Validate).
//  2. Content: a row that passed Validate must decode completely, otherwise
//     Parse returns a *MalformedFieldError and the whole load stops.

import (
	"fmt"
	"strings"

	"github.com/JonMunkholm/solverplot/internal/schema"
)

// Record is one decoded solver iteration.
type Record struct {
	X               float64 // bigbox_x
	Z               float64 // bigbox_z
	RadiosityMin    float64
	RadiosityCenter float64
	RadiosityMax    float64
	Comment         string // Empty when the source row has no comment
}

// setField stores a decoded value under its layout name.
func (r *Record) setField(name string, num float64, text string) error {
	switch name {
	case schema.BigBoxX:
		r.X = num
	case schema.BigBoxZ:
		r.Z = num
	case schema.RadiosityMin:
		r.RadiosityMin = num
	case schema.RadiosityCenter:
		r.RadiosityCenter = num
	case schema.RadiosityMax:
		r.RadiosityMax = num
	case schema.Comment:
		r.Comment = text
	default:
		return fmt.Errorf("record has no field %q", name)
	}
	return nil
}

// Validate reports whether a raw row carries data. Rows with zero or one
// field are blank lines or trailing artifacts.
func Validate(row []string) bool {
	return len(row) > 1
}

// RecordParser decodes raw rows against a positional layout.
type RecordParser struct {
	Layout     schema.Layout
	Convention DecimalConvention

	// Delimiter re-joins fields past the end of the layout into the last
	// field. The solver writes its comment unquoted.
	Delimiter rune
}

// NewRecordParser creates a parser for the solutions log layout.
func NewRecordParser(conv DecimalConvention, delimiter rune) *RecordParser {
	return &RecordParser{
		Layout:     schema.SolutionsLog,
		Convention: conv,
		Delimiter:  delimiter,
	}
}

// ParseRecord decodes a row of the solutions log with the default delimiter.
func ParseRecord(row []string, conv DecimalConvention) (Record, error) {
	return NewRecordParser(conv, DefaultOptions().Delimiter).Parse(row)
}

// Parse decodes a row that has already passed Validate.
func (p *RecordParser) Parse(row []string) (Record, error) {
	return p.parseLine(row, 0)
}

func (p *RecordParser) parseLine(row []string, line int) (Record, error) {
	if min := p.Layout.MinArity(); len(row) < min {
		spec := p.Layout[len(row)]
		return Record{}, &MalformedFieldError{
			Line:     line,
			Position: len(row),
			Field:    spec.Name,
			Err:      fmt.Errorf("%w: row has %d fields, want at least %d", ErrMissingField, len(row), min),
		}
	}

	var rec Record
	for pos, spec := range p.Layout {
		if !spec.Retain {
			continue
		}
		raw := p.field(row, pos)

		var num float64
		if spec.Type == schema.FieldNumeric {
			v, err := ParseNumber(raw, p.Convention)
			if err != nil {
				return Record{}, &MalformedFieldError{
					Line:     line,
					Position: pos,
					Field:    spec.Name,
					Value:    raw,
					Err:      err,
				}
			}
			num = v
		}

		if err := rec.setField(spec.Name, num, raw); err != nil {
			return Record{}, err
		}
	}
	return rec, nil
}

// field returns the raw value at pos; optional trailing fields default to "".
func (p *RecordParser) field(row []string, pos int) string {
	if pos >= len(row) {
		return ""
	}
	if pos == len(p.Layout)-1 && len(row) > len(p.Layout) {
		return strings.Join(row[pos:], string(p.Delimiter))
	}
	return row[pos]
}
