package core

import "fmt"

// Column names of a ColumnTable, as handed to the plotting side.
const (
	ColX               = "x"
	ColZ               = "z"
	ColRadiosityCenter = "radiosity_center"
	ColRadiosityMin    = "radiosity_min"
	ColRadiosityMax    = "radiosity_max"
	ColComment         = "comment"
)

// ColumnTable is the column-major form of a solutions log. Index i of every
// column describes the same source row.
type ColumnTable struct {
	X               []float64
	Z               []float64
	RadiosityCenter []float64
	RadiosityMin    []float64
	RadiosityMax    []float64
	Comment         []string
}

// floatColumn binds a numeric column name to its record field and table slice.
type floatColumn struct {
	name   string
	value  func(Record) float64
	column func(*ColumnTable) *[]float64
}

// floatColumns is the fixed field set Transpose operates on, in output order.
var floatColumns = []floatColumn{
	{ColX, func(r Record) float64 { return r.X }, func(t *ColumnTable) *[]float64 { return &t.X }},
	{ColZ, func(r Record) float64 { return r.Z }, func(t *ColumnTable) *[]float64 { return &t.Z }},
	{ColRadiosityCenter, func(r Record) float64 { return r.RadiosityCenter }, func(t *ColumnTable) *[]float64 { return &t.RadiosityCenter }},
	{ColRadiosityMin, func(r Record) float64 { return r.RadiosityMin }, func(t *ColumnTable) *[]float64 { return &t.RadiosityMin }},
	{ColRadiosityMax, func(r Record) float64 { return r.RadiosityMax }, func(t *ColumnTable) *[]float64 { return &t.RadiosityMax }},
}

// FloatColumnNames returns the numeric column names in output order.
func FloatColumnNames() []string {
	names := make([]string, len(floatColumns))
	for i, c := range floatColumns {
		names[i] = c.name
	}
	return names
}

// Transpose reshapes row-major records into a ColumnTable, preserving row
// order. An empty input is an *EmptyDatasetError.
func Transpose(records []Record) (*ColumnTable, error) {
	if len(records) == 0 {
		return nil, &EmptyDatasetError{}
	}

	n := len(records)
	t := &ColumnTable{Comment: make([]string, 0, n)}
	for _, c := range floatColumns {
		*c.column(t) = make([]float64, 0, n)
	}

	for _, rec := range records {
		for _, c := range floatColumns {
			col := c.column(t)
			*col = append(*col, c.value(rec))
		}
		t.Comment = append(t.Comment, rec.Comment)
	}

	if err := t.CheckAligned(); err != nil {
		return nil, err
	}
	return t, nil
}

// Len returns the number of rows.
func (t *ColumnTable) Len() int {
	return len(t.X)
}

// Names returns all column names in output order.
func (t *ColumnTable) Names() []string {
	return append(FloatColumnNames(), ColComment)
}

// Float returns the named numeric column.
func (t *ColumnTable) Float(name string) ([]float64, bool) {
	for _, c := range floatColumns {
		if c.name == name {
			return *c.column(t), true
		}
	}
	return nil, false
}

// Record returns row i in row-major form.
func (t *ColumnTable) Record(i int) Record {
	return Record{
		X:               t.X[i],
		Z:               t.Z[i],
		RadiosityMin:    t.RadiosityMin[i],
		RadiosityCenter: t.RadiosityCenter[i],
		RadiosityMax:    t.RadiosityMax[i],
		Comment:         t.Comment[i],
	}
}

// CheckAligned returns ErrColumnMismatch if any column length differs from X.
func (t *ColumnTable) CheckAligned() error {
	n := len(t.X)
	for _, c := range floatColumns {
		if got := len(*c.column(t)); got != n {
			return fmt.Errorf("%w: %q has %d values, %q has %d", ErrColumnMismatch, c.name, got, ColX, n)
		}
	}
	if len(t.Comment) != n {
		return fmt.Errorf("%w: %q has %d values, %q has %d", ErrColumnMismatch, ColComment, len(t.Comment), ColX, n)
	}
	return nil
}
