package core

import "math"

// OrderViolation is a row whose radiosity statistics are out of order.
type OrderViolation struct {
	Index  int // Row index in the table
	Min    float64
	Center float64
	Max    float64
}

// CheckRadiosityOrder returns the rows where min <= center <= max does not
// hold. The parser accepts such rows; this is a data-quality report only.
func CheckRadiosityOrder(t *ColumnTable) []OrderViolation {
	var out []OrderViolation
	for i := 0; i < t.Len(); i++ {
		lo, mid, hi := t.RadiosityMin[i], t.RadiosityCenter[i], t.RadiosityMax[i]
		if lo <= mid && mid <= hi {
			continue
		}
		out = append(out, OrderViolation{Index: i, Min: lo, Center: mid, Max: hi})
	}
	return out
}

// ColumnSummary holds aggregates for one numeric column.
type ColumnSummary struct {
	Name string
	Min  float64
	Max  float64
	Mean float64
}

// Summary describes a loaded table.
type Summary struct {
	Rows    int
	Columns []ColumnSummary
}

// Summarize computes min, max and mean for every numeric column.
func Summarize(t *ColumnTable) Summary {
	s := Summary{Rows: t.Len()}
	for _, name := range FloatColumnNames() {
		values, _ := t.Float(name)
		cs := ColumnSummary{Name: name}
		if len(values) > 0 {
			cs.Min, cs.Max = math.Inf(1), math.Inf(-1)
			var sum float64
			for _, v := range values {
				cs.Min = math.Min(cs.Min, v)
				cs.Max = math.Max(cs.Max, v)
				sum += v
			}
			cs.Mean = sum / float64(len(values))
		}
		s.Columns = append(s.Columns, cs)
	}
	return s
}
