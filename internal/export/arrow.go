package export

import (
	"fmt"
	"io"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/ipc"
	"github.com/apache/arrow/go/v18/arrow/memory"

	"github.com/JonMunkholm/solverplot/internal/core"
)

// Schema returns the Arrow schema of an exported table: one float64 field
// per numeric column followed by the utf8 comment.
func Schema() *arrow.Schema {
	names := core.FloatColumnNames()
	fields := make([]arrow.Field, 0, len(names)+1)
	for _, name := range names {
		fields = append(fields, arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float64})
	}
	fields = append(fields, arrow.Field{Name: core.ColComment, Type: arrow.BinaryTypes.String})
	return arrow.NewSchema(fields, nil)
}

// NewRecord builds a single record batch from table. The caller must
// Release the returned record.
func NewRecord(table *core.ColumnTable, mem memory.Allocator) (arrow.Record, error) {
	if err := table.CheckAligned(); err != nil {
		return nil, err
	}

	b := array.NewRecordBuilder(mem, Schema())
	defer b.Release()

	for i, name := range core.FloatColumnNames() {
		values, _ := table.Float(name)
		fb, ok := b.Field(i).(*array.Float64Builder)
		if !ok {
			return nil, fmt.Errorf("arrow field %q is not float64", name)
		}
		fb.AppendValues(values, nil)
	}

	sb, ok := b.Field(len(core.FloatColumnNames())).(*array.StringBuilder)
	if !ok {
		return nil, fmt.Errorf("arrow field %q is not utf8", core.ColComment)
	}
	sb.AppendValues(table.Comment, nil)

	return b.NewRecord(), nil
}

// WriteArrow streams table to w as an Arrow IPC stream with one batch.
func WriteArrow(w io.Writer, table *core.ColumnTable) error {
	mem := memory.NewGoAllocator()

	rec, err := NewRecord(table, mem)
	if err != nil {
		return err
	}
	defer rec.Release()

	iw := ipc.NewWriter(w, ipc.WithSchema(rec.Schema()), ipc.WithAllocator(mem))
	if err := iw.Write(rec); err != nil {
		iw.Close()
		return fmt.Errorf("write arrow batch: %w", err)
	}
	if err := iw.Close(); err != nil {
		return fmt.Errorf("close arrow stream: %w", err)
	}
	return nil
}
