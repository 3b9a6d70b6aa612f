package core

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"
)

// ============================================================================
// Number Parsing Benchmarks
// ============================================================================

// BenchmarkParseNumber benchmarks decimal decoding under the comma convention.
// Five numeric fields per row makes this the hot path of a load.
func BenchmarkParseNumber(b *testing.B) {
	testCases := []string{
		"10,0",
		"-0,000123",
		"1.234.567,89", // Grouped
		"  42  ",       // Whitespace
		"0",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range testCases {
			ParseNumber(tc, CommaDecimal)
		}
	}
}

// BenchmarkParseNumber_Simple benchmarks the common case: a short fraction.
func BenchmarkParseNumber_Simple(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParseNumber("12,5", CommaDecimal)
	}
}

// BenchmarkParseNumber_Invalid benchmarks the failure path.
func BenchmarkParseNumber_Invalid(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParseNumber("12.5", CommaDecimal)
	}
}

// ============================================================================
// Row Splitting and Parsing Benchmarks
// ============================================================================

// BenchmarkRowReader benchmarks splitting without decoding.
func BenchmarkRowReader(b *testing.B) {
	data := generateSolutionsLog(1000)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := NewRowReader(bytes.NewReader(data), ';', '"')
		for {
			if _, err := rr.Read(); err == io.EOF {
				break
			}
		}
	}
}

// BenchmarkRecordParser benchmarks decoding one full row.
func BenchmarkRecordParser(b *testing.B) {
	row := strings.Split("17;10,25;5,0;20,75;0,125;0,5;0,875;100000;1,5;42,0;moved light", ";")
	p := NewRecordParser(CommaDecimal, ';')

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Parse(row)
	}
}

// ============================================================================
// End-to-End Benchmarks
// ============================================================================

// BenchmarkLoadReader benchmarks a complete in-memory load.
func BenchmarkLoadReader(b *testing.B) {
	for _, rows := range []int{100, 10000} {
		data := generateSolutionsLog(rows)
		loader := NewLoader(DefaultOptions(), nil)

		b.Run(fmt.Sprintf("rows=%d", rows), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := loader.LoadReader(bytes.NewReader(data), "bench"); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkDecodeStream_UTF8 benchmarks BOM stripping plus validation.
func BenchmarkDecodeStream_UTF8(b *testing.B) {
	data := append([]byte("\xef\xbb\xbf"), generateSolutionsLog(10000)...)

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, _ := DecodeStream(bytes.NewReader(data), "utf-8")
		io.Copy(io.Discard, r)
	}
}

// BenchmarkTranspose benchmarks the row-to-column reshape.
func BenchmarkTranspose(b *testing.B) {
	records := make([]Record, 10000)
	for i := range records {
		records[i] = Record{X: float64(i), Z: float64(i) * 2, RadiosityMin: 1, RadiosityCenter: 2, RadiosityMax: 3}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Transpose(records)
	}
}

// generateSolutionsLog creates a solutions log with a header and n rows.
func generateSolutionsLog(rows int) []byte {
	var buf bytes.Buffer
	buf.WriteString("iteration;bigbox_x;bigbox_y;bigbox_z;radiosity_min;radiosity_center;radiosity_max;photons;duration;time_from_start;comment\n")
	for i := 1; i <= rows; i++ {
		fmt.Fprintf(&buf, "%d;%d,5;5,0;%d,25;0,1;0,5;0,9;100000;1,25;%d,0;", i, i, i*2, i)
		if i%10 == 0 {
			buf.WriteString("checkpoint")
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
