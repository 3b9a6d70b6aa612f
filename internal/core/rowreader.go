package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// RowReader splits delimited text into raw rows.
//
// Fields are separated by Delimiter. A field that starts with Quote runs until
// the matching Quote; inside it the delimiter and line breaks are literal and
// a doubled Quote stands for one. A Quote anywhere else is an ordinary
// character. Quote 0 disables quoting.
//
// A blank line is returned as a single empty field.
type RowReader struct {
	Delimiter rune
	Quote     rune

	r         *bufio.Reader
	line      int // lines consumed so far
	startLine int // first line of the last row returned
}

// NewRowReader creates a row reader over UTF-8 text.
func NewRowReader(r io.Reader, delimiter, quote rune) *RowReader {
	return &RowReader{
		Delimiter: delimiter,
		Quote:     quote,
		r:         bufio.NewReader(r),
	}
}

// Line returns the 1-based line on which the last row returned by Read starts.
func (rr *RowReader) Line() int {
	return rr.startLine
}

// LinesRead returns the number of lines consumed so far.
func (rr *RowReader) LinesRead() int {
	return rr.line
}

// Read returns the next row, or io.EOF when the input is exhausted.
// An unterminated quoted field fails with ErrInvalidQuoting.
func (rr *RowReader) Read() ([]string, error) {
	text, err := rr.readLine()
	if err != nil {
		return nil, err
	}
	rr.startLine = rr.line

	var (
		fields     []string
		field      strings.Builder
		inQuotes   bool
		fieldStart = true
	)

	for {
		for i := 0; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			i += size

			switch {
			case inQuotes && r == rr.Quote:
				if next, nsize := utf8.DecodeRuneInString(text[i:]); i < len(text) && next == rr.Quote {
					field.WriteRune(rr.Quote)
					i += nsize
				} else {
					inQuotes = false
				}
			case inQuotes:
				field.WriteRune(r)
			case r == rr.Delimiter:
				fields = append(fields, field.String())
				field.Reset()
				fieldStart = true
			case rr.Quote != 0 && r == rr.Quote && fieldStart:
				inQuotes = true
				fieldStart = false
			default:
				field.WriteRune(r)
				fieldStart = false
			}
		}

		if !inQuotes {
			break
		}

		next, err := rr.readLine()
		if err == io.EOF {
			return nil, fmt.Errorf("%w: quoted field starting on line %d is never closed", ErrInvalidQuoting, rr.startLine)
		}
		if err != nil {
			return nil, err
		}
		field.WriteByte('\n')
		text = next
	}

	fields = append(fields, field.String())
	return fields, nil
}

// readLine returns the next line without its line terminator.
func (rr *RowReader) readLine() (string, error) {
	s, err := rr.r.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		return "", err
	}
	rr.line++

	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}
