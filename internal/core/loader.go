package core

// loader.go streams a solutions log from disk into a ColumnTable.
//
// The flow for one load is:
//
//  1. Open the file (closed on every return path)
//  2. Decode bytes to UTF-8 text (DecodeStream)
//  3. Split rows (RowReader) and discard the header row unconditionally
//  4. Skip rows rejected by Validate, parse the rest (RecordParser)
//  5. Transpose the records into columns
//
// Any decode or parse failure aborts the load; no partial table is returned.

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/JonMunkholm/solverplot/internal/schema"
)

// Options configures how a source file is split and decoded.
type Options struct {
	Delimiter  rune              // Field separator
	Quote      rune              // Quote character, 0 disables quoting
	Convention DecimalConvention // How the source writes numbers
	Encoding   string            // WHATWG encoding label of the source
}

// DefaultOptions matches the files the solver writes on a Spanish-locale
// machine: ';' delimited, '"' quoted, comma decimals, UTF-8.
func DefaultOptions() Options {
	return Options{
		Delimiter:  ';',
		Quote:      '"',
		Convention: CommaDecimal,
		Encoding:   "utf-8",
	}
}

// NewOptions builds Options from raw configuration values. Empty values keep
// the defaults, except quote where "" or "none" disables quoting.
func NewOptions(delimiter, quote, decimal, encoding string) (Options, error) {
	opts := DefaultOptions()

	if delimiter != "" {
		r, err := singleRune("delimiter", delimiter)
		if err != nil {
			return Options{}, err
		}
		opts.Delimiter = r
	}

	switch strings.ToLower(quote) {
	case "", "none":
		opts.Quote = 0
	default:
		r, err := singleRune("quote", quote)
		if err != nil {
			return Options{}, err
		}
		opts.Quote = r
	}

	if decimal != "" {
		conv, err := ParseDecimalConvention(decimal)
		if err != nil {
			return Options{}, err
		}
		opts.Convention = conv
	}

	if encoding != "" {
		opts.Encoding = encoding
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func singleRune(name, s string) (rune, error) {
	if s == `\t` || s == "tab" {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s must be a single character, got %q", name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Validate checks that the options describe a readable format.
func (o Options) Validate() error {
	var errs []string

	switch o.Delimiter {
	case 0, '\r', '\n', utf8.RuneError:
		errs = append(errs, fmt.Sprintf("invalid delimiter %q", o.Delimiter))
	}
	switch o.Quote {
	case '\r', '\n', utf8.RuneError:
		errs = append(errs, fmt.Sprintf("invalid quote %q", o.Quote))
	}
	if o.Quote != 0 && o.Quote == o.Delimiter {
		errs = append(errs, fmt.Sprintf("quote and delimiter are both %q", o.Delimiter))
	}
	if err := o.Convention.Validate(); err != nil {
		errs = append(errs, err.Error())
	}
	if _, err := canonicalEncoding(o.Encoding); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid load options: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Loader reads solutions logs into ColumnTables. A Loader holds no state
// between loads and may be reused.
type Loader struct {
	Options Options
	Layout  schema.Layout
	Logger  *slog.Logger
}

// NewLoader creates a loader for the solutions log layout.
// A nil logger uses slog.Default().
func NewLoader(opts Options, logger *slog.Logger) *Loader {
	return &Loader{
		Options: opts,
		Layout:  schema.SolutionsLog,
		Logger:  logger,
	}
}

// Load reads the solutions log at path with the given options.
func Load(path string, opts Options) (*ColumnTable, error) {
	return NewLoader(opts, nil).Load(path)
}

// Load reads the file at path.
func (l *Loader) Load(path string) (*ColumnTable, error) {
	if err := l.Options.Validate(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	var size int64
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}

	return l.load(f, path, size)
}

// LoadReader reads a solutions log from r. name is used in errors and logs.
func (l *Loader) LoadReader(r io.Reader, name string) (*ColumnTable, error) {
	if err := l.Options.Validate(); err != nil {
		return nil, err
	}
	return l.load(r, name, 0)
}

func (l *Loader) load(r io.Reader, name string, size int64) (*ColumnTable, error) {
	logger := l.logger().With("source", name)

	counter := NewStreamingCountingReader(r, size)
	text, err := DecodeStream(counter, l.Options.Encoding)
	if err != nil {
		return nil, &IOError{Op: "decode", Path: name, Err: err}
	}

	rows := NewRowReader(text, l.Options.Delimiter, l.Options.Quote)
	parser := &RecordParser{
		Layout:     l.layout(),
		Convention: l.Options.Convention,
		Delimiter:  l.Options.Delimiter,
	}

	// The first row is a header whatever it contains
	if _, err := rows.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &EmptyDatasetError{Path: name}
		}
		return nil, readError(name, rows, err)
	}

	var (
		records []Record
		skipped int
	)
	for {
		row, err := rows.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readError(name, rows, err)
		}

		if !Validate(row) {
			skipped++
			logger.Debug("skipping row", "line", rows.Line(), "fields", len(row))
			continue
		}

		rec, err := parser.parseLine(row, rows.Line())
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	table, err := Transpose(records)
	if err != nil {
		var empty *EmptyDatasetError
		if errors.As(err, &empty) {
			empty.Path = name
			empty.Lines = rows.LinesRead()
		}
		return nil, err
	}

	logger.Info("solutions log loaded",
		"records", table.Len(),
		"skipped", skipped,
		"lines", rows.LinesRead(),
		"bytes", counter.BytesRead,
	)
	return table, nil
}

// readError classifies a failure from the row reader. Quoting errors point at
// the row that opened the quote, byte errors at the line being read.
func readError(name string, rows *RowReader, err error) error {
	if errors.Is(err, ErrInvalidQuoting) {
		return &IOError{Op: "split", Path: name, Line: rows.Line(), Err: err}
	}
	op := "read"
	if errors.Is(err, ErrEncoding) {
		op = "decode"
	}
	return &IOError{Op: op, Path: name, Line: rows.LinesRead() + 1, Err: err}
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

func (l *Loader) layout() schema.Layout {
	if len(l.Layout) > 0 {
		return l.Layout
	}
	return schema.SolutionsLog
}
