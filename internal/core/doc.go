// Package core loads solver iteration logs into plot-ready columns.
//
// The solver appends one delimited line per iteration to solutions.csv. Its
// numbers are written in the machine's locale, so "10,5" and "10.5" may both
// appear in the wild depending on where the run happened. This package
// decodes such a file with an explicit [DecimalConvention] and never guesses.
//
// # Loading
//
// A load is a single forward pass over the file:
//
//  1. [DecodeStream] turns source bytes into UTF-8 text (BOM stripped)
//  2. [RowReader] splits rows honouring the quote character
//  3. The first row is a header and is discarded without inspection
//  4. [Validate] drops blank rows, [RecordParser] decodes the rest
//  5. [Transpose] reshapes the records into a [ColumnTable]
//
// Blank rows are skipped silently. Any row that looks like data but fails to
// decode aborts the whole load with a [*MalformedFieldError]; there is no
// partial result.
//
// # Error Handling
//
// Failures are typed: [*MalformedFieldError], [*EmptyDatasetError] and
// [*IOError]. Each wraps a sentinel for errors.Is checks. [MapError] turns
// any of them into a [UserMessage] with a support code:
//
//   - VAL002, VAL004: field errors
//   - DATA001: no data rows
//   - FILE001-FILE006: open, quoting and encoding errors
package core
