package core

// streaming.go provides the byte-level readers that sit under the row reader.
//
// These readers wrap io.Reader so a solutions log never has to be loaded
// into memory in one piece:
//
//   - BOMSkippingReader: Removes the UTF-8 BOM (0xEF 0xBB 0xBF) written by Windows tools
//   - StreamingUTF8Validator: Fails on the first invalid UTF-8 sequence
//   - StreamingCountingReader: Tracks raw bytes read for the load summary
//
// Use DecodeStream to pick the right chain for a configured encoding.

import (
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
)

// StreamingUTF8Validator wraps an io.Reader and returns an *EncodingError at
// the first byte that is not valid UTF-8. Bytes before it are passed through.
//
// Silently replacing bad bytes would let a mis-encoded comment or number
// through, so the load fails instead.
type StreamingUTF8Validator struct {
	reader io.Reader

	// Leftover bytes from previous read that may form a multi-byte sequence
	pending []byte
	offset  int64
	err     error
}

// NewStreamingUTF8Validator creates a new streaming UTF-8 validator.
func NewStreamingUTF8Validator(r io.Reader) *StreamingUTF8Validator {
	return &StreamingUTF8Validator{
		reader:  r,
		pending: make([]byte, 0, utf8.UTFMax),
	}
}

// Read implements io.Reader.
func (v *StreamingUTF8Validator) Read(p []byte) (int, error) {
	if v.err != nil {
		return 0, v.err
	}
	if len(p) == 0 {
		return 0, nil
	}

	// Carry over an incomplete sequence from the previous read
	offset := copy(p, v.pending)
	v.pending = v.pending[:copy(v.pending, v.pending[offset:])]

	n, err := v.reader.Read(p[offset:])
	n += offset

	valid := n
	if err == nil {
		valid = n - incompleteTrailingBytes(p[:n])
	}

	if i := invalidUTF8Index(p[:valid]); i >= 0 {
		v.err = &EncodingError{Offset: v.offset + int64(i)}
		v.offset += int64(i)
		return i, v.err
	}

	v.pending = append(v.pending, p[valid:n]...)
	v.offset += int64(valid)
	return valid, err
}

// invalidUTF8Index returns the index of the first invalid or truncated
// sequence in data, or -1 if data is valid.
func invalidUTF8Index(data []byte) int {
	if isAllASCII(data) || utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// isAllASCII returns true if all bytes are ASCII (< 128).
// This is a fast path since most solver output is ASCII.
func isAllASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

// incompleteTrailingBytes returns the number of bytes at the end of data
// that could be the start of an incomplete multi-byte UTF-8 sequence.
func incompleteTrailingBytes(data []byte) int {
	if len(data) == 0 {
		return 0
	}

	// Check last 1-3 bytes for incomplete sequences
	for i := 1; i <= 3 && i <= len(data); i++ {
		b := data[len(data)-i]
		if b >= 0xC0 {
			if i < runeLen(b) {
				return i
			}
			return 0
		}
		// Continuation byte (10xxxxxx) - keep checking
		if b&0xC0 != 0x80 {
			return 0
		}
	}
	return 0
}

// runeLen returns the expected length of a UTF-8 sequence starting with byte b.
func runeLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xC0:
		return 0 // continuation byte
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	default:
		return 4
	}
}

// BOMSkippingReader wraps an io.Reader and skips the UTF-8 BOM if present.
type BOMSkippingReader struct {
	reader     io.Reader
	bomChecked bool
	buf        [3]byte
	bufData    []byte // Bytes read during the BOM check that belong to the data
}

// NewBOMSkippingReader creates a new BOM-skipping reader.
func NewBOMSkippingReader(r io.Reader) *BOMSkippingReader {
	return &BOMSkippingReader{
		reader: r,
	}
}

// Read implements io.Reader. On the first read, it checks for and skips the BOM.
func (r *BOMSkippingReader) Read(p []byte) (int, error) {
	if !r.bomChecked {
		r.bomChecked = true

		n, err := io.ReadFull(r.reader, r.buf[:])
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return 0, err
		}
		if n == 3 && r.buf[0] == 0xEF && r.buf[1] == 0xBB && r.buf[2] == 0xBF {
			r.bufData = nil
		} else {
			r.bufData = r.buf[:n]
		}
	}

	// Return any buffered data first
	if len(r.bufData) > 0 {
		copied := copy(p, r.bufData)
		r.bufData = r.bufData[copied:]
		return copied, nil
	}

	return r.reader.Read(p)
}

// StreamingCountingReader wraps an io.Reader to track bytes read.
type StreamingCountingReader struct {
	reader    io.Reader
	BytesRead int64
	Total     int64 // If known (0 if unknown)
}

// NewStreamingCountingReader creates a counting reader with optional total size.
func NewStreamingCountingReader(r io.Reader, total int64) *StreamingCountingReader {
	return &StreamingCountingReader{
		reader: r,
		Total:  total,
	}
}

// Read implements io.Reader.
func (r *StreamingCountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// Progress returns the read progress as a percentage (0-100).
// Returns 0 if total is unknown.
func (r *StreamingCountingReader) Progress() int {
	if r.Total <= 0 {
		return 0
	}
	return int(r.BytesRead * 100 / r.Total)
}

// canonicalEncoding resolves an encoding label ("utf8", "latin1",
// "windows-1252", ...) to its WHATWG name.
func canonicalEncoding(label string) (string, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return "", fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return "", fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	return name, nil
}

// DecodeStream returns a reader yielding UTF-8 text from r.
//
// UTF-8 input is BOM-stripped and validated strictly. Any other WHATWG
// encoding (the solver writes the system codepage on Windows) is transcoded
// with golang.org/x/text.
func DecodeStream(r io.Reader, encoding string) (io.Reader, error) {
	name, err := canonicalEncoding(encoding)
	if err != nil {
		return nil, err
	}
	if name == "utf-8" {
		return NewStreamingUTF8Validator(NewBOMSkippingReader(r)), nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", encoding, err)
	}
	return enc.NewDecoder().Reader(r), nil
}
