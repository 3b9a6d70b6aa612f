// Package export writes a loaded ColumnTable in the formats the plotting
// side consumes.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/JonMunkholm/solverplot/internal/core"
)

// Format names an output encoding.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatArrow Format = "arrow"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatArrow}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or arrow)", s)
}

// Write encodes table to w in the given format.
func Write(w io.Writer, f Format, table *core.ColumnTable) error {
	switch f {
	case FormatText:
		return WriteText(w, table)
	case FormatJSON:
		return WriteJSON(w, table)
	case FormatArrow:
		return WriteArrow(w, table)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}
