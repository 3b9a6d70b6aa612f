package export

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/JonMunkholm/solverplot/internal/core"
)

// jsonTable is the JSON shape of a ColumnTable. Field order is stable.
type jsonTable struct {
	Rows            int       `json:"rows"`
	X               []float64 `json:"x"`
	Z               []float64 `json:"z"`
	RadiosityCenter []float64 `json:"radiosity_center"`
	RadiosityMin    []float64 `json:"radiosity_min"`
	RadiosityMax    []float64 `json:"radiosity_max"`
	Comment         []string  `json:"comment"`
}

// WriteJSON writes table as a single JSON object of named columns.
func WriteJSON(w io.Writer, table *core.ColumnTable) error {
	if err := table.CheckAligned(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonTable{
		Rows:            table.Len(),
		X:               table.X,
		Z:               table.Z,
		RadiosityCenter: table.RadiosityCenter,
		RadiosityMin:    table.RadiosityMin,
		RadiosityMax:    table.RadiosityMax,
		Comment:         table.Comment,
	})
}
