package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/JonMunkholm/solverplot/internal/core"
)

// WriteText writes table as aligned columns followed by a per-column
// summary. Numbers use the shortest form that round-trips.
func WriteText(w io.Writer, table *core.ColumnTable) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(table.Names(), "\t"))
	for i := 0; i < table.Len(); i++ {
		rec := table.Record(i)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			formatFloat(rec.X),
			formatFloat(rec.Z),
			formatFloat(rec.RadiosityCenter),
			formatFloat(rec.RadiosityMin),
			formatFloat(rec.RadiosityMax),
			rec.Comment,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	summary := core.Summarize(table)
	fmt.Fprintf(w, "\n%d rows\n", summary.Rows)

	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tmin\tmax\tmean")
	for _, c := range summary.Columns {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Name, formatFloat(c.Min), formatFloat(c.Max), formatFloat(c.Mean))
	}
	return tw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
