// Package report renders analysis results as console tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/Jearnest94/NadeStacked/internal/analysis"
	"github.com/Jearnest94/NadeStacked/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintPlayers prints the players observed in a demo, numbered so the analyze
// command can accept an index instead of an exact name.
func PrintPlayers(w io.Writer, names []string) {
	table := newTable(w)
	table.Header("#", "PLAYER")
	for i, name := range names {
		table.Append(strconv.Itoa(i+1), name)
	}
	table.Render()
}

// PrintSampleCounts prints how many samples the target player contributed to
// each segment × marker collection, with a trailing total row.
func PrintSampleCounts(w io.Writer, collections []analysis.MarkerSamples, player string) {
	table := newTable(w)
	table.Header("SEGMENT", "MARKER", "SAMPLES")

	total := 0
	for i := range collections {
		ms := &collections[i]
		n := len(ms.Samples(player))
		total += n
		table.Append(ms.Segment.Label, ms.Marker.Display, strconv.Itoa(n))
	}
	table.Append("TOTAL", "", strconv.Itoa(total))
	table.Render()
}

// PrintAnalyses prints all stored analysis runs, newest first.
func PrintAnalyses(w io.Writer, recs []model.AnalysisRecord) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No analyses stored yet. Run 'nadestacked analyze' first.")
		return
	}
	table := newTable(w)
	table.Header("HASH", "PLAYER", "MAP", "TICKRATE", "ANALYZED", "SEGMENTS", "SAMPLES")
	for _, rec := range recs {
		table.Append(
			rec.DemoHash[:12],
			rec.Player,
			rec.MapName,
			fmt.Sprintf("%.0f", rec.Tickrate),
			rec.AnalyzedAt,
			strconv.Itoa(rec.SegmentCount),
			strconv.Itoa(rec.SampleCount),
		)
	}
	table.Render()
}

// PrintPositions prints a player's stored positions ordered by repeat count.
// Occurrences are condensed into "round@marker" pairs.
func PrintPositions(w io.Writer, player string, positions []model.PositionSummary) {
	if len(positions) == 0 {
		fmt.Fprintf(w, "No stored positions for %s.\n", player)
		return
	}
	table := newTable(w)
	table.Header("X", "Y", "Z", "COUNT", "SIDE", "OCCURRENCES")
	for _, pos := range positions {
		table.Append(
			fmt.Sprintf("%.1f", pos.Position[0]),
			fmt.Sprintf("%.1f", pos.Position[1]),
			fmt.Sprintf("%.1f", pos.Position[2]),
			strconv.Itoa(pos.Count),
			occurrenceSide(pos.Occurrences),
			occurrenceText(pos.Occurrences),
		)
	}
	table.Render()
}

// occurrenceSide returns the side shared by all occurrences, or "mixed".
func occurrenceSide(occ []model.Occurrence) string {
	if len(occ) == 0 {
		return "—"
	}
	side := occ[0].Side
	for _, o := range occ[1:] {
		if o.Side != side {
			return "mixed"
		}
	}
	return side
}

func occurrenceText(occ []model.Occurrence) string {
	parts := make([]string, 0, len(occ))
	for _, o := range occ {
		parts = append(parts, fmt.Sprintf("r%d@%s", o.Round, o.TimeLabel))
	}
	return strings.Join(parts, ", ")
}
