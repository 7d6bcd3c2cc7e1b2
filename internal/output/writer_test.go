package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Jearnest94/NadeStacked/internal/model"
)

func TestDir(t *testing.T) {
	base := t.TempDir()
	demo := filepath.Join(base, "match_de_dust2.dem")

	dir, err := Dir(demo)
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}
	if dir != filepath.Join(base, "match_de_dust2") {
		t.Errorf("unexpected dir %s", dir)
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		t.Errorf("output dir should exist: %v", err)
	}
}

func TestPaths(t *testing.T) {
	if got := SummaryPath("out", "s1mple jr"); got != filepath.Join("out", "positions_s1mple_jr.json") {
		t.Errorf("SummaryPath: %s", got)
	}
	if got := TargetSummaryPath("out", "abe"); got != filepath.Join("out", "positions_abe_target.json") {
		t.Errorf("TargetSummaryPath: %s", got)
	}
	got := HeatmapPath("out", "abe", model.SegmentFirstHalf, "1m48s", "ct")
	if got != filepath.Join("out", "heatmap_abe_first_half_1m48s_ct.png") {
		t.Errorf("HeatmapPath: %s", got)
	}
	got = OverlayPath("out", "abe", model.SegmentOvertime, "t")
	if got != filepath.Join("out", "heatmap_abe_overtime_combined_t.png") {
		t.Errorf("OverlayPath: %s", got)
	}
}

func TestWriteSummary_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "positions_abe.json")

	summary := []model.PlayerSummary{{
		Player: "abe",
		Positions: []model.PositionSummary{{
			Position: [3]float64{1, 2, 3},
			Count:    2,
			Occurrences: []model.Occurrence{
				{Round: 1, Side: "ct", TimeLabel: "1m48s", RangeLabel: "Rounds 1-12 (First Half)"},
				{Round: 4, Side: "ct", TimeLabel: "1m48s", RangeLabel: "Rounds 1-12 (First Half)"},
			},
		}},
	}}

	if err := WriteSummary(path, summary); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var got []model.PlayerSummary
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 1 || got[0].Player != "abe" || got[0].Positions[0].Count != 2 {
		t.Errorf("round-trip mismatch: %+v", got)
	}

	// No temp files left behind.
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestWriteSummary_EmptySummaryStillValidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "positions_empty.json")
	if err := WriteSummary(path, nil); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "[]" {
		t.Errorf("nil summary should serialize as [], got %q", data)
	}
}
