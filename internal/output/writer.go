// Package output organizes per-demo artifact files and serializes the
// structured summary.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Jearnest94/NadeStacked/internal/model"
)

// Dir returns (and creates) the per-demo output directory: a folder named
// after the demo file, next to it.
func Dir(demoPath string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(demoPath), ".dem")
	dir := filepath.Join(filepath.Dir(demoPath), base)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	return dir, nil
}

// SanitizeName makes a player name filesystem-safe.
func SanitizeName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

// SummaryPath is the all-players JSON summary file for one analysis run.
func SummaryPath(dir, player string) string {
	return filepath.Join(dir, fmt.Sprintf("positions_%s.json", SanitizeName(player)))
}

// TargetSummaryPath is the JSON summary restricted to the target player.
func TargetSummaryPath(dir, player string) string {
	return filepath.Join(dir, fmt.Sprintf("positions_%s_target.json", SanitizeName(player)))
}

// HeatmapPath names one per-(segment, marker) heatmap image.
func HeatmapPath(dir, player string, segment model.SegmentName, markerLabel, side string) string {
	return filepath.Join(dir, fmt.Sprintf("heatmap_%s_%s_%s_%s.png",
		SanitizeName(player), segment, markerLabel, side))
}

// OverlayPath names one per-segment combined image.
func OverlayPath(dir, player string, segment model.SegmentName, side string) string {
	return filepath.Join(dir, fmt.Sprintf("heatmap_%s_%s_combined_%s.png",
		SanitizeName(player), segment, side))
}

// WriteSummary writes the structured summary as indented JSON. The write is
// atomic: a temp file is renamed into place, so the summary either appears
// complete or not at all.
func WriteSummary(path string, summary []model.PlayerSummary) error {
	if summary == nil {
		summary = []model.PlayerSummary{} // serialize as [], not null
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".summary-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp summary: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write summary: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close summary: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("finalize summary: %w", err)
	}
	return nil
}
