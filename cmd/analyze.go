package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jearnest94/NadeStacked/internal/analysis"
	"github.com/Jearnest94/NadeStacked/internal/config"
	"github.com/Jearnest94/NadeStacked/internal/model"
	"github.com/Jearnest94/NadeStacked/internal/output"
	"github.com/Jearnest94/NadeStacked/internal/parser"
	"github.com/Jearnest94/NadeStacked/internal/render"
	"github.com/Jearnest94/NadeStacked/internal/report"
	"github.com/Jearnest94/NadeStacked/internal/storage"
)

var (
	analyzeDemo   string
	analyzePlayer string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a demo and render positional heatmaps for one player",
	Args:  cobra.NoArgs,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeDemo, "demo", "", "path to the .dem file (prompted for when omitted)")
	analyzeCmd.Flags().StringVar(&analyzePlayer, "player", "", "target player: exact name or 1-based index from the players list")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	demoPath := analyzeDemo
	if demoPath == "" {
		var err error
		demoPath, err = promptDemoPath(cmd)
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Parsing %s...\n", demoPath)
	raw, err := parser.ParseDemo(demoPath)
	if err != nil {
		return fmt.Errorf("parse demo: %w", err)
	}

	names := parser.PlayerNames(raw.Ticks)
	if len(names) == 0 {
		return fmt.Errorf("no players found in %s", demoPath)
	}

	player, err := selectPlayer(names, analyzePlayer)
	if err != nil {
		report.PrintPlayers(os.Stdout, names)
		return err
	}

	res, err := analysis.Run(raw.Rounds, raw.Ticks, analysis.Config{
		Markers:  cfg.Markers,
		Tickrate: raw.Tickrate,
		Log:      log,
	})
	if err != nil {
		return fmt.Errorf("analyze demo: %w", err)
	}

	outDir := cfg.OutputDir
	if outDir == "" {
		outDir, err = output.Dir(demoPath)
		if err != nil {
			return err
		}
	} else if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	renderImages(res, raw.MapName, player, outDir, cfg.Markers)

	if err := output.WriteSummary(output.SummaryPath(outDir, player), res.Summary); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	target := analysis.FilterSummary(res.Summary, player)
	if err := output.WriteSummary(output.TargetSummaryPath(outDir, player), target); err != nil {
		return fmt.Errorf("write target summary: %w", err)
	}

	if err := storeRun(raw, res, player); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\nMap: %s  |  Tickrate: %.0f  |  Hash: %s\n\n",
		raw.MapName, res.Tickrate, raw.DemoHash[:12])
	report.PrintSampleCounts(os.Stdout, res.Collections, player)
	fmt.Fprintf(os.Stdout, "\nArtifacts written to %s\n", outDir)
	if others := otherPlayers(names, player); len(others) > 0 {
		fmt.Fprintf(os.Stdout, "Other players in this demo: %s\n", strings.Join(others, ", "))
	}
	return nil
}

// renderImages draws every per-(segment, marker) heatmap plus the per-segment
// combined overlays. A failed image is logged and skipped; the run goes on.
func renderImages(res *analysis.Result, mapName, player, outDir string, markers []model.TimeMarker) {
	for i := range res.Collections {
		ms := &res.Collections[i]
		data, ok := analysis.BuildHeatmapData(ms, player)
		if !ok {
			continue
		}
		path := output.HeatmapPath(outDir, player, ms.Segment.Name, ms.Marker.Label, data.Side)
		if err := render.Heatmap(path, mapName, player, data); err != nil {
			log.Error().Err(err).Str("path", path).Msg("heatmap render failed, skipping")
		}
	}

	for _, seg := range res.Segments {
		points, side := analysis.BuildOverlayData(res.Collections, seg, player)
		if len(points) == 0 {
			continue
		}
		path := output.OverlayPath(outDir, player, seg.Name, side)
		if err := render.Overlay(path, mapName, player, side, seg.Label, points, markers); err != nil {
			log.Error().Err(err).Str("path", path).Msg("overlay render failed, skipping")
		}
	}
}

func storeRun(raw *model.RawDemo, res *analysis.Result, player string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	rec := model.AnalysisRecord{
		DemoHash:     raw.DemoHash,
		Player:       player,
		MapName:      raw.MapName,
		Tickrate:     res.Tickrate,
		AnalyzedAt:   time.Now().UTC().Format(time.RFC3339),
		SegmentCount: len(res.Segments),
		SampleCount:  res.PlayerSampleCount(player),
	}
	if err := db.InsertAnalysis(rec); err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	if err := db.InsertPositions(raw.DemoHash, res.Summary); err != nil {
		return fmt.Errorf("insert positions: %w", err)
	}
	return nil
}

// promptDemoPath asks for the demo path on stdin when --demo is omitted.
func promptDemoPath(cmd *cobra.Command) (string, error) {
	fmt.Fprint(os.Stdout, "Path to demo file: ")
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read demo path: %w", err)
	}
	path := strings.TrimSpace(line)
	if path == "" {
		return "", fmt.Errorf("no demo path given")
	}
	return path, nil
}

func otherPlayers(names []string, player string) []string {
	var out []string
	for _, name := range names {
		if name != player {
			out = append(out, name)
		}
	}
	return out
}

// selectPlayer resolves the --player flag against the available names. The
// flag is either an exact name or a 1-based index into the sorted list.
func selectPlayer(names []string, flag string) (string, error) {
	if flag == "" {
		return "", fmt.Errorf("--player is required; pick a name or index from the list above")
	}
	if idx, err := strconv.Atoi(flag); err == nil {
		if idx < 1 || idx > len(names) {
			return "", fmt.Errorf("player index %d out of range 1-%d", idx, len(names))
		}
		return names[idx-1], nil
	}
	for _, name := range names {
		if name == flag {
			return name, nil
		}
	}
	return "", fmt.Errorf("player %q not found in demo", flag)
}
