package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jearnest94/NadeStacked/internal/report"
	"github.com/Jearnest94/NadeStacked/internal/storage"
)

var positionsPlayer string

var positionsCmd = &cobra.Command{
	Use:   "positions <hash-prefix>",
	Short: "Show stored positions for a demo by hash prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  runPositions,
}

func init() {
	positionsCmd.Flags().StringVar(&positionsPlayer, "player", "", "player name (default: the analyzed player)")
}

func runPositions(cmd *cobra.Command, args []string) error {
	prefix := args[0]

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	rec, err := db.GetAnalysisByPrefix(prefix)
	if err != nil {
		return fmt.Errorf("query analysis: %w", err)
	}
	if rec == nil {
		fmt.Fprintf(os.Stderr, "No analysis found with hash prefix %q\n", prefix)
		return nil
	}

	player := positionsPlayer
	if player == "" {
		player = rec.Player
	}

	positions, err := db.GetPositions(rec.DemoHash, player)
	if err != nil {
		return fmt.Errorf("get positions: %w", err)
	}

	fmt.Fprintf(os.Stdout, "\nMap: %s  |  Player: %s  |  Analyzed: %s  |  Hash: %s\n\n",
		rec.MapName, player, rec.AnalyzedAt, rec.DemoHash[:12])
	report.PrintPositions(os.Stdout, player, positions)
	return nil
}
