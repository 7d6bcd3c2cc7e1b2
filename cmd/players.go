package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jearnest94/NadeStacked/internal/parser"
	"github.com/Jearnest94/NadeStacked/internal/report"
)

var playersCmd = &cobra.Command{
	Use:   "players <demo.dem>",
	Short: "List the players observed in a demo",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayers,
}

func runPlayers(cmd *cobra.Command, args []string) error {
	demoPath := args[0]

	fmt.Fprintf(os.Stdout, "Parsing %s...\n", demoPath)
	raw, err := parser.ParseDemo(demoPath)
	if err != nil {
		return fmt.Errorf("parse demo: %w", err)
	}

	names := parser.PlayerNames(raw.Ticks)
	if len(names) == 0 {
		fmt.Fprintln(os.Stdout, "No players found.")
		return nil
	}

	report.PrintPlayers(os.Stdout, names)
	fmt.Fprintln(os.Stdout, "\nUse 'nadestacked analyze --demo <demo.dem> --player <name-or-index>' to analyze one.")
	return nil
}
