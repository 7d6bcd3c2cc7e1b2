package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jearnest94/NadeStacked/internal/report"
	"github.com/Jearnest94/NadeStacked/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored analysis runs",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	recs, err := db.ListAnalyses()
	if err != nil {
		return fmt.Errorf("list analyses: %w", err)
	}

	report.PrintAnalyses(os.Stdout, recs)
	return nil
}
