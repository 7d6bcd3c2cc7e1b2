package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	dbPath  string
	cfgPath string

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "nadestacked",
	Short: "CS2 positional sampling tool",
	Long:  "Parse CS2 .dem files and map where players stand at fixed moments of each round.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	defaultDB := filepath.Join(mustUserHome(), ".nadestacked", "analysis.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: .nadestacked.yaml in . or $HOME)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(positionsCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
