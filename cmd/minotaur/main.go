// Package main is the entry point for the minotaur game and its tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	scoresPath string
	storeKind  string
	storeDSN   string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "minotaur",
	Short: "Escape the Minotaur",
	Long: `Escape the Minotaur is a terminal dungeon crawler: find the key, wake the
minotaurs and reach the exit alive. Run without a subcommand to play.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML file with level and key overrides")
	pf.StringVar(&scoresPath, "scores", "scores.json", "score file for the json store")
	pf.StringVar(&storeKind, "store", storeJSON, "score store: json, sqlite, postgres or redis")
	pf.StringVar(&storeDSN, "dsn", "", "data source for sqlite, postgres or redis stores")
	pf.BoolVar(&debug, "debug", false, "write logs to logs/minotaur.log")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logFile = setupLogging(debug)
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
		}
	}

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mazeCmd)
	rootCmd.AddCommand(serveCmd)
}
