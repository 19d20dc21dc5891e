package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/minotaur/leaderboard"
	"github.com/lixenwraith/minotaur/parameter"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the leaderboard over HTTP",
	Long:  `Serve GET /scores?limit=N as JSON and /scores/live as a websocket feed of the top list.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", parameter.LeaderboardAddr, "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	scores, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer scores.Close()

	srv, err := leaderboard.New(&leaderboard.Config{Source: scores})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "leaderboard listening on %s\n", serveAddr)
	return srv.ListenAndServe(ctx, serveAddr)
}
