package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/minotaur/ledger"
)

var (
	scoresTUI bool
	scoresTop int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the score ledger",
	Long:  `Print every recorded score in write order, or only the best --top. --tui opens a browsable table.`,
	RunE:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&scoresTUI, "tui", false, "browse scores in a terminal table")
	scoresCmd.Flags().IntVar(&scoresTop, "top", 0, "show only the N best scores, best first")
}

func runScores(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	scores, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer scores.Close()

	var records []ledger.Record
	if scoresTop > 0 {
		records, err = scores.Top(ctx, scoresTop)
	} else {
		records, err = scores.All(ctx)
	}
	if err != nil {
		return err
	}

	if scoresTUI {
		return browseScores(records)
	}
	printScores(cmd.OutOrStdout(), records)
	return nil
}

// printScores writes the ledger as a fixed-width table
func printScores(w io.Writer, records []ledger.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No scores available.")
		return
	}
	fmt.Fprintf(w, "%-20s%-10s%-15s%-10s\n", "Date", "Time (s)", "Enemies Killed", "Score")
	fmt.Fprintln(w, strings.Repeat("-", 55))
	for _, r := range records {
		fmt.Fprintf(w, "%-20s%-10.2f%-15d%-10.2f\n", r.DateTime, r.Time, r.EnemiesKilled, r.Score)
	}
}

var scoreColumns = []string{"#", "Date", "Time (s)", "Enemies Killed", "Score"}

// scoreTable builds a fixed-header table of records
func scoreTable(records []ledger.Record) *tview.Table {
	table := tview.NewTable().SetFixed(1, 0).SetSelectable(true, false)
	table.SetBorder(true).SetTitle(fmt.Sprintf(" Scores (%d) - q to quit ", len(records)))

	for c, name := range scoreColumns {
		table.SetCell(0, c, tview.NewTableCell(name).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false))
	}
	for i, r := range records {
		row := i + 1
		table.SetCell(row, 0, tview.NewTableCell(fmt.Sprintf("%d", row)))
		table.SetCell(row, 1, tview.NewTableCell(r.DateTime))
		table.SetCell(row, 2, tview.NewTableCell(fmt.Sprintf("%.2f", r.Time)).SetAlign(tview.AlignRight))
		table.SetCell(row, 3, tview.NewTableCell(fmt.Sprintf("%d", r.EnemiesKilled)).SetAlign(tview.AlignRight))
		table.SetCell(row, 4, tview.NewTableCell(fmt.Sprintf("%.2f", r.Score)).SetAlign(tview.AlignRight))
	}
	return table
}

func browseScores(records []ledger.Record) error {
	app := tview.NewApplication()
	table := scoreTable(records)
	app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			app.Stop()
			return nil
		}
		return ev
	})
	return app.SetRoot(table, true).Run()
}
