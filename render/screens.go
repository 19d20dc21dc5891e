package render

import (
	"fmt"

	"github.com/lixenwraith/minotaur/ledger"
	"github.com/lixenwraith/minotaur/parameter"
)

// Menu and scores screen text
const (
	MenuStart    = "Press Enter to Start"
	MenuScores   = "Press S to View Scores"
	MenuControls = "Controls: W, A, S, D to move, SPACE to shoot, F to drop torch"
	ScoresTitle  = "Top Scores"
	ScoresBack   = "Press B to go back"
	ScoresEmpty  = "No scores yet"
	GameOverHint = "Press 'q' to exit or 'r' to restart"
)

// FormatRecord renders one leaderboard line with its 1-based rank
func FormatRecord(rank int, rec ledger.Record) string {
	return fmt.Sprintf("%d. %s - Time: %.2fs, Enemies: %d, Score: %.2f",
		rank, rec.DateTime, rec.Time, rec.EnemiesKilled, rec.Score)
}

// RenderMenu draws the start screen
func (r *TerminalRenderer) RenderMenu() {
	r.screen.Clear()
	_, h := r.screen.Size()
	mid := h / 2
	r.drawCentered(mid-4, parameter.GameTitle, RgbTitle)
	r.drawCentered(mid-1, MenuStart, RgbHUDText)
	r.drawCentered(mid, MenuScores, RgbHUDText)
	r.drawCentered(mid+2, MenuControls, RgbHUDText)
	r.screen.Show()
}

// RenderScores draws the leaderboard screen
func (r *TerminalRenderer) RenderScores(records []ledger.Record) {
	r.screen.Clear()
	r.drawCentered(1, ScoresTitle, RgbTitle)
	next := r.drawRecords(3, records)
	r.drawCentered(next+1, ScoresBack, RgbHUDText)
	r.screen.Show()
}

// RenderGameOver draws the outcome message, the restart hint and the leaderboard
func (r *TerminalRenderer) RenderGameOver(message string, records []ledger.Record) {
	r.screen.Clear()
	r.drawCentered(1, message, RgbBanner)
	r.drawCentered(3, GameOverHint, RgbHUDText)
	r.drawCentered(5, ScoresTitle, RgbTitle)
	r.drawRecords(7, records)
	r.screen.Show()
}

// drawRecords lists records from row top and returns the row after the list
func (r *TerminalRenderer) drawRecords(top int, records []ledger.Record) int {
	if len(records) == 0 {
		r.drawCentered(top, ScoresEmpty, RgbTrap)
		return top + 1
	}
	for i, rec := range records {
		r.drawCentered(top+i, FormatRecord(i+1, rec), RgbHUDText)
	}
	return top + len(records)
}
