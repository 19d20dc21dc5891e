// Package render draws the level view, HUD and menu screens onto a tcell
// screen. It reads session state and never mutates it.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/minotaur/maze"
	"github.com/lixenwraith/minotaur/parameter"
	"github.com/lixenwraith/minotaur/session"
	"github.com/lixenwraith/minotaur/visibility"
)

// Rect is a half-open tile window [X0,X1) x [Y0,Y1)
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Width returns the window width in tiles
func (r Rect) Width() int { return r.X1 - r.X0 }

// Height returns the window height in tiles
func (r Rect) Height() int { return r.Y1 - r.Y0 }

// Contains reports whether p falls inside the window
func (r Rect) Contains(p maze.Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Viewport centers a halfW x halfH window on center, clipped to the grid
func Viewport(center maze.Point, gridW, gridH, halfW, halfH int) Rect {
	return Rect{
		X0: max(0, center.X-halfW),
		Y0: max(0, center.Y-halfH),
		X1: min(gridW, center.X+halfW),
		Y1: min(gridH, center.Y+halfH),
	}
}

// Frame is everything needed to draw one playing frame
type Frame struct {
	Session *session.Session
	Fog     visibility.Model
	Levels  int
	Elapsed time.Duration
	Muted   bool
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewTerminalRenderer creates a renderer bound to screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		style:  tcell.StyleDefault.Background(RgbBackground),
	}
}

// RenderFrame draws the visible part of the level and the HUD
func (r *TerminalRenderer) RenderFrame(f Frame) {
	r.screen.Clear()
	s := f.Session
	view := Viewport(s.Player.Pos, s.Grid.Width(), s.Grid.Height(), parameter.ViewHalfWidth, parameter.ViewHalfHeight)
	sc := newScene(s)

	for y := view.Y0; y < view.Y1; y++ {
		for x := view.X0; x < view.X1; x++ {
			p := maze.Point{X: x, Y: y}
			if !f.Fog.IsVisible(p, s.Player.Pos, s.Torches) {
				continue
			}
			g := sc.glyph(p)
			if g.Rune == ' ' {
				continue
			}
			r.screen.SetContent(x-view.X0, y-view.Y0, g.Rune, nil, r.style.Foreground(g.Fg))
		}
	}

	r.drawHUD(f, 2*parameter.ViewHalfHeight)
	r.screen.Show()
}

// drawHUD writes the three status rows starting at row top
func (r *TerminalRenderer) drawHUD(f Frame, top int) {
	s := f.Session
	x := r.drawText(0, top, fmt.Sprintf("HP: %d", s.Player.Health), RgbHUDHealth)
	x = r.drawText(x+2, top, fmt.Sprintf("Bullets: %d", s.Player.Ammo), RgbHUDAmmo)
	x = r.drawText(x+2, top, fmt.Sprintf("Torches: %d", s.Player.Torches), RgbHUDTorches)

	status := fmt.Sprintf("Level %d/%d  Kills: %d  Time: %.1fs", s.Level, f.Levels, s.Kills, f.Elapsed.Seconds())
	if !f.Fog.Enabled {
		status += "  [fog off]"
	}
	if f.Muted {
		status += "  [muted]"
	}
	r.drawText(x+2, top, status, RgbHUDText)

	if len(s.Chasers) > 0 {
		hp := make([]string, len(s.Chasers))
		for i, c := range s.Chasers {
			hp[i] = fmt.Sprintf("Minotaur HP: %d", c.HP)
		}
		r.drawText(0, top+1, strings.Join(hp, "  "), RgbChaser)
	}

	if msg := s.Message(); msg != "" {
		r.drawText(0, top+2, msg, RgbBanner)
	}
}

// drawText writes text at (x,y) and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, text string, fg tcell.Color) int {
	style := r.style.Foreground(fg)
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// drawCentered writes text horizontally centered on row y
func (r *TerminalRenderer) drawCentered(y int, text string, fg tcell.Color) {
	w, _ := r.screen.Size()
	x := (w - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, text, fg)
}
