package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for tiles and HUD
var (
	RgbWall       = tcell.NewRGBColor(255, 255, 255) // White
	RgbTrap       = tcell.NewRGBColor(128, 128, 128) // Gray
	RgbPlayer     = tcell.NewRGBColor(0, 255, 0)     // Green
	RgbChaser     = tcell.NewRGBColor(255, 0, 0)     // Red
	RgbKey        = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbExit       = tcell.NewRGBColor(0, 0, 255)     // Blue
	RgbPatroller  = tcell.NewRGBColor(255, 0, 255)   // Magenta
	RgbProjectile = tcell.NewRGBColor(255, 255, 0)   // Yellow
	RgbAmmo       = tcell.NewRGBColor(255, 255, 0)   // Yellow
	RgbBlood      = tcell.NewRGBColor(139, 0, 0)     // Dark red
	RgbTorch      = tcell.NewRGBColor(255, 140, 0)   // Dark orange

	RgbHUDHealth  = tcell.NewRGBColor(255, 0, 0)
	RgbHUDAmmo    = tcell.NewRGBColor(0, 255, 0)
	RgbHUDTorches = tcell.NewRGBColor(255, 140, 0)
	RgbHUDText    = tcell.NewRGBColor(200, 200, 200)
	RgbBanner     = tcell.NewRGBColor(255, 80, 80)
	RgbTitle      = tcell.NewRGBColor(255, 215, 0)
	RgbBackground = tcell.ColorReset
)
