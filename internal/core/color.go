package core

// Color is a foreground color for a screen cell, mapped to ANSI colors
// by the renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorYellow
	ColorGreen
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightBlue
	ColorBrightYellow
	ColorGray
)
