package core

// Color is the foreground color of a screen cell.
// Terminal frontends map each value to an ANSI color code.
type Color uint8

const (
	ColorDefault      Color = iota
	ColorGreen              // energy pickups
	ColorWhite              // HUD text
	ColorBrightRed          // HUD while the ship is hit
	ColorBrightYellow       // bullets
	ColorBrightCyan         // ship and title
	ColorOrange             // rocky asteroids
	ColorGray               // stars, ground and icy asteroids
)
