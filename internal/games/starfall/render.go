package starfall

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/starfall/internal/core"
)

// Visual characters for rendering
const (
	ShipGlyph   = "<▲>"
	BulletChar  = '|'
	EnergyChar  = '◆'
	StarChar    = '·'
	minScreenW  = 30
	minScreenH  = 12
	hudRowCount = 3
)

// AsteroidChars holds one glyph per cosmetic variant.
var AsteroidChars = []rune{'@', 'O'}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	snap := g.session.Snapshot()

	switch snap.Phase {
	case PhaseTitle:
		g.renderStars(dst)
		g.renderTitle(dst, snap)
	case PhasePlaying:
		g.renderStars(dst)
		dst.DrawHLine(0, dst.Height()-1, dst.Width(), '─', core.ColorGray)
		g.renderField(dst, snap)
		g.renderHUD(dst, snap)
		if snap.Paused {
			drawCenteredBox(dst, "PAUSED", "Press P to resume")
		}
	case PhaseGameOver:
		g.renderField(dst, snap)
		g.renderHUD(dst, snap)
		subtitle := "Time " + snap.Last.String()
		if snap.NewBest {
			subtitle += "  |  New best!"
		}
		drawCenteredBox(dst, strings.ToUpper(snap.Message), subtitle)
	}
}

// cell maps a world position onto the screen.
func cell(dst *core.Screen, x, y float64, worldW, worldH int) (int, int) {
	cx := int(math.Floor(x / float64(worldW) * float64(dst.Width()-1)))
	cy := int(math.Floor(y / float64(worldH) * float64(dst.Height()-1)))
	return cx, cy
}

// renderStars draws a fixed sparse backdrop.
func (g *Game) renderStars(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	for i := 0; i < w*h/40; i++ {
		x := (i*37 + 11) % w
		y := (i*17 + 5) % h
		dst.SetColor(x, y, StarChar, core.ColorGray)
	}
}

// renderField draws the ship and every visible entity.
func (g *Game) renderField(dst *core.Screen, snap Snapshot) {
	for _, e := range snap.Entities {
		x, y := cell(dst, e.X, e.Y, snap.WorldW, snap.WorldH)
		if x < 0 || y < 0 || x >= dst.Width() || y >= dst.Height() {
			continue
		}
		switch e.Kind {
		case KindAsteroid:
			glyph := AsteroidChars[e.Variant%len(AsteroidChars)]
			color := core.ColorOrange
			if e.Variant%2 == 1 {
				color = core.ColorGray
			}
			dst.SetColor(x, y, glyph, color)
		case KindEnergy:
			dst.SetColor(x, y, EnergyChar, core.ColorGreen)
		case KindBullet:
			dst.SetColor(x, y, BulletChar, core.ColorBrightYellow)
		}
	}

	x, y := cell(dst, snap.ShipX, snap.ShipY, snap.WorldW, snap.WorldH)
	dst.DrawTextColor(x-1, y, ShipGlyph, core.ColorBrightCyan)
}

// renderHUD draws the status lines in the top-left corner.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	color := core.ColorWhite
	if g.Flashing() {
		color = core.ColorBrightRed
	}
	for row, line := range g.HUDLines(snap) {
		dst.DrawTextColor(1, row, line, color)
	}
}

// HUDLines splits the status into display lines, leaving out ammunition
// for variants without weapons.
func (g *Game) HUDLines(snap Snapshot) []string {
	lines := make([]string, 0, hudRowCount)
	for _, line := range strings.SplitN(snap.Status, "\n", hudRowCount) {
		if !g.variant.Weapons && strings.HasPrefix(line, "Bullets") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Flashing reports whether the ship was hit within the last few ticks.
func (g *Game) Flashing() bool {
	return g.flash > 0
}

// renderTitle draws the title screen with the last and best times.
func (g *Game) renderTitle(dst *core.Screen, snap Snapshot) {
	mid := dst.Height() / 2
	title := strings.Join(strings.Split(strings.ToUpper(g.variant.Title), ""), " ")
	dst.DrawTextColor((dst.Width()-len([]rune(title)))/2, mid-4, title, core.ColorBrightCyan)

	dst.DrawTextCentered(mid-1, "Press ENTER or click to start")
	dst.DrawTextCentered(mid+1, fmt.Sprintf("Last %s   Best %s", snap.Last, snap.Best))

	controls := "←/→ steer   SPACE fire   P pause   Q quit"
	if !g.variant.Weapons {
		controls = "←/→ steer   P pause   Q quit"
	}
	dst.DrawTextCentered(dst.Height()-2, controls)
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
