package window

import (
	"image/color"
	"math/rand"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/starfall/internal/games/starfall"
)

const (
	lineHeight = 16
	hudMargin  = 12
	starCount  = 120
)

var (
	colorSpace    = color.RGBA{R: 8, G: 8, B: 20, A: 255}
	colorStar     = color.RGBA{R: 90, G: 90, B: 120, A: 255}
	colorShip     = color.RGBA{R: 120, G: 220, B: 255, A: 255}
	colorBullet   = color.RGBA{R: 255, G: 240, B: 120, A: 255}
	colorEnergy   = color.RGBA{R: 90, G: 230, B: 110, A: 255}
	colorHUD      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorHUDFlash = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	colorOverlay  = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	colorTitle    = color.RGBA{R: 120, G: 220, B: 255, A: 255}

	// One color per cosmetic asteroid variant.
	asteroidColors = []color.RGBA{
		{R: 200, G: 120, B: 60, A: 255},
		{R: 140, G: 140, B: 150, A: 255},
	}
)

type star struct {
	x, y float32
}

// newStars scatters a fixed backdrop.
func newStars(w, h int, seed int64) []star {
	if w <= 0 || h <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	stars := make([]star, starCount)
	for i := range stars {
		stars[i] = star{x: float32(rng.Intn(w)), y: float32(rng.Intn(h))}
	}
	return stars
}

// Draw renders the current snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.game.Session().Snapshot()
	cfg := a.game.Config()

	screen.Fill(colorSpace)
	for _, s := range a.stars {
		vector.DrawFilledRect(screen, s.x, s.y, 2, 2, colorStar, false)
	}

	switch snap.Phase {
	case starfall.PhaseTitle:
		a.drawTitle(screen, snap)
	case starfall.PhasePlaying:
		a.drawField(screen, snap, cfg.Ship.Width, cfg.Ship.Height)
		a.drawHUD(screen, snap)
		if snap.Paused {
			a.drawBanner(screen, "PAUSED", "Press P to resume")
		}
	case starfall.PhaseGameOver:
		a.drawField(screen, snap, cfg.Ship.Width, cfg.Ship.Height)
		a.drawHUD(screen, snap)
		a.drawBanner(screen, strings.ToUpper(snap.Message), gameOverLine(snap))
	}
}

func (a *App) drawField(screen *ebiten.Image, snap starfall.Snapshot, shipW, shipH int) {
	cfg := a.game.Config()
	for _, e := range snap.Entities {
		x, y := float32(e.X), float32(e.Y)
		switch e.Kind {
		case starfall.KindAsteroid:
			c := asteroidColors[e.Variant%len(asteroidColors)]
			vector.DrawFilledCircle(screen, x, y, float32(cfg.Asteroids.Size)/2, c, true)
		case starfall.KindEnergy:
			vector.DrawFilledCircle(screen, x, y, float32(cfg.Energy.Size)/2, colorEnergy, true)
		case starfall.KindBullet:
			w, h := float32(cfg.Bullets.Width), float32(cfg.Bullets.Height)
			vector.DrawFilledRect(screen, x-w/2, y-h/2, w, h, colorBullet, false)
		}
	}

	// Hull plus a nose
	x, y := float32(snap.ShipX), float32(snap.ShipY)
	w, h := float32(shipW), float32(shipH)
	vector.DrawFilledRect(screen, x-w/2, y, w, h/2, colorShip, false)
	vector.DrawFilledRect(screen, x-w/6, y-h/2, w/3, h/2, colorShip, false)
}

func (a *App) drawHUD(screen *ebiten.Image, snap starfall.Snapshot) {
	c := colorHUD
	if a.game.Flashing() {
		c = colorHUDFlash
	}
	for i, line := range a.game.HUDLines(snap) {
		drawText(screen, a.face, line, hudMargin, float64(hudMargin+i*lineHeight), c)
	}
}

func (a *App) drawTitle(screen *ebiten.Image, snap starfall.Snapshot) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	mid := float64(h) / 2
	title := strings.ToUpper(a.game.Title())
	a.drawCentered(screen, title, w, mid-3*lineHeight, colorTitle)
	a.drawCentered(screen, "Press ENTER or click to start", w, mid-lineHeight, colorHUD)
	a.drawCentered(screen, "Last "+snap.Last.String()+"   Best "+snap.Best.String(), w, mid+lineHeight, colorHUD)
	a.drawCentered(screen, "Arrows/A D steer   Space fire   P pause   Q quit", w, mid+3*lineHeight, colorStar)
}

// drawBanner dims the field and shows two centered lines.
func (a *App) drawBanner(screen *ebiten.Image, title, subtitle string) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, float32(h/2-2*lineHeight), float32(w), 4*lineHeight, colorOverlay, false)
	a.drawCentered(screen, title, w, float64(h/2-lineHeight), colorHUD)
	a.drawCentered(screen, subtitle, w, float64(h/2+lineHeight/2), colorHUD)
}

func (a *App) drawCentered(screen *ebiten.Image, s string, width int, y float64, c color.Color) {
	tw, _ := text.Measure(s, a.face, lineHeight)
	drawText(screen, a.face, s, (float64(width)-tw)/2, y, c)
}

func drawText(dst *ebiten.Image, face text.Face, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = lineHeight
	text.Draw(dst, s, face, op)
}

// gameOverLine summarizes the finished run.
func gameOverLine(snap starfall.Snapshot) string {
	line := "Time " + snap.Last.String()
	if snap.NewBest {
		line += "  |  New best!"
	}
	return line
}
