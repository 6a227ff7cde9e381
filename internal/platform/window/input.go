package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/starfall/internal/core"
)

// keySource reports keyboard and mouse state for the current frame.
type keySource interface {
	IsKeyPressed(k ebiten.Key) bool
	IsKeyJustPressed(k ebiten.Key) bool
	IsMouseButtonJustPressed(b ebiten.MouseButton) bool
}

// ebitenInput reads the real devices.
type ebitenInput struct{}

func (ebitenInput) IsKeyPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenInput) IsKeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenInput) IsMouseButtonJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

// Key bindings. Steering reads held state, everything else is edge-triggered.
var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	fireKeys    = []ebiten.Key{ebiten.KeySpace}
	confirmKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}
	pauseKeys   = []ebiten.Key{ebiten.KeyP}
	quitKeys    = []ebiten.Key{ebiten.KeyQ}
)

func anyPressed(src keySource, keys []ebiten.Key) bool {
	for _, k := range keys {
		if src.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(src keySource, keys []ebiten.Key) bool {
	for _, k := range keys {
		if src.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// readInput builds the input frame for one tick.
// Returns true as the second value when the player asked to quit.
func readInput(src keySource) (core.InputFrame, bool) {
	frame := core.NewInputFrame()

	if anyJustPressed(src, quitKeys) {
		frame.Set(core.ActionQuit)
		return frame, true
	}

	if anyPressed(src, leftKeys) {
		frame.SetHeld(core.ActionLeft)
	}
	if anyPressed(src, rightKeys) {
		frame.SetHeld(core.ActionRight)
	}
	if anyJustPressed(src, fireKeys) {
		frame.Set(core.ActionFire)
	}
	if anyJustPressed(src, confirmKeys) || src.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		frame.Set(core.ActionConfirm)
	}
	if anyJustPressed(src, pauseKeys) {
		frame.Set(core.ActionPause)
	}
	return frame, false
}
