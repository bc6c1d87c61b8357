// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/TSandvaer/platformgame-sub000/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64 // ms per Update

	shutdown sync.Once
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1000.0 / float64(ebiten.DefaultTPS),
	}
	g.current.OnEnter()
	return g
}

// Update forwards one tick to the current scene and applies a requested
// transition. A scene returning ebiten.Termination is shut down first.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if errors.Is(err, ebiten.Termination) {
		g.Shutdown()
		return err
	}
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetTPS matches the scene frame time to ebiten's tick rate.
// ebiten calls Update at a fixed TPS, so each tick is 1000/tps ms.
func (g *Game) SetTPS(tps int) {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	ebiten.SetTPS(tps)
	g.dt = 1000.0 / float64(tps)
}

// SetDT overrides the frame time passed to the scene.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// DT returns the frame time passed to the scene
func (g *Game) DT() float64 {
	return g.dt
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Shutdown exits the current scene once. Call it after ebiten.RunGame returns.
func (g *Game) Shutdown() {
	g.shutdown.Do(func() {
		g.current.OnExit()
	})
}
