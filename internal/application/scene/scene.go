// Package scene defines the screen abstraction driven by game.Game.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the program. game.Game forwards ebiten's Update
// and Draw to the active scene and switches scenes on request.
type Scene interface {
	// Update advances the scene by dt milliseconds. A non-nil next scene
	// replaces this one; an error stops the game. ebiten.Termination ends
	// it cleanly.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene.
	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes active.
	OnEnter()

	// OnExit runs when the scene is replaced or the game shuts down.
	// It may save state such as recordings.
	OnExit()
}
