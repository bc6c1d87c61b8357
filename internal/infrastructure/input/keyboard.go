// Package input turns keyboard state into simulation input.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/TSandvaer/platformgame-sub000/internal/application/system"
)

// Bindings maps actions to keys. Any bound key triggers the action.
type Bindings struct {
	Left    []ebiten.Key
	Right   []ebiten.Key
	Up      []ebiten.Key
	Down    []ebiten.Key
	Jump    []ebiten.Key
	Attack  []ebiten.Key
	Pause   []ebiten.Key
	Restart []ebiten.Key
	Save    []ebiten.Key
	Debug   []ebiten.Key
}

// DefaultBindings returns WASD/arrow movement with Space jump and J attack
func DefaultBindings() Bindings {
	return Bindings{
		Left:    []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right:   []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Up:      []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Down:    []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Jump:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ},
		Attack:  []ebiten.Key{ebiten.KeyJ, ebiten.KeyX},
		Pause:   []ebiten.Key{ebiten.KeyEscape},
		Restart: []ebiten.Key{ebiten.KeyR},
		Save:    []ebiten.Key{ebiten.KeyF5},
		Debug:   []ebiten.Key{ebiten.KeyTab},
	}
}

// KeyState reports key state for the current tick
type KeyState interface {
	Pressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (ebitenKeys) JustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// Keyboard reads player intent and scene controls from the keyboard
type Keyboard struct {
	bindings Bindings
	keys     KeyState
}

// NewKeyboard creates a keyboard reader backed by ebiten
func NewKeyboard(bindings Bindings) *Keyboard {
	return NewKeyboardWithState(bindings, ebitenKeys{})
}

// NewKeyboardWithState creates a keyboard reader over any key source
func NewKeyboardWithState(bindings Bindings, keys KeyState) *Keyboard {
	return &Keyboard{bindings: bindings, keys: keys}
}

// Read returns this tick's input. Jump and attack trigger on press only.
func (k *Keyboard) Read() system.Input {
	var in system.Input

	if k.any(k.bindings.Left) {
		in.MoveX--
	}
	if k.any(k.bindings.Right) {
		in.MoveX++
	}
	if k.any(k.bindings.Up) {
		in.MoveY--
	}
	if k.any(k.bindings.Down) {
		in.MoveY++
	}
	in.Jump = k.anyJust(k.bindings.Jump)
	in.Attack = k.anyJust(k.bindings.Attack)

	return in
}

// PausePressed reports the pause toggle
func (k *Keyboard) PausePressed() bool { return k.anyJust(k.bindings.Pause) }

// RestartPressed reports the restart key
func (k *Keyboard) RestartPressed() bool { return k.anyJust(k.bindings.Restart) }

// SavePressed reports the save-recording key
func (k *Keyboard) SavePressed() bool { return k.anyJust(k.bindings.Save) }

// DebugHeld reports whether the debug overlay key is held
func (k *Keyboard) DebugHeld() bool { return k.any(k.bindings.Debug) }

func (k *Keyboard) any(keys []ebiten.Key) bool {
	for _, key := range keys {
		if k.keys.Pressed(key) {
			return true
		}
	}
	return false
}

func (k *Keyboard) anyJust(keys []ebiten.Key) bool {
	for _, key := range keys {
		if k.keys.JustPressed(key) {
			return true
		}
	}
	return false
}
