package ecs

import "github.com/TSandvaer/platformgame-sub000/internal/domain/entity"

// Animation clip names selected from simulation state
const (
	ClipIdle   = "idle"
	ClipWalk   = "walk"
	ClipRun    = "run"
	ClipJump   = "jump"
	ClipFall   = "fall"
	ClipAttack = "attack"
	ClipDead   = "dead"
)

// FlashFrames is how many frames a body flashes after being hit
const FlashFrames = 6

// Transform is the drawn rectangle of an entity
type Transform struct {
	X, Y          float64
	Width, Height float64
	Facing        entity.Facing
}

// Rect returns the transform as a rectangle
func (t Transform) Rect() entity.Rect {
	return entity.Rect{X: t.X, Y: t.Y, W: t.Width, H: t.Height}
}

// Health is the HUD view of a health pool
type Health struct {
	Current float64
	Max     float64
}

// Ratio returns current health as a fraction of max
func (h Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

// Clip is the animation clip chosen for an entity and how long it has played
type Clip struct {
	Name    string
	Elapsed float64 // ms since the clip started
}

// Flash counts down the hit flash
type Flash struct {
	Remaining int // frames
}

// Active reports whether the flash is still visible
func (f Flash) Active() bool {
	return f.Remaining > 0
}
