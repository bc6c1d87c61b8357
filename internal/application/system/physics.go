package system

import (
	"math"

	"github.com/TSandvaer/platformgame-sub000/internal/domain/entity"
	"github.com/TSandvaer/platformgame-sub000/internal/infrastructure/config"
)

const (
	// NominalFrameMs is the frame interval velocities are expressed in (60 FPS)
	NominalFrameMs = 16.67
	// MaxFrameMs is the largest dt accepted before substituting a nominal frame
	MaxFrameMs = 100.0

	// facingDeadband is the |VX| a body must exceed to turn around
	facingDeadband = 0.1
)

// ClampDT substitutes nominalMs for a dt that is non-positive, not finite
// or larger than maxMs
func ClampDT(dt, maxMs, nominalMs float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 || dt > maxMs {
		return nominalMs
	}
	return dt
}

// Normalize converts a frame interval in ms into nominal frames
func Normalize(dt float64) float64 {
	return dt / NominalFrameMs
}

// Integrate advances a body by dt milliseconds.
// Gravity and vertical motion only apply while airborne. A maxFall of 0
// disables the fall speed clamp.
func Integrate(body *entity.Body, dt, gravity, friction, maxFall float64) {
	k := Normalize(dt)

	if !body.OnGround {
		body.VY += gravity * k
		if maxFall > 0 && body.VY > maxFall {
			body.VY = maxFall
		}
	}

	body.X += body.VX * k
	if !body.OnGround {
		body.Y += body.VY * k
	}

	body.VX *= friction

	// Facing is pinned while attacking
	if body.Attacking {
		return
	}
	if body.VX > facingDeadband {
		body.Facing = entity.FacingRight
	} else if body.VX < -facingDeadband {
		body.Facing = entity.FacingLeft
	}
}

// PhysicsSystem integrates bodies with the configured constants
type PhysicsSystem struct {
	config *config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// SetConfig swaps the physics constants used from the next update
func (s *PhysicsSystem) SetConfig(cfg *config.PhysicsConfig) {
	s.config = cfg
}

// ClampDT clamps dt with the configured frame limits
func (s *PhysicsSystem) ClampDT(dt float64) float64 {
	return ClampDT(dt, s.config.Physics.MaxFrameMs, s.config.Physics.NominalFrameMs)
}

// UpdatePlayer integrates the player body
func (s *PhysicsSystem) UpdatePlayer(body *entity.Body, dt float64) {
	p := s.config.Physics
	Integrate(body, dt, p.Gravity, p.Friction, p.MaxFallSpeed)
}

// UpdateEnemy integrates an enemy body
func (s *PhysicsSystem) UpdateEnemy(body *entity.Body, dt float64) {
	p := s.config.Physics
	Integrate(body, dt, p.Gravity, p.EnemyFriction, p.MaxFallSpeed)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
