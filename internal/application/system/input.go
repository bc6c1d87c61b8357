package system

import (
	"github.com/TSandvaer/platformgame-sub000/internal/domain/entity"
	"github.com/TSandvaer/platformgame-sub000/internal/infrastructure/config"
)

// InputSystem turns player intents into velocity and actions
type InputSystem struct {
	config *config.PhysicsConfig
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.PhysicsConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// SetConfig swaps the movement constants used from the next update
func (s *InputSystem) SetConfig(cfg *config.PhysicsConfig) {
	s.config = cfg
}

// ApplyInput applies one step of intent to the player at sim time now.
// A dead player ignores input.
func (s *InputSystem) ApplyInput(player *entity.Player, in Input, now float64) {
	if player == nil || player.Dead {
		return
	}

	s.handleMovement(player, in)
	s.handleJump(player, in)

	if in.Attack {
		player.BeginAttack(now, s.config.Combat.AttackDurationMs, s.config.Combat.AttackCooldownMs)
	}
}

// handleMovement sets horizontal velocity; no input leaves friction to slow the player
func (s *InputSystem) handleMovement(player *entity.Player, in Input) {
	mx := clamp(in.MoveX, -1, 1)
	if mx != 0 {
		player.VX = mx * s.config.Movement.MoveSpeed
	}
}

// handleJump jumps off the ground, or drops through platforms when holding down
func (s *InputSystem) handleJump(player *entity.Player, in Input) {
	if !in.Jump || !player.OnGround {
		return
	}

	if in.WantsDrop() && s.config.Movement.DropThroughMs > 0 {
		player.DropTimer = s.config.Movement.DropThroughMs
		player.OnGround = false
		return
	}

	player.VY = -s.config.Movement.JumpForce
	player.OnGround = false
}
