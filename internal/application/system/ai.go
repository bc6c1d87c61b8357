package system

import (
	"math"

	"github.com/TSandvaer/platformgame-sub000/internal/domain/entity"
	"github.com/TSandvaer/platformgame-sub000/internal/infrastructure/config"
)

// AIController runs the enemy state machine and derives movement intents
type AIController struct {
	config *config.PhysicsConfig
}

// NewAIController creates a new AI controller
func NewAIController(cfg *config.PhysicsConfig) *AIController {
	return &AIController{config: cfg}
}

// SetConfig swaps the AI thresholds used from the next update
func (c *AIController) SetConfig(cfg *config.PhysicsConfig) {
	c.config = cfg
}

// Update evaluates at most one state transition for the enemy.
// A nil player or a dead enemy leaves the enemy untouched. A dead player
// is not perceived.
func (c *AIController) Update(enemy *entity.Enemy, player *entity.Player) {
	if player == nil || enemy.Dead {
		return
	}
	ai := c.config.AI

	center := enemy.Center()
	playerCenter := player.Center()
	inZone := false
	distance := math.Inf(1)
	if !player.Dead {
		inZone = enemy.Attraction.Contains(playerCenter)
		distance = center.DistanceTo(playerCenter)
	}

	switch enemy.AIState {
	case entity.AIIdle:
		if inZone {
			c.transition(enemy, entity.AIChasing)
			enemy.SetTarget(playerCenter)
		} else if enemy.CanPatrol() {
			c.transition(enemy, entity.AIPatrolling)
		}

	case entity.AIPatrolling:
		if inZone {
			c.transition(enemy, entity.AIChasing)
			enemy.SetTarget(playerCenter)
		} else if !enemy.CanPatrol() {
			c.transition(enemy, entity.AIIdle)
		}

	case entity.AIChasing:
		switch {
		case distance < ai.AttackEnterDistance:
			c.transition(enemy, entity.AIAttacking)
			enemy.SetTarget(playerCenter)
		case !inZone && distance > ai.LoseDistance:
			c.loseTarget(enemy)
		default:
			enemy.SetTarget(playerCenter)
		}

	case entity.AIAttacking:
		switch {
		case !inZone:
			c.loseTarget(enemy)
		case distance > ai.AttackExitDistance:
			c.transition(enemy, entity.AIChasing)
			enemy.SetTarget(playerCenter)
		default:
			enemy.SetTarget(playerCenter)
		}
	}

	c.FaceTarget(enemy, player)
}

// FaceTarget turns an attacking enemy toward the player. It overrides the
// facing derived from velocity, so it runs again after integration.
func (c *AIController) FaceTarget(enemy *entity.Enemy, player *entity.Player) {
	if player == nil || enemy.Dead || enemy.AIState != entity.AIAttacking {
		return
	}
	enemy.Facing = entity.FacingToward(enemy.Facing, enemy.Center().X, player.Center().X)
}

// ApplyMovement eases the enemy's horizontal velocity toward the intent of
// its current state
func (c *AIController) ApplyMovement(enemy *entity.Enemy, dt float64) {
	if enemy.Dead {
		return
	}
	ai := c.config.AI

	target := 0.0
	switch enemy.AIState {
	case entity.AIPatrolling:
		target = c.patrolVelocity(enemy)
	case entity.AIChasing, entity.AIAttacking:
		if enemy.Target != nil && !enemy.Stationary {
			dx := enemy.Target.X - enemy.Center().X
			if math.Abs(dx) > ai.Deadband {
				target = sign(dx) * enemy.Speed * ai.RunMultiplier
			}
		}
	}

	ease := math.Min(1, ai.Acceleration*Normalize(dt))
	enemy.VX += (target - enemy.VX) * ease

	if enemy.AIState == entity.AIIdle {
		enemy.VX *= ai.IdleFriction
	}
}

// patrolVelocity bounces the enemy between the patrol zone edges
func (c *AIController) patrolVelocity(enemy *entity.Enemy) float64 {
	if !enemy.CanPatrol() {
		return 0
	}
	zone := enemy.Patrol

	if enemy.X <= zone.StartX {
		enemy.PatrolDirection = 1
	} else if enemy.Right() >= zone.EndX {
		enemy.PatrolDirection = -1
	}
	if enemy.PatrolDirection == 0 {
		enemy.PatrolDirection = int(enemy.Facing.Sign())
	}

	return float64(enemy.PatrolDirection) * enemy.Speed
}

// loseTarget drops the target and falls back to patrolling or idle
func (c *AIController) loseTarget(enemy *entity.Enemy) {
	enemy.ClearTarget()
	if enemy.CanPatrol() {
		c.transition(enemy, entity.AIPatrolling)
		return
	}
	c.transition(enemy, entity.AIIdle)
}

func (c *AIController) transition(enemy *entity.Enemy, to entity.AIState) {
	enemy.AIState = to
	if !to.HasTarget() {
		enemy.ClearTarget()
	}
}
