package entity

import "math"

// AIState is the behavior state of an enemy
type AIState int

const (
	AIIdle AIState = iota
	AIPatrolling
	AIChasing
	AIAttacking
)

// String returns the string representation of the AI state
func (s AIState) String() string {
	switch s {
	case AIIdle:
		return "idle"
	case AIPatrolling:
		return "patrolling"
	case AIChasing:
		return "chasing"
	case AIAttacking:
		return "attacking"
	default:
		return "unknown"
	}
}

// HasTarget reports whether the state carries a combat target
func (s AIState) HasTarget() bool {
	return s == AIChasing || s == AIAttacking
}

// Enemy represents an AI-controlled enemy
type Enemy struct {
	ID   EntityID
	Type string
	Body

	// Stats
	Speed          float64 // pixels per nominal frame (walking)
	Damage         float64
	AttackReach    float64
	AttackCooldown float64 // ms
	AttackDuration float64 // ms
	LastAttackTime float64 // sim time (ms) of the last attack start

	// AI
	AIState         AIState
	Target          *Vec2
	PatrolDirection int
	Attraction      PerceptionZone
	Patrol          PerceptionZone
	Stationary      bool

	// Spawn
	SpawnX, SpawnY float64
	RespawnDelay   float64 // ms, 0 = stays dead

	attackLanded bool
}

// NewEnemy creates an enemy from a spawn record
func NewEnemy(id EntityID, spawn EnemySpawn) *Enemy {
	body := NewBody(spawn.X, spawn.Y, spawn.Width, spawn.Height, spawn.MaxHealth)
	if !spawn.FacingRight {
		body.Facing = FacingLeft
	}

	dir := 1
	if !spawn.FacingRight {
		dir = -1
	}

	return &Enemy{
		ID:              id,
		Type:            spawn.Type,
		Body:            body,
		Speed:           spawn.Speed,
		Damage:          spawn.Damage,
		AttackReach:     spawn.AttackReach,
		AttackCooldown:  spawn.AttackCooldown,
		AttackDuration:  spawn.AttackDuration,
		LastAttackTime:  math.Inf(-1),
		AIState:         AIIdle,
		PatrolDirection: dir,
		Attraction:      spawn.Attraction,
		Patrol:          spawn.Patrol,
		Stationary:      spawn.Stationary,
		SpawnX:          spawn.X,
		SpawnY:          spawn.Y,
		RespawnDelay:    spawn.RespawnDelay,
	}
}

// CanPatrol reports an enabled, usable patrol zone on a mobile enemy
func (e *Enemy) CanPatrol() bool {
	return !e.Stationary && e.Patrol.Kind == ZoneInterval && e.Patrol.Active()
}

// IsAlive returns true if the enemy is not dead
func (e *Enemy) IsAlive() bool {
	return !e.Dead
}

// CooldownElapsed reports whether a new attack may start at sim time now
func (e *Enemy) CooldownElapsed(now float64) bool {
	return now-e.LastAttackTime >= e.AttackCooldown
}

// BeginAttack starts a swing at sim time now
func (e *Enemy) BeginAttack(now float64) {
	e.LastAttackTime = now
	e.attackLanded = false
	e.StartAttack(e.AttackDuration)
}

// AttackLanded reports whether the current swing already hit
func (e *Enemy) AttackLanded() bool {
	return e.attackLanded
}

// MarkAttackLanded records that the current swing hit its target
func (e *Enemy) MarkAttackLanded() {
	e.attackLanded = true
}

// SetTarget sets the combat target point
func (e *Enemy) SetTarget(p Vec2) {
	e.Target = &p
}

// ClearTarget drops the combat target
func (e *Enemy) ClearTarget() {
	e.Target = nil
}

// Revive respawns the enemy at its spawn point in the idle state
func (e *Enemy) Revive() {
	e.Respawn(e.SpawnX, e.SpawnY)
	e.AIState = AIIdle
	e.Target = nil
	e.LastAttackTime = math.Inf(-1)
	e.attackLanded = false
}
