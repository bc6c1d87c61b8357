package entity

import "math"

// Player represents the player entity
type Player struct {
	ID EntityID
	Body

	SpawnX, SpawnY float64

	// Sim time (ms) before which a new attack cannot start
	AttackReadyAt float64

	// Remaining ms during which platforms are ignored (drop-through)
	DropTimer float64

	// Enemies already hit by the current swing
	swingHits map[EntityID]struct{}
}

// NewPlayer creates a new player at the spawn position with full health
func NewPlayer(id EntityID, x, y, width, height, maxHealth float64) *Player {
	return &Player{
		ID:            id,
		Body:          NewBody(x, y, width, height, maxHealth),
		SpawnX:        x,
		SpawnY:        y,
		AttackReadyAt: math.Inf(-1),
		swingHits:     make(map[EntityID]struct{}),
	}
}

// IsDropping returns true while the player falls through platforms
func (p *Player) IsDropping() bool {
	return p.DropTimer > 0
}

// BeginAttack starts a swing at sim time now
func (p *Player) BeginAttack(now, durationMs, cooldownMs float64) bool {
	if p.Dead || p.Attacking || now < p.AttackReadyAt {
		return false
	}
	p.StartAttack(durationMs)
	p.AttackReadyAt = now + cooldownMs
	clear(p.swingHits)
	return true
}

// HasHit reports whether the current swing already hit the given enemy
func (p *Player) HasHit(id EntityID) bool {
	_, ok := p.swingHits[id]
	return ok
}

// MarkHit records that the current swing hit the given enemy
func (p *Player) MarkHit(id EntityID) {
	if p.swingHits == nil {
		p.swingHits = make(map[EntityID]struct{})
	}
	p.swingHits[id] = struct{}{}
}

// Revive respawns the player at its spawn point
func (p *Player) Revive() {
	p.Respawn(p.SpawnX, p.SpawnY)
	p.AttackReadyAt = math.Inf(-1)
	p.DropTimer = 0
	clear(p.swingHits)
}
