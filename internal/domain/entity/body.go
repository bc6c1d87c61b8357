package entity

// Body is the physical and vital state shared by the player and enemies.
//
// Position is the top-left corner in world pixels. Velocity is expressed in
// pixels per nominal frame (1/60 s); the integrator scales it by dt/16.67.
// All timers are milliseconds of simulation time.
type Body struct {
	X, Y          float64
	Width, Height float64
	VX, VY        float64

	Facing   Facing
	OnGround bool

	Health    float64
	MaxHealth float64
	Dead      bool

	// Damage-immunity window
	Damaged     bool
	DamageTimer float64

	Attacking   bool
	AttackTimer float64

	// Counts down while Dead; zero means no pending respawn
	RespawnTimer float64
}

// NewBody creates a body at the given pixel position with full health
func NewBody(x, y, width, height, maxHealth float64) Body {
	return Body{
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		Facing:    FacingRight,
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
}

// Bounds returns the body rectangle in world coordinates
func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Center returns the center point of the body
func (b *Body) Center() Vec2 {
	return b.Bounds().Center()
}

// Right returns the x coordinate of the right edge
func (b *Body) Right() float64 { return b.X + b.Width }

// Bottom returns the y coordinate of the feet
func (b *Body) Bottom() float64 { return b.Y + b.Height }

// SetBottom moves the body vertically so its feet rest at y
func (b *Body) SetBottom(y float64) {
	b.Y = y - b.Height
}

// TakeDamage applies damage to the body.
//
// Non-positive amounts, dead bodies and bodies inside their damage-immunity
// window are left untouched. applied reports whether health changed and
// killed is true only on the hit that brought health to zero.
func (b *Body) TakeDamage(amount, immunityMs float64) (applied, killed bool) {
	if !(amount > 0) || b.Dead || b.Damaged {
		return false, false
	}

	b.Health -= amount
	if b.Health < 0 {
		b.Health = 0
	}
	b.Damaged = true
	b.DamageTimer = immunityMs

	if b.Health == 0 {
		b.die()
		return true, true
	}
	return true, false
}

// die freezes the body in place
func (b *Body) die() {
	b.Dead = true
	b.Attacking = false
	b.AttackTimer = 0
	b.VX = 0
	b.VY = 0
}

// Heal restores health up to max
func (b *Body) Heal(amount float64) {
	if b.Dead || !(amount > 0) {
		return
	}
	b.Health += amount
	if b.Health > b.MaxHealth {
		b.Health = b.MaxHealth
	}
}

// Respawn revives the body at the given position with full health
func (b *Body) Respawn(x, y float64) {
	b.X = x
	b.Y = y
	b.VX = 0
	b.VY = 0
	b.OnGround = false
	b.Health = b.MaxHealth
	b.Dead = false
	b.Damaged = false
	b.DamageTimer = 0
	b.Attacking = false
	b.AttackTimer = 0
	b.RespawnTimer = 0
}

// StartAttack flags the body as attacking for durationMs
func (b *Body) StartAttack(durationMs float64) {
	b.Attacking = true
	b.AttackTimer = durationMs
}

// TickTimers counts the damage and attack timers down by dtMs
func (b *Body) TickTimers(dtMs float64) {
	if b.Damaged {
		b.DamageTimer -= dtMs
		if b.DamageTimer <= 0 {
			b.DamageTimer = 0
			b.Damaged = false
		}
	}
	if b.Attacking {
		b.AttackTimer -= dtMs
		if b.AttackTimer <= 0 {
			b.AttackTimer = 0
			b.Attacking = false
		}
	}
}

