package config

// Default returns the physics configuration the game was tuned with
func Default() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 360,
			Scale:        2,
			Framerate:    60,
		},
		Physics: PhysicsSettings{
			Gravity:        0.5,
			Friction:       0.85,
			EnemyFriction:  0.95,
			MaxFallSpeed:   15,
			NominalFrameMs: 16.67,
			MaxFrameMs:     100,
		},
		Movement: MovementConfig{
			MoveSpeed:     5,
			JumpForce:     12,
			DropThroughMs: 250,
		},
		Combat: CombatConfig{
			PlayerReach:          55,
			PlayerDamage:         25,
			AttackHeightFraction: 0.6,
			AttackDurationMs:     300,
			AttackCooldownMs:     400,
			DamageImmunityMs:     500,
			RegenPerSecond:       2,
			RespawnDelayMs:       2000,
		},
		AI: AIConfig{
			AttackEnterDistance: 60,
			AttackExitDistance:  80,
			LoseDistance:        200,
			RunMultiplier:       2.5,
			Deadband:            10,
			Acceleration:        0.2,
			IdleFriction:        0.8,
		},
	}
}

// ApplyDefaults fills zero-valued fields with Default values.
// Fields where zero is meaningful (regen, drop-through) are left alone.
func (c *PhysicsConfig) ApplyDefaults() {
	d := Default()

	if c.Display.ScreenWidth == 0 {
		c.Display.ScreenWidth = d.Display.ScreenWidth
	}
	if c.Display.ScreenHeight == 0 {
		c.Display.ScreenHeight = d.Display.ScreenHeight
	}
	if c.Display.Scale == 0 {
		c.Display.Scale = d.Display.Scale
	}
	if c.Display.Framerate == 0 {
		c.Display.Framerate = d.Display.Framerate
	}

	fill(&c.Physics.Friction, d.Physics.Friction)
	fill(&c.Physics.EnemyFriction, d.Physics.EnemyFriction)
	fill(&c.Physics.NominalFrameMs, d.Physics.NominalFrameMs)
	fill(&c.Physics.MaxFrameMs, d.Physics.MaxFrameMs)

	fill(&c.Combat.PlayerReach, d.Combat.PlayerReach)
	fill(&c.Combat.PlayerDamage, d.Combat.PlayerDamage)
	fill(&c.Combat.AttackHeightFraction, d.Combat.AttackHeightFraction)
	fill(&c.Combat.AttackDurationMs, d.Combat.AttackDurationMs)
	fill(&c.Combat.DamageImmunityMs, d.Combat.DamageImmunityMs)

	fill(&c.AI.AttackEnterDistance, d.AI.AttackEnterDistance)
	fill(&c.AI.AttackExitDistance, d.AI.AttackExitDistance)
	fill(&c.AI.LoseDistance, d.AI.LoseDistance)
	fill(&c.AI.RunMultiplier, d.AI.RunMultiplier)
	fill(&c.AI.Deadband, d.AI.Deadband)
	fill(&c.AI.Acceleration, d.AI.Acceleration)
	fill(&c.AI.IdleFriction, d.AI.IdleFriction)
}

func fill(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}
