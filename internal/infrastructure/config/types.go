package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display  DisplayConfig   `json:"display" yaml:"display"`
	Physics  PhysicsSettings `json:"physics" yaml:"physics"`
	Movement MovementConfig  `json:"movement" yaml:"movement"`
	Combat   CombatConfig    `json:"combat" yaml:"combat"`
	AI       AIConfig        `json:"ai" yaml:"ai"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int `json:"screenHeight" yaml:"screenHeight"`
	Scale        int `json:"scale" yaml:"scale"`
	Framerate    int `json:"framerate" yaml:"framerate"`
}

// PhysicsSettings holds integrator constants.
// Velocities are pixels per nominal frame; times are milliseconds.
type PhysicsSettings struct {
	Gravity        float64 `json:"gravity" yaml:"gravity"`
	Friction       float64 `json:"friction" yaml:"friction"`
	EnemyFriction  float64 `json:"enemyFriction" yaml:"enemyFriction"`
	MaxFallSpeed   float64 `json:"maxFallSpeed" yaml:"maxFallSpeed"`
	NominalFrameMs float64 `json:"nominalFrameMs" yaml:"nominalFrameMs"`
	MaxFrameMs     float64 `json:"maxFrameMs" yaml:"maxFrameMs"`
}

type MovementConfig struct {
	MoveSpeed     float64 `json:"moveSpeed" yaml:"moveSpeed"`
	JumpForce     float64 `json:"jumpForce" yaml:"jumpForce"`
	DropThroughMs float64 `json:"dropThroughMs" yaml:"dropThroughMs"`
}

type CombatConfig struct {
	PlayerReach          float64 `json:"playerReach" yaml:"playerReach"`
	PlayerDamage         float64 `json:"playerDamage" yaml:"playerDamage"`
	AttackHeightFraction float64 `json:"attackHeightFraction" yaml:"attackHeightFraction"`
	AttackDurationMs     float64 `json:"attackDurationMs" yaml:"attackDurationMs"`
	AttackCooldownMs     float64 `json:"attackCooldownMs" yaml:"attackCooldownMs"`
	DamageImmunityMs     float64 `json:"damageImmunityMs" yaml:"damageImmunityMs"`
	RegenPerSecond       float64 `json:"regenPerSecond" yaml:"regenPerSecond"`
	RespawnDelayMs       float64 `json:"respawnDelayMs" yaml:"respawnDelayMs"`
}

// AIConfig holds the enemy state machine thresholds (pixels) and
// movement easing factors.
type AIConfig struct {
	AttackEnterDistance float64 `json:"attackEnterDistance" yaml:"attackEnterDistance"`
	AttackExitDistance  float64 `json:"attackExitDistance" yaml:"attackExitDistance"`
	LoseDistance        float64 `json:"loseDistance" yaml:"loseDistance"`
	RunMultiplier       float64 `json:"runMultiplier" yaml:"runMultiplier"`
	Deadband            float64 `json:"deadband" yaml:"deadband"`
	Acceleration        float64 `json:"acceleration" yaml:"acceleration"`
	IdleFriction        float64 `json:"idleFriction" yaml:"idleFriction"`
}
