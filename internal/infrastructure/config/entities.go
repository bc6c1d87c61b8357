package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player  PlayerConfig           `json:"player" yaml:"player"`
	Enemies map[string]EnemyConfig `json:"enemies" yaml:"enemies"`
}

type PlayerConfig struct {
	ID     string      `json:"id" yaml:"id"`
	Hitbox SizeConfig  `json:"hitbox" yaml:"hitbox"`
	Stats  PlayerStats `json:"stats" yaml:"stats"`
}

type SizeConfig struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

type PlayerStats struct {
	MaxHealth float64 `json:"maxHealth" yaml:"maxHealth"`
}

// EnemyConfig is an enemy archetype. Scene spawns reference it by key.
type EnemyConfig struct {
	ID     string     `json:"id" yaml:"id"`
	Hitbox SizeConfig `json:"hitbox" yaml:"hitbox"`
	Stats  EnemyStats `json:"stats" yaml:"stats"`
	AI     EnemyAI    `json:"ai" yaml:"ai"`
}

type EnemyStats struct {
	MaxHealth        float64 `json:"maxHealth" yaml:"maxHealth"`
	Damage           float64 `json:"damage" yaml:"damage"`
	MoveSpeed        float64 `json:"moveSpeed" yaml:"moveSpeed"`
	AttackReach      float64 `json:"attackReach" yaml:"attackReach"`
	AttackCooldownMs float64 `json:"attackCooldownMs" yaml:"attackCooldownMs"`
	AttackDurationMs float64 `json:"attackDurationMs" yaml:"attackDurationMs"`
	RespawnDelayMs   float64 `json:"respawnDelayMs" yaml:"respawnDelayMs"`
}

// EnemyAI holds archetype defaults for perception. A spawn without an
// explicit attraction zone gets a box of this size centered on the body.
type EnemyAI struct {
	Stationary bool       `json:"stationary" yaml:"stationary"`
	Attraction SizeConfig `json:"attraction" yaml:"attraction"`
}
