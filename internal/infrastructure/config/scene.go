package config

// SceneConfig is the root config for scene files (YAML or JSON)
type SceneConfig struct {
	ID          string             `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Bounds      RectConfig         `json:"bounds" yaml:"bounds"`
	PlayerSpawn PositionConfig     `json:"playerSpawn" yaml:"playerSpawn"`
	Obstacles   []ObstacleConfig   `json:"obstacles" yaml:"obstacles"`
	Enemies     []EnemySpawnConfig `json:"enemies" yaml:"enemies"`
}

type PositionConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type RectConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// ObstacleConfig is a static rectangle. Kind is "platform" (default) or "solid".
type ObstacleConfig struct {
	RectConfig `json:",inline" yaml:",inline"`
	Kind       string `json:"kind,omitempty" yaml:"kind,omitempty"`
}

type EnemySpawnConfig struct {
	Type        string        `json:"type" yaml:"type"`
	X           float64       `json:"x" yaml:"x"`
	Y           float64       `json:"y" yaml:"y"`
	FacingRight bool          `json:"facingRight" yaml:"facingRight"`
	Attraction  *BoxZone      `json:"attraction,omitempty" yaml:"attraction,omitempty"`
	Patrol      *IntervalZone `json:"patrol,omitempty" yaml:"patrol,omitempty"`
}

type BoxZone struct {
	RectConfig `json:",inline" yaml:",inline"`
	Disabled   bool `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

type IntervalZone struct {
	StartX   float64 `json:"startX" yaml:"startX"`
	EndX     float64 `json:"endX" yaml:"endX"`
	Disabled bool    `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}
