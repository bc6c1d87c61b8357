package entity

// ObstacleKind defines how the simulation treats a static rectangle
type ObstacleKind int

const (
	// ObstaclePlatform can be landed on from above
	ObstaclePlatform ObstacleKind = iota
	// ObstacleSolid is a non-traversable prop; overlapping bodies are pushed out
	ObstacleSolid
)

// String returns the string representation of the obstacle kind
func (k ObstacleKind) String() string {
	switch k {
	case ObstaclePlatform:
		return "platform"
	case ObstacleSolid:
		return "solid"
	default:
		return "unknown"
	}
}

// StaticObstacle is an axis-aligned rectangle owned by the scene.
// The simulation never mutates it.
type StaticObstacle struct {
	ID   EntityID
	Rect Rect
	Kind ObstacleKind
}

// EnemySpawn describes an enemy to place in the scene
type EnemySpawn struct {
	Type   string
	X, Y   float64
	Width  float64
	Height float64

	FacingRight bool

	MaxHealth      float64
	Speed          float64
	Damage         float64
	AttackReach    float64
	AttackCooldown float64 // ms
	AttackDuration float64 // ms
	RespawnDelay   float64 // ms, 0 = stays dead
	Stationary     bool

	Attraction PerceptionZone
	Patrol     PerceptionZone
}

// Scene is the simulation input produced by the level provider
type Scene struct {
	ID   string
	Name string

	// World bounds; a zero width or height disables that constraint
	Bounds Rect

	Obstacles []StaticObstacle
	Enemies   []EnemySpawn

	PlayerSpawn  Vec2
	PlayerWidth  float64
	PlayerHeight float64
	PlayerHealth float64
}
