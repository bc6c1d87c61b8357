package entity

// CombatEventType identifies the kind of combat overlap
type CombatEventType int

const (
	// PlayerHit: an enemy attack damaged the player
	PlayerHit CombatEventType = iota
	// EnemyHit: the player attack damaged an enemy
	EnemyHit
	// BodyPush: the player was pushed out of an enemy body
	BodyPush
)

// String returns the string representation of the event type
func (t CombatEventType) String() string {
	switch t {
	case PlayerHit:
		return "playerHit"
	case EnemyHit:
		return "enemyHit"
	case BodyPush:
		return "bodyPush"
	default:
		return "unknown"
	}
}

// CombatEvent describes one overlap resolved during a step.
// Events are produced by the combat resolver and consumed once.
type CombatEvent struct {
	Type     CombatEventType
	Attacker EntityID
	Target   EntityID
	Damage   float64
	Fatal    bool
	Overlap  Rect
}
