package system

import "github.com/TSandvaer/platformgame-sub000/internal/domain/entity"

// BodySnapshot is the renderer view of a body after a step
type BodySnapshot struct {
	ID        entity.EntityID `msgpack:"id"`
	X         float64         `msgpack:"x"`
	Y         float64         `msgpack:"y"`
	Width     float64         `msgpack:"w"`
	Height    float64         `msgpack:"h"`
	VX        float64         `msgpack:"vx"`
	VY        float64         `msgpack:"vy"`
	Facing    entity.Facing   `msgpack:"f"`
	OnGround  bool            `msgpack:"g"`
	Health    float64         `msgpack:"hp"`
	MaxHealth float64         `msgpack:"mhp"`
	Dead      bool            `msgpack:"dead"`
	Damaged   bool            `msgpack:"dmg"`
	Attacking bool            `msgpack:"atk"`
}

// Bounds returns the body rectangle
func (b BodySnapshot) Bounds() entity.Rect {
	return entity.Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Speed returns the absolute horizontal speed
func (b BodySnapshot) Speed() float64 {
	if b.VX < 0 {
		return -b.VX
	}
	return b.VX
}

// EnemySnapshot adds AI state to a body snapshot
type EnemySnapshot struct {
	BodySnapshot `msgpack:",inline"`
	Type         string         `msgpack:"type"`
	AIState      entity.AIState `msgpack:"ai"`
	Target       *entity.Vec2   `msgpack:"target,omitempty"`
}

// Snapshot is a value copy of the world after a step
type Snapshot struct {
	Frame   uint64          `msgpack:"frame"`
	Now     float64         `msgpack:"now"`
	Player  BodySnapshot    `msgpack:"player"`
	Enemies []EnemySnapshot `msgpack:"enemies"`
}

// Snapshot copies the post-step state for renderers and digests
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:   s.frame,
		Now:     s.now,
		Player:  snapshotBody(s.player.ID, &s.player.Body),
		Enemies: make([]EnemySnapshot, 0, len(s.enemies)),
	}
	for _, e := range s.enemies {
		es := EnemySnapshot{
			BodySnapshot: snapshotBody(e.ID, &e.Body),
			Type:         e.Type,
			AIState:      e.AIState,
		}
		if e.Target != nil {
			t := *e.Target
			es.Target = &t
		}
		snap.Enemies = append(snap.Enemies, es)
	}
	return snap
}

func snapshotBody(id entity.EntityID, b *entity.Body) BodySnapshot {
	return BodySnapshot{
		ID:        id,
		X:         b.X,
		Y:         b.Y,
		Width:     b.Width,
		Height:    b.Height,
		VX:        b.VX,
		VY:        b.VY,
		Facing:    b.Facing,
		OnGround:  b.OnGround,
		Health:    b.Health,
		MaxHealth: b.MaxHealth,
		Dead:      b.Dead,
		Damaged:   b.Damaged,
		Attacking: b.Attacking,
	}
}
