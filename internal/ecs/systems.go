package ecs

import (
	"github.com/TSandvaer/platformgame-sub000/internal/application/system"
	"github.com/TSandvaer/platformgame-sub000/internal/domain/entity"
)

// speed above which a grounded body is drawn moving
const movingSpeed = 0.5

// Sync brings the registry up to date with a post-step snapshot.
// Entities missing from the snapshot are destroyed, hit events start a
// flash on their target and clips advance by dt ms.
func (r *Registry) Sync(snap system.Snapshot, events []entity.CombatEvent, dt float64) {
	clear(r.seen)

	r.syncBody(snap.Player, SelectPlayerClip(snap.Player), dt)
	r.IsPlayer[snap.Player.ID] = struct{}{}
	r.PlayerID = snap.Player.ID

	for _, e := range snap.Enemies {
		r.syncBody(e.BodySnapshot, SelectEnemyClip(e), dt)
		r.IsEnemy[e.ID] = struct{}{}
	}

	for id := range r.Transform {
		if _, ok := r.seen[id]; !ok {
			r.DestroyEntity(id)
		}
	}

	r.updateFlash(events)
}

func (r *Registry) syncBody(b system.BodySnapshot, clip string, dt float64) {
	r.seen[b.ID] = struct{}{}

	r.Transform[b.ID] = Transform{
		X:      b.X,
		Y:      b.Y,
		Width:  b.Width,
		Height: b.Height,
		Facing: b.Facing,
	}
	r.Health[b.ID] = Health{Current: b.Health, Max: b.MaxHealth}

	current, ok := r.Clip[b.ID]
	if !ok || current.Name != clip {
		r.Clip[b.ID] = Clip{Name: clip}
		return
	}
	current.Elapsed += dt
	r.Clip[b.ID] = current
}

// updateFlash decays running flashes and starts new ones for hit targets
func (r *Registry) updateFlash(events []entity.CombatEvent) {
	for id, f := range r.Flash {
		f.Remaining--
		if f.Remaining <= 0 {
			delete(r.Flash, id)
			continue
		}
		r.Flash[id] = f
	}

	for _, ev := range events {
		if ev.Type == entity.BodyPush || !r.Exists(ev.Target) {
			continue
		}
		r.Flash[ev.Target] = Flash{Remaining: FlashFrames}
	}
}

// SelectPlayerClip picks the player clip from its body state
func SelectPlayerClip(b system.BodySnapshot) string {
	switch {
	case b.Dead:
		return ClipDead
	case b.Attacking:
		return ClipAttack
	case !b.OnGround && b.VY < 0:
		return ClipJump
	case !b.OnGround:
		return ClipFall
	case b.Speed() > movingSpeed:
		return ClipRun
	default:
		return ClipIdle
	}
}

// SelectEnemyClip picks the enemy clip from its body and AI state
func SelectEnemyClip(e system.EnemySnapshot) string {
	switch {
	case e.Dead:
		return ClipDead
	case e.Attacking:
		return ClipAttack
	case !e.OnGround:
		return ClipFall
	case e.Speed() <= movingSpeed:
		return ClipIdle
	case e.AIState == entity.AIChasing || e.AIState == entity.AIAttacking:
		return ClipRun
	default:
		return ClipWalk
	}
}
