package system

import (
	"github.com/TSandvaer/platformgame-sub000/internal/domain/entity"
	"github.com/TSandvaer/platformgame-sub000/internal/infrastructure/config"
)

// CombatResolver applies attacks, damage and body push-back between the
// player and enemies
type CombatResolver struct {
	config *config.PhysicsConfig
}

// NewCombatResolver creates a new combat resolver
func NewCombatResolver(cfg *config.PhysicsConfig) *CombatResolver {
	return &CombatResolver{config: cfg}
}

// SetConfig swaps the combat constants used from the next resolve
func (r *CombatResolver) SetConfig(cfg *config.PhysicsConfig) {
	r.config = cfg
}

// CanAttackPlayer reports whether the enemy may start a new swing at now
func (r *CombatResolver) CanAttackPlayer(enemy *entity.Enemy, player *entity.Player, now float64) bool {
	if enemy.Dead || player.Dead || enemy.Attacking {
		return false
	}
	if enemy.AIState != entity.AIAttacking || !enemy.CooldownElapsed(now) {
		return false
	}
	return enemy.Center().DistanceTo(player.Center()) < r.config.AI.AttackEnterDistance
}

// Resolve runs one enemy against the player and appends the resulting
// events. Dead enemies are skipped entirely.
func (r *CombatResolver) Resolve(enemy *entity.Enemy, player *entity.Player, now float64, events []entity.CombatEvent) []entity.CombatEvent {
	if player == nil || enemy.Dead {
		return events
	}
	combat := r.config.Combat

	if r.CanAttackPlayer(enemy, player, now) {
		enemy.BeginAttack(now)
	}

	// enemy swing, one hit per swing
	if enemy.Attacking && !enemy.AttackLanded() && !player.Dead && !player.Damaged {
		strike := AttackRange(&enemy.Body, enemy.AttackReach, combat.AttackHeightFraction)
		hurt := Hurtbox(&player.Body)
		if strike.Intersects(hurt) {
			applied, killed := player.TakeDamage(enemy.Damage, combat.DamageImmunityMs)
			if applied {
				enemy.MarkAttackLanded()
				if killed {
					player.RespawnTimer = combat.RespawnDelayMs
				}
				events = append(events, entity.CombatEvent{
					Type:     entity.PlayerHit,
					Attacker: enemy.ID,
					Target:   player.ID,
					Damage:   enemy.Damage,
					Fatal:    killed,
					Overlap:  strike.Overlap(hurt),
				})
			}
		}
	}

	// player swing, one hit per enemy per swing
	if player.Attacking && !player.Dead && !enemy.Damaged && !player.HasHit(enemy.ID) {
		strike := AttackRange(&player.Body, combat.PlayerReach, combat.AttackHeightFraction)
		hurt := Hurtbox(&enemy.Body)
		if strike.Intersects(hurt) {
			applied, killed := enemy.TakeDamage(combat.PlayerDamage, combat.DamageImmunityMs)
			if applied {
				player.MarkHit(enemy.ID)
				if killed {
					enemy.AIState = entity.AIIdle
					enemy.ClearTarget()
					enemy.RespawnTimer = enemy.RespawnDelay
				}
				events = append(events, entity.CombatEvent{
					Type:     entity.EnemyHit,
					Attacker: player.ID,
					Target:   enemy.ID,
					Damage:   combat.PlayerDamage,
					Fatal:    killed,
					Overlap:  strike.Overlap(hurt),
				})
			}
		}
	}

	if enemy.Dead || player.Dead {
		return events
	}

	// the enemy is immovable to the player
	enemyBounds := enemy.Bounds()
	overlap := player.Bounds().Overlap(enemyBounds)
	if ResolveOverlap(&player.Body, enemyBounds) {
		events = append(events, entity.CombatEvent{
			Type:     entity.BodyPush,
			Attacker: enemy.ID,
			Target:   player.ID,
			Overlap:  overlap,
		})
	}

	return events
}
