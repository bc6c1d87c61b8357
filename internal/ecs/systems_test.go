package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TSandvaer/platformgame-sub000/internal/application/system"
	"github.com/TSandvaer/platformgame-sub000/internal/domain/entity"
)

func TestSelectPlayerClip(t *testing.T) {
	tests := []struct {
		name string
		body system.BodySnapshot
		want string
	}{
		{"idle", system.BodySnapshot{OnGround: true}, ClipIdle},
		{"run", system.BodySnapshot{OnGround: true, VX: -3}, ClipRun},
		{"jump", system.BodySnapshot{VY: -5}, ClipJump},
		{"fall", system.BodySnapshot{VY: 5}, ClipFall},
		{"attack wins over movement", system.BodySnapshot{Attacking: true, VY: 5}, ClipAttack},
		{"dead wins over everything", system.BodySnapshot{Dead: true, Attacking: true}, ClipDead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectPlayerClip(tt.body))
		})
	}
}

func TestSelectEnemyClip(t *testing.T) {
	grounded := func(vx float64, state entity.AIState) system.EnemySnapshot {
		return system.EnemySnapshot{
			BodySnapshot: system.BodySnapshot{OnGround: true, VX: vx},
			AIState:      state,
		}
	}

	tests := []struct {
		name  string
		enemy system.EnemySnapshot
		want  string
	}{
		{"idle", grounded(0, entity.AIIdle), ClipIdle},
		{"patrol walks", grounded(2, entity.AIPatrolling), ClipWalk},
		{"chase runs", grounded(-5, entity.AIChasing), ClipRun},
		{"slow chase idles", grounded(0.2, entity.AIChasing), ClipIdle},
		{"airborne", system.EnemySnapshot{BodySnapshot: system.BodySnapshot{VY: 3}}, ClipFall},
		{"dead", system.EnemySnapshot{BodySnapshot: system.BodySnapshot{Dead: true}}, ClipDead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectEnemyClip(tt.enemy))
		})
	}
}
