package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TSandvaer/platformgame-sub000/internal/domain/entity"
)

func TestClampDT(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		want float64
	}{
		{"nominal", 16.67, 16.67},
		{"slow frame", 33, 33},
		{"at limit", 100, 100},
		{"stall", 150, NominalFrameMs},
		{"zero", 0, NominalFrameMs},
		{"negative", -5, NominalFrameMs},
		{"nan", math.NaN(), NominalFrameMs},
		{"inf", math.Inf(1), NominalFrameMs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampDT(tt.dt, MaxFrameMs, NominalFrameMs))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.InDelta(t, 1.0, Normalize(16.67), 1e-9)
	assert.InDelta(t, 2.0, Normalize(33.34), 1e-9)
	assert.InDelta(t, 0.5, Normalize(8.335), 1e-9)
}

func TestIntegrate(t *testing.T) {
	t.Run("airborne body falls and moves", func(t *testing.T) {
		body := entity.NewBody(0, 0, 20, 40, 100)
		body.VX = 2

		Integrate(&body, NominalFrameMs, 0.5, 0.85, 15)

		assert.InDelta(t, 0.5, body.VY, 1e-9)
		assert.InDelta(t, 0.5, body.Y, 1e-9)
		assert.InDelta(t, 2.0, body.X, 1e-9)
		assert.InDelta(t, 1.7, body.VX, 1e-9)
		assert.Equal(t, entity.FacingRight, body.Facing)
	})

	t.Run("grounded body ignores gravity", func(t *testing.T) {
		body := entity.NewBody(10, 10, 20, 40, 100)
		body.OnGround = true

		Integrate(&body, NominalFrameMs, 0.5, 0.85, 15)

		assert.Equal(t, 0.0, body.VY)
		assert.Equal(t, 10.0, body.Y)
	})

	t.Run("scales with dt", func(t *testing.T) {
		body := entity.NewBody(0, 0, 20, 40, 100)
		body.VX = 3

		Integrate(&body, 2*NominalFrameMs, 0.5, 1, 15)

		assert.InDelta(t, 1.0, body.VY, 1e-9)
		assert.InDelta(t, 2.0, body.Y, 1e-9)
		assert.InDelta(t, 6.0, body.X, 1e-9)
	})

	t.Run("clamps fall speed", func(t *testing.T) {
		body := entity.NewBody(0, 0, 20, 40, 100)
		body.VY = 14.8

		Integrate(&body, NominalFrameMs, 0.5, 1, 15)

		assert.Equal(t, 15.0, body.VY)
	})

	t.Run("zero max fall disables clamp", func(t *testing.T) {
		body := entity.NewBody(0, 0, 20, 40, 100)
		body.VY = 30

		Integrate(&body, NominalFrameMs, 0.5, 1, 0)

		assert.InDelta(t, 30.5, body.VY, 1e-9)
	})
}

func TestIntegrate_Facing(t *testing.T) {
	tests := []struct {
		name      string
		start     entity.Facing
		vx        float64
		attacking bool
		want      entity.Facing
	}{
		{"turns left past deadband", entity.FacingRight, -0.2, false, entity.FacingLeft},
		{"turns right past deadband", entity.FacingLeft, 0.2, false, entity.FacingRight},
		{"keeps facing inside deadband", entity.FacingLeft, 0.05, false, entity.FacingLeft},
		{"keeps facing at rest", entity.FacingRight, 0, false, entity.FacingRight},
		{"pinned while attacking", entity.FacingRight, -5, true, entity.FacingRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := entity.NewBody(0, 0, 20, 40, 100)
			body.OnGround = true
			body.Facing = tt.start
			body.VX = tt.vx
			body.Attacking = tt.attacking

			Integrate(&body, NominalFrameMs, 0.5, 1, 15)

			assert.Equal(t, tt.want, body.Facing)
		})
	}
}

func TestPhysicsSystem(t *testing.T) {
	cfg := createTestPhysicsConfig()
	sys := NewPhysicsSystem(cfg)
	require.NotNil(t, sys)

	t.Run("player and enemy use their own friction", func(t *testing.T) {
		player := entity.NewBody(0, 0, 20, 40, 100)
		player.OnGround = true
		player.VX = 10
		enemy := player

		sys.UpdatePlayer(&player, NominalFrameMs)
		sys.UpdateEnemy(&enemy, NominalFrameMs)

		assert.InDelta(t, 10*cfg.Physics.Friction, player.VX, 1e-9)
		assert.InDelta(t, 10*cfg.Physics.EnemyFriction, enemy.VX, 1e-9)
	})

	t.Run("clamps with configured limits", func(t *testing.T) {
		assert.Equal(t, cfg.Physics.NominalFrameMs, sys.ClampDT(250))
		assert.Equal(t, 50.0, sys.ClampDT(50))
	})

	t.Run("set config takes effect", func(t *testing.T) {
		next := createTestPhysicsConfig()
		next.Physics.Gravity = 2
		sys.SetConfig(next)

		body := entity.NewBody(0, 0, 20, 40, 100)
		sys.UpdatePlayer(&body, NominalFrameMs)
		assert.InDelta(t, 2.0, body.VY, 1e-9)
	})
}
