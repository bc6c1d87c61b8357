package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TSandvaer/platformgame-sub000/internal/domain/entity"
	"github.com/TSandvaer/platformgame-sub000/internal/infrastructure/config"
)

func createTestEntitiesConfig() *config.EntitiesConfig {
	return &config.EntitiesConfig{
		Player: config.PlayerConfig{
			ID:     "player",
			Hitbox: config.SizeConfig{Width: 20, Height: 40},
			Stats:  config.PlayerStats{MaxHealth: 120},
		},
		Enemies: map[string]config.EnemyConfig{
			"grunt": {
				ID:     "grunt",
				Hitbox: config.SizeConfig{Width: 24, Height: 40},
				Stats: config.EnemyStats{
					MaxHealth:        50,
					Damage:           10,
					MoveSpeed:        2,
					AttackReach:      40,
					AttackCooldownMs: 1000,
					AttackDurationMs: 300,
					RespawnDelayMs:   5000,
				},
				AI: config.EnemyAI{
					Attraction: config.SizeConfig{Width: 400, Height: 200},
				},
			},
			"turret": {
				ID:     "turret",
				Hitbox: config.SizeConfig{Width: 30, Height: 30},
				Stats:  config.EnemyStats{MaxHealth: 80, Damage: 15},
				AI:     config.EnemyAI{Stationary: true},
			},
		},
	}
}

func TestLoadScene(t *testing.T) {
	log := createTestLogger()

	t.Run("converts obstacles and player spawn", func(t *testing.T) {
		cfg := &config.SceneConfig{
			ID:          "demo",
			Name:        "Demo",
			Bounds:      config.RectConfig{W: 2000, H: 600},
			PlayerSpawn: config.PositionConfig{X: 48, Y: 400},
			Obstacles: []config.ObstacleConfig{
				{RectConfig: config.RectConfig{X: 0, Y: 560, W: 2000, H: 40}},
				{RectConfig: config.RectConfig{X: 300, Y: 450, W: 0, H: 20}},
				{RectConfig: config.RectConfig{X: 500, Y: 500, W: 40, H: 60}, Kind: "solid"},
			},
		}

		scene, err := LoadScene(cfg, createTestEntitiesConfig(), log)

		require.NoError(t, err)
		assert.Equal(t, "demo", scene.ID)
		assert.Equal(t, entity.Rect{W: 2000, H: 600}, scene.Bounds)
		assert.Equal(t, entity.Vec2{X: 48, Y: 400}, scene.PlayerSpawn)
		assert.Equal(t, 20.0, scene.PlayerWidth)
		assert.Equal(t, 120.0, scene.PlayerHealth)

		require.Len(t, scene.Obstacles, 2)
		assert.Equal(t, entity.EntityID(1), scene.Obstacles[0].ID)
		assert.Equal(t, entity.ObstaclePlatform, scene.Obstacles[0].Kind)
		assert.Equal(t, entity.EntityID(2), scene.Obstacles[1].ID)
		assert.Equal(t, entity.ObstacleSolid, scene.Obstacles[1].Kind)
	})

	t.Run("merges archetype stats with spawn zones", func(t *testing.T) {
		cfg := &config.SceneConfig{
			ID: "zones",
			Enemies: []config.EnemySpawnConfig{
				{
					Type:        "grunt",
					X:           100,
					Y:           200,
					FacingRight: true,
					Patrol:      &config.IntervalZone{StartX: 50, EndX: 300},
				},
				{
					Type: "grunt",
					X:    600,
					Y:    200,
					Attraction: &config.BoxZone{
						RectConfig: config.RectConfig{X: 500, Y: 100, W: 300, H: 200},
						Disabled:   true,
					},
				},
				{Type: "turret", X: 900, Y: 100},
			},
		}

		scene, err := LoadScene(cfg, createTestEntitiesConfig(), log)

		require.NoError(t, err)
		require.Len(t, scene.Enemies, 3)

		grunt := scene.Enemies[0]
		assert.Equal(t, 24.0, grunt.Width)
		assert.Equal(t, 50.0, grunt.MaxHealth)
		assert.Equal(t, 5000.0, grunt.RespawnDelay)
		assert.True(t, grunt.FacingRight)
		assert.Equal(t, entity.NewIntervalZone(50, 300), grunt.Patrol)
		// default attraction box centered on the body
		assert.Equal(t, entity.NewBoxZone(entity.Rect{X: -88, Y: 120, W: 400, H: 200}), grunt.Attraction)

		disabled := scene.Enemies[1]
		assert.False(t, disabled.Attraction.Enabled)
		assert.False(t, disabled.Patrol.Enabled)

		turret := scene.Enemies[2]
		assert.True(t, turret.Stationary)
		assert.False(t, turret.Attraction.Enabled)
		assert.Equal(t, entity.ZoneInterval, turret.Patrol.Kind)
	})

	t.Run("unknown enemy type", func(t *testing.T) {
		cfg := &config.SceneConfig{
			Enemies: []config.EnemySpawnConfig{{Type: "dragon"}},
		}

		_, err := LoadScene(cfg, createTestEntitiesConfig(), log)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownEnemyType)
	})

	t.Run("unknown obstacle kind", func(t *testing.T) {
		cfg := &config.SceneConfig{
			Obstacles: []config.ObstacleConfig{
				{RectConfig: config.RectConfig{W: 10, H: 10}, Kind: "lava"},
			},
		}

		_, err := LoadScene(cfg, createTestEntitiesConfig(), log)

		assert.ErrorIs(t, err, ErrUnknownObstacleKind)
	})

	t.Run("player defaults", func(t *testing.T) {
		scene, err := LoadScene(&config.SceneConfig{}, &config.EntitiesConfig{}, nil)

		require.NoError(t, err)
		assert.Equal(t, defaultPlayerWidth, scene.PlayerWidth)
		assert.Equal(t, defaultPlayerHeight, scene.PlayerHeight)
		assert.Equal(t, defaultPlayerHealth, scene.PlayerHealth)
	})
}
