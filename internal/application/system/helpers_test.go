package system

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/TSandvaer/platformgame-sub000/internal/domain/entity"
	"github.com/TSandvaer/platformgame-sub000/internal/infrastructure/config"
)

func createTestPhysicsConfig() *config.PhysicsConfig {
	return config.Default()
}

func createTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func createTestSpawn(x, y float64) entity.EnemySpawn {
	return entity.EnemySpawn{
		Type:           "grunt",
		X:              x,
		Y:              y,
		Width:          20,
		Height:         40,
		FacingRight:    true,
		MaxHealth:      50,
		Speed:          2,
		Damage:         10,
		AttackReach:    40,
		AttackCooldown: 1000,
		AttackDuration: 300,
	}
}

func createTestEnemy(x, y float64) *entity.Enemy {
	return entity.NewEnemy(2, createTestSpawn(x, y))
}

func createTestPlayer(x, y float64) *entity.Player {
	return entity.NewPlayer(PlayerID, x, y, 20, 40, 100)
}

// zoneAround returns an enabled box zone of size w x h centered on the body
func zoneAround(b *entity.Body, w, h float64) entity.PerceptionZone {
	c := b.Center()
	return entity.NewBoxZone(entity.Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h})
}

func platform(id entity.EntityID, x, y, w, h float64) entity.StaticObstacle {
	return entity.StaticObstacle{ID: id, Rect: entity.Rect{X: x, Y: y, W: w, H: h}, Kind: entity.ObstaclePlatform}
}

func solid(id entity.EntityID, x, y, w, h float64) entity.StaticObstacle {
	return entity.StaticObstacle{ID: id, Rect: entity.Rect{X: x, Y: y, W: w, H: h}, Kind: entity.ObstacleSolid}
}
