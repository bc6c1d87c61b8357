package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/TSandvaer/platformgame-sub000/internal/domain/entity"
	"github.com/TSandvaer/platformgame-sub000/internal/infrastructure/config"
)

var (
	// ErrUnknownEnemyType is returned when a spawn references a missing archetype
	ErrUnknownEnemyType = errors.New("unknown enemy type")
	// ErrUnknownObstacleKind is returned for an obstacle kind other than platform or solid
	ErrUnknownObstacleKind = errors.New("unknown obstacle kind")
)

// Player hitbox used when entities.json leaves it unset
const (
	defaultPlayerWidth  = 24.0
	defaultPlayerHeight = 48.0
	defaultPlayerHealth = 100.0
)

// LoadScene converts scene and entity configs into a simulation scene.
// Degenerate obstacles are dropped with a warning.
func LoadScene(cfg *config.SceneConfig, entities *config.EntitiesConfig, log logrus.FieldLogger) (*entity.Scene, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithField("scene", cfg.ID)

	scene := &entity.Scene{
		ID:           cfg.ID,
		Name:         cfg.Name,
		Bounds:       rectFromConfig(cfg.Bounds),
		PlayerSpawn:  entity.Vec2{X: cfg.PlayerSpawn.X, Y: cfg.PlayerSpawn.Y},
		PlayerWidth:  orDefault(entities.Player.Hitbox.Width, defaultPlayerWidth),
		PlayerHeight: orDefault(entities.Player.Hitbox.Height, defaultPlayerHeight),
		PlayerHealth: orDefault(entities.Player.Stats.MaxHealth, defaultPlayerHealth),
	}

	scene.Obstacles = make([]entity.StaticObstacle, 0, len(cfg.Obstacles))
	for i, o := range cfg.Obstacles {
		kind, err := parseObstacleKind(o.Kind)
		if err != nil {
			return nil, fmt.Errorf("failed to load obstacle %d: %w", i, err)
		}
		rect := rectFromConfig(o.RectConfig)
		if rect.IsDegenerate() {
			log.WithFields(logrus.Fields{"index": i, "w": rect.W, "h": rect.H}).Warn("dropping degenerate obstacle")
			continue
		}
		scene.Obstacles = append(scene.Obstacles, entity.StaticObstacle{
			ID:   entity.EntityID(len(scene.Obstacles) + 1),
			Rect: rect,
			Kind: kind,
		})
	}

	scene.Enemies = make([]entity.EnemySpawn, 0, len(cfg.Enemies))
	for i, e := range cfg.Enemies {
		archetype, ok := entities.Enemies[e.Type]
		if !ok {
			return nil, fmt.Errorf("failed to load enemy %d: %w: %q", i, ErrUnknownEnemyType, e.Type)
		}
		spawn := buildEnemySpawn(e, archetype)
		if spawn.Attraction.Enabled && spawn.Attraction.IsDegenerate() {
			log.WithField("index", i).Warn("enemy attraction zone is degenerate")
		}
		if spawn.Patrol.Enabled && spawn.Patrol.IsDegenerate() {
			log.WithField("index", i).Warn("enemy patrol zone is degenerate")
		}
		scene.Enemies = append(scene.Enemies, spawn)
	}

	log.WithFields(logrus.Fields{
		"obstacles": len(scene.Obstacles),
		"enemies":   len(scene.Enemies),
	}).Debug("scene loaded")

	return scene, nil
}

// buildEnemySpawn merges archetype stats with per-spawn placement and zones
func buildEnemySpawn(cfg config.EnemySpawnConfig, archetype config.EnemyConfig) entity.EnemySpawn {
	spawn := entity.EnemySpawn{
		Type:           cfg.Type,
		X:              cfg.X,
		Y:              cfg.Y,
		Width:          archetype.Hitbox.Width,
		Height:         archetype.Hitbox.Height,
		FacingRight:    cfg.FacingRight,
		MaxHealth:      archetype.Stats.MaxHealth,
		Speed:          archetype.Stats.MoveSpeed,
		Damage:         archetype.Stats.Damage,
		AttackReach:    archetype.Stats.AttackReach,
		AttackCooldown: archetype.Stats.AttackCooldownMs,
		AttackDuration: archetype.Stats.AttackDurationMs,
		RespawnDelay:   archetype.Stats.RespawnDelayMs,
		Stationary:     archetype.AI.Stationary,
		Attraction:     entity.PerceptionZone{Kind: entity.ZoneBox},
		Patrol:         entity.PerceptionZone{Kind: entity.ZoneInterval},
	}

	switch {
	case cfg.Attraction != nil:
		spawn.Attraction = entity.NewBoxZone(rectFromConfig(cfg.Attraction.RectConfig))
		spawn.Attraction.Enabled = !cfg.Attraction.Disabled
	case archetype.AI.Attraction.Width > 0 && archetype.AI.Attraction.Height > 0:
		w, h := archetype.AI.Attraction.Width, archetype.AI.Attraction.Height
		cx := cfg.X + spawn.Width/2
		cy := cfg.Y + spawn.Height/2
		spawn.Attraction = entity.NewBoxZone(entity.Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h})
	}

	if cfg.Patrol != nil {
		spawn.Patrol = entity.NewIntervalZone(cfg.Patrol.StartX, cfg.Patrol.EndX)
		spawn.Patrol.Enabled = !cfg.Patrol.Disabled
	}

	return spawn
}

func parseObstacleKind(s string) (entity.ObstacleKind, error) {
	switch strings.ToLower(s) {
	case "", "platform":
		return entity.ObstaclePlatform, nil
	case "solid", "prop":
		return entity.ObstacleSolid, nil
	}
	return entity.ObstaclePlatform, fmt.Errorf("%w: %q", ErrUnknownObstacleKind, s)
}

func rectFromConfig(r config.RectConfig) entity.Rect {
	return entity.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
