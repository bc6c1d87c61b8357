package system

import (
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/TSandvaer/platformgame-sub000/internal/domain/entity"
	"github.com/TSandvaer/platformgame-sub000/internal/infrastructure/config"
)

// PlayerID is the entity id of the single player
const PlayerID entity.EntityID = 1

// Option configures a Simulation
type Option func(*Simulation)

// WithLogger sets the logger used for lifecycle transitions
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Simulation) {
		if log != nil {
			s.log = log
		}
	}
}

// WithIndexCellSize sets the broad-phase cell size in pixels
func WithIndexCellSize(size int) Option {
	return func(s *Simulation) {
		s.cellSize = size
	}
}

// StepResult is the outcome of one simulation step.
// Events is reused by the next step; copy it to keep it.
type StepResult struct {
	Frame  uint64
	DT     float64
	Now    float64
	Events []entity.CombatEvent
}

// Simulation owns the world state and advances it one step at a time.
// It is single-threaded: all methods must be called from one goroutine.
type Simulation struct {
	config *config.PhysicsConfig
	scene  *entity.Scene
	log    logrus.FieldLogger

	physics *PhysicsSystem
	input   *InputSystem
	ai      *AIController
	combat  *CombatResolver

	index    *ObstacleIndex
	cellSize int

	player  *entity.Player
	enemies []*entity.Enemy
	nextID  entity.EntityID

	// sim clock in ms, advanced only by clamped dt
	now   float64
	frame uint64

	events []entity.CombatEvent
}

// NewSimulation builds a simulation for the scene. A nil config uses defaults.
func NewSimulation(cfg *config.PhysicsConfig, scene *entity.Scene, opts ...Option) *Simulation {
	if cfg == nil {
		cfg = config.Default()
	}
	if scene == nil {
		scene = &entity.Scene{}
	}

	s := &Simulation{
		config:   cfg,
		scene:    scene,
		log:      logrus.StandardLogger(),
		physics:  NewPhysicsSystem(cfg),
		input:    NewInputSystem(cfg),
		ai:       NewAIController(cfg),
		combat:   NewCombatResolver(cfg),
		cellSize: DefaultIndexCellSize,
		nextID:   PlayerID + 1,
		events:   make([]entity.CombatEvent, 0, 8),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.index = NewObstacleIndex(scene.Obstacles, s.cellSize)
	s.player = entity.NewPlayer(PlayerID, scene.PlayerSpawn.X, scene.PlayerSpawn.Y,
		orDefault(scene.PlayerWidth, defaultPlayerWidth),
		orDefault(scene.PlayerHeight, defaultPlayerHeight),
		orDefault(scene.PlayerHealth, defaultPlayerHealth))

	s.enemies = make([]*entity.Enemy, 0, len(scene.Enemies))
	for _, spawn := range scene.Enemies {
		s.SpawnEnemy(spawn)
	}
	s.log.WithFields(logrus.Fields{
		"scene":     scene.ID,
		"obstacles": s.index.Len(),
		"cell":      s.cellSize,
	}).Debug("simulation ready")

	return s
}

// Step advances the world by dt milliseconds with the given player input.
//
// Order: clamp dt, player input, enemies (support, AI, movement,
// integration, collisions, facing), player (support, integration, collisions),
// combat, timers. Enemies run in insertion order.
func (s *Simulation) Step(dt float64, in Input) StepResult {
	clamped := s.physics.ClampDT(dt)
	if clamped != dt {
		s.log.WithFields(logrus.Fields{"dt": dt, "clamped": clamped}).Debug("dt out of range")
	}
	dt = clamped
	s.now += dt
	s.frame++

	s.input.ApplyInput(s.player, in, s.now)

	for _, e := range s.enemies {
		if e.Dead {
			continue
		}
		s.checkSupport(&e.Body, false)
		s.ai.Update(e, s.player)
		s.ai.ApplyMovement(e, dt)
		s.physics.UpdateEnemy(&e.Body, dt)
		s.resolveStatic(&e.Body, false)
		s.ai.FaceTarget(e, s.player)
	}

	if !s.player.Dead {
		dropping := s.player.IsDropping()
		s.checkSupport(&s.player.Body, dropping)
		s.physics.UpdatePlayer(&s.player.Body, dt)
		s.resolveStatic(&s.player.Body, dropping)
	}

	s.events = s.events[:0]
	for _, e := range s.enemies {
		s.events = s.combat.Resolve(e, s.player, s.now, s.events)
	}
	for _, ev := range s.events {
		if ev.Fatal {
			s.log.WithFields(logrus.Fields{
				"attacker": ev.Attacker,
				"target":   ev.Target,
				"frame":    s.frame,
			}).Debug("entity died")
		}
	}

	s.updateTimers(dt)

	return StepResult{
		Frame:  s.frame,
		DT:     dt,
		Now:    s.now,
		Events: s.events,
	}
}

// checkSupport clears OnGround when nothing is under the body anymore.
// Platforms are ignored while dropping through them.
func (s *Simulation) checkSupport(body *entity.Body, dropping bool) {
	if !body.OnGround {
		return
	}
	if onFloor(body, s.scene.Bounds) {
		return
	}

	feet := entity.Rect{X: body.X, Y: body.Bottom() - 1, W: body.Width, H: 2}
	var near []entity.StaticObstacle
	if dropping {
		near = s.index.QueryKind(feet, entity.ObstacleSolid)
	} else {
		near = s.index.Query(feet)
	}
	if !HasSupport(body, near) {
		body.OnGround = false
	}
}

// resolveStatic corrects a body against platforms, solids and the world bounds
func (s *Simulation) resolveStatic(body *entity.Body, dropping bool) {
	near := s.index.Query(body.Bounds())
	if !dropping {
		ResolveAgainstPlatforms(body, near)
	}
	ResolveAgainstSolids(body, near)
	ConstrainToBounds(body, s.scene.Bounds)
}

// updateTimers counts down damage, attack, drop and respawn timers and
// regenerates player health
func (s *Simulation) updateTimers(dt float64) {
	combat := s.config.Combat
	p := s.player

	p.TickTimers(dt)
	if p.DropTimer > 0 {
		p.DropTimer = max(0, p.DropTimer-dt)
	}
	if !p.Dead && !p.Damaged && combat.RegenPerSecond > 0 {
		p.Heal(combat.RegenPerSecond * dt / 1000)
	}
	if p.Dead {
		p.RespawnTimer -= dt
		if p.RespawnTimer <= 0 {
			p.Revive()
			s.log.WithField("frame", s.frame).Debug("player respawned")
		}
	}

	for _, e := range s.enemies {
		e.TickTimers(dt)
		if !e.Dead || !(e.RespawnDelay > 0) {
			continue
		}
		e.RespawnTimer -= dt
		if e.RespawnTimer <= 0 {
			e.Revive()
			s.log.WithFields(logrus.Fields{"id": e.ID, "type": e.Type}).Debug("enemy respawned")
		}
	}
}

// SpawnEnemy adds an enemy at the end of the update order
func (s *Simulation) SpawnEnemy(spawn entity.EnemySpawn) entity.EntityID {
	id := s.nextID
	s.nextID++

	s.enemies = append(s.enemies, entity.NewEnemy(id, spawn))
	s.log.WithFields(logrus.Fields{
		"id":   id,
		"type": spawn.Type,
		"x":    spawn.X,
		"y":    spawn.Y,
	}).Info("enemy spawned")
	return id
}

// Despawn removes an enemy, keeping the order of the others
func (s *Simulation) Despawn(id entity.EntityID) bool {
	i := slices.IndexFunc(s.enemies, func(e *entity.Enemy) bool { return e.ID == id })
	if i < 0 {
		return false
	}
	s.enemies = slices.Delete(s.enemies, i, i+1)
	s.log.WithField("id", id).Info("enemy despawned")
	return true
}

// Enemy returns the enemy with the given id
func (s *Simulation) Enemy(id entity.EntityID) (*entity.Enemy, bool) {
	for _, e := range s.enemies {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// SetConfig swaps physics, AI and combat constants from the next step.
// The obstacle index and entity stats are left as they are.
func (s *Simulation) SetConfig(cfg *config.PhysicsConfig) {
	if cfg == nil {
		return
	}
	s.config = cfg
	s.physics.SetConfig(cfg)
	s.input.SetConfig(cfg)
	s.ai.SetConfig(cfg)
	s.combat.SetConfig(cfg)
	s.log.Info("physics config reloaded")
}

// Player returns the player
func (s *Simulation) Player() *entity.Player { return s.player }

// Enemies returns the enemies in update order. The slice must not be modified.
func (s *Simulation) Enemies() []*entity.Enemy { return s.enemies }

// Obstacles returns the static obstacles of the scene
func (s *Simulation) Obstacles() []entity.StaticObstacle { return s.index.All() }

// Scene returns the scene the simulation was built from
func (s *Simulation) Scene() *entity.Scene { return s.scene }

// Config returns the active physics config
func (s *Simulation) Config() *config.PhysicsConfig { return s.config }

// Now returns the sim clock in ms
func (s *Simulation) Now() float64 { return s.now }

// Frame returns the number of steps taken
func (s *Simulation) Frame() uint64 { return s.frame }
