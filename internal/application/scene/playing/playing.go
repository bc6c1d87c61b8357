// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"

	"github.com/TSandvaer/platformgame-sub000/internal/application/replay"
	"github.com/TSandvaer/platformgame-sub000/internal/application/scene"
	"github.com/TSandvaer/platformgame-sub000/internal/application/state"
	"github.com/TSandvaer/platformgame-sub000/internal/application/system"
	"github.com/TSandvaer/platformgame-sub000/internal/domain/entity"
	"github.com/TSandvaer/platformgame-sub000/internal/ecs"
	"github.com/TSandvaer/platformgame-sub000/internal/infrastructure/config"
	"github.com/TSandvaer/platformgame-sub000/internal/infrastructure/input"
)

// Colors for rendering
var (
	colorPlatform   = color.RGBA{80, 80, 100, 255}
	colorSolid      = color.RGBA{120, 90, 60, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorEnemy      = color.RGBA{200, 100, 100, 255}
	colorEnemyChase = color.RGBA{230, 140, 60, 255}
	colorDead       = color.RGBA{70, 70, 70, 160}
	colorFlash      = color.RGBA{255, 255, 255, 255}
	colorAttack     = color.RGBA{255, 220, 80, 90}
	colorZone       = color.RGBA{80, 160, 255, 40}
	colorPatrol     = color.RGBA{80, 255, 160, 160}
	colorTarget     = color.RGBA{255, 60, 60, 255}
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 200, 100, 255}
)

// Controls is the input source for the scene
type Controls interface {
	Read() system.Input
	PausePressed() bool
	RestartPressed() bool
	SavePressed() bool
	DebugHeld() bool
}

// Option configures the Playing scene
type Option func(*Playing)

// WithLogger sets the logger for the scene and its simulation
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Playing) {
		p.log = log
	}
}

// WithControls replaces the keyboard
func WithControls(c Controls) Option {
	return func(p *Playing) {
		p.controls = c
	}
}

// WithRecording records every step and saves to path on exit
func WithRecording(path string) Option {
	return func(p *Playing) {
		p.recordFilename = path
		p.recorder = replay.NewRecorder(p.scene.ID)
	}
}

// WithReplay feeds recorded frames instead of live input
func WithReplay(data *replay.ReplayData) Option {
	return func(p *Playing) {
		p.replayer = replay.NewReplayer(*data)
	}
}

// WithConfigUpdates applies physics configs received on ch between steps
func WithConfigUpdates(ch <-chan *config.PhysicsConfig) Option {
	return func(p *Playing) {
		p.updates = ch
	}
}

// Playing is the main gameplay scene
type Playing struct {
	config   *config.PhysicsConfig
	scene    *entity.Scene
	sim      *system.Simulation
	registry *ecs.Registry
	controls Controls
	state    state.GameState
	log      logrus.FieldLogger
	screenW  int
	screenH  int
	debug    bool

	// Hot-reloaded physics configs
	updates <-chan *config.PhysicsConfig

	// Input recording
	recorder       *replay.Recorder
	recordFilename string

	// Playback
	replayer     *replay.Replayer
	replayResult error
}

// New creates a new Playing scene for a loaded scene
func New(cfg *config.PhysicsConfig, sc *entity.Scene, opts ...Option) *Playing {
	p := &Playing{
		config:   cfg,
		scene:    sc,
		registry: ecs.NewRegistry(),
		state:    state.StatePlaying,
		log:      logrus.StandardLogger(),
		screenW:  cfg.Display.ScreenWidth,
		screenH:  cfg.Display.ScreenHeight,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.controls == nil {
		p.controls = input.NewKeyboard(input.DefaultBindings())
	}

	p.sim = p.newSimulation()
	p.registry.Sync(p.sim.Snapshot(), nil, 0)

	if p.recorder != nil {
		p.log.WithFields(logrus.Fields{"file": p.recordFilename, "id": p.recorder.Data().ID}).Info("recording enabled")
	}
	if p.replayer != nil {
		p.log.WithField("frames", p.replayer.TotalFrames()).Info("replaying")
	}

	return p
}

func (p *Playing) newSimulation() *system.Simulation {
	return system.NewSimulation(p.config, p.scene, system.WithLogger(p.log))
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.applyConfigUpdates()

	if p.controls.PausePressed() {
		p.state = p.state.TogglePause()
	}
	if p.controls.RestartPressed() {
		p.restart()
		return nil, nil
	}
	if p.controls.SavePressed() && p.recorder != nil {
		p.saveRecording()
	}
	p.debug = p.controls.DebugHeld()

	if p.state.Steps() {
		p.step(dt)
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) step(dt float64) {
	in := p.controls.Read()

	if p.replayer != nil {
		fi, ok := p.replayer.Next()
		if !ok {
			p.finishReplay()
			return
		}
		dt, in = fi.DT, fi.Input()
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(dt, in)
	}

	res := p.sim.Step(dt, in)
	p.registry.Sync(p.sim.Snapshot(), res.Events, res.DT)

	p.state = p.state.AfterStep(p.sim.Player().Dead)
}

// applyConfigUpdates drains pending reloads; only the newest one is applied
func (p *Playing) applyConfigUpdates() {
	if p.updates == nil {
		return
	}

	var latest *config.PhysicsConfig
drain:
	for {
		select {
		case cfg, ok := <-p.updates:
			if !ok {
				p.updates = nil
				break drain
			}
			latest = cfg
		default:
			break drain
		}
	}

	if latest != nil {
		p.config = latest
		p.sim.SetConfig(latest)
		p.log.Info("physics config applied")
	}
}

func (p *Playing) finishReplay() {
	p.state = state.StateReplayDone
	p.replayResult = replay.Check(p.replayer.Data(), p.sim.Snapshot())

	entry := p.log.WithField("frames", p.replayer.TotalFrames())
	switch {
	case p.replayResult == nil:
		entry.Info("replay finished, digest matches")
	case errors.Is(p.replayResult, replay.ErrNoDigest):
		entry.Info("replay finished")
	default:
		entry.WithError(p.replayResult).Warn("replay diverged")
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Finish(p.sim.Snapshot()); err != nil {
		p.log.WithError(err).Error("failed to digest recording")
		return
	}
	if err := p.recorder.Save(filename); err != nil {
		p.log.WithError(err).Error("failed to save recording")
		return
	}
	p.log.WithFields(logrus.Fields{"file": filename, "frames": p.recorder.FrameCount()}).Info("recording saved")
}

func (p *Playing) restart() {
	p.saveRecording()

	p.sim = p.newSimulation()
	p.registry.Reset()
	p.registry.Sync(p.sim.Snapshot(), nil, 0)
	p.state = state.StatePlaying

	if p.replayer != nil {
		p.replayer.Reset()
		p.replayResult = nil
	}
	if p.recordFilename != "" {
		p.recorder = replay.NewRecorder(p.scene.ID)
		p.log.WithField("id", p.recorder.Data().ID).Info("recording restarted")
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	// Fill background
	screen.Fill(colorBG)

	camX, camY := p.camera()

	p.drawObstacles(screen, camX, camY)
	if p.debug {
		p.drawZones(screen, camX, camY)
	}
	p.drawEnemies(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)
	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	case state.StateReplayDone:
		p.drawReplayOverlay(screen)
	}
}

// camera centers the player and clamps to scene bounds
func (p *Playing) camera() (float64, float64) {
	c := p.sim.Player().Center()
	camX := c.X - float64(p.screenW)/2
	camY := c.Y - float64(p.screenH)/2

	b := p.scene.Bounds
	if b.W > 0 {
		camX = clampCamera(camX, b.X, b.Right()-float64(p.screenW))
	}
	if b.H > 0 {
		camY = clampCamera(camY, b.Y, b.Bottom()-float64(p.screenH))
	}
	return camX, camY
}

func (p *Playing) drawObstacles(screen *ebiten.Image, camX, camY float64) {
	for _, o := range p.sim.Obstacles() {
		c := colorPlatform
		if o.Kind == entity.ObstacleSolid {
			c = colorSolid
		}
		drawRect(screen, o.Rect, camX, camY, c)
	}
}

func (p *Playing) drawZones(screen *ebiten.Image, camX, camY float64) {
	for _, e := range p.sim.Enemies() {
		if e.Attraction.Active() {
			drawRect(screen, e.Attraction.Box, camX, camY, colorZone)
		}
		if e.Patrol.Active() {
			y := e.Bottom() - camY + 2
			ebitenutil.DrawLine(screen, e.Patrol.StartX-camX, y, e.Patrol.EndX-camX, y, colorPatrol)
		}
		if e.Target != nil {
			ebitenutil.DrawRect(screen, e.Target.X-camX-2, e.Target.Y-camY-2, 4, 4, colorTarget)
		}
		if e.Attacking {
			drawRect(screen, system.AttackRange(&e.Body, e.AttackReach, p.config.Combat.AttackHeightFraction), camX, camY, colorAttack)
		}
	}

	pl := p.sim.Player()
	if pl.Attacking {
		drawRect(screen, system.AttackRange(&pl.Body, p.config.Combat.PlayerReach, p.config.Combat.AttackHeightFraction), camX, camY, colorAttack)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, camX, camY float64) {
	for _, e := range p.sim.Enemies() {
		id := e.ID
		tr, ok := p.registry.Transform[id]
		if !ok {
			continue
		}
		clip := p.registry.Clip[id]

		var c color.Color
		switch {
		case clip.Name == ecs.ClipDead:
			c = colorDead
		case p.registry.Flash[id].Active():
			c = colorFlash
		case clip.Name == ecs.ClipRun || clip.Name == ecs.ClipAttack:
			c = colorEnemyChase
		default:
			c = colorEnemy
		}
		drawRect(screen, tr.Rect(), camX, camY, c)

		if clip.Name != ecs.ClipDead {
			drawHealthBar(screen, tr.X-camX, tr.Y-camY-6, tr.Width, 3, p.registry.Health[id].Ratio())
		}
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY float64) {
	id := p.registry.PlayerID
	tr, ok := p.registry.Transform[id]
	if !ok {
		return
	}

	// Flash when hit
	c := color.Color(colorPlayer)
	switch {
	case p.registry.Clip[id].Name == ecs.ClipDead:
		c = colorDead
	case p.registry.Flash[id].Active():
		c = colorFlash
	}
	drawRect(screen, tr.Rect(), camX, camY, c)

	// Facing marker
	eyeX := tr.X + tr.Width - 6
	if tr.Facing == entity.FacingLeft {
		eyeX = tr.X + 2
	}
	ebitenutil.DrawRect(screen, eyeX-camX, tr.Y-camY+6, 4, 4, colorBG)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	// Health bar
	barX := 10.0
	barY := float64(p.screenH - 20)
	drawHealthBar(screen, barX, barY, 100, 10, p.registry.Health[p.registry.PlayerID].Ratio())

	alive := 0
	for _, e := range p.sim.Enemies() {
		if e.IsAlive() {
			alive++
		}
	}
	status := fmt.Sprintf("Frame: %d  Enemies: %d/%d  %s", p.sim.Frame(), alive, len(p.sim.Enemies()), p.registry.Clip[p.registry.PlayerID].Name)
	if p.recorder != nil {
		status += fmt.Sprintf("  REC %d", p.recorder.FrameCount())
	}
	if p.replayer != nil {
		status += fmt.Sprintf("  REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-35)

	// Controls
	debugText := "A/D: Move | Space: Jump | S+Space: Drop | J: Attack | Tab: Zones | R: Restart | ESC: Pause"
	ebitenutil.DebugPrint(screen, debugText)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	// Semi-transparent overlay
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{100, 0, 0, 120}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := fmt.Sprintf("YOU DIED\n\nRespawning in %.1fs", p.sim.Player().RespawnTimer/1000)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

func (p *Playing) drawReplayOverlay(screen *ebiten.Image) {
	result := "digest OK"
	switch {
	case errors.Is(p.replayResult, replay.ErrNoDigest):
		result = "no digest recorded"
	case p.replayResult != nil:
		result = "DIVERGED"
	}
	text := fmt.Sprintf("REPLAY FINISHED\n\n%s\n\nPress R to replay again", result)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-70, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// State returns the current game state
func (p *Playing) State() state.GameState { return p.state }

// Simulation returns the running simulation
func (p *Playing) Simulation() *system.Simulation { return p.sim }

// Registry returns the view registry
func (p *Playing) Registry() *ecs.Registry { return p.registry }

// Recorder returns the active recorder, nil when not recording
func (p *Playing) Recorder() *replay.Recorder { return p.recorder }

// ReplayResult returns the digest check of a finished replay
func (p *Playing) ReplayResult() error { return p.replayResult }

func drawRect(screen *ebiten.Image, r entity.Rect, camX, camY float64, c color.Color) {
	ebitenutil.DrawRect(screen, r.X-camX, r.Y-camY, r.W, r.H, c)
}

func drawHealthBar(screen *ebiten.Image, x, y, w, h, ratio float64) {
	if ratio < 0 {
		ratio = 0
	}
	ebitenutil.DrawRect(screen, x, y, w, h, colorHealthBG)
	ebitenutil.DrawRect(screen, x, y, w*ratio, h, colorHealthFG)
}

func clampCamera(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
