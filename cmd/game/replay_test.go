package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TSandvaer/platformgame-sub000/internal/application/replay"
	"github.com/TSandvaer/platformgame-sub000/internal/application/system"
	"github.com/TSandvaer/platformgame-sub000/internal/domain/entity"
	"github.com/TSandvaer/platformgame-sub000/internal/infrastructure/config"
)

func createTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// loadEmbedded loads the shipped configs and the named scene
func loadEmbedded(t *testing.T, name string) (*config.GameConfig, *entity.Scene) {
	t.Helper()
	loader, err := newLoader("")
	require.NoError(t, err)
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	sc, err := loadScene(loader, name, cfg.Entities, createTestLogger())
	require.NoError(t, err)
	return cfg, sc
}

func TestEmbeddedConfigs(t *testing.T) {
	cfg, sc := loadEmbedded(t, "demo")

	assert.Equal(t, config.Default(), cfg.Physics, "shipped physics.json matches the defaults")
	assert.Equal(t, "demo", sc.ID)
	assert.Len(t, sc.Obstacles, 7)
	assert.Len(t, sc.Enemies, 4)
	assert.Contains(t, cfg.Entities.Enemies, "sentry")
	assert.True(t, cfg.Entities.Enemies["sentry"].AI.Stationary)

	_, arena := loadEmbedded(t, "arena")
	assert.Equal(t, "arena", arena.ID)
	assert.Len(t, arena.Enemies, 2)
}

func TestEmbeddedScene_EnemiesLand(t *testing.T) {
	cfg, sc := loadEmbedded(t, "demo")
	sim := system.NewSimulation(cfg.Physics, sc, system.WithLogger(createTestLogger()))

	for i := 0; i < 120; i++ {
		sim.Step(system.NominalFrameMs, system.Input{})
	}

	for _, e := range sim.Enemies() {
		assert.True(t, e.OnGround, "enemy %s at %.0f,%.0f should be standing", e.Type, e.X, e.Y)
	}
	assert.True(t, sim.Player().OnGround)
}

func TestSimulate(t *testing.T) {
	cfg, sc := loadEmbedded(t, "demo")

	res, rec, err := simulate(cfg.Physics, sc, 300, createTestLogger())
	require.NoError(t, err)

	assert.Equal(t, uint64(300), res.Frames)
	assert.Len(t, res.Digest, 64)
	assert.Equal(t, 300, rec.FrameCount())
	assert.LessOrEqual(t, res.EnemiesAlive, len(sc.Enemies))
}

func TestSimulate_Deterministic(t *testing.T) {
	cfg, sc := loadEmbedded(t, "arena")

	a, _, err := simulate(cfg.Physics, sc, 240, createTestLogger())
	require.NoError(t, err)
	b, _, err := simulate(cfg.Physics, sc, 240, createTestLogger())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSimulate_NoFrames(t *testing.T) {
	cfg, sc := loadEmbedded(t, "arena")

	_, _, err := simulate(cfg.Physics, sc, 0, createTestLogger())

	assert.ErrorIs(t, err, replay.ErrNoFrames)
}

func TestRecorderAndVerify(t *testing.T) {
	cfg, sc := loadEmbedded(t, "demo")
	path := filepath.Join(t.TempDir(), "run.json")

	err := runHeadless(cfg.Physics, sc, nil, options{frames: 180, record: path}, createTestLogger())
	require.NoError(t, err)

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", data.Scene)
	assert.Len(t, data.Frames, 180)

	assert.NoError(t, verifyReplay(cfg.Physics, sc, data, createTestLogger()))
	assert.NoError(t, runHeadless(cfg.Physics, sc, data, options{}, createTestLogger()))
}

func TestVerifyReplay_Diverged(t *testing.T) {
	cfg, sc := loadEmbedded(t, "demo")
	_, rec, err := simulate(cfg.Physics, sc, 120, createTestLogger())
	require.NoError(t, err)
	data := rec.Data()

	// A different scene does not reproduce the recorded state
	_, arena := loadEmbedded(t, "arena")
	err = verifyReplay(cfg.Physics, arena, &data, createTestLogger())

	assert.ErrorIs(t, err, replay.ErrDigestMismatch)
}

func TestForwardReloads(t *testing.T) {
	dir := t.TempDir()
	physics := config.Default()
	physics.Physics.Gravity = 0.7
	writePhysics(t, dir, `{"physics": {"gravity": 0.7}}`)

	events := make(chan string, 4)
	out := make(chan *config.PhysicsConfig, 1)
	done := make(chan struct{})
	go func() {
		forwardReloads(events, config.NewLoader(dir), out, createTestLogger())
		close(done)
	}()

	events <- filepath.Join(dir, "entities.json")
	events <- filepath.Join(dir, "physics.json")

	select {
	case cfg := <-out:
		assert.Equal(t, 0.7, cfg.Physics.Gravity)
		assert.Equal(t, physics.Physics.Friction, cfg.Physics.Friction, "defaults fill the rest")
	case <-time.After(time.Second):
		t.Fatal("no config forwarded")
	}

	writePhysics(t, dir, `{not json`)
	events <- filepath.Join(dir, "physics.json")
	close(events)

	<-done
	_, ok := <-out
	assert.False(t, ok, "broken file is skipped and out is closed")
}

func writePhysics(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "physics.json"), []byte(body), 0o644))
}
