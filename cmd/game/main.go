package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/TSandvaer/platformgame-sub000/internal/application/game"
	"github.com/TSandvaer/platformgame-sub000/internal/application/replay"
	"github.com/TSandvaer/platformgame-sub000/internal/application/scene/playing"
	"github.com/TSandvaer/platformgame-sub000/internal/application/system"
	"github.com/TSandvaer/platformgame-sub000/internal/domain/entity"
	"github.com/TSandvaer/platformgame-sub000/internal/infrastructure/config"
	"github.com/TSandvaer/platformgame-sub000/internal/infrastructure/logger"
)

//go:embed configs
var configFS embed.FS

// options holds the parsed command line
type options struct {
	record    string
	replay    string
	scene     string
	configDir string
	watch     bool
	headless  bool
	frames    int
	logLevel  string
	logFormat string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.record, "record", "", "Record input to file (e.g., -record replay.json)")
	flag.StringVar(&o.replay, "replay", "", "Play back a recorded file")
	flag.StringVar(&o.scene, "scene", "demo", "Scene to load from scenes/")
	flag.StringVar(&o.configDir, "config", "", "Config directory (default: embedded configs)")
	flag.BoolVar(&o.watch, "watch", false, "Reload physics.json on change (requires -config)")
	flag.BoolVar(&o.headless, "headless", false, "Run without a window")
	flag.IntVar(&o.frames, "frames", 600, "Frames to simulate in headless mode without -replay")
	flag.StringVar(&o.logLevel, "log-level", "", "Log level (default: $LOG_LEVEL or info)")
	flag.StringVar(&o.logFormat, "log-format", "", "Log format text|json (default: $LOG_FORMAT or text)")
	flag.Parse()
	return o
}

func main() {
	o := parseFlags()
	log := logger.New(o.logLevel, o.logFormat, os.Stderr)

	if err := run(o, log); err != nil {
		log.WithError(err).Fatal("game exited")
	}
}

func run(o options, log *logrus.Logger) error {
	loader, err := newLoader(o.configDir)
	if err != nil {
		return err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var data *replay.ReplayData
	sceneName := o.scene
	if o.replay != "" {
		data, err = replay.LoadReplay(o.replay)
		if err != nil {
			return err
		}
		if data.Scene != "" {
			sceneName = data.Scene
		}
	}

	sc, err := loadScene(loader, sceneName, cfg.Entities, log)
	if err != nil {
		return err
	}

	if o.headless {
		return runHeadless(cfg.Physics, sc, data, o, log)
	}
	return runWindow(cfg.Physics, sc, data, loader, o, log)
}

// newLoader reads from dir, or from the embedded configs when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func loadScene(loader *config.Loader, name string, entities *config.EntitiesConfig, log logrus.FieldLogger) (*entity.Scene, error) {
	sceneCfg, err := loader.LoadScene(name)
	if err != nil {
		if names, lerr := loader.SceneNames(); lerr == nil {
			return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(names, ", "))
		}
		return nil, err
	}
	sc, err := system.LoadScene(sceneCfg, entities, log)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %s: %w", name, err)
	}
	log.WithFields(logrus.Fields{
		"scene":     sc.ID,
		"obstacles": len(sc.Obstacles),
		"enemies":   len(sc.Enemies),
	}).Info("scene loaded")
	return sc, nil
}

func runWindow(cfg *config.PhysicsConfig, sc *entity.Scene, data *replay.ReplayData, loader *config.Loader, o options, log *logrus.Logger) error {
	opts := []playing.Option{playing.WithLogger(log)}
	if data != nil {
		opts = append(opts, playing.WithReplay(data))
	} else if o.record != "" {
		opts = append(opts, playing.WithRecording(o.record))
	}

	if o.watch {
		if o.configDir == "" {
			log.Warn("-watch needs -config; hot reload disabled")
		} else {
			w, err := config.NewWatcher(o.configDir)
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()

			updates := make(chan *config.PhysicsConfig, 1)
			go forwardReloads(w.Events, loader, updates, log)
			go logWatchErrors(w.Errors, log)
			opts = append(opts, playing.WithConfigUpdates(updates))
			log.WithField("dir", o.configDir).Info("watching config")
		}
	}

	p := playing.New(cfg, sc, opts...)
	g := game.New(p, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetTPS(cfg.Display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Platformer Simulation")

	// Run game
	err := ebiten.RunGame(g)
	g.Shutdown()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
