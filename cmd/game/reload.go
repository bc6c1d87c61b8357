package main

import (
	"github.com/sirupsen/logrus"

	"github.com/TSandvaer/platformgame-sub000/internal/infrastructure/config"
)

// forwardReloads loads physics.json for every change event and hands the
// result to out, replacing a config the scene has not picked up yet.
// It closes out when events is closed.
func forwardReloads(events <-chan string, loader *config.Loader, out chan *config.PhysicsConfig, log logrus.FieldLogger) {
	defer close(out)

	for path := range events {
		if !config.IsPhysicsFile(path) {
			log.WithField("file", path).Debug("config changed, restart to apply")
			continue
		}

		cfg, err := loader.LoadPhysics()
		if err != nil {
			log.WithError(err).Warn("physics reload failed, keeping current config")
			continue
		}

		// drop a stale pending config
		select {
		case <-out:
		default:
		}
		out <- cfg
		log.WithField("file", path).Info("physics config reloaded")
	}
}

func logWatchErrors(errs <-chan error, log logrus.FieldLogger) {
	for err := range errs {
		log.WithError(err).Warn("config watcher error")
	}
}
