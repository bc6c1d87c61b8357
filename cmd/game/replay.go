package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/TSandvaer/platformgame-sub000/internal/application/replay"
	"github.com/TSandvaer/platformgame-sub000/internal/application/system"
	"github.com/TSandvaer/platformgame-sub000/internal/domain/entity"
	"github.com/TSandvaer/platformgame-sub000/internal/infrastructure/config"
)

// HeadlessResult summarizes a run without a window
type HeadlessResult struct {
	Frames       uint64
	Digest       string
	PlayerHits   int
	EnemyHits    int
	Kills        int
	EnemiesAlive int
}

// runHeadless verifies a replay when data is set, otherwise simulates
// o.frames idle frames and optionally records them.
func runHeadless(cfg *config.PhysicsConfig, sc *entity.Scene, data *replay.ReplayData, o options, log logrus.FieldLogger) error {
	if data != nil {
		return verifyReplay(cfg, sc, data, log)
	}

	res, rec, err := simulate(cfg, sc, o.frames, log)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"frames":       res.Frames,
		"digest":       res.Digest,
		"playerHits":   res.PlayerHits,
		"enemyHits":    res.EnemyHits,
		"kills":        res.Kills,
		"enemiesAlive": res.EnemiesAlive,
	}).Info("headless run finished")

	if o.record != "" {
		if err := rec.Save(o.record); err != nil {
			return err
		}
		log.WithField("file", o.record).Info("recording saved")
	}
	return nil
}

// simulate steps a fresh simulation at the nominal frame time with no input
func simulate(cfg *config.PhysicsConfig, sc *entity.Scene, frames int, log logrus.FieldLogger) (HeadlessResult, *replay.Recorder, error) {
	if frames <= 0 {
		return HeadlessResult{}, nil, fmt.Errorf("invalid frame count %d: %w", frames, replay.ErrNoFrames)
	}

	sim := system.NewSimulation(cfg, sc, system.WithLogger(log))
	rec := replay.NewRecorder(sc.ID)

	var res HeadlessResult
	for i := 0; i < frames; i++ {
		in := system.Input{}
		rec.RecordFrame(system.NominalFrameMs, in)
		step := sim.Step(system.NominalFrameMs, in)
		for _, ev := range step.Events {
			switch ev.Type {
			case entity.PlayerHit:
				res.PlayerHits++
			case entity.EnemyHit:
				res.EnemyHits++
			}
			if ev.Fatal {
				res.Kills++
			}
		}
	}

	snap := sim.Snapshot()
	if err := rec.Finish(snap); err != nil {
		return HeadlessResult{}, nil, err
	}
	for _, e := range snap.Enemies {
		if !e.Dead {
			res.EnemiesAlive++
		}
	}
	res.Frames = snap.Frame
	res.Digest = rec.Data().Digest
	return res, rec, nil
}

// verifyReplay replays data on a fresh simulation and checks its digest
func verifyReplay(cfg *config.PhysicsConfig, sc *entity.Scene, data *replay.ReplayData, log logrus.FieldLogger) error {
	sim := system.NewSimulation(cfg, sc, system.WithLogger(log))
	entry := log.WithFields(logrus.Fields{"id": data.ID, "frames": len(data.Frames)})

	if err := replay.Verify(data, sim); err != nil {
		return fmt.Errorf("replay %s: %w", data.ID, err)
	}
	entry.Info("replay verified")
	return nil
}
