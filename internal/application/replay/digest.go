package replay

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/TSandvaer/platformgame-sub000/internal/application/system"
)

var (
	// ErrNoFrames is returned when saving or verifying an empty recording
	ErrNoFrames = errors.New("no frames")
	// ErrNoDigest is returned when verifying a recording that was never finished
	ErrNoDigest = errors.New("replay has no digest")
	// ErrDigestMismatch is returned when a replay does not reproduce its recorded state
	ErrDigestMismatch = errors.New("digest mismatch")
)

// Stepper is the part of the simulation a replay drives
type Stepper interface {
	Step(dt float64, in system.Input) system.StepResult
	Snapshot() system.Snapshot
}

// Digest returns the hex sha256 of the msgpack-encoded snapshot
func Digest(snap system.Snapshot) (string, error) {
	b, err := msgpack.Marshal(&snap)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// Play feeds every recorded frame into sim and returns the final snapshot
func Play(data *ReplayData, sim Stepper) system.Snapshot {
	r := NewReplayer(*data)
	for {
		fi, ok := r.Next()
		if !ok {
			break
		}
		sim.Step(fi.DT, fi.Input())
	}
	return sim.Snapshot()
}

// Verify replays data on a fresh simulation and compares the final digest
func Verify(data *ReplayData, sim Stepper) error {
	if len(data.Frames) == 0 {
		return ErrNoFrames
	}
	if data.Digest == "" {
		return ErrNoDigest
	}
	return Check(data, Play(data, sim))
}

// Check compares snap against the recorded digest
func Check(data *ReplayData, snap system.Snapshot) error {
	if data.Digest == "" {
		return ErrNoDigest
	}

	got, err := Digest(snap)
	if err != nil {
		return err
	}
	if got != data.Digest {
		return fmt.Errorf("%w: recorded %s, replayed %s", ErrDigestMismatch, data.Digest, got)
	}
	return nil
}
