package state

// GameState is the mode of the playing scene
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver // player dead, respawn timer running
	StateReplayDone
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateReplayDone:
		return "ReplayDone"
	default:
		return "Unknown"
	}
}

// Steps reports whether the simulation advances in this state
func (s GameState) Steps() bool {
	return s == StatePlaying || s == StateGameOver
}

// TogglePause flips between paused and running.
// A finished replay stays finished.
func (s GameState) TogglePause() GameState {
	switch s {
	case StatePaused:
		return StatePlaying
	case StatePlaying, StateGameOver:
		return StatePaused
	}
	return s
}

// AfterStep returns the state once a step has run with the player in the
// given condition. Only running states change.
func (s GameState) AfterStep(playerDead bool) GameState {
	if !s.Steps() {
		return s
	}
	if playerDead {
		return StateGameOver
	}
	return StatePlaying
}
