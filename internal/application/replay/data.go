package replay

import "github.com/TSandvaer/platformgame-sub000/internal/application/system"

// Version is written into every recording
const Version = "2.0"

// FrameInput records the step duration and input for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	DT float64 `json:"dt"`           // Step duration in ms, as passed to Step
	MX float64 `json:"mx,omitempty"` // MoveX
	MY float64 `json:"my,omitempty"` // MoveY
	J  bool    `json:"j,omitempty"`  // Jump
	A  bool    `json:"a,omitempty"`  // Attack
}

// Input converts the recorded frame back into a simulation input
func (fi FrameInput) Input() system.Input {
	return system.Input{MoveX: fi.MX, MoveY: fi.MY, Jump: fi.J, Attack: fi.A}
}

// NewFrameInput records one step
func NewFrameInput(frame int, dt float64, in system.Input) FrameInput {
	return FrameInput{F: frame, DT: dt, MX: in.MoveX, MY: in.MoveY, J: in.Jump, A: in.Attack}
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	ID        string       `json:"id"`
	Scene     string       `json:"scene"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
	Digest    string       `json:"digest,omitempty"` // snapshot digest after the last frame
}
