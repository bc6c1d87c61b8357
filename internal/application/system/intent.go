package system

// Input is the player intent for one step, produced by an input provider.
// MoveX and MoveY are in [-1, 1]; positive MoveY points down.
type Input struct {
	MoveX  float64 `json:"mx" msgpack:"mx"`
	MoveY  float64 `json:"my" msgpack:"my"`
	Jump   bool    `json:"j" msgpack:"j"`
	Attack bool    `json:"a" msgpack:"a"`
}

// WantsDrop reports a jump pressed while holding down
func (in Input) WantsDrop() bool {
	return in.Jump && in.MoveY > 0
}
