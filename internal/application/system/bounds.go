package system

import "github.com/TSandvaer/platformgame-sub000/internal/domain/entity"

// AttackRange returns the strike rectangle of a body: reach pixels wide,
// directly in front of the body along its facing, vertically centered with
// height body.Height*heightFraction.
func AttackRange(body *entity.Body, reach, heightFraction float64) entity.Rect {
	h := body.Height * heightFraction
	y := body.Y + (body.Height-h)/2

	x := body.Right()
	if body.Facing == entity.FacingLeft {
		x = body.X - reach
	}

	return entity.Rect{X: x, Y: y, W: reach, H: h}
}

// Hurtbox returns the rectangle in which a body can be hit
func Hurtbox(body *entity.Body) entity.Rect {
	return body.Bounds()
}
