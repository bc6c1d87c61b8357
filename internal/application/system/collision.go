package system

import (
	"math"
	"slices"

	"github.com/TSandvaer/platformgame-sub000/internal/domain/entity"
)

// supportTolerance is how far (px) feet may be from a surface and still rest on it
const supportTolerance = 0.5

// ResolveAgainstPlatforms lands a falling body on the lowest eligible platform.
//
// Candidates overlap the body horizontally and have their top below the
// body's top. They are tried from the largest Y (closest to the ground)
// upward; equal Y keeps the given order. The first platform the body has
// reached is landed on and no other is tested. Returns true on landing.
func ResolveAgainstPlatforms(body *entity.Body, platforms []entity.StaticObstacle) bool {
	if !(body.VY > 0) {
		return false
	}

	candidates := make([]entity.Rect, 0, len(platforms))
	for _, p := range platforms {
		if p.Kind != entity.ObstaclePlatform || p.Rect.IsDegenerate() {
			continue
		}
		if !overlapsX(body, p.Rect) || !(p.Rect.Y > body.Y) {
			continue
		}
		candidates = append(candidates, p.Rect)
	}

	slices.SortStableFunc(candidates, func(a, b entity.Rect) int {
		switch {
		case a.Y > b.Y:
			return -1
		case a.Y < b.Y:
			return 1
		default:
			return 0
		}
	})

	bottom := body.Bottom()
	for _, r := range candidates {
		if bottom >= r.Y && r.Y > body.Y {
			body.SetBottom(r.Y)
			body.VY = 0
			body.OnGround = true
			return true
		}
	}
	return false
}

// HasSupport reports whether the body's feet rest on top of any obstacle
func HasSupport(body *entity.Body, obstacles []entity.StaticObstacle) bool {
	bottom := body.Bottom()
	for _, o := range obstacles {
		if o.Rect.IsDegenerate() || !overlapsX(body, o.Rect) {
			continue
		}
		if math.Abs(bottom-o.Rect.Y) <= supportTolerance {
			return true
		}
	}
	return false
}

// BoundsIntersect reports whether two rectangles overlap with positive area
func BoundsIntersect(a, b entity.Rect) bool {
	return a.Intersects(b)
}

// ResolveOverlap pushes the body out of rect along the axis of minimum
// penetration. A horizontal push zeroes VX. A vertical push zeroes VY and
// grounds the body when it was pushed up. Returns true if the body moved.
func ResolveOverlap(body *entity.Body, rect entity.Rect) bool {
	bounds := body.Bounds()
	if !bounds.Intersects(rect) {
		return false
	}

	overlap := bounds.Overlap(rect)
	bc := bounds.Center()
	rc := rect.Center()

	if overlap.W < overlap.H {
		if bc.X < rc.X {
			body.X = rect.X - body.Width
		} else {
			body.X = rect.Right()
		}
		body.VX = 0
		return true
	}

	if bc.Y < rc.Y {
		body.SetBottom(rect.Y)
		body.OnGround = true
	} else {
		body.Y = rect.Bottom()
	}
	body.VY = 0
	return true
}

// ResolveAgainstSolids pushes the body out of every solid obstacle it overlaps
func ResolveAgainstSolids(body *entity.Body, obstacles []entity.StaticObstacle) int {
	pushes := 0
	for _, o := range obstacles {
		if o.Kind != entity.ObstacleSolid || o.Rect.IsDegenerate() {
			continue
		}
		if ResolveOverlap(body, o.Rect) {
			pushes++
		}
	}
	return pushes
}

// ConstrainToBounds keeps the body inside the world horizontally and lands
// it on the world floor. A zero width or height disables that axis.
// Returns true when the body is resting on the floor.
func ConstrainToBounds(body *entity.Body, world entity.Rect) bool {
	if world.W > 0 {
		if body.X < world.X {
			body.X = world.X
			body.VX = 0
		} else if body.Right() > world.Right() {
			body.X = world.Right() - body.Width
			body.VX = 0
		}
	}

	if !(world.H > 0) {
		return false
	}
	if body.Bottom() >= world.Bottom() {
		body.SetBottom(world.Bottom())
		if body.VY > 0 {
			body.VY = 0
		}
		body.OnGround = true
		return true
	}
	return false
}

// onFloor reports whether the body rests on the world floor
func onFloor(body *entity.Body, world entity.Rect) bool {
	return world.H > 0 && math.Abs(body.Bottom()-world.Bottom()) <= supportTolerance
}

func overlapsX(body *entity.Body, r entity.Rect) bool {
	return body.X < r.Right() && body.Right() > r.X
}
