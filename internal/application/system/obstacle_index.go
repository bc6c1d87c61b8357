package system

import (
	"math"
	"slices"

	"github.com/solarlune/resolv"

	"github.com/TSandvaer/platformgame-sub000/internal/domain/entity"
)

// DefaultIndexCellSize is the broad-phase cell size in pixels
const DefaultIndexCellSize = 64

const (
	tagObstacle = "obstacle"
	tagProbe    = "probe"
)

// ObstacleIndex is a broad-phase lookup over the static obstacles of a scene.
// Query results are candidates only; callers still run their exact tests.
// Not safe for concurrent use.
type ObstacleIndex struct {
	obstacles []entity.StaticObstacle

	space   *resolv.Space
	probe   *resolv.Object
	originX float64
	originY float64
}

// NewObstacleIndex builds an index over obstacles. Degenerate rectangles
// are kept in All but never returned by Query.
func NewObstacleIndex(obstacles []entity.StaticObstacle, cellSize int) *ObstacleIndex {
	if cellSize <= 0 {
		cellSize = DefaultIndexCellSize
	}
	ix := &ObstacleIndex{obstacles: obstacles}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, o := range obstacles {
		if o.Rect.IsDegenerate() {
			continue
		}
		minX = math.Min(minX, o.Rect.X)
		minY = math.Min(minY, o.Rect.Y)
		maxX = math.Max(maxX, o.Rect.Right())
		maxY = math.Max(maxY, o.Rect.Bottom())
	}
	if math.IsInf(minX, 1) {
		return ix
	}

	cell := float64(cellSize)
	ix.originX = minX - cell
	ix.originY = minY - cell
	w := int(math.Ceil(maxX-ix.originX)) + 2*cellSize
	h := int(math.Ceil(maxY-ix.originY)) + 2*cellSize

	ix.space = resolv.NewSpace(w, h, cellSize, cellSize)
	for i, o := range obstacles {
		if o.Rect.IsDegenerate() {
			continue
		}
		obj := resolv.NewObject(o.Rect.X-ix.originX, o.Rect.Y-ix.originY, o.Rect.W, o.Rect.H, tagObstacle, o.Kind.String())
		obj.Data = i
		ix.space.Add(obj)
	}

	ix.probe = resolv.NewObject(0, 0, 1, 1, tagProbe)
	ix.space.Add(ix.probe)
	return ix
}

// All returns every obstacle in insertion order
func (ix *ObstacleIndex) All() []entity.StaticObstacle {
	return ix.obstacles
}

// Len returns the number of indexed obstacles
func (ix *ObstacleIndex) Len() int {
	return len(ix.obstacles)
}

// Query returns the obstacles whose cells touch area, in insertion order.
// Without a spatial index it returns every obstacle.
func (ix *ObstacleIndex) Query(area entity.Rect) []entity.StaticObstacle {
	if ix.space == nil {
		return ix.obstacles
	}

	// pad by a pixel so touching edges are not lost to cell rounding
	ix.probe.X = area.X - ix.originX - 1
	ix.probe.Y = area.Y - ix.originY - 1
	ix.probe.W = math.Max(area.W, 0) + 2
	ix.probe.H = math.Max(area.H, 0) + 2
	ix.probe.Update()

	collision := ix.probe.Check(0, 0, tagObstacle)
	if collision == nil {
		return nil
	}

	indices := make([]int, 0, len(collision.Objects))
	for _, obj := range collision.Objects {
		if i, ok := obj.Data.(int); ok {
			indices = append(indices, i)
		}
	}
	slices.Sort(indices)
	indices = slices.Compact(indices)

	result := make([]entity.StaticObstacle, 0, len(indices))
	for _, i := range indices {
		result = append(result, ix.obstacles[i])
	}
	return result
}

// QueryKind is Query filtered to one obstacle kind
func (ix *ObstacleIndex) QueryKind(area entity.Rect, kind entity.ObstacleKind) []entity.StaticObstacle {
	all := ix.Query(area)
	result := make([]entity.StaticObstacle, 0, len(all))
	for _, o := range all {
		if o.Kind == kind {
			result = append(result, o)
		}
	}
	return result
}
