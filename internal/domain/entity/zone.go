package entity

// ZoneKind distinguishes the two perception zone shapes
type ZoneKind int

const (
	// ZoneBox is a rectangle (attraction zone)
	ZoneBox ZoneKind = iota
	// ZoneInterval is a horizontal [StartX, EndX] span (patrol zone)
	ZoneInterval
)

// String returns the string representation of the zone kind
func (k ZoneKind) String() string {
	switch k {
	case ZoneBox:
		return "box"
	case ZoneInterval:
		return "interval"
	default:
		return "unknown"
	}
}

// PerceptionZone is an enemy-owned area used only as AI input.
// Box uses Box; Interval uses StartX/EndX.
type PerceptionZone struct {
	Kind    ZoneKind
	Enabled bool

	Box Rect

	StartX float64
	EndX   float64
}

// NewBoxZone creates an enabled rectangular zone
func NewBoxZone(r Rect) PerceptionZone {
	return PerceptionZone{Kind: ZoneBox, Enabled: true, Box: r}
}

// NewIntervalZone creates an enabled horizontal interval zone
func NewIntervalZone(startX, endX float64) PerceptionZone {
	return PerceptionZone{Kind: ZoneInterval, Enabled: true, StartX: startX, EndX: endX}
}

// IsDegenerate reports a zone that can never contain a point
func (z PerceptionZone) IsDegenerate() bool {
	switch z.Kind {
	case ZoneBox:
		return z.Box.IsDegenerate()
	case ZoneInterval:
		return !(z.EndX > z.StartX)
	default:
		return true
	}
}

// Active reports an enabled, non-degenerate zone
func (z PerceptionZone) Active() bool {
	return z.Enabled && !z.IsDegenerate()
}

// Contains reports whether p lies inside the zone. Disabled and
// degenerate zones contain nothing. Interval zones only test X.
func (z PerceptionZone) Contains(p Vec2) bool {
	if !z.Active() {
		return false
	}
	if z.Kind == ZoneInterval {
		return p.X >= z.StartX && p.X <= z.EndX
	}
	return z.Box.Contains(p)
}
