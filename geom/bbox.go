package geom

import "math"

// BoundingBox is an axis-aligned box accumulated by repeatedly stretching
// an initially empty box around points. An empty box has Min > Max on both
// axes so that the first Stretch always widens it.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyBoundingBox returns the canonical empty box used as the zero value
// for accumulation.
func EmptyBoundingBox() BoundingBox {
	return BoundingBox{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// Stretch widens the box to include p. NaN coordinates are ignored so a
// single malformed point can't poison the accumulated box.
func (b *BoundingBox) Stretch(p FloatPoint) {
	if !math.IsNaN(p.X) {
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
	}
	if !math.IsNaN(p.Y) {
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
}

// IsEmpty reports whether the box has never been stretched.
func (b BoundingBox) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// DivScalar returns the box with every coordinate divided by f, used to
// project a supersampled bounding box back into pixel space.
func (b BoundingBox) DivScalar(f float64) BoundingBox {
	return BoundingBox{
		MinX: b.MinX / f, MinY: b.MinY / f,
		MaxX: b.MaxX / f, MaxY: b.MaxY / f,
	}
}
