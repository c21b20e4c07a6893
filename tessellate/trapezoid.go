// Package tessellate walks a path's elements through a raster.Approximator
// and turns the resulting segment list into a merged, fill-rule-aware
// trapezoid list ready for a backend to shade.
package tessellate

// Trapezoid is one output primitive: a horizontal slice of a filled
// region bounded by two slanted edges. Coordinates are in pixel space;
// leftId/rightId name the raster segment ids of the bounding edges, with
// zero meaning the trapezoid has been retired by a vertical merge.
type Trapezoid struct {
	TopY, BottomY             float64
	TopLeftX, TopRightX       float64
	BottomLeftX, BottomRightX float64
	LeftID, RightID           uint64
	LeftSlope, RightSlope     float64
}

// isMergableInTo reports whether t, whose BottomY is assumed to equal
// other.TopY, can be merged into other: their shared boundary's x
// coordinates must match exactly, and either their bounding segment ids
// match pairwise or their original slopes do.
func (t Trapezoid) isMergableInTo(other Trapezoid) bool {
	if t.BottomLeftX != other.TopLeftX || t.BottomRightX != other.TopRightX {
		return false
	}
	if t.LeftID == other.LeftID && t.RightID == other.RightID {
		return true
	}
	if t.LeftSlope == other.LeftSlope && t.RightSlope == other.RightSlope {
		return true
	}
	return false
}

// less orders trapezoids by (topY, topLeftX, bottomLeftX), the order
// the vertical merge sweep expects.
func less(a, b Trapezoid) bool {
	if a.TopY != b.TopY {
		return a.TopY < b.TopY
	}
	if a.TopLeftX != b.TopLeftX {
		return a.TopLeftX < b.TopLeftX
	}
	return a.BottomLeftX < b.BottomLeftX
}
