// Package raster approximates path geometry — lines, curves and arcs —
// into straight Segments bucketed by integer supersampled scanline, the
// input the trapezoid tessellator sweeps over.
package raster

import "math"

// Direction records a Segment's original winding orientation, needed by
// the NonZero fill rule.
type Direction int8

const (
	Negative Direction = -1
	Zero     Direction = 0
	Positive Direction = 1
)

// Segment is a single straight edge, canonicalized so its top endpoint
// has the smaller y. Coordinates live in supersampled space: TopY and
// BottomY are integer scanline indices, while TopX/BottomX keep their
// sub-pixel precision.
type Segment struct {
	ID        uint64
	TopY      int64
	BottomY   int64
	TopX      float64
	BottomX   float64
	SlopeInv  float64
	Factor    float64
	Direction Direction

	// RealSlope is SlopeInv as computed at construction time, copied
	// unchanged through every scanline split and coincident-pair
	// repair. The tessellator's vertical merge compares RealSlope
	// rather than SlopeInv because repair may nudge TopX/BottomX
	// without keeping SlopeInv consistent with the new positions.
	RealSlope float64
}

// idSource hands out monotonically increasing Segment ids, scoped to one
// approximator run.
type idSource struct{ counter uint64 }

func (s *idSource) next() uint64 {
	s.counter++
	return s.counter
}

// newSegment builds a canonical Segment from two points already in
// supersampled space with integer-valued y's (see Approximator.InsertLine).
// The result has Direction == Zero, and every field other than ID zeroed,
// when from.Y == to.Y — the caller is expected to drop such segments.
func newSegment(id uint64, fromX, fromY, toX, toY float64) Segment {
	topY := int64(fromY)
	bottomY := int64(toY)

	if bottomY == topY {
		return Segment{ID: id}
	}

	var s Segment
	s.ID = id
	if bottomY < topY {
		s.Direction = Negative
		s.TopX, s.BottomX = toX, fromX
		s.TopY, s.BottomY = bottomY, topY
	} else {
		s.Direction = Positive
		s.TopX, s.BottomX = fromX, toX
		s.TopY, s.BottomY = topY, bottomY
	}

	s.SlopeInv = (s.BottomX - s.TopX) / float64(s.BottomY-s.TopY)
	s.Factor = s.SlopeInv*float64(s.TopY) - s.TopX
	s.RealSlope = s.SlopeInv
	return s
}

// X returns the segment's x position at supersampled scanline y,
// extrapolating if y falls outside [TopY, BottomY].
func (s Segment) X(y int64) float64 {
	return s.SlopeInv*float64(y) - s.Factor
}

// splitAtY truncates s in place to end at y, returning the continuation
// segment spanning [y, s.BottomY] with the same id, slope and direction.
// The caller must have y strictly between TopY and BottomY.
func (s *Segment) splitAtY(y int64) Segment {
	x := s.X(y)
	continuation := *s
	continuation.TopY = y
	continuation.TopX = x
	s.BottomY = y
	s.BottomX = x
	return continuation
}

// intersectionY returns the floor of the y where a and b — two segments
// known to share both TopY and BottomY, with a.TopX <= b.TopX — cross
// each other, whether that exact y is an integer, and whether they
// cross strictly inside their shared span at all.
func intersectionY(a, b Segment) (floorY int64, isInteger bool, crosses bool) {
	if a.TopX < b.TopX && b.BottomX < a.BottomX {
		denom := b.SlopeInv - a.SlopeInv
		if denom == 0 {
			return 0, false, false
		}
		offset := (a.TopX - b.TopX) / denom
		flooredOffset := math.Floor(offset)
		return int64(flooredOffset) + a.TopY, flooredOffset == offset, true
	}
	return 0, false, false
}
