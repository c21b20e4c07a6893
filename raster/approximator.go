package raster

import (
	"math"
	"sort"

	"github.com/gepard-graphics/gepard/geom"
	"github.com/gepard-graphics/gepard/internal/bucket"
)

// DefaultAntiAliasLevel is the number of supersampled subscanlines per
// pixel row used when no caller override is supplied.
const DefaultAntiAliasLevel = 16

// maxRepairIterations bounds the coincident-pair repair sweep in
// segments() phase 4. The reference implementation restarts the sweep
// unconditionally on every merge; a pathological input of many
// near-coincident segments in one bucket could otherwise loop without
// bound, so a generous but finite cap stands in for that missing guard.
const maxRepairIterations = 64

// Approximator flattens curves and arcs into Segments and buckets them
// by integer supersampled scanline, ready for TrapezoidTessellator to
// sweep.
type Approximator struct {
	antiAliasLevel int
	tolerance      float64

	buckets     *bucket.Map[Segment]
	boundingBox geom.BoundingBox
	ids         idSource
}

// NewApproximator creates an Approximator. antiAliasLevel <= 0 resets to
// DefaultAntiAliasLevel. factor, if > 0, scales the flatness tolerance
// as factor/antiAliasLevel instead of the default 1/antiAliasLevel.
func NewApproximator(antiAliasLevel int, factor float64) *Approximator {
	if antiAliasLevel <= 0 {
		antiAliasLevel = DefaultAntiAliasLevel
	}
	tolerance := 1.0 / float64(antiAliasLevel)
	if factor > 0 {
		tolerance = factor / float64(antiAliasLevel)
	}
	return &Approximator{
		antiAliasLevel: antiAliasLevel,
		tolerance:      tolerance,
		buckets:        bucket.New[Segment](),
		boundingBox:    geom.EmptyBoundingBox(),
	}
}

// AntiAliasLevel returns the supersampling factor A this Approximator
// was configured with.
func (a *Approximator) AntiAliasLevel() int {
	return a.antiAliasLevel
}

// BoundingBox returns the accumulated bounding box of the endpoints of
// every non-horizontal line passed to InsertLine so far, in pixel space.
func (a *Approximator) BoundingBox() geom.BoundingBox {
	return a.boundingBox.DivScalar(float64(a.antiAliasLevel))
}

// InsertLine inserts a straight segment between from and to, given in
// pixel space. Horizontal lines are dropped.
func (a *Approximator) InsertLine(from, to geom.FloatPoint) {
	if from.Y == to.Y {
		return
	}

	a.boundingBox.Stretch(geom.Pt(from.X*float64(a.antiAliasLevel), from.Y*float64(a.antiAliasLevel)))
	a.boundingBox.Stretch(geom.Pt(to.X*float64(a.antiAliasLevel), to.Y*float64(a.antiAliasLevel)))

	fromX := from.X * float64(a.antiAliasLevel)
	fromY := math.Floor(from.Y * float64(a.antiAliasLevel))
	toX := to.X * float64(a.antiAliasLevel)
	toY := math.Floor(to.Y * float64(a.antiAliasLevel))

	seg := newSegment(a.ids.next(), fromX, fromY, toX, toY)
	if seg.Direction == Zero {
		return
	}

	a.buckets.Push(seg.TopY, seg)
	a.buckets.Ensure(seg.BottomY)
}

// InsertQuadCurve flattens a quadratic Bézier and inserts the resulting
// chords as line segments.
func (a *Approximator) InsertQuadCurve(from, control, to geom.FloatPoint) {
	current := from
	flattenQuadratic(from, control, to, a.tolerance, func(p geom.FloatPoint) {
		a.InsertLine(current, p)
		current = p
	})
}

// InsertBezierCurve flattens a cubic Bézier and inserts the resulting
// chords as line segments.
func (a *Approximator) InsertBezierCurve(from, control1, control2, to geom.FloatPoint) {
	current := from
	flattenCubic(from, control1, control2, to, a.tolerance, func(p geom.FloatPoint) {
		a.InsertLine(current, p)
		current = p
	})
}

// InsertArc flattens an arc into cubic Béziers (via flattenArc) and
// inserts the resulting chords as line segments. lastEnd is the current
// point immediately before the arc; toExact is the arc element's
// precomputed, already-transformed endpoint.
func (a *Approximator) InsertArc(lastEnd geom.FloatPoint, center, radius geom.FloatPoint, startAngle, endAngle float64, elementTransform, globalTransform geom.AffineTransform, toExact geom.FloatPoint) {
	current := lastEnd
	flattenArc(center, radius, startAngle, endAngle, elementTransform, globalTransform, toExact, a.tolerance, func(p geom.FloatPoint) {
		// The first emitted point is always the arc's start — this
		// bridges the gap from the caller's current point unconditionally,
		// per the contract of flattenArc.
		a.InsertLine(current, p)
		current = p
	})
}

// Segments finalizes the bucketed segment set into a single flat,
// sorted list, per the five-phase algorithm: scanline split,
// intersection discovery, a second scanline split, coincident-pair
// repair, then concatenation in ascending bucket-key order.
func (a *Approximator) Segments() []Segment {
	a.splitSegments()
	a.discoverIntersections()
	a.splitSegments()
	a.repairCoincidentPairs()

	var out []Segment
	a.buckets.Range(func(_ int64, segs []Segment) {
		sorted := append([]Segment(nil), segs...)
		sortSegments(sorted)
		out = append(out, sorted...)
	})
	return out
}

func sortSegments(segs []Segment) {
	sort.Slice(segs, func(i, j int) bool {
		if segs[i].TopX != segs[j].TopX {
			return segs[i].TopX < segs[j].TopX
		}
		if segs[i].SlopeInv != segs[j].SlopeInv {
			return segs[i].SlopeInv < segs[j].SlopeInv
		}
		return segs[i].ID < segs[j].ID
	})
}

// splitSegments implements phase 1/3: for every adjacent pair of bucket
// keys (y1, y2), any segment in the y1 bucket that strictly crosses y2
// is truncated there, with its continuation pushed into the y2 bucket.
func (a *Approximator) splitSegments() {
	keys := append([]int64(nil), a.buckets.Keys()...)
	for i := 0; i+1 < len(keys); i++ {
		y1, y2 := keys[i], keys[i+1]
		idx, ok := a.buckets.IndexOf(y1)
		if !ok {
			continue
		}
		segs := a.buckets.At(idx)
		for j := range segs {
			s := &segs[j]
			if s.TopY < y2 && y2 < s.BottomY {
				continuation := s.splitAtY(y2)
				a.buckets.Push(y2, continuation)
			}
		}
		a.buckets.SetAt(idx, segs)
	}
}

// discoverIntersections implements phase 2: within each bucket, sort by
// (TopX, SlopeInv, ID) and walk adjacent pairs that share both endpoints'
// scanlines; any analytic intersection strictly inside the shared span
// becomes a new bucket key, forcing another split pass.
func (a *Approximator) discoverIntersections() {
	newKeys := map[int64]bool{}

	for i := 0; i < a.buckets.Len(); i++ {
		segs := append([]Segment(nil), a.buckets.At(i)...)
		sortSegments(segs)

		for j := 0; j+1 < len(segs); j++ {
			lhs, rhs := segs[j], segs[j+1]
			if lhs.TopY != rhs.TopY || lhs.BottomY != rhs.BottomY {
				continue
			}
			if y, isInteger, crosses := intersectionY(lhs, rhs); crosses {
				newKeys[y] = true
				if !isInteger {
					newKeys[y+1] = true
				}
			}
		}
	}

	for key := range newKeys {
		a.buckets.Ensure(key)
	}
}

// repairCoincidentPairs implements phase 4: in buckets whose segments
// all span exactly one scanline, nearly-coincident pairs are pulled
// together to eliminate slivers produced by near-intersections. A
// bounded number of restarts stands in for the reference's unbounded
// restart-on-merge loop (see maxRepairIterations).
func (a *Approximator) repairCoincidentPairs() {
	for i := 0; i < a.buckets.Len(); i++ {
		for iter := 0; iter < maxRepairIterations; iter++ {
			segs := append([]Segment(nil), a.buckets.At(i)...)
			if !allSpanOneScanline(segs) {
				break
			}
			sortSegments(segs)

			merged := false
			for j := 0; j+1 < len(segs); j++ {
				a0, b0 := &segs[j], &segs[j+1]
				topGap := b0.TopX - a0.TopX
				bottomGap := b0.BottomX - a0.BottomX
				if topGap < bottomGap {
					b0.TopX = a0.TopX
					merged = true
				} else if bottomGap < topGap {
					b0.BottomX = a0.BottomX
					merged = true
				}
			}

			a.buckets.SetAt(i, segs)
			if !merged {
				break
			}
		}
	}
}

func allSpanOneScanline(segs []Segment) bool {
	for _, s := range segs {
		if s.BottomY-s.TopY != 1 {
			return false
		}
	}
	return len(segs) > 0
}
