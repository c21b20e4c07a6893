package tessellate

import (
	"sort"

	"github.com/gepard-graphics/gepard/geom"
	"github.com/gepard-graphics/gepard/path"
	"github.com/gepard-graphics/gepard/raster"
)

// FillRule selects how the signed segment-crossing count is turned into
// an inside/outside decision while sweeping the segment list.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// subPixelTolerance is the tessellator's fixed curve-flattening
// tolerance factor, always 1 pixel regardless of antiAliasLevel — the
// approximator then divides it by antiAliasLevel itself.
const subPixelTolerance = 1.0

// Tessellate walks data's elements under transform and turns them into a
// merged, fill-rule-aware Trapezoid list plus the path's pixel-space
// bounding box. An empty path, or one with a single element, yields an
// empty list.
func Tessellate(data *path.Data, rule FillRule, transform geom.AffineTransform, antiAliasLevel int) ([]Trapezoid, geom.BoundingBox) {
	first := data.First()
	if first == 0 {
		return nil, geom.EmptyBoundingBox()
	}
	firstElem := data.At(first)
	if firstElem.Next == 0 {
		return nil, geom.EmptyBoundingBox()
	}

	approx := raster.NewApproximator(antiAliasLevel, subPixelTolerance)

	to := firstElem.To
	lastMoveTo := to
	var from geom.FloatPoint
	var elem *path.Element

	ref := firstElem.Next
	for {
		elem = data.At(ref)
		from = to
		to = elem.To

		switch elem.Kind {
		case path.KindMoveTo:
			approx.InsertLine(transform.Apply(from), transform.Apply(lastMoveTo))
			lastMoveTo = to
		case path.KindLineTo:
			approx.InsertLine(transform.Apply(from), transform.Apply(to))
		case path.KindCloseSubpath:
			approx.InsertLine(transform.Apply(from), transform.Apply(lastMoveTo))
			lastMoveTo = to
		case path.KindQuadraticCurveTo:
			approx.InsertQuadCurve(transform.Apply(from), transform.Apply(elem.Control), transform.Apply(to))
		case path.KindBezierCurveTo:
			approx.InsertBezierCurve(transform.Apply(from), transform.Apply(elem.Control), transform.Apply(elem.Control2), transform.Apply(to))
		case path.KindArc:
			approx.InsertArc(transform.Apply(from), elem.Center, elem.Radius, elem.StartAngle, elem.EndAngle, elem.Transform, transform, transform.Apply(elem.To))
		}

		if elem.Next == 0 {
			break
		}
		ref = elem.Next
	}

	// Implicit close of the final subpath.
	approx.InsertLine(transform.Apply(to), transform.Apply(lastMoveTo))

	segments := approx.Segments()
	trapezoids := emitTrapezoids(segments, rule, float64(approx.AntiAliasLevel()))

	sort.Slice(trapezoids, func(i, j int) bool { return less(trapezoids[i], trapezoids[j]) })
	merged := verticalMerge(trapezoids)

	return merged, approx.BoundingBox()
}

// emitTrapezoids sweeps the sorted segment list, tracking a signed fill
// counter: NonZero accumulates segment.Direction, EvenOdd toggles on
// every segment. A 0 -> nonzero transition opens a trapezoid's left
// edge; the matching nonzero -> 0 transition closes its right edge and,
// if the trapezoid has a non-zero height, emits it.
func emitTrapezoids(segments []raster.Segment, rule FillRule, antiAliasLevel float64) []Trapezoid {
	var out []Trapezoid
	var current Trapezoid
	fill := 0
	isInFill := false

	for _, seg := range segments {
		if rule == EvenOdd {
			if fill == 0 {
				fill = 1
			} else {
				fill = 0
			}
		} else {
			fill += int(seg.Direction)
		}

		if fill != 0 {
			if !isInFill {
				current = Trapezoid{
					TopY:        float64(seg.TopY) / antiAliasLevel,
					BottomY:     float64(seg.BottomY) / antiAliasLevel,
					TopLeftX:    seg.TopX / antiAliasLevel,
					BottomLeftX: seg.BottomX / antiAliasLevel,
					LeftID:      seg.ID,
					LeftSlope:   seg.RealSlope,
				}
				if current.TopY != current.BottomY {
					isInFill = true
				}
			}
		} else {
			current.TopRightX = seg.TopX / antiAliasLevel
			current.BottomRightX = seg.BottomX / antiAliasLevel
			current.RightID = seg.ID
			current.RightSlope = seg.RealSlope
			if current.TopY != current.BottomY {
				out = append(out, current)
			}
			isInFill = false
		}
	}
	return out
}

// verticalMerge implements the vertical-merge sweep: for each trapezoid,
// look among the trapezoids sharing its BottomY as their TopY for one
// that is mergeable, and if found, fold this trapezoid's top edge into
// it and retire this one (leftId/rightId zeroed).
func verticalMerge(trapezoids []Trapezoid) []Trapezoid {
	retired := make([]bool, len(trapezoids))

	for i := range trapezoids {
		current := trapezoids[i]
		bottomY := current.BottomY

		for j := i; j < len(trapezoids) && trapezoids[j].TopY <= bottomY; j++ {
			if trapezoids[j].TopY == bottomY && current.isMergableInTo(trapezoids[j]) {
				trapezoids[j].TopY = current.TopY
				trapezoids[j].TopLeftX = current.TopLeftX
				trapezoids[j].TopRightX = current.TopRightX
				trapezoids[i].LeftID, trapezoids[i].RightID = 0, 0
				retired[i] = true
				break
			}
		}
	}

	out := make([]Trapezoid, 0, len(trapezoids))
	for i, t := range trapezoids {
		if !retired[i] {
			out = append(out, t)
		}
	}
	return out
}
