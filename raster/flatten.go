package raster

import "github.com/gepard-graphics/gepard/geom"

// area returns twice the signed area of triangle (p0, p1, p2) — the
// 2D cross product of (p1-p0) and (p2-p0). Used as a cheap flatness
// proxy: for a chord of roughly unit scale this tracks the perpendicular
// deviation of p1 from the line p0-p2 without paying for a sqrt per
// candidate split.
func area(p0, p1, p2 geom.FloatPoint) float64 {
	return p1.Sub(p0).Cross(p2.Sub(p0))
}

// withinExpandedBox reports whether p lies in the axis-aligned box
// spanned by a and b, expanded by tolerance on every side.
func withinExpandedBox(p, a, b geom.FloatPoint, tolerance float64) bool {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return p.X >= minX-tolerance && p.X <= maxX+tolerance &&
		p.Y >= minY-tolerance && p.Y <= maxY+tolerance
}

func quadraticIsFlat(p0, control, p2 geom.FloatPoint, tolerance float64) bool {
	d := area(p0, control, p2)
	if d < 0 {
		d = -d
	}
	return d <= tolerance && withinExpandedBox(control, p0, p2, tolerance)
}

func cubicIsFlat(p0, p1, p2, p3 geom.FloatPoint, tolerance float64) bool {
	d1 := area(p0, p1, p3)
	if d1 < 0 {
		d1 = -d1
	}
	d2 := area(p0, p2, p3)
	if d2 < 0 {
		d2 = -d2
	}
	return d1 <= tolerance && d2 <= tolerance &&
		withinExpandedBox(p1, p0, p3, tolerance) && withinExpandedBox(p2, p0, p3, tolerance)
}

// quadStackCapacity bounds the explicit LIFO buffer used by
// flattenQuadratic: 16 pending halves is enough for any curve a caller
// would reasonably draw; the rare deeper case falls back to recursion
// so correctness never depends on the stack's fixed size.
const quadStackCapacity = 16

type quadSeg struct{ p0, c, p1 geom.FloatPoint }

// flattenQuadratic emits a lineTo-equivalent call to emit for every flat
// piece of the quadratic Bézier (p0, control, p2), via De Casteljau
// midpoint subdivision.
func flattenQuadratic(p0, control, p2 geom.FloatPoint, tolerance float64, emit func(to geom.FloatPoint)) {
	var stack [quadStackCapacity]quadSeg
	top := 0
	stack[top] = quadSeg{p0, control, p2}
	top++

	for top > 0 {
		top--
		seg := stack[top]

		if quadraticIsFlat(seg.p0, seg.c, seg.p1, tolerance) {
			emit(seg.p1)
			continue
		}

		q0 := seg.p0.Lerp(seg.c, 0.5)
		q1 := seg.c.Lerp(seg.p1, 0.5)
		mid := q0.Lerp(q1, 0.5)

		first := quadSeg{seg.p0, q0, mid}
		second := quadSeg{mid, q1, seg.p1}

		if top+2 <= quadStackCapacity {
			stack[top] = second
			top++
			stack[top] = first
			top++
		} else {
			// Stack exhausted on a pathologically deep curve: recurse for
			// the remainder rather than growing the buffer.
			flattenQuadraticRecursive(first.p0, first.c, first.p1, tolerance, emit)
			flattenQuadraticRecursive(second.p0, second.c, second.p1, tolerance, emit)
		}
	}
}

func flattenQuadraticRecursive(p0, control, p2 geom.FloatPoint, tolerance float64, emit func(to geom.FloatPoint)) {
	if quadraticIsFlat(p0, control, p2, tolerance) {
		emit(p2)
		return
	}
	q0 := p0.Lerp(control, 0.5)
	q1 := control.Lerp(p2, 0.5)
	mid := q0.Lerp(q1, 0.5)
	flattenQuadraticRecursive(p0, q0, mid, tolerance, emit)
	flattenQuadraticRecursive(mid, q1, p2, tolerance, emit)
}

// cubicStackCapacity mirrors quadStackCapacity: 16 pending halves, each
// stored as its four points (two endpoints, two control points).
const cubicStackCapacity = 16

type cubicSeg struct{ p0, c1, c2, p1 geom.FloatPoint }

// flattenCubic emits a lineTo-equivalent call to emit for every flat
// piece of the cubic Bézier (p0, control1, control2, p3).
func flattenCubic(p0, control1, control2, p3 geom.FloatPoint, tolerance float64, emit func(to geom.FloatPoint)) {
	var stack [cubicStackCapacity]cubicSeg
	top := 0
	stack[top] = cubicSeg{p0, control1, control2, p3}
	top++

	for top > 0 {
		top--
		seg := stack[top]

		if cubicIsFlat(seg.p0, seg.c1, seg.c2, seg.p1, tolerance) {
			emit(seg.p1)
			continue
		}

		q0 := seg.p0.Lerp(seg.c1, 0.5)
		q1 := seg.c1.Lerp(seg.c2, 0.5)
		q2 := seg.c2.Lerp(seg.p1, 0.5)
		r0 := q0.Lerp(q1, 0.5)
		r1 := q1.Lerp(q2, 0.5)
		mid := r0.Lerp(r1, 0.5)

		first := cubicSeg{seg.p0, q0, r0, mid}
		second := cubicSeg{mid, r1, q2, seg.p1}

		if top+2 <= cubicStackCapacity {
			stack[top] = second
			top++
			stack[top] = first
			top++
		} else {
			flattenCubicRecursive(first.p0, first.c1, first.c2, first.p1, tolerance, emit)
			flattenCubicRecursive(second.p0, second.c1, second.c2, second.p1, tolerance, emit)
		}
	}
}

func flattenCubicRecursive(p0, control1, control2, p3 geom.FloatPoint, tolerance float64, emit func(to geom.FloatPoint)) {
	if cubicIsFlat(p0, control1, control2, p3, tolerance) {
		emit(p3)
		return
	}
	q0 := p0.Lerp(control1, 0.5)
	q1 := control1.Lerp(control2, 0.5)
	q2 := control2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	mid := r0.Lerp(r1, 0.5)
	flattenCubicRecursive(p0, q0, r0, mid, tolerance, emit)
	flattenCubicRecursive(mid, r1, q2, p3, tolerance, emit)
}
