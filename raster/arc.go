package raster

import (
	"math"

	"github.com/gepard-graphics/gepard/geom"
)

// arcSubdivisions returns the smallest n >= 1 such that approximating a
// sweep of angle delta (radians, magnitude <= 2π) with n equal cubic
// sub-arcs keeps the per-sub-arc chord error within tolerance/radius.
func arcSubdivisions(delta, tolerance, radius float64) int {
	if radius <= 0 {
		return 1
	}
	maxError := tolerance / radius
	for n := 1; ; n++ {
		quarter := delta / (4 * float64(n))
		s := math.Sin(quarter)
		c := math.Cos(quarter)
		err := (2.0 / 27.0) * math.Pow(s, 6) / (c * c)
		if err <= maxError || n > 4096 {
			return n
		}
	}
}

// flattenArc emits the lineTo-equivalent chords approximating the arc
// described by center/radius/startAngle/endAngle (the sign of
// endAngle-startAngle gives the direction), after mapping through the
// arc's own transform composed with the caller's global transform. The
// arc's start point is always emitted first, so the caller bridges its
// current point to the arc with a lineTo; the final emitted point is pinned to
// exactly toExact (the Arc element's precomputed, already-transformed
// endpoint) to avoid accumulated rounding drift across the transform
// chain.
func flattenArc(center, radius geom.FloatPoint, startAngle, endAngle float64, elementTransform, globalTransform geom.AffineTransform, toExact geom.FloatPoint, tolerance float64, emit func(to geom.FloatPoint)) {
	combined := globalTransform.Multiply(elementTransform)

	unitPoint := func(angle float64) geom.FloatPoint {
		p := geom.Pt(center.X+math.Cos(angle)*radius.X, center.Y+math.Sin(angle)*radius.Y)
		return combined.Apply(p)
	}

	start := unitPoint(startAngle)
	emit(start)

	delta := endAngle - startAngle
	maxRadius := math.Max(radius.X, radius.Y)
	n := arcSubdivisions(delta, tolerance, maxRadius)

	step := delta / float64(n)
	h := (4.0 / 3.0) * math.Tan(step/4.0)

	prevAngle := startAngle
	prevPoint := start
	prevTangent := geom.Pt(-math.Sin(prevAngle)*radius.X, math.Cos(prevAngle)*radius.Y)

	for i := 1; i <= n; i++ {
		angle := startAngle + step*float64(i)
		unit := geom.Pt(center.X+math.Cos(angle)*radius.X, center.Y+math.Sin(angle)*radius.Y)
		tangent := geom.Pt(-math.Sin(angle)*radius.X, math.Cos(angle)*radius.Y)

		c1 := combined.Apply(geom.Pt(
			center.X+math.Cos(prevAngle)*radius.X+h*prevTangent.X,
			center.Y+math.Sin(prevAngle)*radius.Y+h*prevTangent.Y,
		))
		c2 := combined.Apply(geom.Pt(
			unit.X-h*tangent.X,
			unit.Y-h*tangent.Y,
		))
		end := combined.Apply(unit)
		if i == n {
			end = toExact
		}

		flattenCubic(prevPoint, c1, c2, end, tolerance, emit)

		prevAngle = angle
		prevPoint = end
		prevTangent = tangent
	}
}
