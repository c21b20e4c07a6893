package path

import (
	"math"

	"github.com/gepard-graphics/gepard/arena"
	"github.com/gepard-graphics/gepard/geom"
)

const twoPi = 2 * math.Pi

// Data is the element chain built up by a sequence of path commands. The
// zero Data is ready to use.
type Data struct {
	region *arena.Region[Element]

	first      arena.Ref
	last       arena.Ref
	lastMoveTo arena.Ref
}

// NewData returns an empty path ready for building.
func NewData() *Data {
	return &Data{region: arena.NewRegion[Element]()}
}

func (d *Data) lastElement() *Element {
	if d.last == 0 {
		return nil
	}
	return d.region.Get(d.last)
}

func (d *Data) append(e Element) arena.Ref {
	if d.region == nil {
		d.region = arena.NewRegion[Element]()
	}
	ref, slot := d.region.Alloc()
	*slot = e
	if d.first == 0 {
		d.first = ref
		d.last = ref
	} else {
		d.region.Get(d.last).Next = ref
		d.last = ref
	}
	return ref
}

// MoveTo starts a new subpath at p, overwriting the endpoint of a
// trailing MoveTo rather than appending a second one.
func (d *Data) MoveTo(p geom.FloatPoint) {
	if last := d.lastElement(); last != nil && last.isMoveTo() {
		last.To = p
		return
	}
	ref := d.append(Element{Kind: KindMoveTo, To: p})
	d.lastMoveTo = ref
}

// LineTo appends a straight segment to p. An empty path promotes this
// into a MoveTo; a LineTo to the current point is dropped.
func (d *Data) LineTo(p geom.FloatPoint) {
	last := d.lastElement()
	if last == nil {
		d.MoveTo(p)
		return
	}
	if last.To.Equal(p) {
		return
	}
	d.append(Element{Kind: KindLineTo, To: p})
}

// QuadraticCurveTo appends a quadratic Bézier through control to p. On
// an empty path this emits a MoveTo(p) and drops the curve, matching
// HTML Canvas 2D semantics for a path with no current point.
func (d *Data) QuadraticCurveTo(control, p geom.FloatPoint) {
	if d.lastElement() == nil {
		d.MoveTo(p)
		return
	}
	d.append(Element{Kind: KindQuadraticCurveTo, Control: control, To: p})
}

// BezierCurveTo appends a cubic Bézier through control1, control2 to p.
func (d *Data) BezierCurveTo(control1, control2, p geom.FloatPoint) {
	if d.lastElement() == nil {
		d.MoveTo(p)
		return
	}
	d.append(Element{Kind: KindBezierCurveTo, Control: control1, Control2: control2, To: p})
}

// Arc appends a circular or elliptical arc. The start point is derived
// from center, radius and startAngle; a degenerate radius or zero sweep
// is reduced to a single LineTo, and a gap between the current point and
// the arc's start is bridged with a connecting LineTo.
func (d *Data) Arc(center, radius geom.FloatPoint, startAngle, endAngle float64, counterClockwise bool) {
	start := geom.Pt(center.X+math.Cos(startAngle)*radius.X, center.Y+math.Sin(startAngle)*radius.Y)

	last := d.lastElement()
	if last == nil {
		d.MoveTo(center)
		return
	}

	if radius.X == 0 || radius.Y == 0 || startAngle == endAngle {
		d.LineTo(start)
		return
	}

	if !last.To.Equal(start) {
		d.LineTo(start)
	}

	startAngle, endAngle = normalizeArcAngles(startAngle, endAngle, counterClockwise)

	d.append(Element{
		Kind:             KindArc,
		To:               geom.Pt(center.X+math.Cos(endAngle)*radius.X, center.Y+math.Sin(endAngle)*radius.Y),
		Center:           center,
		Radius:           radius,
		StartAngle:       startAngle,
		EndAngle:         endAngle,
		CounterClockwise: counterClockwise,
		Transform:        geom.Identity(),
	})
}

// normalizeArcAngles reduces startAngle/endAngle to the canonical range
// the approximator expects: when the requested sweep already covers a
// full turn or more, the result spans exactly one turn in the requested
// direction; otherwise both angles are folded into [0, 2π] and the end
// angle is shifted by a multiple of 2π so that the sweep direction
// matches counterClockwise.
func normalizeArcAngles(startAngle, endAngle float64, counterClockwise bool) (float64, float64) {
	if counterClockwise && startAngle-endAngle >= twoPi {
		startAngle = math.Mod(startAngle, twoPi)
		endAngle = startAngle - twoPi
		return startAngle, endAngle
	}
	if !counterClockwise && endAngle-startAngle >= twoPi {
		startAngle = math.Mod(startAngle, twoPi)
		endAngle = startAngle + twoPi
		return startAngle, endAngle
	}

	equal := startAngle == endAngle

	startAngle = math.Mod(startAngle, twoPi)
	if startAngle < 0 {
		startAngle += twoPi
	}
	endAngle = math.Mod(endAngle, twoPi)
	if endAngle < 0 {
		endAngle += twoPi
	}

	if !counterClockwise {
		if startAngle > endAngle || (startAngle == endAngle && !equal) {
			endAngle += twoPi
		}
	} else {
		if startAngle < endAngle || (startAngle == endAngle && !equal) {
			endAngle -= twoPi
		}
	}
	return startAngle, endAngle
}

// ArcTo appends an arc tangent to the two chords (prev→control) and
// (control→end) with the given radius, using the standard HTML Canvas
// tangent-circle construction. Degenerate configurations — no current
// point, a zero radius, coincident points, or three collinear points —
// fall back to a straight LineTo(control).
func (d *Data) ArcTo(control, end geom.FloatPoint, radius float64) {
	last := d.lastElement()
	if last == nil {
		d.MoveTo(control)
		return
	}

	if last.To.Equal(control) || control.Equal(end) || radius == 0 {
		d.LineTo(control)
		return
	}

	start := last.To

	delta1 := start.Sub(control)
	delta2 := end.Sub(control)
	delta1Length := math.Sqrt(delta1.LengthSquared())
	delta2Length := math.Sqrt(delta2.LengthSquared())

	cosPhi := delta1.Dot(delta2) / (delta1Length * delta2Length)

	// All three points lie on (or arbitrarily close to) a single line.
	if math.Abs(cosPhi) >= 0.9999 {
		d.LineTo(control)
		return
	}

	tangent := radius / math.Tan(math.Acos(cosPhi)/2.0)
	delta1Factor := tangent / delta1Length
	arcStart := geom.Pt(control.X+delta1Factor*delta1.X, control.Y+delta1Factor*delta1.Y)

	orthoStart := geom.Pt(delta1.Y, -delta1.X)
	orthoStartLength := math.Sqrt(orthoStart.LengthSquared())
	radiusFactor := radius / orthoStartLength

	cosAlpha := (orthoStart.X*delta2.X + orthoStart.Y*delta2.Y) / (orthoStartLength * delta2Length)
	if cosAlpha < 0 {
		orthoStart = geom.Pt(-orthoStart.X, -orthoStart.Y)
	}

	center := geom.Pt(arcStart.X+radiusFactor*orthoStart.X, arcStart.Y+radiusFactor*orthoStart.Y)

	orthoStart = geom.Pt(-orthoStart.X, -orthoStart.Y)
	startAngle := math.Acos(orthoStart.X / orthoStartLength)
	if orthoStart.Y < 0 {
		startAngle = twoPi - startAngle
	}

	delta2Factor := tangent / delta2Length
	arcEnd := geom.Pt(control.X+delta2Factor*delta2.X, control.Y+delta2Factor*delta2.Y)
	orthoEnd := arcEnd.Sub(center)
	orthoEndLength := math.Sqrt(orthoEnd.LengthSquared())
	endAngle := math.Acos(orthoEnd.X / orthoEndLength)
	if orthoEnd.Y < 0 {
		endAngle = twoPi - endAngle
	}

	counterClockwise := false
	if startAngle > endAngle && startAngle-endAngle < math.Pi {
		counterClockwise = true
	}
	if startAngle < endAngle && endAngle-startAngle > math.Pi {
		counterClockwise = true
	}

	d.Arc(center, geom.Pt(radius, radius), startAngle, endAngle, counterClockwise)
}

// CloseSubpath closes the current subpath back to its MoveTo endpoint.
// It is a no-op on an empty path or one already closed.
func (d *Data) CloseSubpath() {
	last := d.lastElement()
	if last == nil || last.isCloseSubpath() {
		return
	}
	if last.isMoveTo() {
		// Appended directly: LineTo would drop a line to the current point.
		d.append(Element{Kind: KindLineTo, To: last.To})
	}
	d.append(Element{Kind: KindCloseSubpath, To: d.region.Get(d.lastMoveTo).To})
}

// ApplyTransform maps every stored point of every element through t. An
// Arc's endpoint is mapped directly, but its ellipse geometry is left
// untouched — instead t is composed into the arc's own transform, which
// the approximator applies when it reconstructs the ellipse.
func (d *Data) ApplyTransform(t geom.AffineTransform) {
	for ref := d.first; ref != 0; {
		e := d.region.Get(ref)
		switch e.Kind {
		case KindMoveTo, KindCloseSubpath, KindLineTo:
			e.To = t.Apply(e.To)
		case KindQuadraticCurveTo:
			e.To = t.Apply(e.To)
			e.Control = t.Apply(e.Control)
		case KindBezierCurveTo:
			e.To = t.Apply(e.To)
			e.Control = t.Apply(e.Control)
			e.Control2 = t.Apply(e.Control2)
		case KindArc:
			e.To = t.Apply(e.To)
			e.Transform = t.Multiply(e.Transform)
		}
		ref = e.Next
	}
}

// IsEmpty reports whether the path has no elements.
func (d *Data) IsEmpty() bool {
	return d.first == 0
}

// First returns a Ref to the first element of the chain, or the zero Ref
// if the path is empty.
func (d *Data) First() arena.Ref {
	return d.first
}

// At returns the element addressed by ref.
func (d *Data) At(ref arena.Ref) *Element {
	return d.region.Get(ref)
}

// Len returns the number of elements currently stored.
func (d *Data) Len() int {
	n := 0
	for ref := d.first; ref != 0; {
		n++
		ref = d.region.Get(ref).Next
	}
	return n
}
