package path

import (
	"math"
	"testing"

	"github.com/gepard-graphics/gepard/geom"
)

func collect(d *Data) []*Element {
	var out []*Element
	for ref := d.First(); ref != 0; {
		e := d.At(ref)
		out = append(out, e)
		ref = e.Next
	}
	return out
}

func TestMoveToOverwritesTrailingMoveTo(t *testing.T) {
	d := NewData()
	d.MoveTo(geom.Pt(1, 1))
	d.MoveTo(geom.Pt(2, 2))

	elems := collect(d)
	if len(elems) != 1 {
		t.Fatalf("expected exactly one element, got %d", len(elems))
	}
	if elems[0].To != geom.Pt(2, 2) {
		t.Errorf("MoveTo should overwrite in place, got %v", elems[0].To)
	}
}

func TestLineToOnEmptyPathPromotesToMoveTo(t *testing.T) {
	d := NewData()
	d.LineTo(geom.Pt(5, 5))

	elems := collect(d)
	if len(elems) != 1 || elems[0].Kind != KindMoveTo {
		t.Fatalf("expected a single MoveTo, got %+v", elems)
	}
}

func TestLineToCoalescingAfterMoveTo(t *testing.T) {
	d := NewData()
	d.MoveTo(geom.Pt(3, 3))
	d.LineTo(geom.Pt(3, 3))

	elems := collect(d)
	if len(elems) != 1 {
		t.Fatalf("a LineTo equal to the current point should be dropped, got %d elements", len(elems))
	}
}

func TestQuadraticCurveToOnEmptyPathDropsCurve(t *testing.T) {
	d := NewData()
	d.QuadraticCurveTo(geom.Pt(1, 1), geom.Pt(2, 2))

	elems := collect(d)
	if len(elems) != 1 || elems[0].Kind != KindMoveTo || elems[0].To != geom.Pt(2, 2) {
		t.Fatalf("expected only a MoveTo(2,2), got %+v", elems)
	}
}

func TestCloseSubpathIdempotent(t *testing.T) {
	d := NewData()
	d.MoveTo(geom.Pt(0, 0))
	d.LineTo(geom.Pt(10, 0))
	d.CloseSubpath()
	n := d.Len()
	d.CloseSubpath()
	if d.Len() != n {
		t.Errorf("closing an already-closed subpath should be a no-op, len changed from %d to %d", n, d.Len())
	}
}

func TestCloseSubpathAfterMoveToInsertsLineTo(t *testing.T) {
	d := NewData()
	d.MoveTo(geom.Pt(0, 0))
	d.CloseSubpath()

	elems := collect(d)
	if len(elems) != 3 {
		t.Fatalf("expected MoveTo, LineTo(back to start), CloseSubpath; got %d elements", len(elems))
	}
	if elems[1].Kind != KindLineTo {
		t.Errorf("expected LineTo before CloseSubpath is impossible to omit, got %v", elems[1].Kind)
	}
}

func TestArcWithZeroRadiusIsALineTo(t *testing.T) {
	d := NewData()
	d.MoveTo(geom.Pt(0, 0))
	d.Arc(geom.Pt(5, 0), geom.Pt(0, 5), 0, math.Pi, false)

	elems := collect(d)
	if len(elems) != 2 || elems[1].Kind != KindLineTo {
		t.Fatalf("zero-radius arc should add exactly one LineTo, got %+v", elems)
	}
}

func TestFullCircleArcHasExactTwoPiSweep(t *testing.T) {
	d := NewData()
	d.MoveTo(geom.Pt(10, 0))
	d.Arc(geom.Pt(0, 0), geom.Pt(10, 10), 0, 2*math.Pi, false)

	elems := collect(d)
	last := elems[len(elems)-1]
	if last.Kind != KindArc {
		t.Fatalf("expected an Arc element, got %v", last.Kind)
	}
	if math.Abs((last.EndAngle-last.StartAngle)-2*math.Pi) > 1e-9 {
		t.Errorf("expected a full 2pi sweep, got delta=%v", last.EndAngle-last.StartAngle)
	}
}

func TestArcToCollinearPointsIsALineTo(t *testing.T) {
	d := NewData()
	d.MoveTo(geom.Pt(0, 0))
	d.ArcTo(geom.Pt(5, 0), geom.Pt(10, 0), 2)

	elems := collect(d)
	if len(elems) != 2 || elems[1].Kind != KindLineTo {
		t.Fatalf("collinear arcTo should fall back to a LineTo, got %+v", elems)
	}
}

func TestApplyTransformMapsEndpoints(t *testing.T) {
	d := NewData()
	d.MoveTo(geom.Pt(1, 1))
	d.LineTo(geom.Pt(2, 2))

	d.ApplyTransform(geom.Identity().Translate(10, 0))

	elems := collect(d)
	if elems[0].To != geom.Pt(11, 1) || elems[1].To != geom.Pt(12, 2) {
		t.Errorf("translate did not apply to every endpoint: %+v", elems)
	}
}

func TestApplyTransformComposesArcTransform(t *testing.T) {
	d := NewData()
	d.MoveTo(geom.Pt(10, 0))
	d.Arc(geom.Pt(0, 0), geom.Pt(10, 10), 0, math.Pi, false)

	first := geom.Identity().Scale(2, 2)
	second := geom.Identity().Translate(5, 5)
	d.ApplyTransform(first)
	d.ApplyTransform(second)

	elems := collect(d)
	arcElem := elems[len(elems)-1]
	want := second.Multiply(first)
	got := arcElem.Transform
	if got.Mat != want.Mat {
		t.Errorf("arc transform = %+v, want %+v", got, want)
	}
}
