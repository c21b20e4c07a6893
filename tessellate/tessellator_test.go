package tessellate

import (
	"testing"

	"github.com/gepard-graphics/gepard/geom"
	"github.com/gepard-graphics/gepard/path"
)

func TestEmptyPathProducesNoTrapezoids(t *testing.T) {
	data := path.NewData()
	trapezoids, _ := Tessellate(data, NonZero, geom.Identity(), 1)
	if len(trapezoids) != 0 {
		t.Errorf("expected no trapezoids for an empty path, got %d", len(trapezoids))
	}
}

func TestSingleMoveToProducesNoTrapezoids(t *testing.T) {
	data := path.NewData()
	data.MoveTo(geom.Pt(0, 0))
	trapezoids, _ := Tessellate(data, NonZero, geom.Identity(), 1)
	if len(trapezoids) != 0 {
		t.Errorf("expected no trapezoids for a bare MoveTo, got %d", len(trapezoids))
	}
}

func TestRectangleProducesOneTrapezoid(t *testing.T) {
	data := path.NewData()
	data.MoveTo(geom.Pt(0, 0))
	data.LineTo(geom.Pt(10, 0))
	data.LineTo(geom.Pt(10, 10))
	data.LineTo(geom.Pt(0, 10))
	data.CloseSubpath()

	trapezoids, bbox := Tessellate(data, NonZero, geom.Identity(), 1)
	if len(trapezoids) != 1 {
		t.Fatalf("expected exactly one trapezoid for an unbroken rectangle, got %d: %+v", len(trapezoids), trapezoids)
	}
	tr := trapezoids[0]
	if tr.TopY != 0 || tr.BottomY != 10 {
		t.Errorf("trapezoid y-span = [%v,%v], want [0,10]", tr.TopY, tr.BottomY)
	}
	if tr.TopLeftX != 0 || tr.TopRightX != 10 || tr.BottomLeftX != 0 || tr.BottomRightX != 10 {
		t.Errorf("trapezoid x-span = left[%v,%v] right[%v,%v], want 0 and 10", tr.TopLeftX, tr.BottomLeftX, tr.TopRightX, tr.BottomRightX)
	}
	if bbox.IsEmpty() {
		t.Error("expected a non-empty bounding box")
	}
}

func TestTriangleProducesTrapezoids(t *testing.T) {
	data := path.NewData()
	data.MoveTo(geom.Pt(0, 0))
	data.LineTo(geom.Pt(10, 0))
	data.LineTo(geom.Pt(5, 10))
	data.CloseSubpath()

	trapezoids, _ := Tessellate(data, NonZero, geom.Identity(), 1)
	if len(trapezoids) == 0 {
		t.Fatal("expected at least one trapezoid for a triangle")
	}
	for _, tr := range trapezoids {
		if tr.BottomY <= tr.TopY {
			t.Errorf("trapezoid %+v violates topY < bottomY", tr)
		}
	}
}

// A figure-eight (bowtie) self-intersecting quad: its two triangular lobes
// meet only at the crossing point (5,5) and have winding numbers +1 and
// -1, so no region is covered twice and NonZero and EvenOdd both fill
// exactly the two lobes, 25 square units each.
func bowtiePath() *path.Data {
	data := path.NewData()
	data.MoveTo(geom.Pt(0, 0))
	data.LineTo(geom.Pt(10, 10))
	data.LineTo(geom.Pt(10, 0))
	data.LineTo(geom.Pt(0, 10))
	data.CloseSubpath()
	return data
}

func trapezoidArea(trapezoids []Trapezoid) float64 {
	total := 0.0
	for _, tr := range trapezoids {
		topWidth := tr.TopRightX - tr.TopLeftX
		bottomWidth := tr.BottomRightX - tr.BottomLeftX
		height := tr.BottomY - tr.TopY
		total += (topWidth + bottomWidth) / 2 * height
	}
	return total
}

func TestBowtieFillRulesAgreeOnArea(t *testing.T) {
	nonZero, _ := Tessellate(bowtiePath(), NonZero, geom.Identity(), 4)
	evenOdd, _ := Tessellate(bowtiePath(), EvenOdd, geom.Identity(), 4)

	if len(nonZero) == 0 || len(evenOdd) == 0 {
		t.Fatal("expected both fill rules to produce trapezoids for a bowtie")
	}

	nonZeroArea := trapezoidArea(nonZero)
	evenOddArea := trapezoidArea(evenOdd)
	if evenOddArea != 50 || nonZeroArea != 50 {
		t.Errorf("EvenOdd area (%v) and NonZero area (%v) should both be the two lobes' 50 for a bowtie", evenOddArea, nonZeroArea)
	}
}

func TestScaleTransformScalesTrapezoids(t *testing.T) {
	data := path.NewData()
	data.MoveTo(geom.Pt(0, 0))
	data.LineTo(geom.Pt(10, 0))
	data.LineTo(geom.Pt(10, 10))
	data.LineTo(geom.Pt(0, 10))
	data.CloseSubpath()

	scaled, _ := Tessellate(data, NonZero, geom.Identity().Scale(2, 2), 1)
	if len(scaled) != 1 {
		t.Fatalf("expected one trapezoid, got %d", len(scaled))
	}
	tr := scaled[0]
	if tr.BottomY != 20 || tr.TopRightX != 20 {
		t.Errorf("expected the tessellation-time transform to double the rectangle, got %+v", tr)
	}
}
