package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func pointsClose(a, b FloatPoint) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestIdentityApply(t *testing.T) {
	p := Pt(3, 4)
	if got := Identity().Apply(p); got != p {
		t.Errorf("Identity().Apply(%v) = %v", p, got)
	}
}

func TestTranslateApply(t *testing.T) {
	tr := Identity().Translate(10, -5)
	got := tr.Apply(Pt(1, 1))
	want := Pt(11, -4)
	if !pointsClose(got, want) {
		t.Errorf("Translate apply = %v, want %v", got, want)
	}
}

func TestScaleApply(t *testing.T) {
	tr := Identity().Scale(2, 3)
	got := tr.Apply(Pt(1, 1))
	want := Pt(2, 3)
	if !pointsClose(got, want) {
		t.Errorf("Scale apply = %v, want %v", got, want)
	}
}

func TestRotateApply(t *testing.T) {
	tr := Identity().Rotate(math.Pi / 2)
	got := tr.Apply(Pt(1, 0))
	want := Pt(0, 1)
	if !pointsClose(got, want) {
		t.Errorf("Rotate(pi/2) apply = %v, want %v", got, want)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	tr := Identity().Translate(5, 7).Rotate(0.7).Scale(2, 3)
	p := Pt(13, -4)

	roundTripped := tr.Inverse().Apply(tr.Apply(p))
	if !almostEqual(roundTripped.X, p.X) || !almostEqual(roundTripped.Y, p.Y) {
		t.Errorf("round trip = %v, want %v", roundTripped, p)
	}
}

func TestInverseOfSingularIsIdentity(t *testing.T) {
	singular := NewAffineTransform(0, 0, 0, 0, 1, 1)
	if got := singular.Inverse(); !got.IsIdentity() {
		t.Errorf("Inverse of singular transform = %+v, want identity", got)
	}
}

func TestMultiplyAppliesRightOperandFirst(t *testing.T) {
	// translate(10,0) * scale(2,2) applied to (1,1) should scale then translate.
	tr := Identity().Translate(10, 0).Multiply(NewAffineTransform(2, 0, 0, 2, 0, 0))
	got := tr.Apply(Pt(1, 1))
	want := Pt(12, 2)
	if !pointsClose(got, want) {
		t.Errorf("Multiply apply = %v, want %v", got, want)
	}
}
