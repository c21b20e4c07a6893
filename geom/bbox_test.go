package geom

import (
	"math"
	"testing"
)

func TestEmptyBoundingBoxIsEmpty(t *testing.T) {
	b := EmptyBoundingBox()
	if !b.IsEmpty() {
		t.Error("fresh bounding box should be empty")
	}
}

func TestBoundingBoxStretch(t *testing.T) {
	b := EmptyBoundingBox()
	b.Stretch(Pt(1, 2))
	b.Stretch(Pt(-3, 5))

	if b.IsEmpty() {
		t.Fatal("box should no longer be empty")
	}
	if b.MinX != -3 || b.MaxX != 1 || b.MinY != 2 || b.MaxY != 5 {
		t.Errorf("got %+v", b)
	}
}

func TestBoundingBoxIgnoresNaN(t *testing.T) {
	b := EmptyBoundingBox()
	b.Stretch(Pt(1, 1))
	b.Stretch(Pt(math.NaN(), math.NaN()))

	if b.MinX != 1 || b.MaxX != 1 || b.MinY != 1 || b.MaxY != 1 {
		t.Errorf("NaN stretch should be a no-op, got %+v", b)
	}
}

func TestBoundingBoxDivScalar(t *testing.T) {
	b := BoundingBox{MinX: 0, MinY: 0, MaxX: 32, MaxY: 64}
	got := b.DivScalar(16)
	want := BoundingBox{MinX: 0, MinY: 0, MaxX: 2, MaxY: 4}
	if got != want {
		t.Errorf("DivScalar(16) = %+v, want %+v", got, want)
	}
}
