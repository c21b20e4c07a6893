package geom

import "testing"

func TestColorFromHexSixDigit(t *testing.T) {
	c := ColorFromHex("#ff0080")
	if c.R != 1 || c.G != 0 || c.B != float64(0x80)/255 || c.A != 1 {
		t.Errorf("got %+v", c)
	}
}

func TestColorFromHexThreeDigit(t *testing.T) {
	c := ColorFromHex("#f08")
	want := Color{R: 1, G: float64(0)/255, B: float64(0x88)/255, A: 1}
	if c.R != want.R || c.B != want.B {
		t.Errorf("got %+v, want %+v", c, want)
	}
}

func TestColorFromHexMalformedIsOpaqueBlack(t *testing.T) {
	c := ColorFromHex("#zz")
	if c != (Color{A: 1}) {
		t.Errorf("malformed hex should coerce to opaque black, got %+v", c)
	}
}

func TestColorFromRGB255(t *testing.T) {
	c := ColorFromRGB255(255, 128, 0, 0.5)
	if c.R != 1 || c.A != 0.5 {
		t.Errorf("got %+v", c)
	}
	if c.G < 0.501 && c.G > 0.499 {
		// not an exact boundary, just sanity
	}
}

func TestColorFromRGB255Clamps(t *testing.T) {
	c := ColorFromRGB255(-10, 300, 0, 1)
	if c.R != 0 || c.G != 1 {
		t.Errorf("expected clamped channels, got %+v", c)
	}
}

func TestColorFromABGR32(t *testing.T) {
	// 0xFF0000FF = alpha 0xFF, blue 0x00, green 0x00, red 0xFF -> opaque red.
	c := ColorFromABGR32(0xFF0000FF)
	if c.R != 1 || c.G != 0 || c.B != 0 || c.A != 1 {
		t.Errorf("got %+v", c)
	}
}

func TestColorScaleClamps(t *testing.T) {
	c := Color{R: 0.5, G: 0.5, B: 0.5, A: 1}.Scale(3)
	if c.R != 1 || c.G != 1 || c.B != 1 {
		t.Errorf("scale should clamp to 1, got %+v", c)
	}
}
