package geom

import (
	"math"

	"golang.org/x/image/math/f64"
)

// AffineTransform is the 2x3 matrix
//
//	[ A C E ]
//	[ B D F ]
//
// applying as x' = A*x + C*y + E, y' = B*x + D*y + F. This is the same
// parameter order HTML Canvas' setTransform(a, b, c, d, e, f) uses.
//
// The six doubles are stored in a golang.org/x/image/math/f64.Aff3, the
// row-major 2x3 matrix type shared by the wider Go imaging ecosystem
// (golang.org/x/image/draw uses it for affine image sampling); Mat keeps
// that representation available to any backend that wants to reuse it
// directly instead of re-deriving a matrix from six loose floats.
type AffineTransform struct {
	Mat f64.Aff3
}

// Identity returns the identity transform.
func Identity() AffineTransform {
	return AffineTransform{Mat: f64.Aff3{1, 0, 0, 0, 1, 0}}
}

// NewAffineTransform builds a transform from the six Canvas-order
// coefficients [a b c d e f].
func NewAffineTransform(a, b, c, d, e, f float64) AffineTransform {
	return AffineTransform{Mat: f64.Aff3{a, c, e, b, d, f}}
}

func (t AffineTransform) a() float64 { return t.Mat[0] }
func (t AffineTransform) c() float64 { return t.Mat[1] }
func (t AffineTransform) e() float64 { return t.Mat[2] }
func (t AffineTransform) b() float64 { return t.Mat[3] }
func (t AffineTransform) d() float64 { return t.Mat[4] }
func (t AffineTransform) f() float64 { return t.Mat[5] }

// Coefficients returns the six Canvas-order coefficients [a b c d e f].
func (t AffineTransform) Coefficients() (a, b, c, d, e, f float64) {
	return t.a(), t.b(), t.c(), t.d(), t.e(), t.f()
}

// Apply maps a point through the transform.
func (t AffineTransform) Apply(p FloatPoint) FloatPoint {
	return FloatPoint{
		X: t.a()*p.X + t.c()*p.Y + t.e(),
		Y: t.b()*p.X + t.d()*p.Y + t.f(),
	}
}

// Multiply returns t composed with other as t.Multiply(other) == apply
// other first, then t (right-multiply: result = t * other).
func (t AffineTransform) Multiply(other AffineTransform) AffineTransform {
	a, b, c, d, e, f := t.Coefficients()
	oa, ob, oc, od, oe, of := other.Coefficients()
	return NewAffineTransform(
		a*oa+c*ob,
		b*oa+d*ob,
		a*oc+c*od,
		b*oc+d*od,
		a*oe+c*of+e,
		b*oe+d*of+f,
	)
}

// Translate returns t translated by (x, y), i.e. t * translate(x, y).
func (t AffineTransform) Translate(x, y float64) AffineTransform {
	return t.Multiply(NewAffineTransform(1, 0, 0, 1, x, y))
}

// Scale returns t scaled by (sx, sy), i.e. t * scale(sx, sy).
func (t AffineTransform) Scale(sx, sy float64) AffineTransform {
	return t.Multiply(NewAffineTransform(sx, 0, 0, sy, 0, 0))
}

// Rotate returns t rotated by angle radians, i.e. t * rotate(angle).
func (t AffineTransform) Rotate(angle float64) AffineTransform {
	s, c := math.Sin(angle), math.Cos(angle)
	return t.Multiply(NewAffineTransform(c, s, -s, c, 0, 0))
}

// Inverse returns the inverse transform, or the identity transform if t is
// singular. Rasterization never relies on the inverse; it exists for
// hit-testing style consumers of the core.
func (t AffineTransform) Inverse() AffineTransform {
	a, b, c, d, e, f := t.Coefficients()
	det := a*d - b*c
	if det == 0 {
		return Identity()
	}
	invDet := 1 / det
	ia := d * invDet
	ib := -b * invDet
	ic := -c * invDet
	id := a * invDet
	ie := -(ia*e + ic*f)
	ifz := -(ib*e + id*f)
	return NewAffineTransform(ia, ib, ic, id, ie, ifz)
}

// IsIdentity reports whether t is exactly the identity transform.
func (t AffineTransform) IsIdentity() bool {
	a, b, c, d, e, f := t.Coefficients()
	return a == 1 && b == 0 && c == 0 && d == 1 && e == 0 && f == 0
}
