// Package path builds and stores the linked chain of path elements that
// make up a drawing command sequence, mirroring the HTML5 Canvas 2D path
// building API (moveTo, lineTo, quadraticCurveTo, bezierCurveTo, arc,
// arcTo, closePath).
package path

import (
	"github.com/gepard-graphics/gepard/arena"
	"github.com/gepard-graphics/gepard/geom"
)

// Kind discriminates the variant a Element record holds. Every element
// lives in the same arena-backed record type; Kind plays the role a
// switch over a type hierarchy would elsewhere.
type Kind uint8

const (
	KindMoveTo Kind = iota
	KindLineTo
	KindQuadraticCurveTo
	KindBezierCurveTo
	KindArc
	KindCloseSubpath
)

func (k Kind) String() string {
	switch k {
	case KindMoveTo:
		return "MoveTo"
	case KindLineTo:
		return "LineTo"
	case KindQuadraticCurveTo:
		return "QuadraticCurveTo"
	case KindBezierCurveTo:
		return "BezierCurveTo"
	case KindArc:
		return "Arc"
	case KindCloseSubpath:
		return "CloseSubpath"
	default:
		return "Undefined"
	}
}

// Element is one record of a path's element chain. Rather than a
// pointer-linked hierarchy of per-kind types, every element is this one
// flat record, and Next threads the chain via an arena.Ref instead of a
// pointer — the arena + index pattern keeps the whole chain in one
// contiguous, cache-friendly allocation.
type Element struct {
	Kind Kind
	To   geom.FloatPoint

	// Control holds the quadratic control point, or the bezier's first
	// control point.
	Control geom.FloatPoint
	// Control2 holds the bezier's second control point.
	Control2 geom.FloatPoint

	// Arc fields. Transform is the arc's own affine transform, composed
	// with the caller's global transform at approximation time rather
	// than flattened when the arc is inserted.
	Center           geom.FloatPoint
	Radius           geom.FloatPoint
	StartAngle       float64
	EndAngle         float64
	CounterClockwise bool
	Transform        geom.AffineTransform

	Next arena.Ref
}

func (e *Element) isMoveTo() bool       { return e.Kind == KindMoveTo }
func (e *Element) isCloseSubpath() bool { return e.Kind == KindCloseSubpath }
