package gepard

import (
	"github.com/gepard-graphics/gepard/backend"
	"github.com/gepard-graphics/gepard/geom"
	"github.com/gepard-graphics/gepard/path"
	"github.com/gepard-graphics/gepard/tessellate"
)

// FillRule selects how the tessellator turns segment crossings into an
// inside/outside decision. It is an alias of tessellate.FillRule so
// callers of this package never need to import tessellate directly.
type FillRule = tessellate.FillRule

const (
	NonZero = tessellate.NonZero
	EvenOdd = tessellate.EvenOdd
)

// Context is the drawing surface the command surface operates on: one
// path under construction, the transform and fill color that apply to
// the next Fill, and the backend that consumes the resulting trapezoids.
type Context struct {
	path      *path.Data
	transform geom.AffineTransform
	fillColor geom.Color

	antiAliasLevel int
	backend        backend.Backend
	surfaceSize    backend.Size
}

// NewContext creates a Context targeting a surface of the given pixel
// dimensions, drawn into through b. The transform starts at identity,
// the fill color at opaque black, and antiAliasLevel at
// raster.DefaultAntiAliasLevel's value of 16.
func NewContext(width, height int, b backend.Backend) *Context {
	return &Context{
		path:           path.NewData(),
		transform:      geom.Identity(),
		fillColor:      geom.Color{A: 1},
		antiAliasLevel: 16,
		backend:        b,
		surfaceSize:    backend.Size{Width: width, Height: height},
	}
}

// BeginPath replaces the current path with a fresh, empty one.
func (c *Context) BeginPath() {
	c.path = path.NewData()
}

// MoveTo starts a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) {
	c.path.MoveTo(geom.Pt(x, y))
}

// LineTo appends a straight segment to (x, y).
func (c *Context) LineTo(x, y float64) {
	c.path.LineTo(geom.Pt(x, y))
}

// QuadraticCurveTo appends a quadratic Bézier through (cx, cy) to (x, y).
func (c *Context) QuadraticCurveTo(cx, cy, x, y float64) {
	c.path.QuadraticCurveTo(geom.Pt(cx, cy), geom.Pt(x, y))
}

// BezierCurveTo appends a cubic Bézier through (c1x, c1y), (c2x, c2y) to
// (x, y).
func (c *Context) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.BezierCurveTo(geom.Pt(c1x, c1y), geom.Pt(c2x, c2y), geom.Pt(x, y))
}

// ArcTo appends an arc tangent to the chords from the current point
// through (x1, y1) to (x2, y2), with the given radius.
func (c *Context) ArcTo(x1, y1, x2, y2, radius float64) {
	c.path.ArcTo(geom.Pt(x1, y1), geom.Pt(x2, y2), radius)
}

// Arc appends a circular arc centered at (cx, cy) with radius r, from
// a0 to a1, in the direction ccw indicates.
func (c *Context) Arc(cx, cy, r, a0, a1 float64, ccw bool) {
	c.path.Arc(geom.Pt(cx, cy), geom.Pt(r, r), a0, a1, ccw)
}

// Rect appends an axis-aligned rectangle at (x, y) of size (w, h) as a
// closed subpath, equivalent to moveTo/lineTo×3/closeSubpath.
func (c *Context) Rect(x, y, w, h float64) {
	c.path.MoveTo(geom.Pt(x, y))
	c.path.LineTo(geom.Pt(x+w, y))
	c.path.LineTo(geom.Pt(x+w, y+h))
	c.path.LineTo(geom.Pt(x, y+h))
	c.path.CloseSubpath()
}

// ClosePath closes the current subpath back to its MoveTo endpoint.
func (c *Context) ClosePath() {
	c.path.CloseSubpath()
}

// SetTransform replaces the current transform.
func (c *Context) SetTransform(t geom.AffineTransform) {
	c.transform = t
}

// Transform returns the current transform.
func (c *Context) Transform() geom.AffineTransform {
	return c.transform
}

// SetFillColor replaces the flat color the next Fill paints with.
func (c *Context) SetFillColor(col geom.Color) {
	c.fillColor = col
}

// SetAntiAliasLevel overrides the supersampling factor used by the next
// Fill. Values <= 0 fall back to the approximator's default.
func (c *Context) SetAntiAliasLevel(level int) {
	c.antiAliasLevel = level
}

// Fill tessellates the current path under rule and the current
// transform, and hands the resulting trapezoids to the backend in the
// current fill color. An empty path produces zero trapezoids and issues
// no backend call.
func (c *Context) Fill(rule tessellate.FillRule) error {
	trapezoids, bbox := tessellate.Tessellate(c.path, rule, c.transform, c.antiAliasLevel)
	Logger().Debug("tessellated fill",
		"rule", rule,
		"trapezoids", len(trapezoids),
		"antiAliasLevel", c.antiAliasLevel,
		"bounds", bbox,
	)
	if len(trapezoids) == 0 {
		return nil
	}
	if err := c.backend.FillTrapezoids(trapezoids, c.fillColor, c.surfaceSize); err != nil {
		Logger().Warn("backend FillTrapezoids failed", "err", err)
		return err
	}
	return nil
}
