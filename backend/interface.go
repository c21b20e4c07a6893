// Package backend declares the contract the rasterization core expects
// from whatever consumes its output: a trapezoid fill, a textured quad,
// or a pixel readback/upload. The core never imports a concrete
// implementation; it only ever holds a Backend value handed to it by the
// drawing-context wrapper.
package backend

import (
	"errors"

	"github.com/gepard-graphics/gepard/geom"
	"github.com/gepard-graphics/gepard/tessellate"
)

// ErrNotInitialized is returned by a Backend method called before the
// backend has been set up for the surface it is about to draw into.
var ErrNotInitialized = errors.New("backend: not initialized")

// BlendMode selects how a drawTexturedQuad call combines source and
// destination pixels. SourceOver is the only mode fillTrapezoids uses.
type BlendMode int

const (
	SourceOver BlendMode = iota
	Copy
)

// Size is a surface's pixel dimensions.
type Size struct {
	Width, Height int
}

// Rect is an axis-aligned pixel-space rectangle, used for texture source
// rects and readback/upload regions.
type Rect struct {
	X, Y, Width, Height int
}

// Quad is four corners in surface space, in the order the backend's
// vertex stage expects them wound: top-left, top-right, bottom-right,
// bottom-left.
type Quad [4]geom.FloatPoint

// Texture is an opaque handle to backend-resident pixel data; the core
// never inspects or decodes it.
type Texture interface {
	// Size returns the texture's pixel dimensions.
	Size() Size
}

// Backend is the abstract surface the core draws into. The core is pure
// CPU and holds no GPU state of its own; every operation that touches a
// surface's pixels goes through this interface, and the core never
// receives a callback in the other direction.
type Backend interface {
	// FillTrapezoids draws the union of trapezoids in fillColor under
	// source-over blending, into a surface of the given size. The
	// trapezoid coordinates are already in that surface's pixel space.
	FillTrapezoids(trapezoids []tessellate.Trapezoid, fillColor geom.Color, surfaceSize Size) error

	// DrawTexturedQuad blits srcRect of texture into dstQuad (in
	// surface space) under blendMode. Used for image blits and the
	// final composite of an offscreen layer.
	DrawTexturedQuad(texture Texture, srcRect Rect, dstQuad Quad, blendMode BlendMode) error

	// Readback copies rect's pixels out of the surface, row-major,
	// four bytes (RGBA) per pixel.
	Readback(rect Rect) ([]byte, error)

	// Upload writes pixels (row-major RGBA) into rect of the surface.
	Upload(pixels []byte, rect Rect) error
}
