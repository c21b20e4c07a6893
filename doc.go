// Package gepard implements the path rasterization pipeline of a 2D
// vector-graphics engine: the subsystem that converts path commands
// (lines, quadratic/cubic Béziers, arcs, elliptical arcs-to-tangent)
// into a set of non-overlapping, horizontally-sorted trapezoids ready
// for a GPU shader to shade with analytic anti-aliasing.
//
// # Overview
//
// The core is a three-stage pipeline, leaves first:
//
//	path        — accumulated drawing commands, subpath/close bookkeeping
//	raster      — adaptive curve flattening, arc-to-Bézier reduction,
//	              integer-scanline bucketing, intersection splitting
//	tessellate  — fill-rule evaluation, trapezoid emission, merging
//
// Context, this package's facade, wires the three together behind an
// immediate-mode, HTML5-Canvas-shaped command surface:
//
//	ctx := gepard.NewContext(width, height, myBackend)
//	ctx.MoveTo(10, 10)
//	ctx.LineTo(20, 10)
//	ctx.LineTo(20, 30)
//	ctx.LineTo(10, 30)
//	ctx.ClosePath()
//	ctx.Fill(gepard.NonZero)
//
// # Scope
//
// The core is pure CPU and single-threaded per Context; it holds no GPU
// state and makes no backend call except the FillTrapezoids call a Fill
// makes. Shader compilation, texture
// framebuffers, swapchain presentation, a save/restore state stack,
// gradients and patterns, dashing, clipping, hit-testing, and text
// rendering are the concern of a wrapper built on top of this package,
// not of the core itself.
//
// # Coordinate system
//
// Origin at the top-left, x increasing right, y increasing down, angles
// in radians measured from the positive x-axis. The tessellator
// supersamples y by an anti-alias level A (default 16) and divides back
// down to pixel space when it emits trapezoids.
package gepard
