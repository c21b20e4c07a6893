package backend

import "github.com/gepard-graphics/gepard/tessellate"

// vertexIndices are the four corner indices a trapezoid's bounding quad
// is expanded to in the vertex stage; the gap at 2 is intentional — it
// mirrors the reference shader's vertex numbering, which skips index 2.
var vertexIndices = [4]float32{0, 1, 3, 4}

// Vertex is one of the four vertex-stage attribute records a trapezoid
// expands to: the trapezoid's four defining x's and its y-span, repeated
// identically across all four vertices, plus a per-vertex index the
// vertex shader uses to pick which corner of the bounding quad this
// instance covers.
type Vertex struct {
	BottomLeftX, BottomRightX float32
	TopLeftX, TopRightX       float32
	BottomY, TopY             float32
	VertexIndex               float32
	Pad                       float32
}

// ExportVertices encodes t as the four vertex records a fillTrapezoids
// shader consumes for one trapezoid's bounding quad.
func ExportVertices(t tessellate.Trapezoid) [4]Vertex {
	var out [4]Vertex
	for i, idx := range vertexIndices {
		out[i] = Vertex{
			BottomLeftX:  float32(t.BottomLeftX),
			BottomRightX: float32(t.BottomRightX),
			TopLeftX:     float32(t.TopLeftX),
			TopRightX:    float32(t.TopRightX),
			BottomY:      float32(t.BottomY),
			TopY:         float32(t.TopY),
			VertexIndex:  idx,
		}
	}
	return out
}

// ExportTrapezoids flattens a whole trapezoid list into its vertex-stage
// encoding, in order, four vertices per trapezoid.
func ExportTrapezoids(trapezoids []tessellate.Trapezoid) []Vertex {
	out := make([]Vertex, 0, len(trapezoids)*4)
	for _, t := range trapezoids {
		verts := ExportVertices(t)
		out = append(out, verts[:]...)
	}
	return out
}
