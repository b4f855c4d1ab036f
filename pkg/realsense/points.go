package realsense

import (
	"fmt"
	"unsafe"

	"github.com/golang/geo/r3"

	"github.com/teslashibe/go-realsense/internal/native"
)

// Vertex is one point-cloud vertex in meters, in the depth sensor's
// coordinate space.
type Vertex struct {
	X, Y, Z float32
}

// TextureCoordinate maps a vertex onto the texture frame, normalized to
// [0,1] in each axis.
type TextureCoordinate struct {
	U, V float32
}

// Points is one point-cloud frame: a vertex array and a parallel
// texture-coordinate array of the same length.
type Points struct {
	frame

	count     int
	vertices  []byte
	texCoords []byte
}

// newPoints reads the point count and both raw arrays, each query
// individually checked. The texture buffer is delivered by the native
// library in an integer-pixel layout and reinterpreted here as float pairs;
// the element sizes are equal, which the reinterpretation relies on.
func newPoints(lib native.Lib, h native.Handle) (*Points, error) {
	base, err := newFrame(lib, h)
	if err != nil {
		return nil, err
	}
	count, raw := lib.GetPointsCount(h)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("points count: %w", err)
	}
	vertices, raw := lib.GetPointsVertices(h, count)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("points vertices: %w", err)
	}
	texCoords, raw := lib.GetPointsTextureCoordinates(h, count)
	if err := checkError(raw); err != nil {
		return nil, fmt.Errorf("points texture coordinates: %w", err)
	}
	return &Points{
		frame:     base,
		count:     count,
		vertices:  vertices,
		texCoords: texCoords,
	}, nil
}

// Count returns the number of points.
func (p *Points) Count() int { return p.count }

// Vertices returns the vertex array as a view over the native buffer, valid
// only while the frame is open.
func (p *Points) Vertices() []Vertex {
	if p.count == 0 || len(p.vertices) == 0 {
		return nil
	}
	return unsafe.Slice((*Vertex)(unsafe.Pointer(&p.vertices[0])), p.count)
}

// TextureCoordinates returns the texture-coordinate array as a view over the
// native buffer, valid only while the frame is open.
func (p *Points) TextureCoordinates() []TextureCoordinate {
	if p.count == 0 || len(p.texCoords) == 0 {
		return nil
	}
	return unsafe.Slice((*TextureCoordinate)(unsafe.Pointer(&p.texCoords[0])), p.count)
}

// Vectors copies the vertices into r3 vectors for point-cloud processing.
func (p *Points) Vectors() []r3.Vector {
	verts := p.Vertices()
	out := make([]r3.Vector, len(verts))
	for i, v := range verts {
		out[i] = r3.Vector{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
	}
	return out
}
