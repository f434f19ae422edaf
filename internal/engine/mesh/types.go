// Package mesh provides the unit primitives the desk scene is built from:
// a plane, a box, a cylinder and a torus, plus their GPU buffers.
package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind identifies a primitive.
type Kind int

const (
	Plane Kind = iota
	Box
	Cylinder
	Torus
)

// Kinds lists every primitive in load order.
var Kinds = []Kind{Plane, Box, Cylinder, Torus}

func (k Kind) String() string {
	switch k {
	case Plane:
		return "plane"
	case Box:
		return "box"
	case Cylinder:
		return "cylinder"
	case Torus:
		return "torus"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Vertex is the interleaved layout uploaded to the GPU:
// location 0 position, 1 normal, 2 texture coordinate.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Geometry is an indexed triangle list.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Bounds returns the bounding box of the geometry's vertices.
func (g *Geometry) Bounds() Bounds {
	if len(g.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: g.Vertices[0].Position, Max: g.Vertices[0].Position}
	for _, v := range g.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < b.Min[i] {
				b.Min[i] = v.Position[i]
			}
			if v.Position[i] > b.Max[i] {
				b.Max[i] = v.Position[i]
			}
		}
	}
	return b
}

// TriangleCount returns the number of triangles.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}
