package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Tessellation used by Build.
const (
	CylinderSegments = 36
	TorusRings       = 36
	TorusSides       = 18

	TorusMajorRadius = 1.0
	TorusMinorRadius = 0.2
)

// Build generates the geometry for a primitive.
func Build(kind Kind) (*Geometry, error) {
	switch kind {
	case Plane:
		return NewPlane(), nil
	case Box:
		return NewBox(), nil
	case Cylinder:
		return NewCylinder(CylinderSegments), nil
	case Torus:
		return NewTorus(TorusMajorRadius, TorusMinorRadius, TorusRings, TorusSides), nil
	}
	return nil, fmt.Errorf("unknown mesh kind %d", int(kind))
}

// NewPlane returns a 2x2 plane on XZ centered at the origin, facing +Y.
func NewPlane() *Geometry {
	up := mgl32.Vec3{0, 1, 0}
	return &Geometry{
		Vertices: []Vertex{
			{Position: mgl32.Vec3{-1, 0, 1}, Normal: up, TexCoord: mgl32.Vec2{0, 0}},
			{Position: mgl32.Vec3{1, 0, 1}, Normal: up, TexCoord: mgl32.Vec2{1, 0}},
			{Position: mgl32.Vec3{1, 0, -1}, Normal: up, TexCoord: mgl32.Vec2{1, 1}},
			{Position: mgl32.Vec3{-1, 0, -1}, Normal: up, TexCoord: mgl32.Vec2{0, 1}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

// boxFaces lists each face as normal, u axis, v axis with u x v = normal.
var boxFaces = [6][3]mgl32.Vec3{
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
}

// NewBox returns a unit cube centered at the origin with per-face normals.
func NewBox() *Geometry {
	g := &Geometry{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	corners := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	for _, f := range boxFaces {
		n, u, v := f[0], f[1], f[2]
		base := uint32(len(g.Vertices))
		for _, c := range corners {
			p := n.Mul(0.5).
				Add(u.Mul(c[0] - 0.5)).
				Add(v.Mul(c[1] - 0.5))
			g.Vertices = append(g.Vertices, Vertex{Position: p, Normal: n, TexCoord: c})
		}
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return g
}

// NewCylinder returns a closed cylinder of radius 1 standing on the XZ plane
// from y=0 to y=1.
func NewCylinder(segments int) *Geometry {
	g := &Geometry{}

	// Side: a bottom/top pair per segment boundary, seam duplicated for UVs
	for i := 0; i <= segments; i++ {
		t := float32(i) / float32(segments)
		s, c := math32.Sincos(t * 2 * math32.Pi)
		n := mgl32.Vec3{c, 0, s}
		g.Vertices = append(g.Vertices,
			Vertex{Position: mgl32.Vec3{c, 0, s}, Normal: n, TexCoord: mgl32.Vec2{t, 0}},
			Vertex{Position: mgl32.Vec3{c, 1, s}, Normal: n, TexCoord: mgl32.Vec2{t, 1}},
		)
	}
	for i := 0; i < segments; i++ {
		b0 := uint32(2 * i)
		t0, b1, t1 := b0+1, b0+2, b0+3
		g.Indices = append(g.Indices, b0, t0, b1, b1, t0, t1)
	}

	g.addCap(segments, 1, mgl32.Vec3{0, 1, 0})
	g.addCap(segments, 0, mgl32.Vec3{0, -1, 0})
	return g
}

func (g *Geometry) addCap(segments int, y float32, normal mgl32.Vec3) {
	center := uint32(len(g.Vertices))
	g.Vertices = append(g.Vertices, Vertex{
		Position: mgl32.Vec3{0, y, 0},
		Normal:   normal,
		TexCoord: mgl32.Vec2{0.5, 0.5},
	})
	for i := 0; i <= segments; i++ {
		s, c := math32.Sincos(float32(i) / float32(segments) * 2 * math32.Pi)
		g.Vertices = append(g.Vertices, Vertex{
			Position: mgl32.Vec3{c, y, s},
			Normal:   normal,
			TexCoord: mgl32.Vec2{0.5 + 0.5*c, 0.5 + 0.5*s},
		})
	}
	for i := uint32(0); i < uint32(segments); i++ {
		rim := center + 1 + i
		if normal.Y() > 0 {
			g.Indices = append(g.Indices, center, rim+1, rim)
		} else {
			g.Indices = append(g.Indices, center, rim, rim+1)
		}
	}
}

// NewTorus returns a torus centered at the origin whose ring lies in the XY
// plane, so it faces +Z.
func NewTorus(major, minor float32, rings, sides int) *Geometry {
	g := &Geometry{
		Vertices: make([]Vertex, 0, (rings+1)*(sides+1)),
		Indices:  make([]uint32, 0, rings*sides*6),
	}

	for i := 0; i <= rings; i++ {
		u := float32(i) / float32(rings)
		sinT, cosT := math32.Sincos(u * 2 * math32.Pi)
		for j := 0; j <= sides; j++ {
			v := float32(j) / float32(sides)
			sinP, cosP := math32.Sincos(v * 2 * math32.Pi)
			n := mgl32.Vec3{cosP * cosT, cosP * sinT, sinP}
			r := major + minor*cosP
			g.Vertices = append(g.Vertices, Vertex{
				Position: mgl32.Vec3{r * cosT, r * sinT, minor * sinP},
				Normal:   n,
				TexCoord: mgl32.Vec2{u, v},
			})
		}
	}

	stride := uint32(sides + 1)
	for i := uint32(0); i < uint32(rings); i++ {
		for j := uint32(0); j < uint32(sides); j++ {
			a := i*stride + j
			b := a + stride
			g.Indices = append(g.Indices, a, b, a+1, b, b+1, a+1)
		}
	}
	return g
}
