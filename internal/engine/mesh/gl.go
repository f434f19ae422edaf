package mesh

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/deskview/internal/logger"
)

type gpuMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Library owns the GPU buffers of loaded primitives.
// Each kind is uploaded once and may be drawn any number of times.
type Library struct {
	meshes map[Kind]*gpuMesh
	log    *zap.Logger
}

// NewLibrary creates an empty library. A GL context must be current.
func NewLibrary() *Library {
	return &Library{
		meshes: make(map[Kind]*gpuMesh),
		log:    logger.Named("mesh"),
	}
}

// Load builds and uploads a primitive. Loading a kind twice is a no-op.
func (l *Library) Load(kind Kind) error {
	if _, ok := l.meshes[kind]; ok {
		return nil
	}
	geom, err := Build(kind)
	if err != nil {
		return err
	}
	if len(geom.Vertices) == 0 || len(geom.Indices) == 0 {
		return fmt.Errorf("mesh %s is empty", kind)
	}

	l.meshes[kind] = upload(geom)
	l.log.Debug("mesh loaded",
		zap.Stringer("kind", kind),
		zap.Int("vertices", len(geom.Vertices)),
		zap.Int("triangles", geom.TriangleCount()),
	)
	return nil
}

func upload(geom *Geometry) *gpuMesh {
	m := &gpuMesh{indexCount: int32(len(geom.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(geom.Vertices)*vertexSize, unsafe.Pointer(&geom.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geom.Indices)*4, unsafe.Pointer(&geom.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}

// Draw issues the draw call for a loaded primitive using the current program.
func (l *Library) Draw(kind Kind) {
	m, ok := l.meshes[kind]
	if !ok {
		l.log.Warn("draw of unloaded mesh", zap.Stringer("kind", kind))
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases every uploaded buffer.
func (l *Library) Destroy() {
	for kind, m := range l.meshes {
		if m.vao != 0 {
			gl.DeleteVertexArrays(1, &m.vao)
		}
		if m.vbo != 0 {
			gl.DeleteBuffers(1, &m.vbo)
		}
		if m.ebo != 0 {
			gl.DeleteBuffers(1, &m.ebo)
		}
		delete(l.meshes, kind)
	}
}
