package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelmesh/pkg/blockmodel"
)

// Vertex is one chunk mesh vertex: position, texture coordinates and the
// index of the face's texture in the atlas.
type Vertex struct {
	Position     mgl32.Vec3
	UV           mgl32.Vec2
	TextureIndex uint32
}

// Mesh is a triangle mesh as a vertex buffer plus a 32-bit index buffer.
// Quads are emitted as two triangles with indices 0,1,2,2,3,0 relative to
// the quad's first vertex.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Input is the data needed to mesh one chunk: a read-only block array of
// chunk.SizeCubed cells (z-major, y-mid, x-minor), the registry resolving
// block IDs to face models, and the mesh-space offset of the chunk.
type Input struct {
	Blocks      []blockmodel.BlockID
	Registry    *blockmodel.Registry
	Translation mgl32.Vec3
}

var quadIndices = [6]uint32{0, 1, 2, 2, 3, 0}

// addFace appends one axis-aligned quad. origin is the position of the cell
// with the smallest coordinates that the face covers.
func addFace(dst *Mesh, d blockmodel.FaceDir, origin mgl32.Vec3, size mgl32.Vec2, textureIndex uint32) {
	uvs := [4]mgl32.Vec2{
		{0, size.Y()},
		{size.X(), size.Y()},
		{size.X(), 0},
		{0, 0},
	}

	first := uint32(len(dst.Vertices))
	for i, offset := range faceVertices(d, size) {
		dst.Vertices = append(dst.Vertices, Vertex{
			Position:     origin.Add(offset),
			UV:           uvs[i],
			TextureIndex: textureIndex,
		})
	}
	for _, index := range quadIndices {
		dst.Indices = append(dst.Indices, first+index)
	}
}
