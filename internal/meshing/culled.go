package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelmesh/internal/chunk"
	"voxelmesh/internal/profiling"
	"voxelmesh/pkg/blockmodel"
)

// Culled builds a chunk mesh where faces buried inside the volume are
// skipped but no faces are merged. Compared to Greedy, meshing is much
// faster but the resulting meshes carry more quads and render slower.
func Culled(input Input) *Mesh {
	defer profiling.Track("meshing.Culled")()

	mesh := &Mesh{}
	for _, d := range blockmodel.Directions {
		addVisibleFaces(mesh, input, d)
	}
	return mesh
}

// addVisibleFaces emits one unit quad per visible face of direction d.
// Each (u,v) column is swept from the far side of the chunk toward the
// viewer, carrying a single visibility flag: a face is visible when the
// voxel in front of it (already swept) lets the view through, i.e. has no
// face in the opposite direction.
func addVisibleFaces(dst *Mesh, input Input, d blockmodel.FaceDir) {
	for u := 0; u < chunk.Size; u++ {
		for v := 0; v < chunk.Size; v++ {
			visible := true

			for step := 0; step < chunk.Size; step++ {
				depth := step
				if !d.Negative() {
					depth = chunk.Size - 1 - step
				}

				x, y, z := rotate(d, u, v, depth)
				id := input.Blocks[chunk.LocalPos{X: x, Y: y, Z: z}.Index()]

				if face := input.Registry.Face(id, d); face != nil && visible {
					origin := mgl32.Vec3{float32(x), float32(y), float32(z)}.Add(input.Translation)
					addFace(dst, d, origin, mgl32.Vec2{1, 1}, face.TextureIndex)
				}

				visible = input.Registry.Face(id, d.Opposite()) == nil
			}
		}
	}
}
