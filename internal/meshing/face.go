package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelmesh/pkg/blockmodel"
)

// Per-direction quad geometry. Both meshers are direction-agnostic: they
// work in (u, v, depth) coordinates, where u and v are the two tangent
// axes of the face and depth runs along its normal axis, and use these two
// helpers to translate back to chunk coordinates.

// faceVertices returns the 4 corners of a quad facing d, spanning size.X
// along u and size.Y along v. Looking at the face head-on, the first
// vertex is at the bottom left and the corners proceed counter-clockwise.
func faceVertices(d blockmodel.FaceDir, size mgl32.Vec2) [4]mgl32.Vec3 {
	w, h := size.X(), size.Y()
	switch d {
	case blockmodel.FacePosX:
		return [4]mgl32.Vec3{{1, 0, w}, {1, 0, 0}, {1, h, 0}, {1, h, w}}
	case blockmodel.FacePosY:
		return [4]mgl32.Vec3{{0, 1, 0}, {0, 1, w}, {h, 1, w}, {h, 1, 0}}
	case blockmodel.FacePosZ:
		return [4]mgl32.Vec3{{0, 0, 1}, {w, 0, 1}, {w, h, 1}, {0, h, 1}}
	case blockmodel.FaceNegX:
		return [4]mgl32.Vec3{{0, 0, 0}, {0, 0, w}, {0, h, w}, {0, h, 0}}
	case blockmodel.FaceNegY:
		return [4]mgl32.Vec3{{h, 0, 0}, {h, 0, w}, {0, 0, w}, {0, 0, 0}}
	case blockmodel.FaceNegZ:
		return [4]mgl32.Vec3{{w, 0, 0}, {0, 0, 0}, {0, h, 0}, {w, h, 0}}
	}
	panic("meshing: invalid face direction")
}

// rotate maps tangent/depth coordinates for direction d to absolute chunk
// axes. rotate(d, 0, 0, 1) points along the face's axis; rotate(d, 1, 0, 0)
// and rotate(d, 0, 1, 0) are its tangents.
func rotate(d blockmodel.FaceDir, u, v, depth int) (x, y, z int) {
	switch d.Axis() {
	case 0:
		return depth, v, u
	case 1:
		return v, depth, u
	default:
		return u, v, depth
	}
}
