package chunk

import "voxelmesh/pkg/blockmodel"

// VisibilityGraph records, per face direction, whether the chunk's boundary
// plane in that direction is fully opaque. Streaming logic reads it to skip
// meshing faces between two mutually opaque chunk boundaries.
type VisibilityGraph uint8

// Opaque reports whether every voxel on the boundary plane facing d has a
// face in direction d.
func (g VisibilityGraph) Opaque(d blockmodel.FaceDir) bool {
	return g&(1<<d) != 0
}

// ComputeVisibility derives the visibility graph from a block array. A
// single voxel without a face in the boundary direction (air included)
// leaves a gap and makes that boundary non-opaque.
func ComputeVisibility(blocks []blockmodel.BlockID, reg *blockmodel.Registry) VisibilityGraph {
	if len(blocks) != SizeCubed {
		panic("chunk: visibility over wrong-length block array")
	}

	var g VisibilityGraph
	for _, d := range blockmodel.Directions {
		if boundaryOpaque(blocks, reg, d) {
			g |= 1 << d
		}
	}
	return g
}

func boundaryOpaque(blocks []blockmodel.BlockID, reg *blockmodel.Registry, d blockmodel.FaceDir) bool {
	depth := 0
	if !d.Negative() {
		depth = Size - 1
	}
	axis := d.Axis()

	for a := 0; a < Size; a++ {
		for b := 0; b < Size; b++ {
			var coord [3]int
			coord[axis] = depth
			coord[(axis+1)%3] = a
			coord[(axis+2)%3] = b

			pos := LocalPos{X: coord[0], Y: coord[1], Z: coord[2]}
			if reg.Face(blocks[pos.Index()], d) == nil {
				return false
			}
		}
	}
	return true
}
