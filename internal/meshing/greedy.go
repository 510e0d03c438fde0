package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelmesh/internal/chunk"
	"voxelmesh/internal/profiling"
	"voxelmesh/pkg/blockmodel"
)

// Greedy builds a chunk mesh covering the same visible surface as Culled
// but with maximal rectangles of identical faces merged into single quads.
// Meshing is slower; the output renders faster.
//
// Only this chunk's own blocks are read, so faces on the chunk boundary
// are emitted even when the neighboring chunk would occlude them.
//
// Around blocks that lack the opposite-direction face, two merged quads
// can overlap on a cell. The covered surface is still exactly the set of
// faces Culled emits; only the multiplicity differs.
func Greedy(input Input) *Mesh {
	defer profiling.Track("meshing.Greedy")()

	mesh := &Mesh{}
	for _, d := range blockmodel.Directions {
		addGreedyMergedFaces(mesh, input, d)
	}
	return mesh
}

// addGreedyMergedFaces sweeps depth layers from the far side of the chunk
// toward the viewer, greedily merging faces of direction d.
//
// visible carries per-(u,v) visibility from one layer into the next: a
// face is visible when the block one layer closer to the viewer had no
// face in the opposite direction. It must be updated for every cell of
// every layer, including cells that are skipped or merged away, or the
// following layer would read stale values.
func addGreedyMergedFaces(dst *Mesh, input Input, d blockmodel.FaceDir) {
	var visible [chunk.SizeSquared]bool
	for i := range visible {
		visible[i] = true
	}

	for layer := 0; layer < chunk.Size; layer++ {
		layerPos := layer
		if !d.Negative() {
			layerPos = chunk.Size - 1 - layer
		}

		// merged faces are accounted for and can be skipped
		var alreadyMerged [chunk.SizeSquared]bool

		for originV := 0; originV < chunk.Size; originV++ {
			for originU := 0; originU < chunk.Size; originU++ {
				originIndex := originV*chunk.Size + originU
				if alreadyMerged[originIndex] {
					continue
				}

				x, y, z := rotate(d, originU, originV, layerPos)
				id := input.Blocks[chunk.LocalPos{X: x, Y: y, Z: z}.Index()]
				face := input.Registry.Face(id, d)
				originVisible := visible[originIndex]

				visible[originIndex] = input.Registry.Face(id, d.Opposite()) == nil

				if face == nil || !originVisible {
					continue
				}

				width, height := 1, 1

				// grow along u while the candidate face matches and is visible
				for candidateU := originU + 1; candidateU < chunk.Size; candidateU++ {
					canMerge, nextVisible := considerMergeCandidate(input, &visible, layerPos, d, *face, candidateU, originV)
					if !canMerge {
						break
					}

					mergedIndex := originV*chunk.Size + candidateU
					width++
					alreadyMerged[mergedIndex] = true
					// the u scan will not revisit this cell in this
					// layer, so propagate its next-layer visibility now
					visible[mergedIndex] = nextVisible
				}

				// grow along v; the entire width band must qualify or the
				// rectangle stops growing
				for candidateV := originV + 1; candidateV < chunk.Size; candidateV++ {
					var visibilityFlags uint32
					rowOK := true

					for candidateU := originU; candidateU < originU+width; candidateU++ {
						canMerge, nextVisible := considerMergeCandidate(input, &visible, layerPos, d, *face, candidateU, candidateV)
						if !canMerge {
							rowOK = false
							break
						}
						if nextVisible {
							visibilityFlags |= 1 << candidateU
						}
					}
					if !rowOK {
						break
					}

					height++
					for mergedU := originU; mergedU < originU+width; mergedU++ {
						mergedIndex := candidateV*chunk.Size + mergedU
						alreadyMerged[mergedIndex] = true
						visible[mergedIndex] = visibilityFlags&(1<<mergedU) != 0
					}
				}

				origin := mgl32.Vec3{float32(x), float32(y), float32(z)}.Add(input.Translation)
				addFace(dst, d, origin, mgl32.Vec2{float32(width), float32(height)}, face.TextureIndex)
			}
		}
	}
}

// considerMergeCandidate reports whether the face at (candidateU,
// candidateV) in the current layer can join a rectangle started by
// original, and whether the cell with the same u,v in the next layer will
// be visible. The latter is returned so callers can record it once instead
// of re-reading the model after deciding to merge.
func considerMergeCandidate(
	input Input,
	visible *[chunk.SizeSquared]bool,
	layerPos int,
	d blockmodel.FaceDir,
	original blockmodel.BlockFace,
	candidateU, candidateV int,
) (canMerge, nextVisible bool) {
	x, y, z := rotate(d, candidateU, candidateV, layerPos)
	id := input.Blocks[chunk.LocalPos{X: x, Y: y, Z: z}.Index()]

	face := input.Registry.Face(id, d)
	indexInLayer := candidateV*chunk.Size + candidateU

	canMerge = face != nil && *face == original && visible[indexInLayer]
	nextVisible = input.Registry.Face(id, d.Opposite()) == nil
	return canMerge, nextVisible
}
