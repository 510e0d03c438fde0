package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxelmesh/internal/chunk"
	"voxelmesh/internal/profiling"
	"voxelmesh/pkg/blockmodel"
)

// rayEpsilon is the minimum parametric step. It guarantees forward progress
// at grazing angles where the distance to the next boundary rounds to zero.
const rayEpsilon = 1e-3

// Hit is the result of a raymarch that struck a block.
type Hit struct {
	// Pos is the local position of the first non-air voxel along the ray.
	Pos chunk.LocalPos
	// Normal is the unit axis vector of the face the ray entered through.
	// Valid only when HasNormal is set; the normal is unknown when the ray
	// started inside this chunk with no predecessor chunk.
	Normal    [3]int
	HasNormal bool
}

// Raymarch steps a ray through one chunk's local coordinate space with a
// DDA traversal and returns the first non-air voxel hit.
//
// A ray leaving the chunk volume is a normal outcome, not an error: the
// multi-chunk driver continues the march in the neighboring chunk, passing
// this chunk's position as previousChunk so the entry normal can still be
// derived there. A ray may also start outside the chunk; samples before
// first entry are skipped rather than treated as an exit.
func Raymarch(c *chunk.Chunk, origin, direction mgl32.Vec3, previousChunk *chunk.Pos, maxDistance float32) (Hit, bool) {
	defer profiling.Track("physics.Raymarch")()

	var dirStep, dirRecip mgl32.Vec3
	for i := 0; i < 3; i++ {
		if direction[i] >= 0 {
			dirStep[i] = 1
		}
		dirRecip[i] = 1 / direction[i]
	}

	var t float32
	var entered, hasPrev bool
	var prevPos chunk.LocalPos

	for t < maxDistance {
		rayPos := origin.Add(direction.Mul(t))
		blockPos := chunk.LocalPos{
			X: int(math.Floor(float64(rayPos.X()))),
			Y: int(math.Floor(float64(rayPos.Y()))),
			Z: int(math.Floor(float64(rayPos.Z()))),
		}

		if !blockPos.InBounds() {
			if entered {
				// escaped the chunk; no intersection here
				return Hit{}, false
			}
		} else {
			entered = true
			if c.Block(blockPos) != blockmodel.BlockAir {
				hit := Hit{Pos: blockPos}
				if hasPrev {
					hit.Normal = [3]int{prevPos.X - blockPos.X, prevPos.Y - blockPos.Y, prevPos.Z - blockPos.Z}
					hit.HasNormal = true
				} else if previousChunk != nil {
					hit.Normal = previousChunk.Sub(c.Position())
					hit.HasNormal = true
				}
				return hit, true
			}
			prevPos = blockPos
			hasPrev = true
		}

		// advance to the next grid boundary in the direction of travel
		minDelta := float32(math.Inf(1))
		for i := 0; i < 3; i++ {
			fract := rayPos[i] - float32(math.Floor(float64(rayPos[i])))
			delta := (dirStep[i] - fract) * dirRecip[i]
			if delta < minDelta {
				minDelta = delta
			}
		}
		if minDelta < rayEpsilon {
			minDelta = rayEpsilon
		}
		t += minDelta
	}

	return Hit{}, false
}
