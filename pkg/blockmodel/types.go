package blockmodel

// BlockID identifies a block type. ID 0 is reserved for air.
type BlockID uint16

// BlockAir is the designated empty block: no faces, fully transparent.
const BlockAir BlockID = 0

// BlockFace is the visual data for one face direction of a block type.
// Two faces merge during greedy meshing only when they compare equal.
type BlockFace struct {
	TextureIndex uint32
}

// Model describes the visual model of a block type: at most one face per
// direction. A nil entry means the block contributes no geometry in that
// direction and is see-through along it.
type Model struct {
	Faces [FaceCount]*BlockFace
}

// Face returns the face for the given direction, or nil if absent.
func (m *Model) Face(d FaceDir) *BlockFace {
	return m.Faces[d]
}

// Empty reports whether the model has no faces at all.
func (m *Model) Empty() bool {
	for _, f := range m.Faces {
		if f != nil {
			return false
		}
	}
	return true
}

// SolidModel returns a model with the same texture on all six faces.
func SolidModel(textureIndex uint32) Model {
	var m Model
	for i := range m.Faces {
		m.Faces[i] = &BlockFace{TextureIndex: textureIndex}
	}
	return m
}
