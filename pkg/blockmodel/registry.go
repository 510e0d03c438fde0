package blockmodel

import "fmt"

// Registry is an immutable lookup table from block IDs to their models.
// It is passed explicitly to the meshing and visibility code instead of
// living in package-level state so tests can supply synthetic registries.
type Registry struct {
	models   []Model
	names    []string
	textures []string
}

// NewRegistry builds a registry from models indexed by BlockID. The model
// at index 0 must be empty (air). Panics on a violated contract; registry
// construction from config files goes through the Loader, which validates
// its input and reports errors instead.
func NewRegistry(models []Model, names, textures []string) *Registry {
	if len(models) == 0 {
		panic("blockmodel: registry needs at least the air block")
	}
	if !models[0].Empty() {
		panic("blockmodel: block 0 is reserved for air and must have no faces")
	}
	if names != nil && len(names) != len(models) {
		panic(fmt.Sprintf("blockmodel: %d names for %d models", len(names), len(models)))
	}
	return &Registry{models: models, names: names, textures: textures}
}

// Face returns the face of the given block in the given direction, or nil
// if the block has no face there. An unknown block ID is a caller bug.
func (r *Registry) Face(id BlockID, d FaceDir) *BlockFace {
	return r.models[id].Face(d)
}

// Model returns the model of the given block.
func (r *Registry) Model(id BlockID) *Model {
	return &r.models[id]
}

// Len returns the number of registered block types.
func (r *Registry) Len() int {
	return len(r.models)
}

// Name returns the declared name of the given block, or its numeric form
// when the registry was built without names.
func (r *Registry) Name(id BlockID) string {
	if r.names == nil {
		return fmt.Sprintf("block_%d", id)
	}
	return r.names[id]
}

// Textures returns the texture names in texture-index order. May be empty
// for synthetic registries.
func (r *Registry) Textures() []string {
	return r.textures
}
