package blockmodel

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// registrySchema constrains registry files before decoding so a malformed
// file fails with a schema error instead of a half-built registry.
const registrySchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["textures", "blocks"],
  "additionalProperties": false,
  "properties": {
    "textures": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    },
    "blocks": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "all": {"type": "string", "minLength": 1},
          "faces": {
            "type": "object",
            "propertyNames": {
              "enum": ["pos_x", "pos_y", "pos_z", "neg_x", "neg_y", "neg_z"]
            },
            "additionalProperties": {"type": "string", "minLength": 1}
          }
        }
      }
    }
  }
}`

var compiledRegistrySchema = jsonschema.MustCompileString("registry.schema.json", registrySchema)

type registryFile struct {
	Textures []string     `json:"textures"`
	Blocks   []blockEntry `json:"blocks"`
}

type blockEntry struct {
	Name  string            `json:"name"`
	All   string            `json:"all"`
	Faces map[string]string `json:"faces"`
}

// LoadRegistry reads and parses a block registry file.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read registry file: %w", err)
	}
	return ParseRegistry(data)
}

// ParseRegistry validates registry JSON against the embedded schema and
// builds an immutable Registry from it. Block IDs are assigned in
// declaration order; the first block must be air (no faces). Texture names
// resolve to dense indices in declaration order.
func ParseRegistry(data []byte) (*Registry, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("registry json: %w", err)
	}
	if err := compiledRegistrySchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("registry schema: %w", err)
	}

	var file registryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("registry json: %w", err)
	}

	textureIndex := make(map[string]uint32, len(file.Textures))
	for i, name := range file.Textures {
		if _, dup := textureIndex[name]; dup {
			return nil, fmt.Errorf("duplicate texture %q", name)
		}
		textureIndex[name] = uint32(i)
	}

	models := make([]Model, 0, len(file.Blocks))
	names := make([]string, 0, len(file.Blocks))
	seen := make(map[string]bool, len(file.Blocks))

	for i, entry := range file.Blocks {
		if seen[entry.Name] {
			return nil, fmt.Errorf("duplicate block %q", entry.Name)
		}
		seen[entry.Name] = true

		var model Model
		if entry.All != "" {
			tex, ok := textureIndex[entry.All]
			if !ok {
				return nil, fmt.Errorf("block %q: unknown texture %q", entry.Name, entry.All)
			}
			model = SolidModel(tex)
		}
		for faceName, texName := range entry.Faces {
			dir, ok := parseFaceDir(faceName)
			if !ok {
				return nil, fmt.Errorf("block %q: unknown face %q", entry.Name, faceName)
			}
			tex, ok := textureIndex[texName]
			if !ok {
				return nil, fmt.Errorf("block %q: unknown texture %q", entry.Name, texName)
			}
			model.Faces[dir] = &BlockFace{TextureIndex: tex}
		}

		if i == 0 && !model.Empty() {
			return nil, fmt.Errorf("block %q: the first block is air and may not declare faces", entry.Name)
		}

		models = append(models, model)
		names = append(names, entry.Name)
	}

	return NewRegistry(models, names, file.Textures), nil
}

func parseFaceDir(s string) (FaceDir, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}
