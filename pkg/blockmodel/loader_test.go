package blockmodel

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadRegistry(t *testing.T) {
	reg, err := LoadRegistry(filepath.Join("testdata", "registry.json"))
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}

	if reg.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", reg.Len())
	}
	if got := reg.Textures(); len(got) != 3 || got[2] != "grass_top" {
		t.Fatalf("Textures() = %v", got)
	}

	// grass: dirt everywhere except the top
	if f := reg.Face(3, FacePosY); f == nil || f.TextureIndex != 2 {
		t.Errorf("grass pos_y = %v, want texture 2", f)
	}
	if f := reg.Face(3, FacePosX); f == nil || f.TextureIndex != 1 {
		t.Errorf("grass pos_x = %v, want texture 1", f)
	}

	// slab_top only has a top face
	if f := reg.Face(4, FacePosY); f == nil {
		t.Error("slab_top pos_y missing")
	}
	if f := reg.Face(4, FaceNegY); f != nil {
		t.Errorf("slab_top neg_y = %v, want none", f)
	}
}

func TestParseRegistryErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{
			name: "schema violation",
			data: `{"blocks": [{"name": "air"}]}`,
			want: "schema",
		},
		{
			name: "bad face key",
			data: `{"textures": ["t"], "blocks": [{"name": "air"}, {"name": "b", "faces": {"top": "t"}}]}`,
			want: "schema",
		},
		{
			name: "unknown texture",
			data: `{"textures": ["t"], "blocks": [{"name": "air"}, {"name": "b", "all": "nope"}]}`,
			want: "unknown texture",
		},
		{
			name: "duplicate block",
			data: `{"textures": ["t"], "blocks": [{"name": "air"}, {"name": "b", "all": "t"}, {"name": "b", "all": "t"}]}`,
			want: "duplicate block",
		},
		{
			name: "air with faces",
			data: `{"textures": ["t"], "blocks": [{"name": "air", "all": "t"}]}`,
			want: "air",
		},
		{
			name: "duplicate texture",
			data: `{"textures": ["t", "t"], "blocks": [{"name": "air"}]}`,
			want: "duplicate texture",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseRegistry([]byte(c.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Fatalf("error %q does not mention %q", err, c.want)
			}
		})
	}
}
