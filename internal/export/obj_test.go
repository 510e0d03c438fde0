package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voxelmesh/internal/chunk"
	"voxelmesh/internal/meshing"
	"voxelmesh/pkg/blockmodel"
)

func singleBlockMesh(t *testing.T) *meshing.Mesh {
	t.Helper()
	blocks := make([]blockmodel.BlockID, chunk.SizeCubed)
	blocks[0] = 1

	reg := blockmodel.NewRegistry(
		[]blockmodel.Model{{}, blockmodel.SolidModel(0)},
		[]string{"air", "stone"},
		[]string{"stone"},
	)
	return meshing.Culled(meshing.Input{Blocks: blocks, Registry: reg})
}

func TestWriteOBJ(t *testing.T) {
	var sb strings.Builder
	if err := WriteOBJ(&sb, singleBlockMesh(t), "chunk", "chunk.mtl"); err != nil {
		t.Fatalf("WriteOBJ: %v", err)
	}
	out := sb.String()

	for _, want := range []string{"mtllib chunk.mtl\n", "o chunk\n", "usemtl tex0\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if got := strings.Count(out, "\nv "); got != 24 {
		t.Errorf("%d position lines, want 24", got)
	}
	if got := strings.Count(out, "\nvt "); got != 24 {
		t.Errorf("%d uv lines, want 24", got)
	}
	if got := strings.Count(out, "\nf "); got != 12 {
		t.Errorf("%d face lines, want 12", got)
	}
	// indices are 1-based and follow the 0,1,2 2,3,0 quad pattern
	if !strings.Contains(out, "f 1/1 2/2 3/3\n") || !strings.Contains(out, "f 3/3 4/4 1/1\n") {
		t.Error("first quad's triangles not found")
	}
}

func TestWriteMTL(t *testing.T) {
	var sb strings.Builder
	if err := WriteMTL(&sb, []string{"stone", "dirt"}, ""); err != nil {
		t.Fatalf("WriteMTL: %v", err)
	}
	out := sb.String()

	for _, want := range []string{"newmtl tex0\n", "map_Kd stone.png\n", "newmtl tex1\n", "map_Kd dirt.png\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	sb.Reset()
	if err := WriteMTL(&sb, []string{"stone"}, "atlas.png"); err != nil {
		t.Fatalf("WriteMTL with atlas: %v", err)
	}
	if !strings.Contains(sb.String(), "map_Kd atlas.png\n") {
		t.Error("atlas material does not reference the atlas image")
	}
}

func TestWriteOBJFile(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "chunk.obj")

	if err := WriteOBJFile(objPath, singleBlockMesh(t), []string{"stone"}, ""); err != nil {
		t.Fatalf("WriteOBJFile: %v", err)
	}

	obj, err := os.ReadFile(objPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(obj), "mtllib chunk.mtl") {
		t.Error("obj file does not reference its mtl")
	}
	if _, err := os.Stat(filepath.Join(dir, "chunk.mtl")); err != nil {
		t.Errorf("mtl file missing: %v", err)
	}
}
