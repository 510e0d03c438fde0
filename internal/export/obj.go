package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"voxelmesh/internal/meshing"
)

// WriteOBJ writes the mesh as Wavefront OBJ. Quads are written as two
// triangles following the mesh's index buffer, grouped by texture so each
// run of faces picks up its material from the companion MTL file.
func WriteOBJ(w io.Writer, m *meshing.Mesh, name, mtlFilename string) error {
	bw := bufio.NewWriter(w)

	if mtlFilename != "" {
		fmt.Fprintf(bw, "mtllib %s\n", mtlFilename)
	}
	fmt.Fprintf(bw, "o %s\n", name)

	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Position.X(), v.Position.Y(), v.Position.Z())
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "vt %g %g\n", v.UV.X(), v.UV.Y())
	}

	currentTexture := uint32(0)
	haveTexture := false
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]

		tex := m.Vertices[a].TextureIndex
		if !haveTexture || tex != currentTexture {
			fmt.Fprintf(bw, "usemtl tex%d\n", tex)
			currentTexture = tex
			haveTexture = true
		}

		// OBJ indices are 1-based
		fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", a+1, a+1, b+1, b+1, c+1, c+1)
	}

	return bw.Flush()
}

// WriteMTL writes one material per texture index. When an atlas image name
// is given every material references it; otherwise each material points at
// its own <texture>.png.
func WriteMTL(w io.Writer, textures []string, atlasFilename string) error {
	bw := bufio.NewWriter(w)

	for i, name := range textures {
		fmt.Fprintf(bw, "newmtl tex%d\n", i)
		fmt.Fprintln(bw, "Ka 1.000 1.000 1.000")
		fmt.Fprintln(bw, "Kd 1.000 1.000 1.000")
		if atlasFilename != "" {
			fmt.Fprintf(bw, "map_Kd %s\n", atlasFilename)
		} else {
			fmt.Fprintf(bw, "map_Kd %s.png\n", name)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// WriteOBJFile writes the mesh and its material library next to each other
// on disk. outPath should end in ".obj"; the MTL file takes the same base
// name.
func WriteOBJFile(outPath string, m *meshing.Mesh, textures []string, atlasFilename string) error {
	base := outPath[:len(outPath)-len(filepath.Ext(outPath))]
	mtlPath := base + ".mtl"

	objFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", outPath, err)
	}
	defer objFile.Close()

	if err := WriteOBJ(objFile, m, filepath.Base(base), filepath.Base(mtlPath)); err != nil {
		return err
	}

	mtlFile, err := os.Create(mtlPath)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", mtlPath, err)
	}
	defer mtlFile.Close()

	return WriteMTL(mtlFile, textures, atlasFilename)
}
