package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTile(t *testing.T, path string, c color.RGBA, size int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestBuildAtlas(t *testing.T) {
	dir := t.TempDir()
	red := color.RGBA{R: 255, A: 255}
	// 8x8 tile gets rescaled up to the 16x16 grid
	writeTile(t, filepath.Join(dir, "stone.png"), red, 8)

	atlas, err := BuildAtlas(dir, []string{"stone", "missing"}, 16)
	if err != nil {
		t.Fatalf("BuildAtlas: %v", err)
	}

	if got := atlas.Bounds(); got.Dx() != 16 || got.Dy() != 32 {
		t.Fatalf("atlas bounds = %v, want 16x32", got)
	}
	if got := atlas.RGBAAt(8, 8); got != red {
		t.Errorf("stone tile pixel = %v, want %v", got, red)
	}
	// the missing tile is filled with an opaque placeholder
	if got := atlas.RGBAAt(8, 24); got.A != 255 || got == (color.RGBA{A: 255}) {
		t.Errorf("placeholder pixel = %v, want an opaque color", got)
	}
}

func TestBuildAtlasRejectsBadInput(t *testing.T) {
	if _, err := BuildAtlas(t.TempDir(), nil, 16); err == nil {
		t.Error("empty texture list accepted")
	}
	if _, err := BuildAtlas(t.TempDir(), []string{"a"}, 0); err == nil {
		t.Error("zero tile size accepted")
	}
}

func TestWriteAtlas(t *testing.T) {
	dir := t.TempDir()
	writeTile(t, filepath.Join(dir, "stone.png"), color.RGBA{G: 255, A: 255}, 16)

	atlas, err := BuildAtlas(dir, []string{"stone"}, 16)
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "atlas.png")
	if err := WriteAtlas(out, atlas); err != nil {
		t.Fatalf("WriteAtlas: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("written atlas does not decode: %v", err)
	}
	if decoded.Bounds() != atlas.Bounds() {
		t.Errorf("decoded bounds %v != %v", decoded.Bounds(), atlas.Bounds())
	}
}
