package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// BuildAtlas packs one tile per texture name into a vertical strip, in
// texture-index order, so a face's TextureIndex selects row index*tileSize.
// Tiles are loaded from <dir>/<name>.png and resampled to tileSize x
// tileSize with nearest-neighbor filtering to keep pixel-art edges crisp.
// A missing tile gets a deterministic placeholder color instead of failing
// the whole atlas.
func BuildAtlas(dir string, names []string, tileSize int) (*image.RGBA, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("texture: atlas needs at least one texture")
	}
	if tileSize < 1 {
		return nil, fmt.Errorf("texture: invalid tile size %d", tileSize)
	}

	atlas := image.NewRGBA(image.Rect(0, 0, tileSize, tileSize*len(names)))

	for i, name := range names {
		dst := image.Rect(0, i*tileSize, tileSize, (i+1)*tileSize)

		tile, err := loadPNG(filepath.Join(dir, name+".png"))
		if err != nil {
			fillPlaceholder(atlas, dst, i)
			continue
		}

		xdraw.NearestNeighbor.Scale(atlas, dst, tile, tile.Bounds(), xdraw.Src, nil)
	}

	return atlas, nil
}

// WriteAtlas encodes the atlas image as PNG.
func WriteAtlas(path string, atlas *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, atlas); err != nil {
		return fmt.Errorf("could not encode atlas: %w", err)
	}
	return nil
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

func fillPlaceholder(atlas *image.RGBA, rect image.Rectangle, index int) {
	// spread hues so adjacent indices are told apart at a glance
	c := color.RGBA{
		R: uint8(80 + (index*97)%160),
		G: uint8(80 + (index*57)%160),
		B: uint8(80 + (index*37)%160),
		A: 255,
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			atlas.SetRGBA(x, y, c)
		}
	}
}
