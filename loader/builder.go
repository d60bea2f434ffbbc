package loader

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/milk9111/tileset"
)

// buildTileset composes a ready group's textures into one atlas. Placement is
// deterministic: tiles go left to right in ingestion order, wrapping to a new
// row after maxColumns tiles (a single row when unset). Cells are uniform,
// sized to the largest tile, so region lookups stay grid-aligned.
func buildTileset(id tileset.TilesetID, name string, set *pendingTiles, l tileset.Loader) (*tileset.Tileset, error) {
	n := set.len()
	imgs := make([]image.Image, n)
	cellW, cellH := 0, 0
	for i, e := range set.entries {
		img, err := l.Image(e.handle)
		if err != nil {
			return nil, fmt.Errorf("resolve texture for tile %q: %w", e.def.Name, err)
		}
		if img == nil || img.Bounds().Empty() {
			return nil, fmt.Errorf("empty texture for tile %q", e.def.Name)
		}
		imgs[i] = img
		if w := img.Bounds().Dx(); w > cellW {
			cellW = w
		}
		if h := img.Bounds().Dy(); h > cellH {
			cellH = h
		}
	}

	cols := set.maxColumns
	if cols <= 0 || cols > n {
		cols = n
	}
	rows := (n + cols - 1) / cols

	atlas := image.NewRGBA(image.Rect(0, 0, cols*cellW, rows*cellH))
	order := make([]string, 0, n)
	regions := make(map[string]tileset.Region, n)
	for i, e := range set.entries {
		img := imgs[i]
		x := (i % cols) * cellW
		y := (i / cols) * cellH
		dst := image.Rect(x, y, x+img.Bounds().Dx(), y+img.Bounds().Dy())
		draw.Draw(atlas, dst, img, img.Bounds().Min, draw.Src)
		order = append(order, e.def.Name)
		regions[e.def.Name] = tileset.Region{Index: i, Bounds: dst}
	}

	return tileset.NewTileset(id, name, atlas, order, regions), nil
}
