package loader

import (
	"image"
	"testing"

	"github.com/milk9111/tileset"
)

func TestBuildTilesetCellSizing(t *testing.T) {
	fl := newFakeLoader()
	set := &pendingTiles{dirty: true, maxColumns: 2}
	small := set.add(tileset.TileDef{Name: "small", Texture: "small.png"}, "tex", fl)
	big := set.add(tileset.TileDef{Name: "big", Texture: "big.png"}, "tex", fl)
	wide := set.add(tileset.TileDef{Name: "wide", Texture: "wide.png"}, "tex", fl)
	fl.complete(small, 8, 8)
	fl.complete(big, 32, 24)
	fl.complete(wide, 16, 4)

	ts, err := buildTileset(7, "sizes", set, fl)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if ts.ID() != 7 || ts.Name() != "sizes" {
		t.Fatalf("identity = (%d, %q), want (7, sizes)", ts.ID(), ts.Name())
	}

	// Cells are uniform at the largest tile bounds: 32x24, two columns.
	if got := ts.Atlas().Bounds(); got != image.Rect(0, 0, 64, 48) {
		t.Fatalf("atlas bounds = %v, want (0,0)-(64,48)", got)
	}

	cases := []struct {
		name  string
		index int
		rect  image.Rectangle
	}{
		{"small", 0, image.Rect(0, 0, 8, 8)},
		{"big", 1, image.Rect(32, 0, 64, 24)},
		{"wide", 2, image.Rect(0, 24, 16, 28)},
	}
	for _, c := range cases {
		r, ok := ts.Region(c.name)
		if !ok {
			t.Fatalf("missing region %s", c.name)
		}
		if r.Index != c.index || r.Bounds != c.rect {
			t.Fatalf("region %s = (%d, %v), want (%d, %v)", c.name, r.Index, r.Bounds, c.index, c.rect)
		}
	}
}

func TestBuildTilesetEmptyTexture(t *testing.T) {
	fl := newFakeLoader()
	set := &pendingTiles{dirty: true}
	h := set.add(tileset.TileDef{Name: "void", Texture: "void.png"}, "tex", fl)
	fl.complete(h, 0, 0)

	if _, err := buildTileset(0, "void", set, fl); err == nil {
		t.Fatal("expected error for empty texture")
	}
}
