package tileset

import (
	"image"
	"testing"
)

func newTestTileset(id TilesetID, name string) *Tileset {
	atlas := image.NewRGBA(image.Rect(0, 0, 16, 16))
	return NewTileset(id, name, atlas, []string{"only"}, map[string]Region{
		"only": {Index: 0, Bounds: atlas.Bounds()},
	})
}

func TestTilesetsNextIDMonotonic(t *testing.T) {
	reg := NewTilesets()
	seen := make(map[TilesetID]struct{})
	for i := 0; i < 10; i++ {
		id := reg.NextID()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = struct{}{}
	}
}

func TestTilesetsRegisterAndGet(t *testing.T) {
	reg := NewTilesets()

	a := newTestTileset(reg.NextID(), "grass")
	reg.Register(a)
	if got, ok := reg.Get(a.ID()); !ok || got != a {
		t.Fatalf("Get(%d) = %v, %v", a.ID(), got, ok)
	}
	if got, ok := reg.GetByName("grass"); !ok || got != a {
		t.Fatalf("GetByName(grass) = %v, %v", got, ok)
	}

	// A rebuilt group replaces its old tileset; the stale id goes away.
	b := newTestTileset(reg.NextID(), "grass")
	reg.Register(b)
	if got, _ := reg.GetByName("grass"); got != b {
		t.Fatal("expected rebuild to replace previous tileset")
	}
	if _, ok := reg.Get(a.ID()); ok {
		t.Fatal("expected stale id to be dropped on replace")
	}
	if reg.Len() != 1 {
		t.Fatalf("expected 1 tileset, got %d", reg.Len())
	}
}

func TestTilesetRegionLookup(t *testing.T) {
	ts := newTestTileset(0, "grass")
	if _, ok := ts.Region(""); ok {
		t.Fatal("empty name should not resolve")
	}
	if _, ok := ts.Region("missing"); ok {
		t.Fatal("unknown name should not resolve")
	}
	r, ok := ts.Region("only")
	if !ok || r.Bounds != ts.Atlas().Bounds() {
		t.Fatalf("Region(only) = %v, %v", r, ok)
	}
	if names := ts.Names(); len(names) != 1 || names[0] != "only" {
		t.Fatalf("Names() = %v", names)
	}
}
