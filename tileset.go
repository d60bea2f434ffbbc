// Package tileset provides the value types shared by the tileset load
// pipeline: parsed tile definitions, finished tilesets with their atlas and
// region lookup, the registry they are stored in, and the contract for the
// asynchronous texture loader the pipeline polls.
package tileset

import "image"

// TilesetID uniquely identifies a finished tileset within one registry.
type TilesetID uint32

// Region is the placement of a single tile inside an atlas.
type Region struct {
	// Index is the tile's position in ingestion order, starting at 0.
	Index int
	// Bounds is the pixel rectangle the tile occupies in the atlas.
	Bounds image.Rectangle
}

// Tileset is a finished, immutable atlas plus its per-tile lookup.
type Tileset struct {
	id      TilesetID
	name    string
	atlas   *image.RGBA
	order   []string
	regions map[string]Region
}

// NewTileset assembles a finished tileset. Order determines Index lookups and
// must match the regions map's keys.
func NewTileset(id TilesetID, name string, atlas *image.RGBA, order []string, regions map[string]Region) *Tileset {
	return &Tileset{
		id:      id,
		name:    name,
		atlas:   atlas,
		order:   order,
		regions: regions,
	}
}

// ID returns the registry-allocated identifier.
func (t *Tileset) ID() TilesetID {
	return t.id
}

// Name returns the group name the tileset was built from.
func (t *Tileset) Name() string {
	return t.name
}

// Atlas returns the combined image containing every tile texture.
func (t *Tileset) Atlas() *image.RGBA {
	return t.atlas
}

// Len returns the number of tiles in the tileset.
func (t *Tileset) Len() int {
	return len(t.order)
}

// Region returns the atlas placement for a tile name.
func (t *Tileset) Region(name string) (Region, bool) {
	if t == nil || name == "" {
		return Region{}, false
	}
	r, ok := t.regions[name]
	return r, ok
}

// Names returns the tile names in ingestion order.
func (t *Tileset) Names() []string {
	return append([]string(nil), t.order...)
}
