package loader

import (
	"path/filepath"

	"github.com/milk9111/tileset"
)

// pendingTile is one accumulated (handle, definition) pair.
type pendingTile struct {
	handle tileset.Handle
	def    tileset.TileDef
}

// pendingTiles accumulates the texture handles for one group between its load
// request and its build. Ingestion appends and marks it dirty; the build pass
// only reads it and removes the whole entry from the pipeline's registry.
type pendingTiles struct {
	entries    []pendingTile
	dirty      bool
	maxColumns int
}

// add issues the async texture load for a definition and records the handle.
// Entries keep ingestion order; atlas placement depends on it.
func (p *pendingTiles) add(def tileset.TileDef, textureDir string, l tileset.Loader) tileset.Handle {
	h := l.Load(filepath.Join(textureDir, def.Texture))
	p.entries = append(p.entries, pendingTile{handle: h, def: def})
	return h
}

// ready reports whether every accumulated handle has finished loading. One
// pending or failed handle keeps the whole group not ready.
func (p *pendingTiles) ready(l tileset.Loader) bool {
	for _, e := range p.entries {
		if !l.IsLoaded(e.handle) {
			return false
		}
	}
	return true
}

func (p *pendingTiles) len() int {
	return len(p.entries)
}
