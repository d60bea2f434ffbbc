package tileset

// Tilesets stores finished tilesets by ID and name and allocates IDs for new
// ones. It is owned by whoever owns the pipeline; the zero value is ready to
// use.
type Tilesets struct {
	nextID TilesetID
	byID   map[TilesetID]*Tileset
	byName map[string]*Tileset
}

// NewTilesets creates an empty registry.
func NewTilesets() *Tilesets {
	return &Tilesets{
		byID:   make(map[TilesetID]*Tileset),
		byName: make(map[string]*Tileset),
	}
}

// NextID allocates the identifier for the next tileset to be built. Each call
// returns a new value.
func (t *Tilesets) NextID() TilesetID {
	id := t.nextID
	t.nextID++
	return id
}

// Register stores a finished tileset. A tileset with the same name replaces
// the previous one, which is how a reloaded group supersedes its old build.
func (t *Tilesets) Register(ts *Tileset) {
	if t == nil || ts == nil {
		return
	}
	if t.byID == nil {
		t.byID = make(map[TilesetID]*Tileset)
		t.byName = make(map[string]*Tileset)
	}
	if prev, ok := t.byName[ts.Name()]; ok {
		delete(t.byID, prev.ID())
	}
	t.byID[ts.ID()] = ts
	t.byName[ts.Name()] = ts
}

// Get returns a tileset by its allocated ID.
func (t *Tilesets) Get(id TilesetID) (*Tileset, bool) {
	if t == nil {
		return nil, false
	}
	ts, ok := t.byID[id]
	return ts, ok
}

// GetByName returns a tileset by group name.
func (t *Tilesets) GetByName(name string) (*Tileset, bool) {
	if t == nil || name == "" {
		return nil, false
	}
	ts, ok := t.byName[name]
	return ts, ok
}

// Len returns the number of registered tilesets.
func (t *Tilesets) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byName)
}
