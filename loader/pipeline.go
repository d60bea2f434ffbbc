// Package loader turns tile definition directories into finished tilesets.
//
// Callers push load requests onto a pipeline and step it from their own
// scheduler. Each Update ingests every queued request, then makes one build
// pass: any group whose textures have all finished loading is composed into
// an atlas, registered, and announced to subscribers. Groups still waiting on
// textures are re-checked next tick, so one slow group never blocks another.
package loader

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/milk9111/tileset"
)

// Pipeline owns the pending-group registry and drives ingestion and builds.
// It spawns no goroutines; all methods must be called from the same scheduler
// context.
type Pipeline struct {
	loader   tileset.Loader
	tilesets *tileset.Tilesets
	logger   *log.Logger

	queue       EventQueue
	pending     map[string]*pendingTiles
	subscribers []func(Event)
}

// NewPipeline creates a pipeline that loads textures through l and hands
// finished tilesets to reg. A nil logger falls back to log.Default.
func NewPipeline(l tileset.Loader, reg *tileset.Tilesets, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{
		loader:   l,
		tilesets: reg,
		logger:   logger,
		pending:  make(map[string]*pendingTiles),
	}
}

// Load queues a request for the next Update.
func (p *Pipeline) Load(req Request) {
	p.queue.Push(LoadTiles{Request: req})
}

// Subscribe registers a callback for LoadedTileset and TilesetFailed events.
// Callbacks run during Update, after the tileset has been registered.
func (p *Pipeline) Subscribe(fn func(Event)) {
	if fn == nil {
		return
	}
	p.subscribers = append(p.subscribers, fn)
}

// Update runs one tick: every queued request is ingested before the build
// pass evaluates readiness, so a request can never race its own build within
// a tick.
func (p *Pipeline) Update() {
	for _, evt := range p.queue.Drain() {
		load, ok := evt.(LoadTiles)
		if !ok {
			continue
		}
		if err := p.ingest(load.Request); err != nil {
			p.logger.Printf("loader: %v", err)
		}
	}
	p.buildPass()
}

// Pending returns the number of groups still accumulating or awaiting
// textures.
func (p *Pipeline) Pending() int {
	return len(p.pending)
}

// ingest walks a request's source directories, parses each definition file,
// and issues a texture load per parsed tile. All tile directories are listed
// up front: a missing directory aborts the whole request before any handle
// exists. Individual files that fail to read or parse are skipped with a
// diagnostic.
func (p *Pipeline) ingest(req Request) error {
	listings := make([][]string, len(req.Dirs))
	for i, d := range req.Dirs {
		entries, err := os.ReadDir(d.TileDir)
		if err != nil {
			return fmt.Errorf("read tile dir %s: %w", d.TileDir, err)
		}
		for _, e := range entries {
			if e.IsDir() || !tileset.IsTileDefFile(e.Name()) {
				continue
			}
			listings[i] = append(listings[i], e.Name())
		}
	}

	name := req.Name
	if name == "" {
		name = uniqueName()
	}
	set := p.pending[name]
	if set == nil {
		set = &pendingTiles{}
		p.pending[name] = set
	}

	for i, d := range req.Dirs {
		for _, file := range listings[i] {
			path := filepath.Join(d.TileDir, file)
			data, err := os.ReadFile(path)
			if err != nil {
				p.logger.Printf("loader: skipping tile %s: %v", path, err)
				continue
			}
			def, err := tileset.ParseTileDef(data)
			if err != nil {
				p.logger.Printf("loader: skipping tile %s: %v", path, err)
				continue
			}
			set.add(def, d.TextureDir, p.loader)
		}
	}

	set.dirty = true
	set.maxColumns = req.MaxColumns
	return nil
}

// buildPass applies the per-group decision rules: empty groups and clean
// groups are dropped, waiting groups are kept for the next tick, and ready
// dirty groups are built exactly once and removed whether or not the build
// succeeds.
func (p *Pipeline) buildPass() {
	for name, set := range p.pending {
		if set.len() == 0 {
			delete(p.pending, name)
			continue
		}
		if !set.dirty {
			delete(p.pending, name)
			continue
		}
		if !set.ready(p.loader) {
			continue
		}

		delete(p.pending, name)
		id := p.tilesets.NextID()
		ts, err := buildTileset(id, name, set, p.loader)
		if err != nil {
			p.logger.Printf("loader: build tileset %s: %v", name, err)
			p.emit(TilesetFailed{Name: name, Err: err})
			continue
		}
		p.tilesets.Register(ts)
		p.emit(LoadedTileset{Name: name})
	}
}

func (p *Pipeline) emit(evt Event) {
	for _, fn := range p.subscribers {
		fn(evt)
	}
}
