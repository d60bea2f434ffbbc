// Command preview displays a built atlas in a window and rebuilds it whenever
// a tile definition in the watched directory changes.
package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/tileset"
	"github.com/milk9111/tileset/assets"
	"github.com/milk9111/tileset/loader"
)

const (
	screenWidth  = 800
	screenHeight = 600
)

type Game struct {
	pipeline *loader.Pipeline
	tilesets *tileset.Tilesets
	watcher  *loader.Watcher
	request  loader.Request

	atlas  *ebiten.Image
	status string
}

func NewGame(req loader.Request, watcher *loader.Watcher) *Game {
	tilesets := tileset.NewTilesets()
	pipeline := loader.NewPipeline(assets.NewImageLoader(4), tilesets, nil)

	g := &Game{
		pipeline: pipeline,
		tilesets: tilesets,
		watcher:  watcher,
		request:  req,
		status:   "loading " + req.Name,
	}

	pipeline.Subscribe(func(evt loader.Event) {
		switch e := evt.(type) {
		case loader.LoadedTileset:
			ts, ok := tilesets.GetByName(e.Name)
			if !ok {
				return
			}
			g.atlas = ebiten.NewImageFromImage(ts.Atlas())
			g.status = e.Name
		case loader.TilesetFailed:
			g.status = e.Name + ": " + e.Err.Error()
		}
	})

	pipeline.Load(req)
	return g
}

// Update is the pipeline's scheduler tick: watcher events re-issue the load
// request before the tick runs, so edits rebuild the group.
func (g *Game) Update() error {
	reload := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if ok {
				reload = true
				continue
			}
		case err := <-g.watcher.Errors:
			if err != nil {
				log.Printf("preview: watch: %v", err)
			}
		default:
		}
		break
	}
	if reload {
		g.pipeline.Load(g.request)
	}
	g.pipeline.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x28, 0xff})
	if g.atlas != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(16, 32)
		screen.DrawImage(g.atlas, op)
	}
	ebitenutil.DebugPrint(screen, g.status)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	name := flag.String("name", "preview", "tileset name")
	tileDir := flag.String("tiles", loader.DefaultTileDir, "tile definition directory")
	textureDir := flag.String("textures", "", "texture directory (defaults to the tile dir)")
	columns := flag.Int("columns", 8, "wrap atlas rows after this many tiles (0 = single row)")
	flag.Parse()

	if *textureDir == "" {
		*textureDir = *tileDir
	}
	req := loader.Named(*name, loader.FromDirs(*tileDir, *textureDir))
	req.MaxColumns = *columns

	watcher, err := loader.NewWatcher(*tileDir)
	if err != nil {
		log.Fatalf("preview: watch %s: %v", *tileDir, err)
	}
	defer watcher.Close()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("tileset preview")
	if err := ebiten.RunGame(NewGame(req, watcher)); err != nil {
		log.Fatal(err)
	}
}
