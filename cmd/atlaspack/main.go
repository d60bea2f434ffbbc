// Command atlaspack builds one tileset from the command line and writes the
// atlas image plus a yaml region index next to it.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/tileset"
	"github.com/milk9111/tileset/assets"
	"github.com/milk9111/tileset/loader"
)

type regionOut struct {
	Name  string `yaml:"name"`
	Index int    `yaml:"index"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	W     int    `yaml:"w"`
	H     int    `yaml:"h"`
}

func main() {
	name := flag.String("name", "", "tileset name (random if empty)")
	dirs := flag.String("dirs", loader.DefaultTileDir, "comma-separated tile dirs; use tiledir:texturedir for split pairs")
	columns := flag.Int("columns", 0, "wrap atlas rows after this many tiles (0 = single row)")
	out := flag.String("o", "atlas.png", "output atlas image path")
	regionsOut := flag.String("regions", "regions.yaml", "output region index path")
	timeout := flag.Duration("timeout", 30*time.Second, "give up after this long")
	workers := flag.Int("workers", 4, "concurrent texture decodes")
	flag.Parse()

	var pairs []loader.Dirs
	for _, d := range strings.Split(*dirs, ",") {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		if tileDir, textureDir, ok := strings.Cut(d, ":"); ok {
			pairs = append(pairs, loader.FromDirs(tileDir, textureDir))
		} else {
			pairs = append(pairs, loader.FromDir(d))
		}
	}
	if len(pairs) == 0 {
		log.Fatal("atlaspack: no source directories")
	}

	req := loader.Named(*name, pairs...)
	if *name == "" {
		req = loader.Unnamed(pairs...)
	}
	req.MaxColumns = *columns

	images := assets.NewImageLoader(*workers)
	tilesets := tileset.NewTilesets()
	pipeline := loader.NewPipeline(images, tilesets, nil)

	var built *tileset.Tileset
	var failed error
	pipeline.Subscribe(func(evt loader.Event) {
		switch e := evt.(type) {
		case loader.LoadedTileset:
			built, _ = tilesets.GetByName(e.Name)
		case loader.TilesetFailed:
			failed = e.Err
		}
	})

	pipeline.Load(req)
	deadline := time.Now().Add(*timeout)
	for built == nil && failed == nil {
		if time.Now().After(deadline) {
			if err := images.Wait(); err != nil {
				log.Fatalf("atlaspack: texture load failed: %v", err)
			}
			log.Fatalf("atlaspack: timed out after %v", *timeout)
		}
		pipeline.Update()
		if built == nil && failed == nil && pipeline.Pending() == 0 {
			log.Fatal("atlaspack: nothing to build (no valid tile definitions found)")
		}
		time.Sleep(10 * time.Millisecond)
	}
	if failed != nil {
		log.Fatalf("atlaspack: build failed: %v", failed)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("atlaspack: create %s: %v", *out, err)
	}
	if err := png.Encode(f, built.Atlas()); err != nil {
		log.Fatalf("atlaspack: encode %s: %v", *out, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("atlaspack: close %s: %v", *out, err)
	}

	regions := make([]regionOut, 0, built.Len())
	for _, tileName := range built.Names() {
		r, _ := built.Region(tileName)
		regions = append(regions, regionOut{
			Name:  tileName,
			Index: r.Index,
			X:     r.Bounds.Min.X,
			Y:     r.Bounds.Min.Y,
			W:     r.Bounds.Dx(),
			H:     r.Bounds.Dy(),
		})
	}
	data, err := yaml.Marshal(regions)
	if err != nil {
		log.Fatalf("atlaspack: marshal regions: %v", err)
	}
	if err := os.WriteFile(*regionsOut, data, 0o644); err != nil {
		log.Fatalf("atlaspack: write %s: %v", *regionsOut, err)
	}

	log.Printf("atlaspack: built tileset %q (id %d, %d tiles) -> %s, %s",
		built.Name(), built.ID(), built.Len(), *out, *regionsOut)
}
