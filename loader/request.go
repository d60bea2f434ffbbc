package loader

import "github.com/google/uuid"

// DefaultTileDir is the directory tiles load from when no dirs are given.
const DefaultTileDir = "tiles"

// Dirs is one source-directory pair of a request: where the tile definition
// files live and where their textures live.
type Dirs struct {
	TileDir    string
	TextureDir string
}

// FromDir uses one directory for both definitions and textures.
func FromDir(dir string) Dirs {
	return Dirs{TileDir: dir, TextureDir: dir}
}

// FromDirs uses separate definition and texture directories.
func FromDirs(tileDir, textureDir string) Dirs {
	return Dirs{TileDir: tileDir, TextureDir: textureDir}
}

// Request describes one tileset to build. It is immutable once created and
// consumed exactly once by ingestion.
type Request struct {
	// Name identifies the group. Requests with the same name issued before
	// the group builds accumulate into one tileset. Empty means a unique
	// name is assigned at ingestion.
	Name string
	// Dirs are the source directory pairs, walked in order.
	Dirs []Dirs
	// MaxColumns wraps atlas placement to a new row after this many tiles.
	// Zero means a single unbounded row.
	MaxColumns int
}

// Named creates a request for a named tileset.
func Named(name string, dirs ...Dirs) Request {
	if len(dirs) == 0 {
		dirs = []Dirs{FromDir(DefaultTileDir)}
	}
	return Request{Name: name, Dirs: dirs}
}

// Unnamed creates a request with a random, collision-resistant name.
func Unnamed(dirs ...Dirs) Request {
	return Named(uniqueName(), dirs...)
}

func uniqueName() string {
	return uuid.NewString()
}
