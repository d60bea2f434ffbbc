package tileset

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// TileDef is one parsed tile definition file. Name is the logical tile
// identity used for region lookups in the finished tileset; Texture is the
// image file, relative to the request's texture directory.
type TileDef struct {
	Name    string   `yaml:"name"`
	Texture string   `yaml:"texture"`
	Solid   bool     `yaml:"solid"`
	Tags    []string `yaml:"tags"`
}

// ParseTileDef parses a yaml tile definition. Decode errors keep yaml.v3's
// line and column so callers can report where the file broke.
func ParseTileDef(data []byte) (TileDef, error) {
	var def TileDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return TileDef{}, fmt.Errorf("tileset: unmarshal tile def: %w", err)
	}
	if def.Name == "" {
		return TileDef{}, fmt.Errorf("tileset: tile def missing name")
	}
	if def.Texture == "" {
		return TileDef{}, fmt.Errorf("tileset: tile def %q missing texture", def.Name)
	}
	return def, nil
}

// IsTileDefFile reports whether a path has a recognized tile definition
// extension. Other files in a tile directory are skipped, not errors.
func IsTileDefFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
