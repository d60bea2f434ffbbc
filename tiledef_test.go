package tileset

import (
	"strings"
	"testing"
)

func TestParseTileDef(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		want    TileDef
		wantErr string
	}{
		{
			name: "full",
			data: "name: grass\ntexture: grass.png\nsolid: true\ntags: [ground, outdoor]\n",
			want: TileDef{Name: "grass", Texture: "grass.png", Solid: true, Tags: []string{"ground", "outdoor"}},
		},
		{
			name: "minimal",
			data: "name: dirt\ntexture: dirt.png\n",
			want: TileDef{Name: "dirt", Texture: "dirt.png"},
		},
		{
			name:    "missing_name",
			data:    "texture: x.png\n",
			wantErr: "missing name",
		},
		{
			name:    "missing_texture",
			data:    "name: x\n",
			wantErr: "missing texture",
		},
		{
			name:    "malformed_yaml",
			data:    "name: [unclosed\n",
			wantErr: "unmarshal",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			def, err := ParseTileDef([]byte(c.data))
			if c.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), c.wantErr) {
					t.Fatalf("error = %v, want containing %q", err, c.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if def.Name != c.want.Name || def.Texture != c.want.Texture || def.Solid != c.want.Solid {
				t.Fatalf("def = %+v, want %+v", def, c.want)
			}
			if len(def.Tags) != len(c.want.Tags) {
				t.Fatalf("tags = %v, want %v", def.Tags, c.want.Tags)
			}
		})
	}
}

func TestIsTileDefFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"grass.yaml", true},
		{"dir/grass.yml", true},
		{"GRASS.YAML", true},
		{"grass.png", false},
		{"grass", false},
		{"notes.txt", false},
	}
	for _, c := range cases {
		if got := IsTileDefFile(c.path); got != c.want {
			t.Fatalf("IsTileDefFile(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}
