package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashcore/level"
)

func TestLoadEmbedded(t *testing.T) {
	cases := []struct {
		name   string
		solids int
		spawn  cp.Vector
	}{
		{"demo.yaml", 124, cp.Vector{X: 104, Y: 104}},
		{"steps.tengo", 273, cp.Vector{X: 56, Y: 40}},
		{"course.yaml", 48, cp.Vector{X: 40, Y: 40}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := LoadFrom("", c.name, 16)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if g.Len() != c.solids {
				t.Fatalf("expected %d solids, got %d", c.solids, g.Len())
			}
			if g.Spawn() != c.spawn {
				t.Fatalf("expected spawn %v, got %v", c.spawn, g.Spawn())
			}
		})
	}
}

func TestDemoMatchesLayout(t *testing.T) {
	g, err := LoadFrom("", "levels/demo.yaml", 16)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := cp.BB{L: 0, B: 0, R: 1280, T: 720}
	if g.Bounds() != want {
		t.Fatalf("expected bounds %v, got %v", want, g.Bounds())
	}
	if _, ok := g.QueryPoint(1279, 8); !ok {
		t.Fatalf("expected floor under the right edge")
	}
	if _, ok := g.QueryPoint(8, 719); !ok {
		t.Fatalf("expected the wall to reach the top")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"course.yaml", "demo.yaml", "steps.tengo"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	src := "fills:\n  - {col: 0, row: 0, repeat_x: 2, repeat_y: 0}\nentities:\n  - {type: spawn, x: 1, y: 1}\n"
	if err := os.WriteFile(filepath.Join(dir, "demo.yaml"), []byte(src), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	g, err := LoadFrom(dir, "demo.yaml", 32)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if g.Len() != 3 {
		t.Fatalf("expected the disk copy with 3 tiles, got %d", g.Len())
	}
	if g.BlockSize() != (cp.Vector{X: 32, Y: 32}) || g.Spawn() != (cp.Vector{X: 48, Y: 48}) {
		t.Fatalf("expected configured block size, got %v spawn %v", g.BlockSize(), g.Spawn())
	}

	// names missing on disk fall back to the embedded copy
	if _, err := LoadFrom(dir, "steps.tengo", 16); err != nil {
		t.Fatalf("fallback: %v", err)
	}
}

func TestLevelFileErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"no_spawn", "tiles: [[0, 0]]\n", level.ErrNoSpawn},
		{"two_spawns", "entities:\n  - {type: spawn, x: 1, y: 1}\n  - {type: spawn, x: 2, y: 1}\n", ErrMultipleSpawns},
		{"unknown_entity", "entities:\n  - {type: dragon}\n", ErrUnknownEntity},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lf, err := ParseLevelFile([]byte(c.src))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if _, err := lf.Build(16, nil); !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}

	if _, err := ParseLevelFile([]byte("tiles: [[")); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := LoadFrom("", "missing.yaml", 16); err == nil {
		t.Fatalf("expected missing level error")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "level.json"), []byte("{}"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFrom(dir, "level.json", 16); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected unknown format, got %v", err)
	}
}

func TestScriptSpawnWithoutEntity(t *testing.T) {
	lf := &LevelFile{Script: "s.tengo"}
	read := func(name string) ([]byte, error) {
		return []byte("fill(0, 0, 4, 0)\nspawn(2, 1)"), nil
	}
	g, err := lf.Build(16, read)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if g.Len() != 5 || g.Spawn() != (cp.Vector{X: 40, Y: 24}) {
		t.Fatalf("unexpected grid %d %v", g.Len(), g.Spawn())
	}
}
