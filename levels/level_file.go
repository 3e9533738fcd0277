package levels

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashcore/level"
	"gopkg.in/yaml.v3"
)

var (
	ErrMultipleSpawns = errors.New("levels: more than one spawn entity")
	ErrUnknownEntity  = errors.New("levels: unknown entity type")
)

// EntitySpawn marks the player start. Its x and y are tile coordinates.
const EntitySpawn = "spawn"

// LevelFile is the YAML level format.
type LevelFile struct {
	Name      string     `yaml:"name"`
	BlockSize float64    `yaml:"block_size"` // 0 uses the configured block size
	Origin    [2]float64 `yaml:"origin"`
	Fills     []Fill     `yaml:"fills"`
	Tiles     [][2]int   `yaml:"tiles"`
	Entities  []Entity   `yaml:"entities"`
	Script    string     `yaml:"script"` // tengo file run after fills and tiles
}

// Fill is an inclusive rectangle of tiles starting at (col, row).
type Fill struct {
	Col     int `yaml:"col"`
	Row     int `yaml:"row"`
	RepeatX int `yaml:"repeat_x"`
	RepeatY int `yaml:"repeat_y"`
}

type Entity struct {
	Type  string         `yaml:"type"`
	X     int            `yaml:"x"`
	Y     int            `yaml:"y"`
	Props map[string]any `yaml:"props,omitempty"`
}

// ParseLevelFile decodes a YAML level.
func ParseLevelFile(data []byte) (*LevelFile, error) {
	var lf LevelFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("levels: unmarshal level: %w", err)
	}
	return &lf, nil
}

// Builder places the file's geometry and spawn into a level builder.
// Scripts are resolved through readScript.
func (lf *LevelFile) Builder(block float64, readScript func(name string) ([]byte, error)) (*level.Builder, error) {
	if lf.BlockSize > 0 {
		block = lf.BlockSize
	}
	b := level.NewBuilder(cp.Vector{X: lf.Origin[0], Y: lf.Origin[1]}, cp.Vector{X: block, Y: block})

	for _, f := range lf.Fills {
		b.Repeat(f.Col, f.Row, f.RepeatX, f.RepeatY)
	}
	for _, t := range lf.Tiles {
		b.AddTile(t[0], t[1])
	}

	spawns := 0
	for _, e := range lf.Entities {
		switch e.Type {
		case EntitySpawn:
			spawns++
			b.SetSpawnTile(e.X, e.Y)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, e.Type)
		}
	}
	if spawns > 1 {
		return nil, fmt.Errorf("%w: found %d", ErrMultipleSpawns, spawns)
	}

	if lf.Script != "" {
		if readScript == nil {
			return nil, fmt.Errorf("levels: script %s: no script source", lf.Script)
		}
		src, err := readScript(lf.Script)
		if err != nil {
			return nil, err
		}
		if err := level.ApplyScript(b, lf.Script, src); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Build produces the grid. A level without a spawn entity or script spawn
// fails with level.ErrNoSpawn.
func (lf *LevelFile) Build(block float64, readScript func(name string) ([]byte, error)) (*level.Grid, error) {
	b, err := lf.Builder(block, readScript)
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// LoadFrom reads and builds a level, checking dir before the embedded
// levels. block is used when the file does not set its own block size.
func LoadFrom(dir, name string, block float64) (*level.Grid, error) {
	data, err := Read(dir, name)
	if err != nil {
		return nil, err
	}
	readScript := func(script string) ([]byte, error) {
		return Read(dir, script)
	}

	var g *level.Grid
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		lf, perr := ParseLevelFile(data)
		if perr != nil {
			return nil, fmt.Errorf("levels: load %s: %w", name, perr)
		}
		g, err = lf.Build(block, readScript)
	case ".tengo":
		g, err = level.RunScript(name, data, cp.Vector{}, cp.Vector{X: block, Y: block})
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	return g, nil
}

// Load reads a level from DefaultDir or the embedded levels.
func Load(name string, block float64) (*level.Grid, error) {
	return LoadFrom(DefaultDir, name, block)
}
