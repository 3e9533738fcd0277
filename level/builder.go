package level

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

var (
	ErrNoSpawn          = errors.New("level: no spawn point")
	ErrBuilt            = errors.New("level: builder already built")
	ErrInvalidBlockSize = errors.New("level: block size must be positive")
)

// Builder accumulates tiles in grid coordinates and converts them to world
// space solids. Tile (col, row) is centered at origin + block/2 + block*(col, row).
type Builder struct {
	origin   cp.Vector
	block    cp.Vector
	solids   []Solid
	spawn    cp.Vector
	hasSpawn bool
	built    bool
}

func NewBuilder(origin, block cp.Vector) *Builder {
	return &Builder{origin: origin, block: block}
}

// TileCenter returns the world center of the tile at (col, row).
func (b *Builder) TileCenter(col, row int) cp.Vector {
	return cp.Vector{
		X: b.origin.X + b.block.X/2 + b.block.X*float64(col),
		Y: b.origin.Y + b.block.Y/2 + b.block.Y*float64(row),
	}
}

// AddTile appends one solid.
func (b *Builder) AddTile(col, row int) *Builder {
	b.solids = append(b.solids, Solid{
		Center:     b.TileCenter(col, row),
		HalfExtent: b.block.Mult(0.5),
	})
	return b
}

// Repeat fills the inclusive rectangle col..col+repeatX, row..row+repeatY,
// bottom row first.
func (b *Builder) Repeat(col, row, repeatX, repeatY int) *Builder {
	for y := row; y <= row+repeatY; y++ {
		for x := col; x <= col+repeatX; x++ {
			b.AddTile(x, y)
		}
	}
	return b
}

// SetSpawn places the spawn at a world position.
func (b *Builder) SetSpawn(p cp.Vector) *Builder {
	b.spawn = p
	b.hasSpawn = true
	return b
}

// SetSpawnTile places the spawn at the center of a tile.
func (b *Builder) SetSpawnTile(col, row int) *Builder {
	return b.SetSpawn(b.TileCenter(col, row))
}

// HasSpawn reports whether a spawn was set.
func (b *Builder) HasSpawn() bool {
	return b.hasSpawn
}

// Len returns the number of tiles added so far.
func (b *Builder) Len() int {
	return len(b.solids)
}

// Build finalizes the grid. A builder can only be built once.
func (b *Builder) Build() (*Grid, error) {
	if b.built {
		return nil, ErrBuilt
	}
	if b.block.X <= 0 || b.block.Y <= 0 {
		return nil, fmt.Errorf("%w: got %vx%v", ErrInvalidBlockSize, b.block.X, b.block.Y)
	}
	if !b.hasSpawn {
		return nil, ErrNoSpawn
	}
	b.built = true

	bounds := cp.NewBBForExtents(b.spawn, 0, 0)
	for i, s := range b.solids {
		if i == 0 {
			bounds = s.Bounds()
			continue
		}
		bounds = bounds.Merge(s.Bounds())
	}

	solids := b.solids
	b.solids = nil
	return &Grid{
		block:  b.block,
		origin: b.origin,
		spawn:  b.spawn,
		solids: solids,
		bounds: bounds,
	}, nil
}
