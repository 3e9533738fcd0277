// Package level holds the static tile geometry the player collides with.
package level

import "github.com/jakecoffman/cp"

// Solid is a static axis-aligned tile in world space.
type Solid struct {
	Center     cp.Vector
	HalfExtent cp.Vector
}

// Bounds returns the closed world-space box covered by the solid.
func (s Solid) Bounds() cp.BB {
	return cp.NewBBForExtents(s.Center, s.HalfExtent.X, s.HalfExtent.Y)
}

// Contains reports whether (x, y) lies inside the solid, edges included.
func (s Solid) Contains(x, y float64) bool {
	return s.Bounds().ContainsVect(cp.Vector{X: x, Y: y})
}

// Grid is the finalized set of solids for a level plus its spawn point.
// It has no mutators; a Builder produces it once at load time.
type Grid struct {
	block  cp.Vector
	origin cp.Vector
	spawn  cp.Vector
	solids []Solid
	bounds cp.BB
}

// QueryPoint returns the first solid, in insertion order, whose bounds
// contain the point.
func (g *Grid) QueryPoint(x, y float64) (*Solid, bool) {
	if g == nil {
		return nil, false
	}
	for i := range g.solids {
		if g.solids[i].Contains(x, y) {
			return &g.solids[i], true
		}
	}
	return nil, false
}

// BlockSize returns the full tile size.
func (g *Grid) BlockSize() cp.Vector {
	if g == nil {
		return cp.Vector{}
	}
	return g.block
}

// HalfBlock returns half the tile size, the collision probe offset.
func (g *Grid) HalfBlock() cp.Vector {
	return g.BlockSize().Mult(0.5)
}

// Origin returns the world position of tile (0, 0)'s lower-left corner.
func (g *Grid) Origin() cp.Vector {
	if g == nil {
		return cp.Vector{}
	}
	return g.origin
}

// Spawn returns the player spawn point in world coordinates.
func (g *Grid) Spawn() cp.Vector {
	if g == nil {
		return cp.Vector{}
	}
	return g.spawn
}

// Len returns the number of solids.
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.solids)
}

// Solids returns a copy of the solids in insertion order.
func (g *Grid) Solids() []Solid {
	if g == nil {
		return nil
	}
	out := make([]Solid, len(g.solids))
	copy(out, g.solids)
	return out
}

// Bounds returns the union of every solid's bounds. An empty grid reports
// a zero-size box at the spawn point.
func (g *Grid) Bounds() cp.BB {
	if g == nil {
		return cp.BB{}
	}
	return g.bounds
}
