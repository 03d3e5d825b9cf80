// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package surfinv implements the adaptive 2D tile quadtree that recovers
// a surface (u,v) pair from a 3D point. It is the sole importer of
// package surface that also needs surface to call back into it
// (RuledSurface/NurbsSurface.UVCanonical); the cycle is broken by
// surface.RegisterTileInverter, wired up in this package's init().
package surfinv

import (
	"github.com/cpmech/brepkernel/gmath"
	"github.com/cpmech/brepkernel/surface"
)

// TileState is a tile's position in the Raw -> {Subdivide2, Subdivide4,
// LeafXY, LeafYZ, LeafXZ} state machine. Leaf sub-states record which
// plane the tile's corners were projected onto on first query.
type TileState int

// tile states
const (
	Raw TileState = iota
	Subdivide2
	Subdivide4
	LeafUnprojected
	LeafXY
	LeafYZ
	LeafXZ
)

// Location records a tile's position within its parent
type Location int

// location values
const (
	Root Location = iota
	SW
	SE
	NE
	NW
	W
	E
	S
	N
)

// Overrun reports which edge of a leaf tile's footprint a query point's
// solved (u,v) fell past
type Overrun int

// overrun values
const (
	OverrunNil Overrun = iota
	OverrunW
	OverrunE
	OverrunS
	OverrunN
)

// node is an arena entry: a (u,v) pair and its 3D evaluation
type node struct {
	U, V  float64
	Point gmath.Vec3
}

// tile is an arena entry for one node of the 2D adaptive tile tree
type tile struct {
	Parent        int
	Location      Location
	CenterNode    int
	Corners       [4]int // SW, SE, NE, NW node indices
	Uc, Vc        float64
	Du, Dv        float64
	ChildrenFirst  int
	State          TileState
	Rung           int
	Depth          int
	Row, Col       int // root grid position; valid only when Parent == -1
	ProjectionSlot int // index into Tree.projections, valid once State is a Leaf* state
}

// maxTileDepth caps the quadtree's descent so a degenerate surface
// (or a tolerance tighter than floating-point resolution can satisfy)
// cannot subdivide forever; beyond this depth a tile is forced to leaf.
const maxTileDepth = 12

// Tree is the adaptive 2D tile quadtree bound to a single canonical
// surface for its lifetime. It is thread-confined: a Tree must not be
// queried from more than one goroutine concurrently.
type Tree struct {
	c        surface.Canonical
	cfg      *gmath.Config
	notifier gmath.Notifier
	nodes       []node
	tiles       []tile
	roots       [][]int // roots[row][col], indices into tiles
	uDivs       int
	vDivs       int
	rung        int
	projections []projEntry
}

// projEntry caches a leaf's four corners projected onto its chosen
// plane, keyed by the leaf tile's ProjectionSlot.
type projEntry struct {
	sw, se, ne, nw gmath.Vec2
}

// NewTree builds a Tree for c, seeding a uDivs x vDivs root grid sized 1
// or 4 per axis depending on that axis's linearity (1 if linear, since a
// single bilinear tile already fits a linear axis exactly; 4 otherwise).
// cfg and notifier may be nil.
func NewTree(c surface.Canonical, cfg *gmath.Config, notifier gmath.Notifier) *Tree {
	t := &Tree{
		c:        c,
		cfg:      gmath.OrDefault(cfg),
		notifier: notifier,
	}
	t.uDivs = axisDivs(c.IsLinearU())
	t.vDivs = axisDivs(c.IsLinearV())

	ud, vd := c.UDomain(), c.VDomain()
	uStep := ud.Span() / float64(t.uDivs)
	vStep := vd.Span() / float64(t.vDivs)

	t.roots = make([][]int, t.vDivs)
	for row := 0; row < t.vDivs; row++ {
		t.roots[row] = make([]int, t.uDivs)
		vc := vd.Lo + vStep*(float64(row)+0.5)
		for col := 0; col < t.uDivs; col++ {
			uc := ud.Lo + uStep*(float64(col)+0.5)
			idx := t.newTile(-1, Root, uc, vc, uStep/2, vStep/2)
			t.tiles[idx].Row = row
			t.tiles[idx].Col = col
			t.roots[row][col] = idx
		}
	}
	return t
}

func axisDivs(linear bool) int {
	if linear {
		return 1
	}
	return 4
}

// newTile appends a fully-evaluated (center + 4 corners) Raw tile to the
// arena, guaranteeing headroom for at least 4 more tiles and 5 more
// nodes before returning.
func (t *Tree) newTile(parent int, loc Location, uc, vc, du, dv float64) int {
	depth := 0
	if parent >= 0 {
		depth = t.tiles[parent].Depth + 1
	}
	center := t.addNode(uc, vc)
	sw := t.addNode(uc-du, vc-dv)
	se := t.addNode(uc+du, vc-dv)
	ne := t.addNode(uc+du, vc+dv)
	nw := t.addNode(uc-du, vc+dv)
	idx := t.addTile(tile{
		Parent:     parent,
		Location:   loc,
		CenterNode: center,
		Corners:    [4]int{sw, se, ne, nw},
		Uc:         uc, Vc: vc,
		Du: du, Dv: dv,
		State: Raw,
		Depth: depth,
	})
	return idx
}

func (t *Tree) addNode(u, v float64) int {
	if len(t.nodes)+8 > cap(t.nodes) {
		grown := make([]node, len(t.nodes), (cap(t.nodes)+8)*2)
		copy(grown, t.nodes)
		t.nodes = grown
	}
	t.nodes = append(t.nodes, node{U: u, V: v, Point: t.c.PointCanonical(u, v)})
	return len(t.nodes) - 1
}

func (t *Tree) addTile(tl tile) int {
	if len(t.tiles)+5 > cap(t.tiles) {
		grown := make([]tile, len(t.tiles), (cap(t.tiles)+4)*2)
		copy(grown, t.tiles)
		t.tiles = grown
	}
	t.tiles = append(t.tiles, tl)
	return len(t.tiles) - 1
}
