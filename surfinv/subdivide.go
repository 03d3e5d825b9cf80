// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surfinv

import "github.com/cpmech/brepkernel/gmath"

// diagonalTolSq is the squared-deviation tolerance used both to decide
// whether a tile's center is well-described by its diagonals (mark
// leaf) and whether an edge midpoint strays from its chord (divide).
const diagonalTolSq = 0.0001

// subdivide grows the tile at idx in place: it marks the tile a leaf if
// its bilinear patch already fits within tolerance, otherwise emits 2
// or 4 children. Reads the tile by value before any arena append, since
// append may relocate the backing arrays.
func (t *Tree) subdivide(idx int) {
	tl := t.tiles[idx]
	if tl.Depth >= maxTileDepth {
		t.tiles[idx].State = LeafUnprojected
		gmath.Notify(t.notifier, "leaf-depth-capped", idx)
		return
	}

	sw := t.nodes[tl.Corners[0]].Point
	se := t.nodes[tl.Corners[1]].Point
	ne := t.nodes[tl.Corners[2]].Point
	nw := t.nodes[tl.Corners[3]].Point
	center := t.nodes[tl.CenterNode].Point

	devDiag1 := gmath.ChordSagittaSq(center, sw, ne)
	devDiag2 := gmath.ChordSagittaSq(center, se, nw)
	if devDiag1 > diagonalTolSq && devDiag2 > diagonalTolSq {
		t.tiles[idx].State = LeafUnprojected
		gmath.Notify(t.notifier, "leaf", idx)
		return
	}

	uc, vc, du, dv := tl.Uc, tl.Vc, tl.Du, tl.Dv
	midS := t.c.PointCanonical(uc, vc-dv) // south edge midpoint
	midN := t.c.PointCanonical(uc, vc+dv) // north edge midpoint
	midW := t.c.PointCanonical(uc-du, vc) // west edge midpoint
	midE := t.c.PointCanonical(uc+du, vc) // east edge midpoint

	divideU := gmath.ChordSagittaSq(midS, sw, se) > diagonalTolSq ||
		gmath.ChordSagittaSq(midN, nw, ne) > diagonalTolSq
	divideV := gmath.ChordSagittaSq(midW, sw, nw) > diagonalTolSq ||
		gmath.ChordSagittaSq(midE, se, ne) > diagonalTolSq

	if !divideU && !divideV {
		divideU, divideV = true, true // break ties by splitting both
	}

	switch {
	case divideU && divideV:
		t.emitQuadSplit(idx, uc, vc, du, dv)
	case divideU:
		first := t.newTile(idx, W, uc-du/2, vc, du/2, dv)
		t.newTile(idx, E, uc+du/2, vc, du/2, dv)
		t.tiles[idx].ChildrenFirst = first
		t.tiles[idx].State = Subdivide2
	case divideV:
		first := t.newTile(idx, S, uc, vc-dv/2, du, dv/2)
		t.newTile(idx, N, uc, vc+dv/2, du, dv/2)
		t.tiles[idx].ChildrenFirst = first
		t.tiles[idx].State = Subdivide2
	}
	gmath.Notify(t.notifier, "subdivide", idx, t.tiles[idx].State)
}

// emitQuadSplit appends the four children of a 4-way split and marks
// the parent tile accordingly. Children are numbered SW, SE, NE, NW.
func (t *Tree) emitQuadSplit(idx int, uc, vc, du, dv float64) {
	hu, hv := du/2, dv/2
	first := t.newTile(idx, SW, uc-hu, vc-hv, hu, hv)
	t.newTile(idx, SE, uc+hu, vc-hv, hu, hv)
	t.newTile(idx, NE, uc+hu, vc+hv, hu, hv)
	t.newTile(idx, NW, uc-hu, vc+hv, hu, hv)
	t.tiles[idx].ChildrenFirst = first
	t.tiles[idx].State = Subdivide4
}

