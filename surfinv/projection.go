// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surfinv

import "github.com/cpmech/brepkernel/gmath"

// project picks the leaf's inverse-bilinear working plane on first
// query: the face normal (from the corner cross products) determines
// which axis dominates, and the corners are projected by dropping that
// axis's component. The projected corners are cached in
// Tree.projections, keyed by ProjectionSlot, so repeated queries into
// the same leaf reuse the projection instead of recomputing it.
func (t *Tree) project(idx int) {
	tl := &t.tiles[idx]
	if tl.State != LeafUnprojected {
		return
	}
	sw := t.nodes[tl.Corners[0]].Point
	se := t.nodes[tl.Corners[1]].Point
	ne := t.nodes[tl.Corners[2]].Point
	nw := t.nodes[tl.Corners[3]].Point

	e := se.Sub(sw)
	f := nw.Sub(sw)
	normal := e.Cross(f).Abs()

	var kind TileState
	var entry projEntry
	switch {
	case normal.X >= normal.Y && normal.X >= normal.Z:
		kind = LeafYZ
		entry = projEntry{
			sw: gmath.NewVec2(sw.Y, sw.Z), se: gmath.NewVec2(se.Y, se.Z),
			ne: gmath.NewVec2(ne.Y, ne.Z), nw: gmath.NewVec2(nw.Y, nw.Z),
		}
	case normal.Y >= normal.X && normal.Y >= normal.Z:
		kind = LeafXZ
		entry = projEntry{
			sw: gmath.NewVec2(sw.X, sw.Z), se: gmath.NewVec2(se.X, se.Z),
			ne: gmath.NewVec2(ne.X, ne.Z), nw: gmath.NewVec2(nw.X, nw.Z),
		}
	default:
		kind = LeafXY
		entry = projEntry{
			sw: gmath.NewVec2(sw.X, sw.Y), se: gmath.NewVec2(se.X, se.Y),
			ne: gmath.NewVec2(ne.X, ne.Y), nw: gmath.NewVec2(nw.X, nw.Y),
		}
	}
	tl.ProjectionSlot = len(t.projections)
	t.projections = append(t.projections, entry)
	tl.State = kind
}

// projectPoint drops the axis corresponding to kind, matching project's
// choice of plane for the leaf's corners.
func projectPoint(kind TileState, p gmath.Vec3) gmath.Vec2 {
	switch kind {
	case LeafYZ:
		return gmath.NewVec2(p.Y, p.Z)
	case LeafXZ:
		return gmath.NewVec2(p.X, p.Z)
	default:
		return gmath.NewVec2(p.X, p.Y)
	}
}
