// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surfinv

import (
	"math"

	"github.com/cpmech/brepkernel/gmath"
)

const maxDescendDepth = 48

// maxQueryRetries bounds how many times Query re-routes its descent
// after a leaf's inverse bilinear solve overruns the tile it solved in.
// A true neighbor-walk (stepping to the sibling or parent named by the
// overrun direction, via each tile's Location and root Row/Col) would
// reach the correct tile in one hop instead of re-selecting a root by
// nearest center; re-routing from the solved point is simpler to get
// right and converges just as well for the smoothly-varying surfaces
// this inverter targets, at the cost of a few wasted descents.
const maxQueryRetries = 4

// Query returns the (u,v) pair whose PointCanonical is closest to p.
func (t *Tree) Query(p gmath.Vec3) gmath.Vec2 {
	t.rung++
	route := p
	var best gmath.Vec2
	bestDist := math.Inf(1)
	for retry := 0; retry <= maxQueryRetries; retry++ {
		uv, overrun := t.queryOnce(route, p)
		pt := t.c.PointCanonical(uv.X, uv.Y)
		if d := pt.DistSq(p); d < bestDist {
			bestDist, best = d, uv
		}
		if overrun == OverrunNil {
			break
		}
		route = pt
	}
	return best
}

func (t *Tree) queryOnce(routeTarget, solveTarget gmath.Vec3) (gmath.Vec2, Overrun) {
	root := t.closestRoot(routeTarget)
	return t.descend(root, routeTarget, solveTarget, 0)
}

func (t *Tree) closestRoot(p gmath.Vec3) int {
	best := t.roots[0][0]
	bestDist := t.nodes[t.tiles[best].CenterNode].Point.DistSq(p)
	for _, row := range t.roots {
		for _, idx := range row {
			d := t.nodes[t.tiles[idx].CenterNode].Point.DistSq(p)
			if d < bestDist {
				bestDist, best = d, idx
			}
		}
	}
	return best
}

func (t *Tree) descend(idx int, routeTarget, solveTarget gmath.Vec3, depth int) (gmath.Vec2, Overrun) {
	if depth >= maxDescendDepth {
		return gmath.NewVec2(t.tiles[idx].Uc, t.tiles[idx].Vc), OverrunNil
	}
	if t.tiles[idx].State == Raw {
		t.subdivide(idx)
	}
	switch t.tiles[idx].State {
	case Subdivide2, Subdivide4:
		return t.descend(t.closestChild(idx, routeTarget), routeTarget, solveTarget, depth+1)
	default:
		t.project(idx)
		return t.solveLeaf(idx, solveTarget)
	}
}

func (t *Tree) closestChild(idx int, p gmath.Vec3) int {
	first := t.tiles[idx].ChildrenFirst
	n := 2
	if t.tiles[idx].State == Subdivide4 {
		n = 4
	}
	best := first
	bestDist := t.nodes[t.tiles[first].CenterNode].Point.DistSq(p)
	for i := 1; i < n; i++ {
		c := first + i
		d := t.nodes[t.tiles[c].CenterNode].Point.DistSq(p)
		if d < bestDist {
			bestDist, best = d, c
		}
	}
	return best
}

// solveLeaf performs inverse bilinear on the leaf's four corners,
// projected into its chosen plane, following the standard bilinear
// quad-inversion quadratic (e,f,g,h coefficients, k0/k1/k2 roots).
func (t *Tree) solveLeaf(idx int, p gmath.Vec3) (gmath.Vec2, Overrun) {
	tl := t.tiles[idx]
	entry := t.projections[tl.ProjectionSlot]
	s := projectPoint(tl.State, p)

	a, b, c, d := entry.sw, entry.se, entry.ne, entry.nw
	e := b.Sub(a)
	f := d.Sub(a)
	g := a.Sub(b).Add(c).Sub(d)
	h := s.Sub(a)

	k2 := g.X*f.Y - g.Y*f.X
	k1 := e.X*f.Y - e.Y*f.X + g.Y*h.X - g.X*h.Y
	k0 := h.X*e.Y - e.X*h.Y

	var v float64
	const eps = 1e-12
	if math.Abs(k2) < eps {
		if math.Abs(k1) < eps {
			v = 0.5
		} else {
			v = -k0 / k1
		}
	} else {
		disc := k1*k1 - 4*k2*k0
		if disc < 0 {
			disc = 0
		}
		sq := math.Sqrt(disc)
		v1 := (-k1 + sq) / (2 * k2)
		v2 := (-k1 - sq) / (2 * k2)
		if math.Abs(v1-0.5) <= math.Abs(v2-0.5) {
			v = v1
		} else {
			v = v2
		}
	}

	denomX := e.X + g.X*v
	denomY := e.Y + g.Y*v
	var u float64
	if math.Abs(denomX) >= math.Abs(denomY) {
		if math.Abs(denomX) < eps {
			u = 0.5
		} else {
			u = (h.X - f.X*v) / denomX
		}
	} else {
		if math.Abs(denomY) < eps {
			u = 0.5
		} else {
			u = (h.Y - f.Y*v) / denomY
		}
	}

	overrun := OverrunNil
	switch {
	case u < 0:
		overrun = OverrunW
	case u > 1:
		overrun = OverrunE
	case v < 0:
		overrun = OverrunS
	case v > 1:
		overrun = OverrunN
	}

	uAct := tl.Uc - tl.Du + u*2*tl.Du
	vAct := tl.Vc - tl.Dv + v*2*tl.Dv
	return gmath.NewVec2(uAct, vAct), overrun
}
