// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curveinv

import "github.com/cpmech/brepkernel/gmath"

// maxDescendDepth bounds the descent so a pathological curve (a cusp, a
// degenerate span) cannot spin the tree forever; it is reached only when
// FineTess is tighter than the curve's own floating-point resolution.
const maxDescendDepth = 48

// Query recovers the parameter t nearest to p, walking down from
// whichever root segment has the closest center. Overrun past a leaf's
// chord triggers one retry on the neighboring root segment; whichever of
// the two resulting 3D evaluations lands closer to p wins.
func (t *Tree) Query(p gmath.Vec3) (float64, Overrun) {
	best := -1
	bestDistSq := 0.0
	for i, ri := range t.roots {
		d := p.DistSq(t.nodes[t.segments[ri].CenterNode].Point)
		if i == 0 || d < bestDistSq {
			bestDistSq = d
			best = i
		}
	}

	tVal, ov := t.descend(t.roots[best], p, 0)
	if ov == OverrunNil {
		return tVal, ov
	}

	neighbor := best - 1
	if ov == OverrunRight {
		neighbor = best + 1
	}
	if neighbor < 0 || neighbor >= len(t.roots) {
		return tVal, ov
	}

	tAlt, ovAlt := t.descend(t.roots[neighbor], p, 0)
	ptFirst := t.c.Point(tVal)
	ptAlt := t.c.Point(tAlt)
	if p.DistSq(ptAlt) < p.DistSq(ptFirst) {
		return tAlt, ovAlt
	}
	return tVal, ov
}

// descend walks segment idx toward p, subdividing Raw segments in place
// and recursing into whichever child of a Divided segment has the
// closer center, until it reaches a Leaf and interpolates.
func (t *Tree) descend(idx int, p gmath.Vec3, depth int) (float64, Overrun) {
	if t.segments[idx].State == Raw && depth < maxDescendDepth {
		t.subdivide(idx)
	}

	switch t.segments[idx].State {
	case Divided:
		first := t.segments[idx].ChildrenFirst
		dL := p.DistSq(t.nodes[t.segments[first].CenterNode].Point)
		dR := p.DistSq(t.nodes[t.segments[first+1].CenterNode].Point)
		if dR < dL {
			return t.descend(first+1, p, depth+1)
		}
		return t.descend(first, p, depth+1)

	case Leaf:
		return t.interpolate(idx, p)

	default: // Raw that hit maxDescendDepth: it has no endpoint nodes, so
		// its center parameter is returned
		return t.nodes[t.segments[idx].CenterNode].T, OverrunNil
	}
}

// interpolate projects p onto the chord spanning a leaf segment's two
// endpoint nodes and blends their parameters accordingly, reporting
// whether the projection fell outside [0,1] on the chord.
func (t *Tree) interpolate(idx int, p gmath.Vec3) (float64, Overrun) {
	s := t.segments[idx]
	left := t.nodes[s.LeftNode]
	right := t.nodes[s.RightNode]

	chord := right.Point.Sub(left.Point)
	l2 := chord.LengthSq()
	if l2 < 1e-300 {
		return left.T, OverrunNil
	}
	lie := p.Sub(left.Point).Dot(chord) / l2

	ov := OverrunNil
	if lie < 0 {
		ov = OverrunLeft
	} else if lie > 1 {
		ov = OverrunRight
	}
	return left.T + lie*(right.T-left.T), ov
}
