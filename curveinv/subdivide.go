// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curveinv

import (
	"math"

	"github.com/cpmech/brepkernel/gmath"
)

// subdivide grows the segment at idx in place. It reads the segment by value before appending any
// nodes/children, since appends may relocate the backing arrays; the
// result is written back through idx at the end, which stays valid
// across the arena growth because it addresses a logical slot, not a
// pointer into the old backing array.
func (t *Tree) subdivide(idx int) {
	s := t.segments[idx]
	tc, dt := s.Tc, s.Dt

	leftEndpoint := t.addNode(tc - dt)
	rightEndpoint := t.addNode(tc + dt)
	leftPt := t.nodes[leftEndpoint].Point
	rightPt := t.nodes[rightEndpoint].Point
	centerPt := t.nodes[s.CenterNode].Point

	devSq := gmath.ChordSagittaSq(centerPt, leftPt, rightPt)
	distL := centerPt.Dist(leftPt)
	distR := centerPt.Dist(rightPt)
	symmetric := math.Abs(distL-distR) < t.cfg.FineTess

	if devSq < t.cfg.FineTessSq && symmetric {
		t.segments[idx].LeftNode = leftEndpoint
		t.segments[idx].RightNode = rightEndpoint
		t.segments[idx].State = Leaf
		gmath.Notify(t.notifier, "leaf", idx)
		return
	}

	childLCenter := t.addNode(tc - dt/2)
	childLIdx := t.addSegment(segment{CenterNode: childLCenter, Tc: tc - dt/2, Dt: dt / 2, State: Raw})
	childRCenter := t.addNode(tc + dt/2)
	t.addSegment(segment{CenterNode: childRCenter, Tc: tc + dt/2, Dt: dt / 2, State: Raw})

	t.segments[idx].ChildrenFirst = childLIdx
	t.segments[idx].State = Divided
	gmath.Notify(t.notifier, "subdivide", idx, tc, dt)
}
