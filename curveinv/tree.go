// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package curveinv implements the adaptive 1D segment tree that recovers
// a curve parameter t from a 3D point. It is the sole
// importer of package curve that also needs curve to call back into it
// (NurbsCurve.GetT); the cycle is broken by curve.RegisterInverter, wired
// up in this package's init().
package curveinv

import (
	"github.com/cpmech/brepkernel/curve"
	"github.com/cpmech/brepkernel/gmath"
)

// SegState is a segment's position in the Raw -> {Divided, Leaf}
// state machine
type SegState int

// segment states
const (
	Raw SegState = iota
	Divided
	Leaf
)

// Overrun reports which side of a leaf segment's chord a query point
// projected past
type Overrun int

// overrun values
const (
	OverrunNil Overrun = iota
	OverrunLeft
	OverrunRight
)

// node is an arena entry: a parameter value and its 3D evaluation
type node struct {
	T     float64
	Point gmath.Vec3
}

// segment is an arena entry for one node of the 1D adaptive tree
type segment struct {
	CenterNode    int
	LeftNode      int // valid only once State != Raw
	RightNode     int
	ChildrenFirst int // base index of the two children, once Divided
	Dt            float64
	Tc            float64
	State         SegState
}

// rootSegments is the number of equal segments the domain is seeded with
const rootSegments = 4

// Tree is the adaptive 1D segment tree bound to a single curve for its
// lifetime. It is thread-confined: a Tree must not be queried from more
// than one goroutine concurrently.
type Tree struct {
	c        curve.Curve
	cfg      *gmath.Config
	notifier gmath.Notifier
	nodes    []node
	segments []segment
	roots    []int // indices into segments of the rootSegments root nodes
	rung     int
}

// NewTree builds a Tree for c, seeding rootSegments equal root segments
// over c.Domain(). cfg and notifier may be nil.
func NewTree(c curve.Curve, cfg *gmath.Config, notifier gmath.Notifier) *Tree {
	t := &Tree{
		c:        c,
		cfg:      gmath.OrDefault(cfg),
		notifier: notifier,
	}
	d := c.Domain()
	span := d.Span() / rootSegments
	t.roots = make([]int, rootSegments)
	for i := 0; i < rootSegments; i++ {
		tc := d.Lo + span*(float64(i)+0.5)
		center := t.addNode(tc)
		t.roots[i] = t.addSegment(segment{CenterNode: center, Dt: span / 2, Tc: tc, State: Raw})
	}
	return t
}

// addNode appends a node to the arena, evaluating c.Point(t), guaranteeing
// headroom for at least 4 more nodes before returning
func (t *Tree) addNode(tParam float64) int {
	if len(t.nodes)+5 > cap(t.nodes) {
		grown := make([]node, len(t.nodes), (cap(t.nodes)+4)*2)
		copy(grown, t.nodes)
		t.nodes = grown
	}
	t.nodes = append(t.nodes, node{T: tParam, Point: t.c.Point(tParam)})
	return len(t.nodes) - 1
}

// addSegment appends a segment to the arena, guaranteeing headroom for
// at least 2 more segments before returning
func (t *Tree) addSegment(s segment) int {
	if len(t.segments)+3 > cap(t.segments) {
		grown := make([]segment, len(t.segments), (cap(t.segments)+2)*2)
		copy(grown, t.segments)
		t.segments = grown
	}
	t.segments = append(t.segments, s)
	return len(t.segments) - 1
}
