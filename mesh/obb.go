// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"

	"github.com/cpmech/brepkernel/gmath"
	"github.com/cpmech/gosl/utl"
)

// obbBox is one node of a CMesh's bounding-volume tree: an
// axis-aligned box in the mesh's own local frame. Left and Right each
// carry the compact child encoding used throughout this kernel's
// arena-of-indices trees, generalized to a binary rather than
// quad/segment branching factor: non-negative is a triangle index
// directly (its vertices are Indices[3*t..3*t+2]; no separate leaf-box
// entry), negative is the
// bitwise-negated index of a child obbBox.
type obbBox struct {
	Center, Half gmath.Vec3
	Left, Right  int
}

// CMesh is a mesh's collision representation: Points/Indices hold the
// same triangle soup a Mesh's Vertices/Triangles do (stripped down to
// position, since collision needs no normals), Boxes is the OBB tree
// arena with the root at index 1 (index 0 is reserved, never
// addressed by any Left/Right field), and Xfm places the mesh's local
// frame in world space.
type CMesh struct {
	Points  []gmath.Vec3
	Indices []int
	Boxes   []obbBox
	Xfm     gmath.Mat4
}

// NewCMesh builds a CMesh's OBB tree over points/indices (a flat
// triangle-index triple list), placed in world space by xfm.
func NewCMesh(points []gmath.Vec3, indices []int, xfm gmath.Mat4) *CMesh {
	cm := &CMesh{Points: points, Indices: indices, Xfm: xfm, Boxes: make([]obbBox, 1)}
	triCount := len(indices) / 3
	if triCount == 0 {
		return cm
	}
	all := make([]int, triCount)
	for i := range all {
		all[i] = i
	}
	cm.build(all)
	return cm
}

// Bound returns the root OBB's axis-aligned bounding box, in cm's own
// local space (i.e. before Xfm). It is empty if cm holds no triangles.
func (cm *CMesh) Bound() gmath.Bound3 {
	if len(cm.Boxes) < 2 {
		return gmath.EmptyBound()
	}
	root := cm.Boxes[1]
	b := gmath.EmptyBound()
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				corner := root.Center.Add(gmath.NewVec3(sx*root.Half.X, sy*root.Half.Y, sz*root.Half.Z))
				b = b.Extend(corner)
			}
		}
	}
	return b
}

func (cm *CMesh) triCentroid(tri int) gmath.Vec3 {
	a, b, c := cm.triVerts(tri)
	return a.Add(b).Add(c).Scale(1.0 / 3.0)
}

func (cm *CMesh) triVerts(tri int) (a, b, c gmath.Vec3) {
	i := cm.Indices[3*tri]
	j := cm.Indices[3*tri+1]
	k := cm.Indices[3*tri+2]
	return cm.Points[i], cm.Points[j], cm.Points[k]
}

func (cm *CMesh) triBound(tri int) (center, half gmath.Vec3) {
	a, b, c := cm.triVerts(tri)
	bnd := gmath.EmptyBound().Extend(a).Extend(b).Extend(c)
	return bnd.Center(), bnd.HalfExtents()
}

func (cm *CMesh) rangeBound(tris []int) gmath.Bound3 {
	bnd := gmath.EmptyBound()
	for _, tri := range tris {
		a, b, c := cm.triVerts(tri)
		bnd = bnd.Extend(a).Extend(b).Extend(c)
	}
	return bnd
}

// build appends one obbBox spanning tris and returns its index,
// recursing only into sides that still hold more than one triangle
// (a single-triangle side is embedded directly as a non-negative
// child reference, with no box entry of its own).
func (cm *CMesh) build(tris []int) int {
	bnd := cm.rangeBound(tris)
	left, right := cm.partition(tris)

	// reserve this box's slot before recursing, so a parent precedes its
	// children and the first call's box (the root) lands at index 1
	idx := len(cm.Boxes)
	cm.Boxes = append(cm.Boxes, obbBox{})

	var leftRef, rightRef int
	if len(left) == 1 {
		leftRef = left[0]
	} else {
		leftRef = ^cm.build(left)
	}
	if len(right) == 1 {
		rightRef = right[0]
	} else if len(right) == 0 {
		rightRef = leftRef
	} else {
		rightRef = ^cm.build(right)
	}

	cm.Boxes[idx] = obbBox{Center: bnd.Center(), Half: bnd.HalfExtents(), Left: leftRef, Right: rightRef}
	return idx
}

// partition splits tris by centroid position against the mean centroid,
// trying the local axes in order of decreasing centroid variance and
// taking the first that leaves both sides non-empty; if none does (e.g.
// every centroid coincides), it falls back to a straight median-index
// split.
func (cm *CMesh) partition(tris []int) (left, right []int) {
	if len(tris) <= 1 {
		return tris, nil
	}
	var mean gmath.Vec3
	centroids := make([]gmath.Vec3, len(tris))
	for i, tri := range tris {
		centroids[i] = cm.triCentroid(tri)
		mean = mean.Add(centroids[i])
	}
	mean = mean.Scale(1 / float64(len(tris)))

	var varSum gmath.Vec3
	for _, c := range centroids {
		d := c.Sub(mean)
		varSum = varSum.Add(gmath.NewVec3(d.X*d.X, d.Y*d.Y, d.Z*d.Z))
	}
	axes := []int{0, 1, 2}
	variance := [3]float64{varSum.X, varSum.Y, varSum.Z}
	// descending-variance order via a 3-element insertion sort
	if variance[axes[0]] < variance[axes[1]] {
		axes[0], axes[1] = axes[1], axes[0]
	}
	if variance[axes[1]] < variance[axes[2]] {
		axes[1], axes[2] = axes[2], axes[1]
	}
	if variance[axes[0]] < variance[axes[1]] {
		axes[0], axes[1] = axes[1], axes[0]
	}

	for _, axis := range axes {
		var l, r []int
		for i, tri := range tris {
			if axisOf(centroids[i], axis) < axisOf(mean, axis) {
				l = append(l, tri)
			} else {
				r = append(r, tri)
			}
		}
		if len(l) > 0 && len(r) > 0 {
			return l, r
		}
	}
	mid := len(tris) / 2
	return append([]int{}, tris[:mid]...), append([]int{}, tris[mid:]...)
}

func axisOf(v gmath.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// TrianglePair identifies one colliding triangle from each mesh, by
// index into that mesh's Indices triples.
type TrianglePair struct {
	A, B int
}

// Collide tests a's and b's OBB trees for intersection. If firstOnly
// is set, it returns at most one pair and stops at first contact;
// otherwise it records every colliding triangle pair. The smaller tree
// (by triangle count) is always made to drive the recursion.
func Collide(a, b *CMesh, firstOnly bool) []TrianglePair {
	if len(a.Indices) == 0 || len(b.Indices) == 0 {
		return nil
	}
	if len(a.Indices) > len(b.Indices) {
		pairs := Collide(b, a, firstOnly)
		for i := range pairs {
			pairs[i].A, pairs[i].B = pairs[i].B, pairs[i].A
		}
		return pairs
	}

	aInv, err := a.Xfm.Inverse()
	if err != nil {
		return nil
	}
	m1to0 := aInv.Mul(b.Xfm)
	r, absR := rotationOf(m1to0)

	var pairs []TrianglePair
	stopped := false

	var recurse func(refA, refB int)
	recurse = func(refA, refB int) {
		if stopped {
			return
		}
		centerA, halfA := a.boxOf(refA)
		centerB, halfB := b.boxOf(refB)
		t := m1to0.TransformPoint(centerB).Sub(centerA)
		if !obbOverlap(halfA, halfB, r, absR, t) {
			return
		}

		aLeaf, bLeaf := refA >= 0, refB >= 0
		switch {
		case aLeaf && bLeaf:
			a0, a1, a2 := a.triVerts(refA)
			b0, b1, b2 := b.triVerts(refB)
			b0a := m1to0.TransformPoint(b0)
			b1a := m1to0.TransformPoint(b1)
			b2a := m1to0.TransformPoint(b2)
			if triangleOverlap(a0, a1, a2, b0a, b1a, b2a) {
				pairs = append(pairs, TrianglePair{refA, refB})
				if firstOnly {
					stopped = true
				}
			}
		case aLeaf:
			box := b.Boxes[^refB]
			recurse(refA, box.Left)
			recurse(refA, box.Right)
		case bLeaf:
			box := a.Boxes[^refA]
			recurse(box.Left, refB)
			recurse(box.Right, refB)
		default:
			boxA := a.Boxes[^refA]
			boxB := b.Boxes[^refB]
			recurse(boxA.Left, boxB.Left)
			recurse(boxA.Left, boxB.Right)
			recurse(boxA.Right, boxB.Left)
			recurse(boxA.Right, boxB.Right)
		}
	}
	recurse(^1, ^1)
	return pairs
}

// boxOf returns the center/half-extents of ref, which is either a
// triangle's own tight box (non-negative) or a stored obbBox
// (negative).
func (cm *CMesh) boxOf(ref int) (center, half gmath.Vec3) {
	if ref >= 0 {
		return cm.triBound(ref)
	}
	b := cm.Boxes[^ref]
	return b.Center, b.Half
}

// rotationOf extracts m's linear part as a plain 3x3 array (and its
// component-wise absolute value, used throughout the separating-axis
// test) by transforming the world basis vectors.
func rotationOf(m gmath.Mat4) (r, absR [3][3]float64) {
	cols := [3]gmath.Vec3{
		m.TransformDir(gmath.NewVec3(1, 0, 0)),
		m.TransformDir(gmath.NewVec3(0, 1, 0)),
		m.TransformDir(gmath.NewVec3(0, 0, 1)),
	}
	for j, col := range cols {
		r[0][j], r[1][j], r[2][j] = col.X, col.Y, col.Z
		absR[0][j], absR[1][j], absR[2][j] = math.Abs(col.X), math.Abs(col.Y), math.Abs(col.Z)
	}
	return
}

// obbOverlap is the 15-axis separating-axis test between two boxes
// with half-extents halfA/halfB, expressed in A's frame: three
// class-I axes (A's own basis), three class-II axes (B's basis
// rotated into A via r), and nine class-III cross-product axes. t is
// the vector from A's box center to B's box center, in A's frame.
func obbOverlap(halfA, halfB gmath.Vec3, r, absR [3][3]float64, t gmath.Vec3) bool {
	a := [3]float64{halfA.X, halfA.Y, halfA.Z}
	b := [3]float64{halfB.X, halfB.Y, halfB.Z}
	tv := [3]float64{t.X, t.Y, t.Z}

	for i := 0; i < 3; i++ {
		ra := a[i]
		rb := b[0]*absR[i][0] + b[1]*absR[i][1] + b[2]*absR[i][2]
		if math.Abs(tv[i]) > ra+rb {
			return false
		}
	}
	for j := 0; j < 3; j++ {
		ra := a[0]*absR[0][j] + a[1]*absR[1][j] + a[2]*absR[2][j]
		rb := b[j]
		tp := tv[0]*r[0][j] + tv[1]*r[1][j] + tv[2]*r[2][j]
		if math.Abs(tp) > ra+rb {
			return false
		}
	}
	complement := [3][2]int{{1, 2}, {0, 2}, {0, 1}}
	for i := 0; i < 3; i++ {
		k, l := complement[i][0], complement[i][1]
		for j := 0; j < 3; j++ {
			k2, l2 := complement[j][0], complement[j][1]
			ra := a[k]*absR[l][j] + a[l]*absR[k][j]
			rb := b[k2]*absR[i][l2] + b[l2]*absR[i][k2]
			tp := tv[l]*r[k][j] - tv[k]*r[l][j]
			if math.Abs(tp) > ra+rb {
				return false
			}
		}
	}
	return true
}

// triangleOverlap is an exact SAT test between two triangles given in
// the same frame: the two face normals plus the nine edge-cross-edge
// axes.
func triangleOverlap(a0, a1, a2, b0, b1, b2 gmath.Vec3) bool {
	axes := make([]gmath.Vec3, 0, 11)
	axes = append(axes, a1.Sub(a0).Cross(a2.Sub(a0)), b1.Sub(b0).Cross(b2.Sub(b0)))
	aEdges := [3]gmath.Vec3{a1.Sub(a0), a2.Sub(a1), a0.Sub(a2)}
	bEdges := [3]gmath.Vec3{b1.Sub(b0), b2.Sub(b1), b0.Sub(b2)}
	for _, ea := range aEdges {
		for _, eb := range bEdges {
			axes = append(axes, ea.Cross(eb))
		}
	}
	for _, axis := range axes {
		if axis.LengthSq() < 1e-24 {
			continue
		}
		aMin, aMax := projectTri(axis, a0, a1, a2)
		bMin, bMax := projectTri(axis, b0, b1, b2)
		if aMax < bMin || bMax < aMin {
			return false
		}
	}
	return true
}

func projectTri(axis, p0, p1, p2 gmath.Vec3) (lo, hi float64) {
	d0, d1, d2 := axis.Dot(p0), axis.Dot(p1), axis.Dot(p2)
	lo = utl.Min(d0, utl.Min(d1, d2))
	hi = utl.Max(d0, utl.Max(d1, d2))
	return
}
