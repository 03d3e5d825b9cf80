// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmath

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// Bound3 is an axis-aligned bounding box, used by the mesher (wire/tri
// bounds), the slicer (AABB separating-slab pre-test) and the OBB tree
// builder (per-triangle AABB)
type Bound3 struct {
	Min, Max Vec3
	empty    bool
}

// EmptyBound returns a bound containing no points
func EmptyBound() Bound3 {
	return Bound3{empty: true}
}

// Extend grows b to include p, grounded on inp/msh.go's
// utl.Min/utl.Max running-bound accumulation pattern
func (b Bound3) Extend(p Vec3) Bound3 {
	if b.empty {
		return Bound3{Min: p, Max: p}
	}
	return Bound3{
		Min: Vec3{utl.Min(b.Min.X, p.X), utl.Min(b.Min.Y, p.Y), utl.Min(b.Min.Z, p.Z)},
		Max: Vec3{utl.Max(b.Max.X, p.X), utl.Max(b.Max.Y, p.Y), utl.Max(b.Max.Z, p.Z)},
	}
}

// Union returns the bound enclosing both b and o
func (b Bound3) Union(o Bound3) Bound3 {
	if b.empty {
		return o
	}
	if o.empty {
		return b
	}
	return b.Extend(o.Min).Extend(o.Max)
}

// Center returns the midpoint of the bound
func (b Bound3) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// HalfExtents returns half the bound's size along each axis
func (b Bound3) HalfExtents() Vec3 {
	return b.Max.Sub(b.Min).Scale(0.5)
}

// Radius returns the bound's bounding-sphere radius (half-diagonal
// length)
func (b Bound3) Radius() float64 {
	return b.HalfExtents().Length()
}

// Overlaps reports whether b and o intersect
func (b Bound3) Overlaps(o Bound3) bool {
	if b.empty || o.empty {
		return false
	}
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// DistToPlaneExceedsRadius implements the slicer's separating-slab
// rejection test: a mesh's AABB cannot be cut by plane (n,d) if the
// projected AABB radius is smaller than the plane distance from the
// AABB center
func (b Bound3) DistToPlaneExceedsRadius(n Vec3, d float64) bool {
	c := b.Center()
	h := b.HalfExtents()
	projRadius := math.Abs(n.X)*h.X + math.Abs(n.Y)*h.Y + math.Abs(n.Z)*h.Z
	dist := math.Abs(n.Dot(c) + d)
	return dist > projRadius
}
