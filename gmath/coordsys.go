// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmath

import "github.com/cpmech/gosl/chk"

// CoordSys is a local right-handed orthonormal frame: Arc, Ellipse and
// every CSSurface variant are defined in canonical space and lofted into
// world space by a CoordSys.
type CoordSys struct {
	Origin  Vec3
	X, Y, Z Vec3
}

// NewCoordSys builds a CoordSys from an origin and two axes; Z is derived
// as X cross Y and Y is re-orthogonalized against X and Z so that the
// frame stays orthonormal even if the caller's y was only approximate
func NewCoordSys(origin, x, y Vec3) (CoordSys, error) {
	xn := x.Normalize()
	if xn.LengthSq() < Epsilon {
		return CoordSys{}, chk.Err("gmath: coordinate system x-axis must be non-zero")
	}
	zn := xn.Cross(y).Normalize()
	if zn.LengthSq() < Epsilon {
		return CoordSys{}, chk.Err("gmath: coordinate system x and y axes must not be parallel")
	}
	yn := zn.Cross(xn).Normalize()
	return CoordSys{Origin: origin, X: xn, Y: yn, Z: zn}, nil
}

// ToXfm returns the canonical-to-world loft transform
func (cs CoordSys) ToXfm() Mat4 {
	return FromBasis(cs.Origin, cs.X, cs.Y, cs.Z)
}

// FromXfm returns the world-to-canonical transform; it satisfies
// FromXfm = ToXfm^-1. Since CoordSys axes are
// kept orthonormal this is computed directly via the transpose of the
// rotation block rather than a general 3x3 inverse.
func (cs CoordSys) FromXfm() Mat4 {
	m := Identity4()
	m.M[0][0], m.M[0][1], m.M[0][2] = cs.X.X, cs.X.Y, cs.X.Z
	m.M[1][0], m.M[1][1], m.M[1][2] = cs.Y.X, cs.Y.Y, cs.Y.Z
	m.M[2][0], m.M[2][1], m.M[2][2] = cs.Z.X, cs.Z.Y, cs.Z.Z
	t := Vec3{cs.Origin.X, cs.Origin.Y, cs.Origin.Z}
	local := m.TransformDir(t).Neg()
	m.M[0][3], m.M[1][3], m.M[2][3] = local.X, local.Y, local.Z
	return m
}

// ToWorld transforms a canonical-space point into world space
func (cs CoordSys) ToWorld(p Vec3) Vec3 {
	return cs.ToXfm().TransformPoint(p)
}

// ToLocal transforms a world-space point into canonical space
func (cs CoordSys) ToLocal(p Vec3) Vec3 {
	return cs.FromXfm().TransformPoint(p)
}
