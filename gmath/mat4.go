// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmath

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Mat4 is a 4x4 affine transform in row-major order: rows 0-2 hold the
// linear part and translation, row 3 is always (0,0,0,1). It backs both
// the curve/surface "transformed(matrix)" operation and the CSSurface
// to_xfm/from_xfm loft.
type Mat4 struct {
	M [4][4]float64
}

// Identity4 returns the 4x4 identity transform
func Identity4() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m.M[i][i] = 1
	}
	return m
}

// Translation4 returns a pure translation transform
func Translation4(t Vec3) Mat4 {
	m := Identity4()
	m.M[0][3] = t.X
	m.M[1][3] = t.Y
	m.M[2][3] = t.Z
	return m
}

// FromBasis builds the loft transform of a coordinate system: origin plus
// three orthonormal axes, used by CSSurface/Arc/Ellipse to bring a
// canonical-space shape into world position
func FromBasis(origin, x, y, z Vec3) Mat4 {
	var m Mat4
	m.M[0][0], m.M[0][1], m.M[0][2], m.M[0][3] = x.X, y.X, z.X, origin.X
	m.M[1][0], m.M[1][1], m.M[1][2], m.M[1][3] = x.Y, y.Y, z.Y, origin.Y
	m.M[2][0], m.M[2][1], m.M[2][2], m.M[2][3] = x.Z, y.Z, z.Z, origin.Z
	m.M[3][3] = 1
	return m
}

// TransformPoint applies m to a point (implicit w=1)
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		m.M[0][0]*p.X + m.M[0][1]*p.Y + m.M[0][2]*p.Z + m.M[0][3],
		m.M[1][0]*p.X + m.M[1][1]*p.Y + m.M[1][2]*p.Z + m.M[1][3],
		m.M[2][0]*p.X + m.M[2][1]*p.Y + m.M[2][2]*p.Z + m.M[2][3],
	}
}

// TransformDir applies only the linear part of m to a direction (w=0)
func (m Mat4) TransformDir(d Vec3) Vec3 {
	return Vec3{
		m.M[0][0]*d.X + m.M[0][1]*d.Y + m.M[0][2]*d.Z,
		m.M[1][0]*d.X + m.M[1][1]*d.Y + m.M[1][2]*d.Z,
		m.M[2][0]*d.X + m.M[2][1]*d.Y + m.M[2][2]*d.Z,
	}
}

// Mul returns m*other (apply other first, then m)
func (m Mat4) Mul(other Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s float64
			for k := 0; k < 4; k++ {
				s += m.M[i][k] * other.M[k][j]
			}
			r.M[i][j] = s
		}
	}
	return r
}

// linear3 extracts the upper-left 3x3 linear block as a [][]float64
// suitable for gosl/la, mirroring shp's DxdR scratchpad convention
func (m Mat4) linear3() [][]float64 {
	a := make([][]float64, 3)
	for i := 0; i < 3; i++ {
		a[i] = []float64{m.M[i][0], m.M[i][1], m.M[i][2]}
	}
	return a
}

// Inverse returns the inverse affine transform. It uses gosl/la.MatInv on
// the 3x3 linear block (grounded on shp/algos.go's InvMap: "Jimat =
// Jmat.inverse()") and inverts the translation as -Rinv*t.
func (m Mat4) Inverse() (Mat4, error) {
	a := m.linear3()
	ai := la.MatClone(a)
	det, err := la.MatInv(ai, a, 1e-14)
	if err != nil {
		return Mat4{}, chk.Err("gmath: cannot invert singular transform: %v", err)
	}
	if math.Abs(det) < 1e-14 {
		return Mat4{}, chk.Err("gmath: transform determinant too small to invert (det=%v)", det)
	}
	t := Vec3{m.M[0][3], m.M[1][3], m.M[2][3]}
	var out Mat4
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.M[i][j] = ai[i][j]
		}
	}
	ti := out.TransformDir(t).Neg()
	out.M[0][3], out.M[1][3], out.M[2][3] = ti.X, ti.Y, ti.Z
	out.M[3][3] = 1
	return out, nil
}
