// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"

	"github.com/cpmech/brepkernel/curve"
	"github.com/cpmech/brepkernel/gmath"
	"github.com/cpmech/gosl/chk"
)

// SpunSurface is the canonical surface swept by rotating a generatrix
// curve lying on the XZ plane about the z-axis: u is the rotation
// angle, v is the generatrix's own parameter.
type SpunSurface struct {
	Generatrix curve.Curve
}

// NewSpunSurface builds a SpunSurface from generatrix, rejecting any
// curve that does not lie entirely on the XZ plane.
func NewSpunSurface(generatrix curve.Curve) (*SpunSurface, error) {
	if !generatrix.OnXZPlane() {
		return nil, chk.Err("spun surface: generatrix must lie on the XZ plane")
	}
	return &SpunSurface{Generatrix: generatrix}, nil
}

func (s *SpunSurface) PointCanonical(u, v float64) gmath.Vec3 {
	g := s.Generatrix.Point(v)
	cu, su := math.Cos(u), math.Sin(u)
	return gmath.NewVec3(g.X*cu, g.X*su, g.Z)
}

func (s *SpunSurface) NormalCanonical(u, v float64) gmath.Vec3 {
	cu, su := math.Cos(u), math.Sin(u)
	g := s.Generatrix.Point(v)
	dg := s.Generatrix.Tangent(v)
	// tangent along u: rotate (g.X,0) by 90deg scaled by radius
	tu := gmath.NewVec3(-g.X*su, g.X*cu, 0)
	tv := gmath.NewVec3(dg.X*cu, dg.X*su, dg.Z)
	return tu.Cross(tv)
}

func (s *SpunSurface) UVCanonical(p gmath.Vec3) gmath.Vec2 {
	u := math.Atan2(p.Y, p.X)
	if u < 0 {
		u += 2 * math.Pi
	}
	radius := math.Hypot(p.X, p.Y)
	local := gmath.NewVec3(radius, 0, p.Z)
	v := s.Generatrix.GetT(local)
	return gmath.NewVec2(u, v)
}

func (s *SpunSurface) UDomain() curve.Domain { return curve.Domain{Lo: 0, Hi: 2 * math.Pi} }
func (s *SpunSurface) VDomain() curve.Domain { return s.Generatrix.Domain() }

func (s *SpunSurface) IsPeriodicU() bool { return true }
func (s *SpunSurface) IsPeriodicV() bool { return false }
func (s *SpunSurface) IsLinearU() bool   { return false }
func (s *SpunSurface) IsLinearV() bool   { return false }

func (s *SpunSurface) ScaledCopy(scale float64) Canonical {
	m := gmath.FromBasis(gmath.NewVec3(0, 0, 0), gmath.NewVec3(scale, 0, 0), gmath.NewVec3(0, scale, 0), gmath.NewVec3(0, 0, scale))
	return &SpunSurface{Generatrix: s.Generatrix.Transformed(m)}
}
