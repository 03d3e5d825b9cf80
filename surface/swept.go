// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"github.com/cpmech/brepkernel/curve"
	"github.com/cpmech/brepkernel/gmath"
	"github.com/cpmech/gosl/chk"
)

// SweptSurface is the canonical surface swept by translating a
// generatrix curve lying on the XY plane along z: u is the translation
// distance, v is the generatrix's own parameter.
type SweptSurface struct {
	Generatrix curve.Curve
	UDom       curve.Domain
}

// NewSweptSurface builds a SweptSurface from generatrix, translated
// over [uLo,uHi] along z, rejecting any curve not lying on the XY
// plane.
func NewSweptSurface(generatrix curve.Curve, uLo, uHi float64) (*SweptSurface, error) {
	if !generatrix.OnXYPlane() {
		return nil, chk.Err("swept surface: generatrix must lie on the XY plane")
	}
	ud, err := curve.NewDomain(uLo, uHi)
	if err != nil {
		return nil, err
	}
	return &SweptSurface{Generatrix: generatrix, UDom: ud}, nil
}

func (s *SweptSurface) PointCanonical(u, v float64) gmath.Vec3 {
	g := s.Generatrix.Point(v)
	return gmath.NewVec3(g.X, g.Y, g.Z+u)
}

func (s *SweptSurface) NormalCanonical(u, v float64) gmath.Vec3 {
	dg := s.Generatrix.Tangent(v)
	tu := gmath.NewVec3(0, 0, 1)
	return tu.Cross(dg)
}

func (s *SweptSurface) UVCanonical(p gmath.Vec3) gmath.Vec2 {
	local := gmath.NewVec3(p.X, p.Y, 0)
	v := s.Generatrix.GetT(local)
	return gmath.NewVec2(p.Z, v)
}

func (s *SweptSurface) UDomain() curve.Domain { return s.UDom }
func (s *SweptSurface) VDomain() curve.Domain { return s.Generatrix.Domain() }

func (s *SweptSurface) IsPeriodicU() bool { return false }
func (s *SweptSurface) IsPeriodicV() bool { return false }
func (s *SweptSurface) IsLinearU() bool   { return true }
func (s *SweptSurface) IsLinearV() bool   { return false }

func (s *SweptSurface) ScaledCopy(scale float64) Canonical {
	m := gmath.FromBasis(gmath.NewVec3(0, 0, 0), gmath.NewVec3(scale, 0, 0), gmath.NewVec3(0, scale, 0), gmath.NewVec3(0, 0, scale))
	return &SweptSurface{
		Generatrix: s.Generatrix.Transformed(m),
		UDom:       curve.Domain{Lo: s.UDom.Lo * scale, Hi: s.UDom.Hi * scale},
	}
}
