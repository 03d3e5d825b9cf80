// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"github.com/cpmech/brepkernel/curve"
	"github.com/cpmech/brepkernel/gmath"
	"github.com/cpmech/gosl/chk"
)

// RuledSurface linearly blends between a bottom and a top curve: u
// selects the blend fraction over UDom, v is the shared curve
// parameter of both rails.
type RuledSurface struct {
	Bottom, Top curve.Curve
	UDom        curve.Domain
	invertState
}

// NewRuledSurface builds a RuledSurface blending bottom into top over
// [uLo,uHi]; bottom and top must share the same parameter domain.
func NewRuledSurface(bottom, top curve.Curve, uLo, uHi float64) (*RuledSurface, error) {
	if bottom.Domain() != top.Domain() {
		return nil, chk.Err("ruled surface: bottom and top rails must share a domain")
	}
	ud, err := curve.NewDomain(uLo, uHi)
	if err != nil {
		return nil, err
	}
	return &RuledSurface{Bottom: bottom, Top: top, UDom: ud}, nil
}

func (r *RuledSurface) blend(u float64) float64 { return r.UDom.Normalize(u) }

func (r *RuledSurface) PointCanonical(u, v float64) gmath.Vec3 {
	s := r.blend(u)
	return r.Bottom.Point(v).Lerp(r.Top.Point(v), s)
}

func (r *RuledSurface) NormalCanonical(u, v float64) gmath.Vec3 {
	s := r.blend(u)
	tu := r.Top.Point(v).Sub(r.Bottom.Point(v))
	tv := r.Bottom.Tangent(v).Lerp(r.Top.Tangent(v), s)
	return tu.Cross(tv)
}

// UVCanonical has no closed form for an arbitrary rail pair; it
// delegates to the adaptive tile inverter registered by package
// surfinv, building the tree for this instance at most once.
func (r *RuledSurface) UVCanonical(p gmath.Vec3) gmath.Vec2 {
	return invertOrFallback(r, p)
}

func (r *RuledSurface) UDomain() curve.Domain { return r.UDom }
func (r *RuledSurface) VDomain() curve.Domain { return r.Bottom.Domain() }

func (r *RuledSurface) IsPeriodicU() bool { return false }
func (r *RuledSurface) IsPeriodicV() bool { return false }
func (r *RuledSurface) IsLinearU() bool   { return true }
func (r *RuledSurface) IsLinearV() bool   { return false }

func (r *RuledSurface) ScaledCopy(scale float64) Canonical {
	m := gmath.FromBasis(gmath.NewVec3(0, 0, 0), gmath.NewVec3(scale, 0, 0), gmath.NewVec3(0, scale, 0), gmath.NewVec3(0, 0, scale))
	return &RuledSurface{
		Bottom: r.Bottom.Transformed(m),
		Top:    r.Top.Transformed(m),
		UDom:   curve.Domain{Lo: r.UDom.Lo * scale, Hi: r.UDom.Hi * scale},
	}
}
