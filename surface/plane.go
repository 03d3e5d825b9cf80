// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"github.com/cpmech/brepkernel/curve"
	"github.com/cpmech/brepkernel/gmath"
)

// Plane is the canonical flat surface (u,v,0) over a rectangular domain.
type Plane struct {
	UDom, VDom curve.Domain
}

// NewPlane builds a Plane canonical shape over [uLo,uHi] x [vLo,vHi].
func NewPlane(uLo, uHi, vLo, vHi float64) (*Plane, error) {
	ud, err := curve.NewDomain(uLo, uHi)
	if err != nil {
		return nil, err
	}
	vd, err := curve.NewDomain(vLo, vHi)
	if err != nil {
		return nil, err
	}
	return &Plane{UDom: ud, VDom: vd}, nil
}

func (p *Plane) PointCanonical(u, v float64) gmath.Vec3  { return gmath.NewVec3(u, v, 0) }
func (p *Plane) NormalCanonical(u, v float64) gmath.Vec3 { return gmath.NewVec3(0, 0, 1) }
func (p *Plane) UVCanonical(pt gmath.Vec3) gmath.Vec2    { return gmath.NewVec2(pt.X, pt.Y) }

func (p *Plane) UDomain() curve.Domain { return p.UDom }
func (p *Plane) VDomain() curve.Domain { return p.VDom }

func (p *Plane) IsPeriodicU() bool { return false }
func (p *Plane) IsPeriodicV() bool { return false }
func (p *Plane) IsLinearU() bool   { return true }
func (p *Plane) IsLinearV() bool   { return true }

// ScaledCopy scales both domain ranges: a plane has no radius-like
// parameter, and its (u,v) are lengths in the loft frame, which
// CSSurface.Transformed re-orthonormalizes (dropping the scale).
func (p *Plane) ScaledCopy(scale float64) Canonical {
	return &Plane{
		UDom: curve.Domain{Lo: p.UDom.Lo * scale, Hi: p.UDom.Hi * scale},
		VDom: curve.Domain{Lo: p.VDom.Lo * scale, Hi: p.VDom.Hi * scale},
	}
}
