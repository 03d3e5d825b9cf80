// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"

	"github.com/cpmech/brepkernel/curve"
	"github.com/cpmech/brepkernel/gmath"
)

// Torus is the canonical surface obtained by rotating (R + r cos v, 0, r
// sin v) about z by u; both u and v wrap the full circle.
type Torus struct {
	RMajor, RMinor float64
}

// NewTorus builds a Torus with major radius R and tube radius r.
func NewTorus(rMajor, rMinor float64) *Torus { return &Torus{RMajor: rMajor, RMinor: rMinor} }

func (t *Torus) PointCanonical(u, v float64) gmath.Vec3 {
	cv, sv := math.Cos(v), math.Sin(v)
	rho := t.RMajor + t.RMinor*cv
	return gmath.NewVec3(rho*math.Cos(u), rho*math.Sin(u), t.RMinor*sv)
}

func (t *Torus) NormalCanonical(u, v float64) gmath.Vec3 {
	cv, sv := math.Cos(v), math.Sin(v)
	cu, su := math.Cos(u), math.Sin(u)
	// tube-centerline-outward direction in the generating (rho,z) plane
	return gmath.NewVec3(cv*cu, cv*su, sv)
}

func (t *Torus) UVCanonical(p gmath.Vec3) gmath.Vec2 {
	u := math.Atan2(p.Y, p.X)
	if u < 0 {
		u += 2 * math.Pi
	}
	rho := math.Hypot(p.X, p.Y) - t.RMajor
	v := math.Atan2(p.Z, rho)
	if v < 0 {
		v += 2 * math.Pi
	}
	return gmath.NewVec2(u, v)
}

func (t *Torus) UDomain() curve.Domain { return curve.Domain{Lo: 0, Hi: 2 * math.Pi} }
func (t *Torus) VDomain() curve.Domain { return curve.Domain{Lo: 0, Hi: 2 * math.Pi} }

func (t *Torus) IsPeriodicU() bool { return true }
func (t *Torus) IsPeriodicV() bool { return true }
func (t *Torus) IsLinearU() bool   { return false }
func (t *Torus) IsLinearV() bool   { return false }

func (t *Torus) ScaledCopy(scale float64) Canonical {
	return &Torus{RMajor: t.RMajor * scale, RMinor: t.RMinor * scale}
}
