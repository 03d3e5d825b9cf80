// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"

	"github.com/cpmech/brepkernel/curve"
	"github.com/cpmech/brepkernel/gmath"
)

// Sphere is the canonical surface (r cos v cos u, r cos v sin u, r sin
// v), u in [0,2*pi], v in [-pi/2, pi/2].
type Sphere struct {
	R float64
}

// NewSphere builds a Sphere of radius r.
func NewSphere(r float64) *Sphere { return &Sphere{R: r} }

func (s *Sphere) PointCanonical(u, v float64) gmath.Vec3 {
	cv, sv := math.Cos(v), math.Sin(v)
	return gmath.NewVec3(s.R*cv*math.Cos(u), s.R*cv*math.Sin(u), s.R*sv)
}

func (s *Sphere) NormalCanonical(u, v float64) gmath.Vec3 {
	return s.PointCanonical(u, v).Scale(1 / math.Max(s.R, 1e-300))
}

func (s *Sphere) UVCanonical(p gmath.Vec3) gmath.Vec2 {
	r := p.Length()
	if r < 1e-300 {
		return gmath.NewVec2(0, 0)
	}
	v := math.Asin(clamp(p.Z/r, -1, 1))
	u := math.Atan2(p.Y, p.X)
	if u < 0 {
		u += 2 * math.Pi
	}
	return gmath.NewVec2(u, v)
}

func (s *Sphere) UDomain() curve.Domain { return curve.Domain{Lo: 0, Hi: 2 * math.Pi} }
func (s *Sphere) VDomain() curve.Domain { return curve.Domain{Lo: -math.Pi / 2, Hi: math.Pi / 2} }

func (s *Sphere) IsPeriodicU() bool { return true }
func (s *Sphere) IsPeriodicV() bool { return false }
func (s *Sphere) IsLinearU() bool   { return false }
func (s *Sphere) IsLinearV() bool   { return false }

func (s *Sphere) ScaledCopy(scale float64) Canonical { return &Sphere{R: s.R * scale} }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
