// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"

	"github.com/cpmech/brepkernel/curve"
	"github.com/cpmech/brepkernel/gmath"
)

// Cone is the canonical surface (v sinT cos u, v sinT sin u, v cosT) for
// half-angle T: radius grows linearly with v, u wraps the full circle.
type Cone struct {
	HalfAngle float64
	VDom      curve.Domain
}

// NewCone builds a Cone of the given half-angle (radians) over
// [0,2*pi] x [vLo,vHi].
func NewCone(halfAngle, vLo, vHi float64) (*Cone, error) {
	vd, err := curve.NewDomain(vLo, vHi)
	if err != nil {
		return nil, err
	}
	return &Cone{HalfAngle: halfAngle, VDom: vd}, nil
}

func (c *Cone) PointCanonical(u, v float64) gmath.Vec3 {
	sinT, cosT := math.Sin(c.HalfAngle), math.Cos(c.HalfAngle)
	return gmath.NewVec3(v*sinT*math.Cos(u), v*sinT*math.Sin(u), v*cosT)
}

func (c *Cone) NormalCanonical(u, v float64) gmath.Vec3 {
	sinT, cosT := math.Sin(c.HalfAngle), math.Cos(c.HalfAngle)
	// tangent along u: (-sinT sin u, sinT cos u, 0) * v
	// tangent along v: (sinT cos u, sinT sin u, cosT)
	tu := gmath.NewVec3(-sinT*math.Sin(u), sinT*math.Cos(u), 0)
	tv := gmath.NewVec3(sinT*math.Cos(u), sinT*math.Sin(u), cosT)
	return tu.Cross(tv)
}

func (c *Cone) UVCanonical(p gmath.Vec3) gmath.Vec2 {
	theta := math.Atan2(p.Y, p.X)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	cosT := math.Cos(c.HalfAngle)
	var v float64
	if math.Abs(cosT) > 1e-12 {
		v = p.Z / cosT
	} else {
		v = math.Hypot(p.X, p.Y) / math.Sin(c.HalfAngle)
	}
	return gmath.NewVec2(theta, v)
}

func (c *Cone) UDomain() curve.Domain { return curve.Domain{Lo: 0, Hi: 2 * math.Pi} }
func (c *Cone) VDomain() curve.Domain { return c.VDom }

func (c *Cone) IsPeriodicU() bool { return true }
func (c *Cone) IsPeriodicV() bool { return false }
func (c *Cone) IsLinearU() bool   { return false }
func (c *Cone) IsLinearV() bool   { return true }

func (c *Cone) ScaledCopy(scale float64) Canonical {
	return &Cone{HalfAngle: c.HalfAngle, VDom: curve.Domain{Lo: c.VDom.Lo * scale, Hi: c.VDom.Hi * scale}}
}
