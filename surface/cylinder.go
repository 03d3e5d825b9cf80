// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"

	"github.com/cpmech/brepkernel/curve"
	"github.com/cpmech/brepkernel/gmath"
)

// Cylinder is the canonical surface (r cos u, r sin u, v): u wraps the
// full circle, v runs along the axis.
type Cylinder struct {
	R    float64
	VDom curve.Domain
}

// NewCylinder builds a Cylinder of radius r over full [0,2*pi] x [vLo,vHi].
func NewCylinder(r, vLo, vHi float64) (*Cylinder, error) {
	vd, err := curve.NewDomain(vLo, vHi)
	if err != nil {
		return nil, err
	}
	return &Cylinder{R: r, VDom: vd}, nil
}

func (c *Cylinder) PointCanonical(u, v float64) gmath.Vec3 {
	return gmath.NewVec3(c.R*math.Cos(u), c.R*math.Sin(u), v)
}

func (c *Cylinder) NormalCanonical(u, v float64) gmath.Vec3 {
	return gmath.NewVec3(math.Cos(u), math.Sin(u), 0)
}

func (c *Cylinder) UVCanonical(p gmath.Vec3) gmath.Vec2 {
	theta := math.Atan2(p.Y, p.X)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return gmath.NewVec2(theta, p.Z)
}

func (c *Cylinder) UDomain() curve.Domain { return curve.Domain{Lo: 0, Hi: 2 * math.Pi} }
func (c *Cylinder) VDomain() curve.Domain { return c.VDom }

func (c *Cylinder) IsPeriodicU() bool { return true }
func (c *Cylinder) IsPeriodicV() bool { return false }
func (c *Cylinder) IsLinearU() bool   { return false }
func (c *Cylinder) IsLinearV() bool   { return true }

func (c *Cylinder) ScaledCopy(scale float64) Canonical {
	return &Cylinder{R: c.R * scale, VDom: curve.Domain{Lo: c.VDom.Lo * scale, Hi: c.VDom.Hi * scale}}
}
