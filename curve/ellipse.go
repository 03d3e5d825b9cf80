// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math"

	"github.com/cpmech/brepkernel/gmath"
)

// Ellipse is an elliptical arc in the CS.X/CS.Y plane with semi-axes Rx,
// Ry, spanning angles [Alpha0, Alpha1] with Alpha0 <= Alpha1
type Ellipse struct {
	CS             gmath.CoordSys
	Rx, Ry         float64
	Alpha0, Alpha1 float64
	pairID         int
}

// NewEllipse builds an Ellipse curve
func NewEllipse(cs gmath.CoordSys, rx, ry, alpha0, alpha1 float64, pairID int) *Ellipse {
	return &Ellipse{CS: cs, Rx: rx, Ry: ry, Alpha0: alpha0, Alpha1: alpha1, pairID: pairID}
}

// Domain returns [0,1]
func (e *Ellipse) Domain() Domain { return Domain{0, 1} }

// PairID returns the paired-edge identifier
func (e *Ellipse) PairID() int { return e.pairID }

func (e *Ellipse) angle(t float64) float64 {
	return e.Alpha0 + t*(e.Alpha1-e.Alpha0)
}

func (e *Ellipse) localPoint(theta float64) gmath.Vec3 {
	return gmath.NewVec3(e.Rx*math.Cos(theta), e.Ry*math.Sin(theta), 0)
}

// Point maps t to an angle in [Alpha0, Alpha1] and lofts to world space
func (e *Ellipse) Point(t float64) gmath.Vec3 {
	t = e.Domain().Clamp(t)
	return e.CS.ToWorld(e.localPoint(e.angle(t)))
}

// Tangent returns the d/dt derivative in world space
func (e *Ellipse) Tangent(t float64) gmath.Vec3 {
	theta := e.angle(t)
	dTheta := e.Alpha1 - e.Alpha0
	local := gmath.NewVec3(-e.Rx*math.Sin(theta)*dTheta, e.Ry*math.Cos(theta)*dTheta, 0)
	return e.CS.ToXfm().TransformDir(local)
}

// GetT inverts p into local frame, recovers the angle via atan2 (scaled
// by the semi-axes) and unwraps it into [Alpha0, Alpha0+2*pi) before
// normalizing into t
func (e *Ellipse) GetT(p gmath.Vec3) float64 {
	local := e.CS.ToLocal(p)
	theta := math.Atan2(local.Y/e.Ry, local.X/e.Rx)
	for theta < e.Alpha0 {
		theta += 2 * math.Pi
	}
	for theta >= e.Alpha0+2*math.Pi {
		theta -= 2 * math.Pi
	}
	span := e.Alpha1 - e.Alpha0
	if span < 1e-300 {
		return 0
	}
	return e.Domain().Clamp((theta - e.Alpha0) / span)
}

// Discretize appends chord points using the mean of the two semi-axes as
// an equivalent radius for the arcSteps step-count heuristic
func (e *Ellipse) Discretize(out []gmath.Vec3, chordTol, maxAngStep float64) []gmath.Vec3 {
	rEquiv := (e.Rx + e.Ry) / 2
	n := arcSteps(rEquiv, math.Abs(e.Alpha1-e.Alpha0), chordTol, maxAngStep)
	for i := 0; i < n; i++ {
		out = append(out, e.Point(float64(i)/float64(n)))
	}
	return out
}

// Transformed returns a copy of the ellipse transformed by m
func (e *Ellipse) Transformed(m gmath.Mat4) Curve {
	origin := m.TransformPoint(e.CS.Origin)
	x := m.TransformDir(e.CS.X)
	y := m.TransformDir(e.CS.Y)
	cs, err := gmath.NewCoordSys(origin, x, y)
	if err != nil {
		cs = e.CS
	}
	return &Ellipse{CS: cs, Rx: e.Rx, Ry: e.Ry, Alpha0: e.Alpha0, Alpha1: e.Alpha1, pairID: e.pairID}
}

// Start returns Point(0)
func (e *Ellipse) Start() gmath.Vec3 { return e.Point(0) }

// End returns Point(1)
func (e *Ellipse) End() gmath.Vec3 { return e.Point(1) }

// OnXYPlane reports whether the ellipse's plane coincides with world XY
func (e *Ellipse) OnXYPlane() bool {
	return onPlane(e, func(v gmath.Vec3) float64 { return v.Z })
}

// OnXZPlane reports whether the ellipse's plane coincides with world XZ
func (e *Ellipse) OnXZPlane() bool {
	return onPlane(e, func(v gmath.Vec3) float64 { return v.Y })
}
