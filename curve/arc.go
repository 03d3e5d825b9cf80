// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math"

	"github.com/cpmech/brepkernel/gmath"
)

// Arc is a circular arc of radius R and angular span Alpha, winding
// counter-clockwise about CS.Z starting from CS.Origin + CS.X*R
type Arc struct {
	CS     gmath.CoordSys
	R      float64
	Alpha  float64
	pairID int
}

// NewArc builds an Arc curve
func NewArc(cs gmath.CoordSys, radius, alpha float64, pairID int) *Arc {
	return &Arc{CS: cs, R: radius, Alpha: alpha, pairID: pairID}
}

// Domain returns [0,1]
func (a *Arc) Domain() Domain { return Domain{0, 1} }

// PairID returns the paired-edge identifier
func (a *Arc) PairID() int { return a.pairID }

// localPoint evaluates the arc in canonical (CS-local) space at angle theta
func (a *Arc) localPoint(theta float64) gmath.Vec3 {
	return gmath.NewVec3(a.R*math.Cos(theta), a.R*math.Sin(theta), 0)
}

// Point maps t in [0,1] to the angle t*Alpha and lofts into world space
func (a *Arc) Point(t float64) gmath.Vec3 {
	t = a.Domain().Clamp(t)
	return a.CS.ToWorld(a.localPoint(t * a.Alpha))
}

// Tangent returns the d/dt derivative, a world-space vector of magnitude
// R*Alpha
func (a *Arc) Tangent(t float64) gmath.Vec3 {
	theta := t * a.Alpha
	local := gmath.NewVec3(-a.R*math.Sin(theta)*a.Alpha, a.R*math.Cos(theta)*a.Alpha, 0)
	return a.CS.ToXfm().TransformDir(local)
}

// GetT inverts p into local frame, recovers the angle via atan2 and
// unwraps it into [0, 2*pi) relative to the arc's start before dividing
// by Alpha
func (a *Arc) GetT(p gmath.Vec3) float64 {
	local := a.CS.ToLocal(p)
	theta := math.Atan2(local.Y, local.X)
	for theta < 0 {
		theta += 2 * math.Pi
	}
	t := theta / a.Alpha
	return a.Domain().Clamp(t)
}

// Discretize appends chord points for the arc using arcSteps to pick a
// step count meeting chordTol and maxAngStep
func (a *Arc) Discretize(out []gmath.Vec3, chordTol, maxAngStep float64) []gmath.Vec3 {
	n := arcSteps(a.R, math.Abs(a.Alpha), chordTol, maxAngStep)
	for i := 0; i < n; i++ {
		out = append(out, a.Point(float64(i)/float64(n)))
	}
	return out
}

// Transformed returns a copy of the arc transformed by m; since m may be
// non-rigid the frame axes are re-orthonormalized by NewCoordSys
func (a *Arc) Transformed(m gmath.Mat4) Curve {
	origin := m.TransformPoint(a.CS.Origin)
	x := m.TransformDir(a.CS.X)
	y := m.TransformDir(a.CS.Y)
	cs, err := gmath.NewCoordSys(origin, x, y)
	if err != nil {
		// degenerate transform: fall back to the untransformed frame
		// rather than propagating a panic from a pure-value operation
		cs = a.CS
	}
	return &Arc{CS: cs, R: a.R, Alpha: a.Alpha, pairID: a.pairID}
}

// Start returns Point(0)
func (a *Arc) Start() gmath.Vec3 { return a.Point(0) }

// End returns Point(1)
func (a *Arc) End() gmath.Vec3 { return a.Point(1) }

// OnXYPlane reports whether the arc's plane (CS.X, CS.Y) coincides with
// the world XY plane
func (a *Arc) OnXYPlane() bool {
	return onPlane(a, func(v gmath.Vec3) float64 { return v.Z })
}

// OnXZPlane reports whether the arc's plane coincides with the world XZ plane
func (a *Arc) OnXZPlane() bool {
	return onPlane(a, func(v gmath.Vec3) float64 { return v.Y })
}
