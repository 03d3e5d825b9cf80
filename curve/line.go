// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "github.com/cpmech/brepkernel/gmath"

// Line is a straight segment from S to E parameterized on [0,1]
type Line struct {
	S, E   gmath.Vec3
	pairID int
}

// NewLine builds a Line curve between s and e
func NewLine(s, e gmath.Vec3, pairID int) *Line {
	return &Line{S: s, E: e, pairID: pairID}
}

// Domain returns [0,1]
func (l *Line) Domain() Domain { return Domain{0, 1} }

// PairID returns the paired-edge identifier
func (l *Line) PairID() int { return l.pairID }

// Point returns (1-t)S + tE
func (l *Line) Point(t float64) gmath.Vec3 {
	t = l.Domain().Clamp(t)
	return l.S.Lerp(l.E, t)
}

// Tangent returns E-S, constant along the line
func (l *Line) Tangent(t float64) gmath.Vec3 {
	return l.E.Sub(l.S)
}

// GetT recovers t by orthogonal projection of p onto the line
func (l *Line) GetT(p gmath.Vec3) float64 {
	d := l.E.Sub(l.S)
	l2 := d.LengthSq()
	if l2 < 1e-300 {
		return 0
	}
	t := p.Sub(l.S).Dot(d) / l2
	return l.Domain().Clamp(t)
}

// Discretize appends the start point only; the straight chord from S to
// E always has zero deviation so no interior points are needed
func (l *Line) Discretize(out []gmath.Vec3, chordTol, maxAngStep float64) []gmath.Vec3 {
	return append(out, l.S)
}

// Transformed returns a copy of the line transformed by m
func (l *Line) Transformed(m gmath.Mat4) Curve {
	return &Line{S: m.TransformPoint(l.S), E: m.TransformPoint(l.E), pairID: l.pairID}
}

// Start returns S
func (l *Line) Start() gmath.Vec3 { return l.S }

// End returns E
func (l *Line) End() gmath.Vec3 { return l.E }

// OnXYPlane reports whether every sampled point has |z| <= gmath.Delta
func (l *Line) OnXYPlane() bool {
	return onPlane(l, func(v gmath.Vec3) float64 { return v.Z })
}

// OnXZPlane reports whether every sampled point has |y| <= gmath.Delta
func (l *Line) OnXZPlane() bool {
	return onPlane(l, func(v gmath.Vec3) float64 { return v.Y })
}
