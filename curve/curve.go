// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "github.com/cpmech/brepkernel/gmath"

// Curve is the common interface implemented by every curve variant.
// Implementations are immutable once constructed; the adaptive
// inversion state for NURBS curves lives outside the Curve value itself
// (see package curveinv) so Curve stays a plain value type.
type Curve interface {
	// Point evaluates the curve at parameter t (clamped to Domain)
	Point(t float64) gmath.Vec3

	// Tangent evaluates the (not necessarily unit) derivative at t
	Tangent(t float64) gmath.Vec3

	// GetT recovers the parameter t whose Point(t) is closest to p. Line,
	// Arc, Ellipse and Polyline solve this in closed form; NURBS delegates
	// to the curveinv adaptive segment tree.
	GetT(p gmath.Vec3) float64

	// Discretize appends a piecewise-linear approximation of the curve to
	// out, meeting chordTol and maxAngStep. The curve's
	// start point is appended but not its end point.
	Discretize(out []gmath.Vec3, chordTol, maxAngStep float64) []gmath.Vec3

	// Transformed returns a copy of the curve transformed by m
	Transformed(m gmath.Mat4) Curve

	// Domain returns the curve's parameter interval
	Domain() Domain

	// Start and End return Point(Domain.Lo) and Point(Domain.Hi)
	Start() gmath.Vec3
	End() gmath.Vec3

	// PairID returns the integer identifier linking this curve to its
	// running-against counterpart on a neighboring surface; -1 means
	// unpaired.
	PairID() int

	// OnXYPlane and OnXZPlane report whether every point of the curve lies
	// (within gmath.Delta) on the corresponding coordinate plane
	OnXYPlane() bool
	OnXZPlane() bool
}

// onPlane is a shared helper for the OnXYPlane/OnXZPlane checks:
// component extracts the coordinate that must vanish.
func onPlane(c Curve, component func(gmath.Vec3) float64) bool {
	const samples = 9
	d := c.Domain()
	for i := 0; i <= samples; i++ {
		t := d.Lo + d.Span()*float64(i)/float64(samples)
		if v := component(c.Point(t)); v < -gmath.Delta || v > gmath.Delta {
			return false
		}
	}
	return true
}
