// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math"

	"github.com/cpmech/brepkernel/gmath"
)

// arcSteps returns the number of straight segments needed to discretize a
// circular arc of the given radius and angular span so that both the
// chord sagitta stays within chordTol and each step stays within
// maxAngStep. If span equals 2*pi and
// the computed step count is odd, it is rounded up by one to preserve
// symmetry at the seam.
func arcSteps(radius, span, chordTol, maxAngStep float64) int {
	if radius <= 0 || span <= 0 {
		return 1
	}

	// (i) sagitta-bounded step: sagitta = r*(1-cos(theta/2)) <= chordTol
	var nSagitta int
	ratio := 1 - chordTol/radius
	if ratio < -1 {
		nSagitta = 1
	} else if ratio >= 1 {
		nSagitta = 1
	} else {
		thetaMax := 2 * math.Acos(ratio)
		if thetaMax <= 0 {
			nSagitta = int(math.Ceil(span / maxAngStep))
		} else {
			nSagitta = int(math.Ceil(span / thetaMax))
		}
	}

	// (ii) angle-bounded step
	nAngle := int(math.Ceil(span / maxAngStep))

	n := nSagitta
	if nAngle > n {
		n = nAngle
	}
	if n < 1 {
		n = 1
	}

	if math.Abs(span-2*math.Pi) < 1e-9 && n%2 != 0 {
		n++
	}
	return n
}

// chordSagittaSq is a package-local alias for gmath.ChordSagittaSq, kept
// so call sites in this package read without a gmath. prefix
func chordSagittaSq(p, a, b gmath.Vec3) float64 {
	return gmath.ChordSagittaSq(p, a, b)
}
