// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import "github.com/cpmech/brepkernel/gmath"

// Contour is an ordered sequence of curves connected end-to-end,
// bounding a surface region
type Contour struct {
	Curves []Curve
}

// NewContour builds a Contour from an ordered curve list
func NewContour(curves []Curve) Contour {
	cp := make([]Curve, len(curves))
	copy(cp, curves)
	return Contour{Curves: cp}
}

// Closed reports whether the contour's last curve's End coincides with
// the first curve's Start within gmath.Delta
func (c Contour) Closed() bool {
	if len(c.Curves) == 0 {
		return false
	}
	first := c.Curves[0].Start()
	last := c.Curves[len(c.Curves)-1].End()
	return first.Dist(last) <= gmath.Delta
}

// Discretize3D discretizes every curve in order into one continuous 3D
// polyline, and records the index (into the returned slice) at which
// each curve's run of points begins — the "splits" used by the mesher to
// recover per-curve boundary wire segments
func (c Contour) Discretize3D(chordTol, maxAngStep float64) (pts []gmath.Vec3, splits []int) {
	splits = make([]int, 0, len(c.Curves)+1)
	for _, crv := range c.Curves {
		splits = append(splits, len(pts))
		pts = crv.Discretize(pts, chordTol, maxAngStep)
	}
	splits = append(splits, len(pts))
	return
}

// Length sums the chord lengths of the contour's discretization,
// grounded on the mesher's own chord-based discretization step
func (c Contour) Length(chordTol, maxAngStep float64) float64 {
	pts, _ := c.Discretize3D(chordTol, maxAngStep)
	if len(pts) == 0 {
		return 0
	}
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].Dist(pts[i])
	}
	if c.Closed() {
		total += pts[len(pts)-1].Dist(pts[0])
	}
	return total
}
