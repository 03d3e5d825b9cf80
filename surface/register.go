// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import "github.com/cpmech/brepkernel/gmath"

// tileInverter is registered by package surfinv's init() to break the
// surface <-> surfinv import cycle: surfinv imports surface (for the
// Canonical interface), and surface calls back into it for the variants
// with no closed-form UVCanonical (Ruled, Nurbs).
var tileInverter func(c Canonical, p gmath.Vec3) gmath.Vec2

// RegisterTileInverter installs the adaptive-tile UVCanonical callback.
func RegisterTileInverter(f func(c Canonical, p gmath.Vec3) gmath.Vec2) {
	tileInverter = f
}

// invertOrFallback calls the registered tile inverter, or performs a
// coarse grid search over c's domain if surfinv was never imported by
// the program (degrades rather than panicking).
func invertOrFallback(c Canonical, p gmath.Vec3) gmath.Vec2 {
	if tileInverter != nil {
		return tileInverter(c, p)
	}
	const grid = 17
	ud, vd := c.UDomain(), c.VDomain()
	best := gmath.NewVec2(ud.Lerp(0.5), vd.Lerp(0.5))
	bestDist := c.PointCanonical(best.X, best.Y).DistSq(p)
	for i := 0; i <= grid; i++ {
		u := ud.Lerp(float64(i) / grid)
		for j := 0; j <= grid; j++ {
			v := vd.Lerp(float64(j) / grid)
			d := c.PointCanonical(u, v).DistSq(p)
			if d < bestDist {
				bestDist = d
				best = gmath.NewVec2(u, v)
			}
		}
	}
	return best
}
