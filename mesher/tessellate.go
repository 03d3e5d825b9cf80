// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesher

import (
	"math"

	"github.com/cpmech/brepkernel/gmath"
)

// bridgeHole splices hole into outer via a zero-width channel between
// their closest pair of vertices, producing a single ring that
// earClip can triangulate as an ordinary simple polygon. outer is
// reoriented CCW and hole CW if needed, following the usual
// polygon-with-holes convention.
func bridgeHole(uvs []gmath.Vec2, outer, hole []int) []int {
	outerR := outer
	if signedArea(uvs, outer) < 0 {
		outerR = reverseCopy(outer)
	}
	holeR := hole
	if signedArea(uvs, hole) > 0 {
		holeR = reverseCopy(hole)
	}

	bestO, bestH, bestDist := 0, 0, math.MaxFloat64
	for oi, og := range outerR {
		for hj, hg := range holeR {
			d := uvs[og].Sub(uvs[hg]).Length()
			if d < bestDist {
				bestDist, bestO, bestH = d, oi, hj
			}
		}
	}
	rotated := append(append([]int{}, holeR[bestH:]...), holeR[:bestH]...)

	merged := make([]int, 0, len(outerR)+len(rotated)+2)
	merged = append(merged, outerR[:bestO+1]...)
	merged = append(merged, rotated...)
	merged = append(merged, rotated[0], outerR[bestO])
	merged = append(merged, outerR[bestO+1:]...)
	return merged
}

// earClip triangulates poly (a ring of global indices into uvs) via
// classic ear clipping, returning a flat index list. It returns nil if
// no simple-polygon triangulation could be found (e.g. a
// self-intersecting boundary).
func earClip(uvs []gmath.Vec2, poly []int) []int {
	if len(poly) < 3 {
		return nil
	}
	ring := append([]int{}, poly...)
	if signedArea(uvs, ring) < 0 {
		ring = reverseCopy(ring)
	}

	var tris []int
	guard := 0
	for len(ring) > 3 && guard < 10000 {
		guard++
		found := false
		m := len(ring)
		for i := 0; i < m; i++ {
			ip := ring[(i-1+m)%m]
			ic := ring[i]
			in := ring[(i+1)%m]
			if isEar(uvs, ring, ip, ic, in) {
				tris = append(tris, ip, ic, in)
				ring = append(append([]int{}, ring[:i]...), ring[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return nil
		}
	}
	if len(ring) == 3 {
		tris = append(tris, ring[0], ring[1], ring[2])
	}
	return tris
}

func isEar(uvs []gmath.Vec2, ring []int, ip, ic, in int) bool {
	a, b, c := uvs[ip], uvs[ic], uvs[in]
	if b.Sub(a).Cross(c.Sub(b)) <= 1e-15 {
		return false
	}
	for _, idx := range ring {
		if idx == ip || idx == ic || idx == in {
			continue
		}
		if pointInTriangle(uvs[idx], a, b, c) {
			return false
		}
	}
	return true
}

func pointInTriangle(p, a, b, c gmath.Vec2) bool {
	d1 := b.Sub(a).Cross(p.Sub(a))
	d2 := c.Sub(b).Cross(p.Sub(b))
	d3 := a.Sub(c).Cross(p.Sub(c))
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

func signedArea(uvs []gmath.Vec2, ring []int) float64 {
	area := 0.0
	n := len(ring)
	for i := 0; i < n; i++ {
		a := uvs[ring[i]]
		b := uvs[ring[(i+1)%n]]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

func reverseCopy(idx []int) []int {
	out := make([]int, len(idx))
	for i, v := range idx {
		out[len(idx)-1-i] = v
	}
	return out
}
