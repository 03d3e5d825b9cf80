// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesher

import (
	"math"

	"github.com/cpmech/brepkernel/curve"
	"github.com/cpmech/brepkernel/gmath"
	"github.com/cpmech/brepkernel/mesh"
	"github.com/cpmech/brepkernel/surface"
)

// meshCylinder handles the two cylinder special cases directly: a full
// cylinder (two coaxial circular caps, trimmed only along v) builds a
// wraparound strip of quads; a partial cylinder (a single rectangular
// (u,v) trim) builds an open strip between the bottom and top arcs. It
// reports ok=false for any other trim shape, deferring to the generic
// mesher.
func meshCylinder(s surface.Surface, canon *surface.Cylinder, opt Options, notifier gmath.Notifier) (*mesh.Mesh, bool) {
	contours := s.Contours()
	uLo, uHi, vLo, vHi, full, ok := cylinderTrimExtent(s, contours)
	if !ok {
		return nil, false
	}

	uSpan := uHi - uLo
	angStep := opt.MaxAngStep
	if canon.R > 0 {
		ratio := opt.ChordTol / canon.R
		if ratio < 1 {
			if sag := 2 * math.Acos(1-ratio); sag < angStep {
				angStep = sag
			}
		}
	}
	n := int(math.Ceil(uSpan / angStep))
	if n < 3 {
		n = 3
	}

	nu := n + 1
	if full {
		nu = n
	}
	bottom := make([]gmath.Vec3, nu)
	top := make([]gmath.Vec3, nu)
	us := make([]float64, nu)
	for i := 0; i < nu; i++ {
		u := uLo + uSpan*float64(i)/float64(n)
		us[i] = u
		bottom[i] = s.Point(u, vLo)
		top[i] = s.Point(u, vHi)
	}

	var verts []mesh.Vertex
	var tris []int
	var wires []int
	addVert := func(p gmath.Vec3, u, v float64) int {
		idx := len(verts)
		verts = append(verts, mesh.NewVertex(p, s.Normal(u, v).Normalize()))
		return idx
	}

	botIdx := make([]int, nu)
	topIdx := make([]int, nu)
	for i := 0; i < nu; i++ {
		botIdx[i] = addVert(bottom[i], us[i], vLo)
		topIdx[i] = addVert(top[i], us[i], vHi)
	}

	segs := n
	if !full {
		segs = nu - 1
	}
	for i := 0; i < segs; i++ {
		j := (i + 1) % nu
		b0, b1 := botIdx[i], botIdx[j]
		t0, t1 := topIdx[i], topIdx[j]
		tris = append(tris, b0, b1, t1, b0, t1, t0)
	}

	for i := 0; i < segs; i++ {
		j := (i + 1) % nu
		wires = append(wires, botIdx[i], botIdx[j])
		wires = append(wires, topIdx[i], topIdx[j])
	}
	if !full {
		wires = append(wires, botIdx[0], topIdx[0])
		wires = append(wires, botIdx[nu-1], topIdx[nu-1])
	}

	gmath.Notify(notifier, "mesher-cylinder-fastpath", full, segs)
	return &mesh.Mesh{Vertices: verts, Triangles: tris, Wires: wires}, true
}

// cylinderTrimExtent inspects the surface's boundary contours and
// reports the (u,v) rectangle they bound, and whether u spans the full
// circle. It returns ok=false for any trim shape other than "exactly
// two closed rims at constant v" (full cylinder) or "exactly one closed
// rectangular (u,v) contour" (partial cylinder).
func cylinderTrimExtent(s surface.Surface, contours []curve.Contour) (uLo, uHi, vLo, vHi float64, full, ok bool) {
	if len(contours) == 0 {
		return 0, 0, 0, 0, false, false
	}
	const sampleTol, sampleAng = 1e-3, 0.005

	minU, maxU := math.Inf(1), math.Inf(-1)
	minV, maxV := math.Inf(1), math.Inf(-1)
	var uvs []gmath.Vec2
	for _, c := range contours {
		if !c.Closed() {
			return 0, 0, 0, 0, false, false
		}
		pts, _ := c.Discretize3D(sampleTol, sampleAng)
		for _, p := range pts {
			uv := s.UV(p)
			uvs = append(uvs, uv)
			if uv.X < minU {
				minU = uv.X
			}
			if uv.X > maxU {
				maxU = uv.X
			}
			if uv.Y < minV {
				minV = uv.Y
			}
			if uv.Y > maxV {
				maxV = uv.Y
			}
		}
	}
	if math.IsInf(minU, 1) {
		return 0, 0, 0, 0, false, false
	}

	full = s.IsPeriodicU() && maxU-minU > 2*math.Pi-0.05
	// every sample must lie on a rim (v at its min or max) or, for a
	// partial cylinder, on one of the rectangle's two u-edges
	const edgeTol = 1e-6
	for _, uv := range uvs {
		onRim := math.Abs(uv.Y-minV) <= edgeTol || math.Abs(uv.Y-maxV) <= edgeTol
		onEdge := !full && (math.Abs(uv.X-minU) <= edgeTol || math.Abs(uv.X-maxU) <= edgeTol)
		if !onRim && !onEdge {
			return 0, 0, 0, 0, false, false
		}
	}
	if full {
		return 0, 2 * math.Pi, minV, maxV, true, len(contours) == 2
	}
	return minU, maxU, minV, maxV, false, len(contours) == 1
}
