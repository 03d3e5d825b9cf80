// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/cpmech/brepkernel/curve"
	"github.com/cpmech/brepkernel/gmath"
	"github.com/cpmech/brepkernel/mesh"
	"github.com/cpmech/brepkernel/mesher"
	"github.com/cpmech/brepkernel/surface"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input parameters
	rMajor := io.ArgToFloat(0, 3)
	rMinor := io.ArgToFloat(1, 1)
	chordTol := io.ArgToFloat(2, gmath.FineTess)

	io.PfWhite("\nbrepdemo -- builds, meshes and slices a torus\n\n")
	io.Pf("\n%v\n", io.ArgsTable(
		"major radius", "rMajor", rMajor,
		"tube radius", "rMinor", rMinor,
		"chord tolerance", "chordTol", chordTol,
	))

	// world frame the torus is lofted through
	cs, err := gmath.NewCoordSys(gmath.NewVec3(0, 0, 0), gmath.NewVec3(1, 0, 0), gmath.NewVec3(0, 1, 0))
	if err != nil {
		chk.Panic("failed to build coordinate system:\n%v", err)
	}
	torus := surface.NewTorus(rMajor, rMinor)
	s := surface.NewCSSurface(cs, torus, torusPatchContour(torus, cs), surface.Flags{})

	// mesh it
	opt := mesher.Options{ChordTol: chordTol, MaxAngStep: gmath.FineTessAngle}
	m, err := mesher.Build(s, opt, gmath.VerboseNotifier)
	if err != nil {
		chk.Panic("meshing failed:\n%v", err)
	}
	io.Pf("\n")
	io.Pfblue2("mesh built: %d vertices, %d triangles\n", len(m.Vertices), m.NumTriangles())

	// slice it through the equatorial plane
	plane := mesh.Plane{N: gmath.NewVec3(0, 0, 1), D: 0}
	polylines := mesh.Slice([]*mesh.Mesh{m}, plane)

	io.Pf("\n")
	io.Pfblue2("slice produced %d polyline(s)\n", len(polylines))
	for i, p := range polylines {
		kind := "open"
		if p.Closed {
			kind = "closed"
		}
		io.Pf("  polyline %d: %d points, %s, length %.4f\n", i, len(p.Points), kind, p.Length())
	}
}

// torusPatchContour bounds a single rectangular (u,v) patch of the torus
// strictly short of a full revolution on both axes, so the boundary
// never has to identify a periodic seam with itself; the rectangle's
// four edges are sampled directly off the canonical torus and lofted by
// cs into one closed polyline.
func torusPatchContour(t *surface.Torus, cs gmath.CoordSys) []curve.Contour {
	const uHi, vHi = 1.5 * math.Pi, 1.5 * math.Pi
	const nEdge = 48

	var uv []gmath.Vec2
	for i := 0; i <= nEdge; i++ {
		uv = append(uv, gmath.NewVec2(uHi*float64(i)/nEdge, 0))
	}
	for i := 1; i <= nEdge; i++ {
		uv = append(uv, gmath.NewVec2(uHi, vHi*float64(i)/nEdge))
	}
	for i := 1; i <= nEdge; i++ {
		uv = append(uv, gmath.NewVec2(uHi*(1-float64(i)/nEdge), vHi))
	}
	for i := 1; i <= nEdge; i++ {
		uv = append(uv, gmath.NewVec2(0, vHi*(1-float64(i)/nEdge)))
	}

	pts := make([]gmath.Vec3, len(uv))
	for i, p := range uv {
		pts[i] = cs.ToWorld(t.PointCanonical(p.X, p.Y))
	}
	boundary := curve.NewPolyline(pts, -1)
	return []curve.Contour{curve.NewContour([]curve.Curve{boundary})}
}
