// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesher triangulates a trimmed parametric surface into a
// mesh.Mesh: boundary discretization, UV tessellation of the trimmed
// region, and 3D curvature-adaptive triangle refinement.
package mesher

import (
	"math"

	"github.com/cpmech/brepkernel/gmath"
	"github.com/cpmech/brepkernel/mesh"
	"github.com/cpmech/brepkernel/surface"
	"github.com/cpmech/gosl/chk"
)

// maxRefineLevel bounds the curvature-refinement recursion; it should
// only ever be hit by a surface whose local curvature oscillates faster
// than ChordTol can resolve.
const maxRefineLevel = 100

// uvDedupTol is the UV-distance tolerance below which two refinement
// midpoints are treated as the same node.
const uvDedupTol = 1e-6

// Options carries the mesher's two tolerances.
type Options struct {
	ChordTol   float64
	MaxAngStep float64
}

// DefaultOptions returns the package-wide fine tessellation tolerances.
func DefaultOptions() Options {
	return Options{ChordTol: gmath.FineTess, MaxAngStep: gmath.FineTessAngle}
}

// Build triangulates s's trimmed region into a Mesh whose facets
// deviate from the analytic surface by at most opt.ChordTol. Planar
// surfaces skip the 3D refinement pass (meshPlane only tessellates the
// boundary in (u,v)); full- and partial-cylinder trims that
// cylinderTrimExtent recognizes bypass the generic
// contour/tessellate/refine pipeline for a direct strip construction.
func Build(s surface.Surface, opt Options, notifier gmath.Notifier) (*mesh.Mesh, error) {
	if css, ok := s.(*surface.CSSurface); ok {
		switch canon := css.Canon.(type) {
		case *surface.Plane:
			gmath.Notify(notifier, "mesher-plane-fastpath")
			return meshPlane(s, opt)
		case *surface.Cylinder:
			if m, ok := meshCylinder(s, canon, opt, notifier); ok {
				return m, nil
			}
		}
	}
	return meshGeneric(s, opt, notifier)
}

// buildBoundaries discretizes every one of s's contours and appends
// their points to uvs/pos, returning one ring of global indices per
// contour plus the accumulated wire edges.
func buildBoundaries(s surface.Surface, opt Options) (uvs []gmath.Vec2, pos []gmath.Vec3, wires []int, rings [][]int, err error) {
	contours := s.Contours()
	if len(contours) == 0 {
		return nil, nil, nil, nil, chk.Err("mesher: surface has no bounding contours")
	}
	for _, c := range contours {
		pts, _ := c.Discretize3D(opt.ChordTol, opt.MaxAngStep)
		if len(pts) < 2 {
			return nil, nil, nil, nil, chk.Err("mesher: contour discretized to fewer than 2 points")
		}
		base := len(uvs)
		ring := make([]int, len(pts))
		for i, p := range pts {
			ring[i] = base + i
			uvs = append(uvs, s.UV(p))
			pos = append(pos, p)
		}
		// pts runs continuously across every curve in the contour, so
		// the joint between one curve's last point and the next
		// curve's first is just the next consecutive ring edge.
		for j := 0; j+1 < len(ring); j++ {
			wires = append(wires, ring[j], ring[j+1])
		}
		if c.Closed() {
			wires = append(wires, ring[len(ring)-1], ring[0])
		}
		rings = append(rings, ring)
	}
	return uvs, pos, wires, rings, nil
}

// triangulateRings merges holes (every ring beyond the first) into the
// outer ring and ear-clips the result.
func triangulateRings(uvs []gmath.Vec2, rings [][]int) []int {
	poly := rings[0]
	for _, hole := range rings[1:] {
		poly = bridgeHole(uvs, poly, hole)
	}
	return earClip(uvs, poly)
}

// meshPlane flattens contours into a 2D polygon and invokes only the 2D
// tessellator: a flat surface has zero curvature deviation, so the
// recursive 3D refinement pass is skipped entirely.
func meshPlane(s surface.Surface, opt Options) (*mesh.Mesh, error) {
	uvs, pos, wires, rings, err := buildBoundaries(s, opt)
	if err != nil {
		return nil, err
	}
	tris := triangulateRings(uvs, rings)
	if tris == nil {
		return nil, chk.Err("mesher: failed to triangulate planar boundary")
	}
	verts := make([]mesh.Vertex, len(pos))
	for i, p := range pos {
		verts[i] = mesh.NewVertex(p, s.Normal(uvs[i].X, uvs[i].Y).Normalize())
	}
	return &mesh.Mesh{Vertices: verts, Triangles: tris, Wires: wires}, nil
}

// meshGeneric is the full contour -> UV tessellation -> curvature
// refinement pipeline described for every surface without a special
// case of its own.
func meshGeneric(s surface.Surface, opt Options, notifier gmath.Notifier) (*mesh.Mesh, error) {
	uvs, pos, wires, rings, err := buildBoundaries(s, opt)
	if err != nil {
		return nil, err
	}
	triIdx := triangulateRings(uvs, rings)
	if triIdx == nil {
		return nil, chk.Err("mesher: failed to triangulate surface boundary")
	}

	nodeUV := append([]gmath.Vec2{}, uvs...)
	nodePos := append([]gmath.Vec3{}, pos...)
	nodeNormal := make([]gmath.Vec3, len(uvs))
	for i, uv := range uvs {
		nodeNormal[i] = s.Normal(uv.X, uv.Y).Normalize()
	}

	dedup := make(map[uvKey]int, len(uvs))
	for i, uv := range uvs {
		dedup[keyOf(uv)] = i
	}
	addNode := func(uv gmath.Vec2) int {
		k := keyOf(uv)
		if idx, ok := dedup[k]; ok {
			return idx
		}
		idx := len(nodeUV)
		nodeUV = append(nodeUV, uv)
		nodePos = append(nodePos, s.Point(uv.X, uv.Y))
		nodeNormal = append(nodeNormal, s.Normal(uv.X, uv.Y).Normalize())
		dedup[k] = idx
		return idx
	}

	tolSq := opt.ChordTol * opt.ChordTol
	var triangles []int
	capped := 0

	var refine func(a, b, c, level int)
	refine = func(a, b, c, level int) {
		if level >= maxRefineLevel {
			triangles = append(triangles, a, b, c)
			capped++
			return
		}
		uvA, uvB, uvC := nodeUV[a], nodeUV[b], nodeUV[c]
		mAB := uvA.Add(uvB).Scale(0.5)
		mBC := uvB.Add(uvC).Scale(0.5)
		mCA := uvC.Add(uvA).Scale(0.5)

		dAB := gmath.ChordSagittaSq(s.Point(mAB.X, mAB.Y), nodePos[a], nodePos[b])
		dBC := gmath.ChordSagittaSq(s.Point(mBC.X, mBC.Y), nodePos[b], nodePos[c])
		dCA := gmath.ChordSagittaSq(s.Point(mCA.X, mCA.Y), nodePos[c], nodePos[a])

		switch {
		case dAB > tolSq && dBC > tolSq && dCA > tolSq:
			mab, mbc, mca := addNode(mAB), addNode(mBC), addNode(mCA)
			refine(a, mab, mca, level+1)
			refine(mab, b, mbc, level+1)
			refine(mca, mbc, c, level+1)
			refine(mab, mbc, mca, level+1)
		case dAB >= dBC && dAB >= dCA && dAB > tolSq:
			m := addNode(mAB)
			refine(a, m, c, level+1)
			refine(m, b, c, level+1)
		case dBC >= dAB && dBC >= dCA && dBC > tolSq:
			m := addNode(mBC)
			refine(a, b, m, level+1)
			refine(a, m, c, level+1)
		case dCA > tolSq:
			m := addNode(mCA)
			refine(a, b, m, level+1)
			refine(m, b, c, level+1)
		default:
			triangles = append(triangles, a, b, c)
		}
	}

	for i := 0; i+2 < len(triIdx); i += 3 {
		refine(triIdx[i], triIdx[i+1], triIdx[i+2], 0)
	}
	if capped > 0 {
		gmath.Notify(notifier, "mesher-level-capped", capped)
	}

	verts := make([]mesh.Vertex, len(nodePos))
	for i := range nodePos {
		verts[i] = mesh.NewVertex(nodePos[i], nodeNormal[i])
	}
	return &mesh.Mesh{Vertices: verts, Triangles: triangles, Wires: wires}, nil
}

type uvKey struct{ u, v int64 }

func keyOf(v gmath.Vec2) uvKey {
	return uvKey{int64(math.Round(v.X / uvDedupTol)), int64(math.Round(v.Y / uvDedupTol))}
}
