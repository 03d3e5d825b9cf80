// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/brepkernel/gmath"

// Plane is n.p + d = 0, with n unit-length.
type Plane struct {
	N gmath.Vec3
	D float64
}

// Polyline is one chain produced by slicing: an open run of points, or
// (Closed) a loop whose last point connects back to its first.
type Polyline struct {
	Points []gmath.Vec3
	Closed bool
}

// Length sums consecutive point distances, plus the closing edge if Closed.
func (p Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(p.Points); i++ {
		total += p.Points[i-1].Dist(p.Points[i])
	}
	if p.Closed && len(p.Points) > 1 {
		total += p.Points[len(p.Points)-1].Dist(p.Points[0])
	}
	return total
}

// mergeTol is the endpoint-proximity tolerance used to stitch open
// chains that cross from one mesh into an adjacent one.
const mergeTol = 1e-3

// onPlaneBias nudges a signed distance that is too close to zero away
// from the plane, avoiding the degenerate ambiguity of a vertex sitting
// exactly on the cutting plane.
const onPlaneBias = 1e-8
const onPlaneEps = 1e-10

type sliceNode struct {
	Point gmath.Vec3
	Links [2]int // -1 when unused; each node carries at most two links
}

func (n *sliceNode) link(other int) {
	for i, l := range n.Links {
		if l == -1 {
			n.Links[i] = other
			return
		}
	}
}

func (n *sliceNode) degree() int {
	d := 0
	for _, l := range n.Links {
		if l >= 0 {
			d++
		}
	}
	return d
}

type edgeKey struct{ a, b int }

func makeEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// Slice cuts every mesh in meshes against plane, returning the open and
// closed polylines formed where triangles cross it. Open chains are
// merged across mesh boundaries by endpoint proximity.
func Slice(meshes []*Mesh, plane Plane) []Polyline {
	var nodes []sliceNode

	for _, m := range meshes {
		if m.Bound().DistToPlaneExceedsRadius(plane.N, plane.D) {
			continue
		}
		dist := make([]float64, len(m.Vertices))
		for i, v := range m.Vertices {
			d := plane.N.Dot(v.Position()) + plane.D
			if d > -onPlaneEps && d < onPlaneEps {
				d = onPlaneBias
			}
			dist[i] = d
		}

		edgeNodes := make(map[edgeKey]int)
		crossEdge := func(i, j int) (int, bool) {
			di, dj := dist[i], dist[j]
			if di*dj >= 0 {
				return 0, false
			}
			key := makeEdgeKey(i, j)
			if idx, ok := edgeNodes[key]; ok {
				return idx, true
			}
			t := di / (di - dj)
			p := m.Vertices[i].Position().Lerp(m.Vertices[j].Position(), t)
			idx := len(nodes)
			nodes = append(nodes, sliceNode{Point: p, Links: [2]int{-1, -1}})
			edgeNodes[key] = idx
			return idx, true
		}

		for tri := 0; tri < m.NumTriangles(); tri++ {
			a, b, c := m.Triangle(tri)
			var crossings []int
			for _, e := range [3][2]int{{a, b}, {b, c}, {c, a}} {
				if idx, ok := crossEdge(e[0], e[1]); ok {
					crossings = append(crossings, idx)
				}
			}
			if len(crossings) == 2 {
				nodes[crossings[0]].link(crossings[1])
				nodes[crossings[1]].link(crossings[0])
			}
		}
	}

	return mergeChains(walkChains(nodes))
}

func walkChains(nodes []sliceNode) []Polyline {
	visited := make([]bool, len(nodes))
	var chains []Polyline

	walk := func(start int) Polyline {
		var pts []gmath.Vec3
		prev, cur := -1, start
		closed := false
		for {
			visited[cur] = true
			pts = append(pts, nodes[cur].Point)
			next := -1
			for _, l := range nodes[cur].Links {
				if l >= 0 && l != prev {
					next = l
					break
				}
			}
			if next == -1 {
				break
			}
			if next == start {
				closed = true
				break
			}
			prev, cur = cur, next
		}
		return Polyline{Points: collapseCollinear(pts, closed), Closed: closed}
	}

	for i, n := range nodes {
		if !visited[i] && n.degree() == 1 {
			chains = append(chains, walk(i))
		}
	}
	for i := range nodes {
		if !visited[i] {
			chains = append(chains, walk(i))
		}
	}

	out := chains[:0]
	for _, ch := range chains {
		if len(ch.Points) < 2 || ch.Length() <= 0 {
			continue
		}
		out = append(out, ch)
	}
	return out
}

// collinearTolSq bounds the squared chord sagitta below which a node is
// considered a straight pass-through rather than a real corner. Slicing
// a triangulated quad crosses the face's interior diagonal along with
// its two real boundary edges; where the cut runs straight across the
// quad, the diagonal crossing sits exactly on the segment joining the
// two boundary crossings and must be dropped to leave one edge instead
// of two collinear ones.
const collinearTolSq = 1e-14

// collapseCollinear removes every node whose chord sagitta against its
// two neighbors falls below tolerance, repeating until no run remains;
// a closed chain's wraparound neighbors are included, an open chain's
// two endpoints are never dropped.
func collapseCollinear(pts []gmath.Vec3, closed bool) []gmath.Vec3 {
	changed := true
	for changed && len(pts) >= 3 {
		changed = false
		n := len(pts)
		for i := 0; i < n; i++ {
			if !closed && (i == 0 || i == n-1) {
				continue
			}
			prev := pts[(i-1+n)%n]
			next := pts[(i+1)%n]
			if gmath.ChordSagittaSq(pts[i], prev, next) <= collinearTolSq {
				pts = append(pts[:i], pts[i+1:]...)
				changed = true
				break
			}
		}
	}
	return pts
}

// mergeChains stitches open chains whose endpoints coincide within
// mergeTol, the seam left where a cut crosses from one mesh's
// triangles into an adjacent mesh's.
func mergeChains(chains []Polyline) []Polyline {
	merged := true
	for merged {
		merged = false
		for i := 0; i < len(chains); i++ {
			if chains[i].Closed {
				continue
			}
			for j := i + 1; j < len(chains); j++ {
				if chains[j].Closed {
					continue
				}
				if joined, ok := tryJoin(chains[i], chains[j]); ok {
					chains[i] = joined
					chains = append(chains[:j], chains[j+1:]...)
					merged = true
					break
				}
			}
			if merged {
				break
			}
		}
	}
	return chains
}

func tryJoin(a, b Polyline) (Polyline, bool) {
	aEnd := a.Points[len(a.Points)-1]
	bStart := b.Points[0]
	bEnd := b.Points[len(b.Points)-1]
	aStart := a.Points[0]

	switch {
	case aEnd.Dist(bStart) <= mergeTol:
		return Polyline{Points: append(append([]gmath.Vec3{}, a.Points...), b.Points[1:]...)}, true
	case aEnd.Dist(bEnd) <= mergeTol:
		return Polyline{Points: append(append([]gmath.Vec3{}, a.Points...), reversed(b.Points)[1:]...)}, true
	case aStart.Dist(bEnd) <= mergeTol:
		return Polyline{Points: append(append([]gmath.Vec3{}, b.Points...), a.Points[1:]...)}, true
	case aStart.Dist(bStart) <= mergeTol:
		return Polyline{Points: append(reversed(a.Points), b.Points[1:]...)}, true
	}
	return Polyline{}, false
}

func reversed(pts []gmath.Vec3) []gmath.Vec3 {
	out := make([]gmath.Vec3, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
