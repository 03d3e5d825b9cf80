// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"

	"github.com/cpmech/brepkernel/curve"
	"github.com/cpmech/brepkernel/gmath"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// NurbsSurface is a bidirectional rational/non-rational B-spline
// surface over a uCtl x vCtl control grid, stored row-major
// (Ctrl[i*vCtl+j] corresponds to u-index i, v-index j).
type NurbsSurface struct {
	Ctrl      []gmath.Vec3
	Weights   []float64 // empty means every weight is 1
	UKnots    []float64
	VKnots    []float64
	uCtl      int
	vCtl      int
	uDegree   int
	vDegree   int
	uDom      curve.Domain
	vDom      curve.Domain
	invertState
}

// NewNurbsSurface validates and builds a NurbsSurface from a row-major
// uCtl x vCtl control grid and the two knot vectors.
func NewNurbsSurface(ctrl []gmath.Vec3, uCtl, vCtl int, uKnots, vKnots []float64, weights []float64) (*NurbsSurface, error) {
	if len(ctrl) != uCtl*vCtl {
		return nil, chk.Err("nurbs surface: len(ctrl)=%d must equal uCtl*vCtl=%d", len(ctrl), uCtl*vCtl)
	}
	up := len(uKnots) - uCtl - 1
	vp := len(vKnots) - vCtl - 1
	if up < 1 || vp < 1 {
		return nil, chk.Err("nurbs surface: degrees must be >= 1 (up=%d, vp=%d)", up, vp)
	}
	if len(weights) != 0 && len(weights) != len(ctrl) {
		return nil, chk.Err("nurbs surface: weights must be empty or len(ctrl)=%d, got %d", len(ctrl), len(weights))
	}
	uDom, err := curve.NewDomain(uKnots[up], uKnots[len(uKnots)-1-up])
	if err != nil {
		return nil, err
	}
	vDom, err := curve.NewDomain(vKnots[vp], vKnots[len(vKnots)-1-vp])
	if err != nil {
		return nil, err
	}
	c := make([]gmath.Vec3, len(ctrl))
	copy(c, ctrl)
	uk := make([]float64, len(uKnots))
	copy(uk, uKnots)
	vk := make([]float64, len(vKnots))
	copy(vk, vKnots)
	var w []float64
	if len(weights) > 0 {
		w = make([]float64, len(weights))
		copy(w, weights)
	}
	return &NurbsSurface{
		Ctrl: c, Weights: w, UKnots: uk, VKnots: vk,
		uCtl: uCtl, vCtl: vCtl, uDegree: up, vDegree: vp,
		uDom: uDom, vDom: vDom,
	}, nil
}

func (n *NurbsSurface) weight(i, j int) float64 {
	if len(n.Weights) == 0 {
		return 1
	}
	return n.Weights[i*n.vCtl+j]
}

func (n *NurbsSurface) ctrl(i, j int) gmath.Vec3 { return n.Ctrl[i*n.vCtl+j] }

func findSpan(knots []float64, degree, nCtl int, u float64) int {
	m := len(knots) - 1
	if u >= knots[m-degree] {
		return m - degree - 1
	}
	low, high := degree, m-degree
	mid := (low + high) / 2
	for u < knots[mid] || u >= knots[mid+1] {
		if u < knots[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}

func basisFuns(knots []float64, degree, span int, u float64, sc *gmath.Scratch) {
	sc.Ndu[0][0] = 1
	for j := 1; j <= degree; j++ {
		sc.Left[j] = u - knots[span+1-j]
		sc.Right[j] = knots[span+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			sc.Ndu[j][r] = sc.Right[r+1] + sc.Left[j-r]
			temp := sc.Ndu[r][j-1] / sc.Ndu[j][r]
			sc.Ndu[r][j] = saved + sc.Right[r+1]*temp
			saved = sc.Left[j-r] * temp
		}
		sc.Ndu[j][j] = saved
	}
	for i := 0; i <= degree; i++ {
		sc.Basis[i] = sc.Ndu[i][degree]
	}
}

func clampToDomain(t float64, d curve.Domain) float64 {
	u := d.Clamp(t)
	if u >= d.Hi {
		u = d.Hi - 1e-12*math.Max(1, math.Abs(d.Hi))
	}
	return u
}

func (n *NurbsSurface) PointCanonical(u, v float64) gmath.Vec3 {
	cu := clampToDomain(u, n.uDom)
	cv := clampToDomain(v, n.vDom)
	uSpan := findSpan(n.UKnots, n.uDegree, n.uCtl, cu)
	vSpan := findSpan(n.VKnots, n.vDegree, n.vCtl, cv)
	uSc := gmath.GetScratch(n.uDegree + 1)
	defer gmath.PutScratch(uSc)
	vSc := gmath.GetScratch(n.vDegree + 1)
	defer gmath.PutScratch(vSc)
	basisFuns(n.UKnots, n.uDegree, uSpan, cu, uSc)
	basisFuns(n.VKnots, n.vDegree, vSpan, cv, vSc)

	var sum gmath.Vec3
	var wsum float64
	for a := 0; a <= n.uDegree; a++ {
		i := uSpan - n.uDegree + a
		for b := 0; b <= n.vDegree; b++ {
			j := vSpan - n.vDegree + b
			w := n.weight(i, j) * uSc.Basis[a] * vSc.Basis[b]
			sum = sum.Add(n.ctrl(i, j).Scale(w))
			wsum += w
		}
	}
	if wsum < 1e-300 {
		return gmath.Vec3{}
	}
	return sum.Scale(1 / wsum)
}

// NormalCanonical uses central-difference tangents in both directions,
// following the same numerical-derivative approach as NurbsCurve.Tangent.
func (n *NurbsSurface) NormalCanonical(u, v float64) gmath.Vec3 {
	hu := 1e-6 * math.Max(1, n.uDom.Span())
	hv := 1e-6 * math.Max(1, n.vDom.Span())
	tu := centralDiffVec3(func(x float64) gmath.Vec3 { return n.PointCanonical(x, v) }, u, hu)
	tv := centralDiffVec3(func(x float64) gmath.Vec3 { return n.PointCanonical(u, x) }, v, hv)
	return tu.Cross(tv)
}

func centralDiffVec3(f func(float64) gmath.Vec3, x, h float64) gmath.Vec3 {
	fx := func(t float64, args ...interface{}) float64 { return f(t).X }
	fy := func(t float64, args ...interface{}) float64 { return f(t).Y }
	fz := func(t float64, args ...interface{}) float64 { return f(t).Z }
	dx, _ := num.DerivCentral(fx, x, h)
	dy, _ := num.DerivCentral(fy, x, h)
	dz, _ := num.DerivCentral(fz, x, h)
	return gmath.NewVec3(dx, dy, dz)
}

// UVCanonical has no closed form for a general control grid; it
// delegates to the adaptive tile inverter registered by package
// surfinv, building the tree for this instance at most once.
func (n *NurbsSurface) UVCanonical(p gmath.Vec3) gmath.Vec2 {
	return invertOrFallback(n, p)
}

func (n *NurbsSurface) UDomain() curve.Domain { return n.uDom }
func (n *NurbsSurface) VDomain() curve.Domain { return n.vDom }

func (n *NurbsSurface) IsPeriodicU() bool { return false }
func (n *NurbsSurface) IsPeriodicV() bool { return false }
func (n *NurbsSurface) IsLinearU() bool   { return false }
func (n *NurbsSurface) IsLinearV() bool   { return false }

func (n *NurbsSurface) ScaledCopy(scale float64) Canonical {
	ctrl := make([]gmath.Vec3, len(n.Ctrl))
	for i, c := range n.Ctrl {
		ctrl[i] = c.Scale(scale)
	}
	out, _ := NewNurbsSurface(ctrl, n.uCtl, n.vCtl, n.UKnots, n.VKnots, n.Weights)
	return out
}
