// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package curve implements the parametric curve model (M1): line, arc,
// ellipse, NURBS and polyline variants, their evaluation and
// discretization.
package curve

import "github.com/cpmech/gosl/chk"

// Domain is a closed parameter interval [Lo, Hi]
type Domain struct {
	Lo, Hi float64
}

// NewDomain builds a Domain, rejecting Lo > Hi
func NewDomain(lo, hi float64) (Domain, error) {
	if lo > hi {
		return Domain{}, chk.Err("curve: domain lo=%v must not exceed hi=%v", lo, hi)
	}
	return Domain{Lo: lo, Hi: hi}, nil
}

// Span returns Hi-Lo
func (d Domain) Span() float64 {
	return d.Hi - d.Lo
}

// Clamp restricts t to [Lo, Hi]
func (d Domain) Clamp(t float64) float64 {
	if t < d.Lo {
		return d.Lo
	}
	if t > d.Hi {
		return d.Hi
	}
	return t
}

// Lerp maps a fraction s in [0,1] onto the domain
func (d Domain) Lerp(s float64) float64 {
	return d.Lo + s*d.Span()
}

// Normalize maps t in [Lo,Hi] back onto a fraction in [0,1]
func (d Domain) Normalize(t float64) float64 {
	span := d.Span()
	if span < 1e-300 {
		return 0
	}
	return (t - d.Lo) / span
}
