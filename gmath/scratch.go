// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmath

import "sync"

// Scratch is a monotonically-growing per-goroutine buffer used by the
// NURBS de Boor basis evaluator. It replaces a per-goroutine-copy
// factory keyed by goroutine id with the more idiomatic sync.Pool
// pattern, since this kernel has no central shape factory to key
// per-goroutine copies off of.
type Scratch struct {
	Basis  []float64   // basis function values, length >= order
	Derivs []float64   // basis function derivatives, length >= order
	Left   []float64   // de Boor left-knot-distance buffer
	Right  []float64   // de Boor right-knot-distance buffer
	Ndu    [][]float64 // triangular table used while accumulating basis products
}

// Grow ensures every buffer in s has length >= order, doubling capacity
// rather than growing exactly to order so repeated queries at similar
// orders don't reallocate every time; existing contents are discarded
// since basis evaluation always rewrites the full prefix it uses.
func (s *Scratch) Grow(order int) {
	if cap(s.Basis) >= order {
		s.Basis = s.Basis[:order]
		s.Derivs = s.Derivs[:order]
		s.Left = s.Left[:order]
		s.Right = s.Right[:order]
	} else {
		newCap := order
		if cap(s.Basis)*2 > newCap {
			newCap = cap(s.Basis) * 2
		}
		s.Basis = make([]float64, order, newCap)
		s.Derivs = make([]float64, order, newCap)
		s.Left = make([]float64, order, newCap)
		s.Right = make([]float64, order, newCap)
	}
	if len(s.Ndu) < order || len(s.Ndu[0]) < order {
		ndu := make([][]float64, order)
		for i := range ndu {
			ndu[i] = make([]float64, order)
		}
		s.Ndu = ndu
	}
}

var scratchPool = sync.Pool{
	New: func() interface{} { return new(Scratch) },
}

// GetScratch borrows a Scratch from the shared pool, growing it to at
// least order entries. Callers must return it with PutScratch once the
// basis evaluation that used it has finished reading the buffers.
func GetScratch(order int) *Scratch {
	s := scratchPool.Get().(*Scratch)
	s.Grow(order)
	return s
}

// PutScratch returns s to the shared pool for reuse by the next caller on
// this or another goroutine; its backing arrays are never shrunk.
func PutScratch(s *Scratch) {
	scratchPool.Put(s)
}
