// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import "sync"

// invertState is embedded by canonical variants that have no closed-form
// UVCanonical and instead delegate to the adaptive tile inverter: it
// holds the lazily-built, thread-confined inversion tree for one
// variant instance, built at most once via TreeOnce.
type invertState struct {
	once sync.Once
	tree interface{}
}

// TreeSlot exposes the opaque inversion-tree storage slot to package
// surfinv; it is otherwise opaque (interface{}) to this package.
func (s *invertState) TreeSlot() *interface{} { return &s.tree }

// TreeOnce exposes the sync.Once guarding first construction of the
// inversion tree, so the lazy build is safe under concurrent first
// queries from multiple goroutines.
func (s *invertState) TreeOnce() *sync.Once { return &s.once }
