// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

// Seeds is a set of random seeds, typically used one per stochastic
// scenario in a run, so that each scenario draws from its own stream
// and adding or removing one does not perturb the others.
type Seeds []int64

// NewSeeds returns n seeds numbered sequentially from base.
func NewSeeds(base int64, n int) Seeds {
	var rs Seeds
	rs.Init(base, n)
	return rs
}

// Init allocates given number of seeds and initializes them to
// sequential numbers base..base+n-1.
func (rs *Seeds) Init(base int64, n int) {
	*rs = make([]int64, n)
	for i := range *rs {
		(*rs)[i] = base + int64(i)
	}
}

// Rand returns a new [SysRand] seeded with the seed at the given index.
func (rs Seeds) Rand(idx int) *SysRand {
	return NewSysRand(rs[idx])
}

