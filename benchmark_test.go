// Copyright (c) 2026 the scriptum authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum_test

import (
	"testing"

	"github.com/drmats/scriptum"
)

// BenchmarkRunSum measures the plain tail driver over 1000 iterations.
func BenchmarkRunSum(b *testing.B) {
	for b.Loop() {
		_ = scriptum.Run(sumDown, sumArgs{n: 1000})
	}
}

// BenchmarkRunCallSub measures the TRMC driver with a 1000-deep
// pending stack.
func BenchmarkRunCallSub(b *testing.B) {
	g := subOnes(1000)
	for b.Loop() {
		_ = scriptum.RunCall(g, 0)
	}
}

// BenchmarkRunChainEvenOdd measures mutual recursion at depth 1000.
func BenchmarkRunChainEvenOdd(b *testing.B) {
	for b.Loop() {
		_ = scriptum.RunChain[int, bool](isEven(1000))
	}
}

// BenchmarkRunContCompose measures driving a reified 1000-link
// composition chain.
func BenchmarkRunContCompose(b *testing.B) {
	fns := make([]func(int) int, 1000)
	for i := range fns {
		fns[i] = inc
	}
	chain := scriptum.ComposeAll[struct{}](fns...)
	for b.Loop() {
		_ = scriptum.RunCont[struct{}, int](chain(0))
	}
}

// BenchmarkFoldR measures the TRMC-backed right fold.
func BenchmarkFoldR(b *testing.B) {
	xs := make([]int, 1000)
	for i := range xs {
		xs[i] = i
	}
	f := func(x, a int) int { return x + a }
	for b.Loop() {
		_ = scriptum.FoldR(f, 0, xs)
	}
}

// BenchmarkHamtSet measures persistent insertion of 1000 keys.
func BenchmarkHamtSet(b *testing.B) {
	for b.Loop() {
		m := scriptum.NewHamt[int, int]()
		for i := range 1000 {
			m = m.Set(i, i)
		}
	}
}

// BenchmarkHamtGet measures lookup in a 1000-key map.
func BenchmarkHamtGet(b *testing.B) {
	m := scriptum.NewHamt[int, int]()
	for i := range 1000 {
		m = m.Set(i, i)
	}
	i := 0
	for b.Loop() {
		_, _ = m.Get(i % 1000)
		i++
	}
}
