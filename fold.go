// Copyright (c) 2026 the scriptum authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

// Generic folds built on the drivers. These are ordinary call sites of
// the engine: FoldL expresses accumulation as plain tail recursion,
// FoldR expresses it as tail recursion modulo constructor, so both stay
// stack safe at any input length.

// foldState carries the cursor and accumulator of a running fold.
type foldState[A any] struct {
	idx int
	acc A
}

// FoldL reduces xs left to right: f(f(f(init, x0), x1), x2)...
// Driven by [Run]; equivalent to a native left fold at any length.
func FoldL[E, A any](f func(A, E) A, init A, xs []E) A {
	g := func(s foldState[A]) Step[foldState[A], A] {
		if s.idx == len(xs) {
			return Base[foldState[A], A]{Value: s.acc}
		}
		return Next[foldState[A], A]{Args: foldState[A]{
			idx: s.idx + 1,
			acc: f(s.acc, xs[s.idx]),
		}}
	}
	return Run(g, foldState[A]{acc: init})
}

// FoldR reduces xs right to left: f(x0, f(x1, ... f(xn, init))).
// Driven by [RunCall]: each element's combining step is deferred on the
// pending stack during descent and applied innermost first during
// ascent, reproducing true right-to-left application order even for
// non-associative f.
func FoldR[E, A any](f func(E, A) A, init A, xs []E) A {
	g := func(s foldState[A]) Step[foldState[A], A] {
		if s.idx == len(xs) {
			return Base[foldState[A], A]{Value: init}
		}
		x := xs[s.idx]
		return Call[foldState[A], A]{
			Fn:     func(a A) (A, bool) { return f(x, a), true },
			Nested: Next[foldState[A], A]{Args: foldState[A]{idx: s.idx + 1}},
		}
	}
	return RunCall(g, foldState[A]{})
}
