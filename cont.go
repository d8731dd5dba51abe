// Copyright (c) 2026 the scriptum authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

// Driver and constructors for deferred call-tree reification.
//
// Composing many unary functions into one nested call expression cannot
// be made stack-safe by trampolining construction alone: evaluating the
// nested expression still recurses natively. Each composition link
// therefore returns a flat [Cont] wrapper holding a continuation-
// accepting function instead of a directly nested callable; the driver
// peels one layer per iteration.

// identity is the identity continuation for RunCont.
// Named generic function produces a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures incur.
func identity[A any](a A) A { return a }

// RunCont iteratively evaluates a reified call tree.
// While the current step is a [Cont], its wrapped function is applied
// to the identity continuation to peel one deferred composition layer;
// a [Base] step terminates the loop.
//
// Evaluating a composition chain of arbitrary length costs loop
// iterations, not native call depth.
func RunCont[T, A any](s Step[T, A]) A {
	for {
		switch v := s.(type) {
		case Base[T, A]:
			return v.Value
		case Cont[T, A]:
			s = v.K(identity[A])
		default:
			badStep("RunCont", tagOf[T, A](s))
		}
	}
}

// BaseK is the terminal composition link: it resolves immediately to
// its argument. Use it as the innermost function of a [ComposeK] chain.
func BaseK[T, A any](a A) Step[T, A] {
	return Base[T, A]{Value: a}
}

// ComposeK prepends one plain function to a deferred composition chain.
// The returned function applies f first, then hands the result to rest —
// but behind a flat [Cont] wrapper, so invoking it performs no nested
// call. Driving the result with [RunCont] evaluates one link per
// iteration.
//
// Each link is decoupled from the next: rest is only invoked when the
// driver supplies a continuation, never at construction or application
// time.
func ComposeK[T, A any](rest func(A) Step[T, A], f func(A) A) func(A) Step[T, A] {
	return func(a A) Step[T, A] {
		return Cont[T, A]{K: func(k func(A) A) Step[T, A] {
			return rest(k(f(a)))
		}}
	}
}

// ComposeAll folds fns into a single deferred composition chain with
// right-to-left application order, matching ordinary function
// composition: ComposeAll(f, g, h) applied to x computes f(g(h(x))).
//
// The chain is flat: applying the result allocates one [Cont] wrapper,
// and [RunCont] evaluates one of the n links per iteration. A directly
// nested composition of equivalent length would exhaust native call
// depth; the deferred chain cannot.
func ComposeAll[T, A any](fns ...func(A) A) func(A) Step[T, A] {
	rest := BaseK[T, A]
	for _, f := range fns {
		rest = ComposeK(rest, f)
	}
	return rest
}
