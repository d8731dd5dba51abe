// Copyright (c) 2026 the scriptum authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

// Driver and sequencing operators for indirect/mutual recursion.
// [Chain] steps reference other recursive entry points by generator, so
// mutually recursive definitions hand control to each other through the
// driver loop instead of through native calls.

// RunChain drives a step built from [Chain] jumps to completion.
// While the current step is a Chain, its generator is invoked with its
// arguments to obtain the next step; a [Base] step terminates the loop.
//
// Mutual-recursion depth is bounded by loop iterations, never by native
// call depth.
func RunChain[T, A any](s Step[T, A]) A {
	for {
		switch v := s.(type) {
		case Base[T, A]:
			return v.Value
		case Chain[T, A]:
			s = v.Fn(v.Args)
		default:
			badStep("RunChain", tagOf[T, A](s))
		}
	}
}

// Bind sequences a {Base, Chain} step with the rest of the computation
// (monadic bind). A [Base] step applies f immediately; a [Chain] step
// is rewrapped so that composition is deferred until the result is
// actually driven — one layer per [RunChain] iteration.
//
// f's result may itself be Chain or Base, enabling further chaining.
// Steps outside {Base, Chain} are a contract violation and panic.
func Bind[T, A, B any](m Step[T, A], f func(A) Step[T, B]) Step[T, B] {
	switch v := m.(type) {
	case Base[T, A]:
		return f(v.Value)
	case Chain[T, A]:
		fn, args := v.Fn, v.Args
		return Chain[T, B]{
			Fn:   func(a T) Step[T, B] { return Bind(fn(a), f) },
			Args: args,
		}
	default:
		badStep("Bind", tagOf[T, A](m))
		return nil
	}
}

// Map applies a pure function to the eventual result of a
// {Base, Chain} step. Equivalent to Bind(m, func(a) Base(f(a))) but
// avoids the intermediate constructor closure.
func Map[T, A, B any](m Step[T, A], f func(A) B) Step[T, B] {
	switch v := m.(type) {
	case Base[T, A]:
		return Base[T, B]{Value: f(v.Value)}
	case Chain[T, A]:
		fn, args := v.Fn, v.Args
		return Chain[T, B]{
			Fn:   func(a T) Step[T, B] { return Map[T, A, B](fn(a), f) },
			Args: args,
		}
	default:
		badStep("Map", tagOf[T, A](m))
		return nil
	}
}

// Then sequences two {Base, Chain} steps, discarding the first
// result. More efficient than Bind when the second computation does not
// depend on the first result.
func Then[T, A, B any](m Step[T, A], n Step[T, B]) Step[T, B] {
	switch v := m.(type) {
	case Base[T, A]:
		return n
	case Chain[T, A]:
		fn, args := v.Fn, v.Args
		return Chain[T, B]{
			Fn:   func(a T) Step[T, B] { return Then[T, A, B](fn(a), n) },
			Args: args,
		}
	default:
		badStep("Then", tagOf[T, A](m))
		return nil
	}
}
