// Copyright (c) 2026 the scriptum authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package scriptum provides stack-safe evaluation of recursive
// computations expressed as deferred step descriptors.
//
// Recursive functions are written as generators that return [Step]
// values instead of calling themselves; iterative drivers (trampolines)
// replay the steps in a loop, so native call depth stays constant no
// matter how deep the recursion runs. Four recursion shapes are
// supported: plain tail recursion, tail recursion modulo constructor
// (TRMC), indirect/mutual recursion, and reification of deferred nested
// call trees built by function composition.
//
// # Step Vocabulary
//
// [Step] is a closed sum type with exactly one active variant,
// dispatched by exhaustive type switch:
//
//   - [Base]: terminal result
//   - [Next]: continue the driving generator with new arguments
//   - [Call]: resolve a nested step, then post-process during ascent
//   - [Chain]: jump to another recursive entry point
//   - [Cont]: continuation-accepting wrapper for call-tree reification
//
// Step values are produced by a user-supplied [Generator] on each
// driver iteration and consumed immediately; none persist beyond one
// iteration.
//
// # Drivers
//
//   - [Run]: plain tail recursion — loop on Next, unwrap Base
//   - [RunCall]: TRMC — descend pushing pending [PostFn] operations,
//     ascend applying them innermost first; (v, false) short-circuits
//   - [RunChain]: mutual recursion — loop on Chain jumps between
//     independently defined generators
//   - [RunCont]: call-tree reification — peel one deferred composition
//     layer per iteration by applying the identity continuation
//
// All drivers are single-threaded, synchronous, and cooperative:
// suspension is purely logical (returning a step instead of making a
// native call), the loop runs to completion before control returns,
// and no state escapes one invocation. A generator that never returns
// Base makes the driver hang; non-termination is the caller's
// responsibility and is never detected. A step variant a driver does
// not accept fails fast with a panic.
//
// # Sequencing
//
// [Bind], [Map], and [Then] sequence {Base, Chain} steps the way a
// monadic bind sequences computations. Composition is deferred until
// the result is driven, so arbitrarily long chains of independently
// defined computations evaluate in loop iterations.
//
// # Deferred Composition
//
// Composing many unary functions into one nested call expression is
// not made stack safe by trampolining construction alone — evaluating
// the nested expression still recurses natively. [ComposeK] and
// [ComposeAll] instead return flat [Cont] wrappers that decouple each
// composition layer from the next; [RunCont] evaluates one layer per
// iteration:
//
//	inc := func(x int) int { return x + 1 }
//	fns := make([]func(int) int, 100000)
//	for i := range fns {
//	    fns[i] = inc
//	}
//	chain := scriptum.ComposeAll[struct{}](fns...)
//	result := scriptum.RunCont(chain(0))
//	// result == 100000; the equivalent nested composition would
//	// exhaust native call depth
//
// # One-Shot Continuations
//
// Continuations are created fresh per invocation and invoked at most
// once. [Once] wraps a continuation in a [OneShot] that enforces the
// discipline: Resume panics on reuse, TryResume reports it, Discard
// abandons the continuation explicitly.
//
// # Persistent Map
//
// [Hamt] is a persistent, structurally shared key/value map backed by
// a hash array mapped trie. Get, Has, Set, Delete, and Update have
// copy-on-write semantics: updates return a new map and share all
// unaffected subtrees with the original. The trampoline core treats it
// as an opaque immutable container; higher-level code uses it as an
// ordinary map that happens to keep old versions alive.
//
// # Example
//
//	type evenArgs struct{ n int }
//
//	var isEven, isOdd scriptum.Generator[evenArgs, bool]
//	isEven = func(a evenArgs) scriptum.Step[evenArgs, bool] {
//	    if a.n == 0 {
//	        return scriptum.Base[evenArgs, bool]{Value: true}
//	    }
//	    return scriptum.Chain[evenArgs, bool]{Fn: isOdd, Args: evenArgs{n: a.n - 1}}
//	}
//	isOdd = func(a evenArgs) scriptum.Step[evenArgs, bool] {
//	    if a.n == 0 {
//	        return scriptum.Base[evenArgs, bool]{Value: false}
//	    }
//	    return scriptum.Chain[evenArgs, bool]{Fn: isEven, Args: evenArgs{n: a.n - 1}}
//	}
//
//	ok := scriptum.RunChain(isEven(evenArgs{n: 10000}))
//	// ok == true, with constant native call depth
package scriptum
