// Copyright (c) 2026 the scriptum authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

// Driver for tail recursion modulo constructor (TRMC): recursion where
// the recursive call sits inside a combining operation rather than in
// strict tail position. [Call] steps capture the combining operation as
// a pending function; the driver replays the pending stack after the
// recursion bottoms out, innermost call first.

// pendingStack is the LIFO sequence of deferred unary operations built
// during descent and unwound during ascent. Its length always equals
// the number of unresolved Call frames since the last Base.
type pendingStack[A any] struct {
	fns []PostFn[A]
}

func (p *pendingStack[A]) push(fn PostFn[A]) {
	p.fns = append(p.fns, fn)
}

func (p *pendingStack[A]) len() int { return len(p.fns) }

// pop removes and returns the most recently pushed operation.
// Underflow is structurally impossible while descent and ascent stay
// balanced; it is asserted rather than recovered from.
func (p *pendingStack[A]) pop() PostFn[A] {
	n := len(p.fns)
	if n == 0 {
		panic("scriptum: pending stack underflow")
	}
	fn := p.fns[n-1]
	p.fns[n-1] = nil
	p.fns = p.fns[:n-1]
	return fn
}

// RunCall drives a TRMC-style generator to completion.
//
// Descent: g is invoked with args and re-invoked while it returns
// [Next]; a [Call] step pushes its Fn onto the pending stack and
// descends into its Nested step; a [Base] step ends the descent.
//
// Ascent: pending operations are popped most-recently-pushed first —
// the innermost call is applied first, mirroring nested-call evaluation
// order — and applied to the running result. An operation returning
// (v, false) short-circuits: v becomes the final result and the
// remaining pending operations are discarded.
//
// The pushed operations need not be associative; with a non-associative
// combiner the caller reasons about the exact unwind order instead of
// the classical order-independence guarantee of TRMC.
func RunCall[T, A any](g Generator[T, A], args T) A {
	var pending pendingStack[A]
	var r A

	s := g(args)
descent:
	for {
		switch v := s.(type) {
		case Base[T, A]:
			r = v.Value
			break descent
		case Next[T, A]:
			s = g(v.Args)
		case Call[T, A]:
			pending.push(v.Fn)
			s = v.Nested
		default:
			badStep("RunCall", tagOf[T, A](s))
		}
	}

	for pending.len() > 0 {
		r2, keep := pending.pop()(r)
		r = r2
		if !keep {
			break
		}
	}
	return r
}
