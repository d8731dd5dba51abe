// Copyright (c) 2026 the scriptum authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

import "sync/atomic"

// OneShot wraps a continuation with at-most-once enforcement.
// Continuations represent "the rest of the computation": they are
// created fresh per invocation, never shared across unrelated
// computations, and invoked at most once. OneShot makes that last
// discipline checkable at an API boundary — subsequent attempts to
// resume panic (Resume) or report failure (TryResume).
type OneShot[A, R any] struct {
	used   atomic.Uintptr
	resume func(A) R
}

// Once creates a one-shot continuation from a regular continuation.
func Once[A, R any](k func(A) R) *OneShot[A, R] {
	return &OneShot[A, R]{resume: k}
}

// Resume invokes the continuation with the given value.
// Panics if the continuation has already been used.
func (o *OneShot[A, R]) Resume(v A) R {
	if o.used.Add(1) != 1 {
		panic("scriptum: one-shot continuation resumed twice")
	}
	return o.resume(v)
}

// TryResume attempts to invoke the continuation.
// Returns (result, true) on success, or (zero, false) if already used.
func (o *OneShot[A, R]) TryResume(v A) (R, bool) {
	if o.used.Add(1) != 1 {
		var zero R
		return zero, false
	}
	return o.resume(v), true
}

// Discard marks the continuation as used without invoking it.
func (o *OneShot[A, R]) Discard() {
	o.used.Store(1)
}
