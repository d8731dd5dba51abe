// Copyright (c) 2026 the scriptum authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

// Step is the closed vocabulary of deferred recursion steps.
// A step describes the next move of a suspended recursive computation
// without consuming native call stack: drivers inspect the concrete
// variant and loop instead of calling.
//
// The type parameter T is the generator argument type, A the result type.
// Dispatch uses type switches, not tags — Step is a pure marker interface
// sealed by the unexported method.
//
// Exactly one variant is active per value:
//   - [Base]: terminal result
//   - [Next]: continue the driving generator with new arguments
//   - [Call]: resolve a nested step, then post-process during ascent
//   - [Chain]: jump to another recursive entry point
//   - [Cont]: continuation-accepting wrapper for call-tree reification
type Step[T, A any] interface {
	step() // unexported marker method
}

// Generator produces the next step from the current arguments.
// It is the user-supplied half of every driver contract: given arguments,
// it returns exactly one step value and must be total. A generator that
// never returns [Base] makes the driver loop forever; that is a liveness
// concern owned by the caller, never a stack-safety one.
type Generator[T, A any] func(args T) Step[T, A]

// PostFn is a pending operation captured by [Call] during descent and
// applied during ascent. It returns the transformed value and true to
// keep unwinding, or a final value and false to short-circuit: the
// remaining pending operations are discarded and the value is returned
// as the overall result.
type PostFn[A any] func(a A) (A, bool)

// Base signals computation completion with a terminal result.
type Base[T, A any] struct {
	// Value is the final result of the computation.
	Value A
}

func (Base[T, A]) step() {}

// Next continues the driving generator with new arguments.
// This is the plain tail-recursion step: the driver re-invokes the
// generator with Args in place of a self-call.
type Next[T, A any] struct {
	// Args are the arguments for the next generator invocation.
	Args T
}

func (Next[T, A]) step() {}

// Call defers a unary post-processing function until a nested step
// resolves. [RunCall] pushes Fn onto its pending stack during descent
// and applies it to the resolved value during ascent, innermost first,
// mirroring nested-call evaluation order.
type Call[T, A any] struct {
	// Fn is applied to the resolved value of Nested during ascent.
	Fn PostFn[A]

	// Nested is the step whose resolution Fn is waiting on.
	Nested Step[T, A]
}

func (Call[T, A]) step() {}

// Chain jumps to an independently defined recursive entry point.
// [RunChain] invokes Fn with Args to obtain the next step, which lets
// mutually recursive generators hand control to each other without
// growing the native call stack.
type Chain[T, A any] struct {
	// Fn is the generator to jump to.
	Fn Generator[T, A]

	// Args are the arguments Fn is invoked with.
	Args T
}

func (Chain[T, A]) step() {}

// Cont wraps a continuation-accepting function for call-tree
// reification. [RunCont] repeatedly applies K to the identity
// continuation; each application peels one deferred composition layer
// and yields either another Cont or a [Base].
type Cont[T, A any] struct {
	// K receives the rest of the computation and returns the next step.
	K func(k func(A) A) Step[T, A]
}

func (Cont[T, A]) step() {}

// badStep panics with a descriptive message for step variants a driver
// does not accept. Extracted as a noinline function so that driver
// loops remain inlineable.
//
//go:noinline
func badStep(driver, tag string) {
	panic("scriptum: " + driver + ": unexpected " + tag + " step")
}

// tagOf names the concrete variant of s for panic messages.
func tagOf[T, A any](s Step[T, A]) string {
	switch s.(type) {
	case Base[T, A]:
		return "Base"
	case Next[T, A]:
		return "Next"
	case Call[T, A]:
		return "Call"
	case Chain[T, A]:
		return "Chain"
	case Cont[T, A]:
		return "Cont"
	default:
		return "unknown"
	}
}
