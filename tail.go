// Copyright (c) 2026 the scriptum authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

// Run drives a plain tail-recursive generator to completion.
// It invokes g with args and loops while g returns [Next], re-invoking
// g with the new arguments; a [Base] step terminates the loop and its
// value is returned.
//
// Native call depth stays constant regardless of iteration count. A
// generator that never returns Base loops forever. Any other variant
// is a contract violation and panics.
//
// Example:
//
//	type acc struct{ n, sum int }
//	sum := scriptum.Run(func(a acc) scriptum.Step[acc, int] {
//	    if a.n == 0 {
//	        return scriptum.Base[acc, int]{Value: a.sum}
//	    }
//	    return scriptum.Next[acc, int]{Args: acc{n: a.n - 1, sum: a.sum + a.n}}
//	}, acc{n: 100000})
//	// sum == 5000050000
func Run[T, A any](g Generator[T, A], args T) A {
	s := g(args)
	for {
		switch v := s.(type) {
		case Base[T, A]:
			return v.Value
		case Next[T, A]:
			s = g(v.Args)
		default:
			badStep("Run", tagOf[T, A](s))
		}
	}
}
