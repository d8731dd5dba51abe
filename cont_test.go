// Copyright (c) 2026 the scriptum authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum_test

import (
	"testing"

	"github.com/drmats/scriptum"
)

func inc(x int) int { return x + 1 }

func TestRunContSingleLink(t *testing.T) {
	chain := scriptum.ComposeK(scriptum.BaseK[struct{}, int], inc)
	result := scriptum.RunCont[struct{}, int](chain(41))
	if result != 42 {
		t.Errorf("RunCont(ComposeK(BaseK, inc)(41)) = %v, want 42", result)
	}
}

func TestRunContDeepComposition(t *testing.T) {
	// A reified chain of 100000 increments applied to 0 evaluates to
	// 100000 in loop iterations; the equivalent directly nested
	// composition would exhaust native call depth.
	fns := make([]func(int) int, 100000)
	for i := range fns {
		fns[i] = inc
	}
	chain := scriptum.ComposeAll[struct{}](fns...)
	result := scriptum.RunCont[struct{}, int](chain(0))
	if result != 100000 {
		t.Errorf("RunCont(100000 x inc)(0) = %v, want 100000", result)
	}
}

func TestComposeAllOrder(t *testing.T) {
	// ComposeAll applies right to left like ordinary composition:
	// ComposeAll(double, addTen)(1) = double(addTen(1)) = 22.
	double := func(x int) int { return x * 2 }
	addTen := func(x int) int { return x + 10 }
	chain := scriptum.ComposeAll[struct{}](double, addTen)
	result := scriptum.RunCont[struct{}, int](chain(1))
	if result != 22 {
		t.Errorf("ComposeAll(double, addTen)(1) = %v, want 22", result)
	}
}

func TestComposeAllEmpty(t *testing.T) {
	chain := scriptum.ComposeAll[struct{}, int]()
	result := scriptum.RunCont[struct{}, int](chain(7))
	if result != 7 {
		t.Errorf("ComposeAll()(7) = %v, want 7", result)
	}
}

func TestRunContBaseFirst(t *testing.T) {
	result := scriptum.RunCont[struct{}, int](scriptum.Base[struct{}, int]{Value: 42})
	if result != 42 {
		t.Errorf("RunCont(Base(42)) = %v, want 42", result)
	}
}

func TestRunContIdempotent(t *testing.T) {
	// Driving the same reified step twice yields the same result; no
	// hidden state persists between invocations.
	fns := make([]func(int) int, 100)
	for i := range fns {
		fns[i] = inc
	}
	s := scriptum.ComposeAll[struct{}](fns...)(0)
	first := scriptum.RunCont[struct{}, int](s)
	second := scriptum.RunCont[struct{}, int](s)
	if first != second || first != 100 {
		t.Errorf("RunCont not idempotent: %v, %v, want 100, 100", first, second)
	}
}

func TestComposeKDefersInvocation(t *testing.T) {
	// Applying a composed chain must not invoke the rest of the chain;
	// only driving does.
	called := false
	rest := func(a int) scriptum.Step[struct{}, int] {
		called = true
		return scriptum.Base[struct{}, int]{Value: a}
	}
	chain := scriptum.ComposeK(rest, inc)
	s := chain(1)
	if called {
		t.Fatal("ComposeK must defer the rest of the chain until driven")
	}
	if result := scriptum.RunCont[struct{}, int](s); result != 2 {
		t.Errorf("RunCont(ComposeK(rest, inc)(1)) = %v, want 2", result)
	}
	if !called {
		t.Error("driving the chain should invoke the rest")
	}
}

func TestRunContRejectsChainStep(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("RunCont should panic on a Chain step")
		}
	}()
	_ = scriptum.RunCont[int, int](scriptum.Chain[int, int]{
		Fn:   func(int) scriptum.Step[int, int] { return scriptum.Base[int, int]{} },
		Args: 0,
	})
}
