// Copyright (c) 2026 the scriptum authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum_test

import (
	"testing"

	"github.com/drmats/scriptum"
)

func TestFoldLMatchesNative(t *testing.T) {
	xs := []int{3, 1, 4, 1, 5, 9, 2, 6}
	want := 0
	for _, x := range xs {
		want += x
	}
	result := scriptum.FoldL(func(a, x int) int { return a + x }, 0, xs)
	if result != want {
		t.Errorf("FoldL(+, 0, xs) = %v, want %v", result, want)
	}
}

func TestFoldLOrder(t *testing.T) {
	// Left fold applies left to right: ((0-1)-2)-3 = -6.
	result := scriptum.FoldL(func(a, x int) int { return a - x }, 0, []int{1, 2, 3})
	if result != -6 {
		t.Errorf("FoldL(-, 0, [1 2 3]) = %v, want -6", result)
	}
}

func TestFoldROrder(t *testing.T) {
	// Right fold applies right to left: 1-(2-(3-0)) = 2.
	result := scriptum.FoldR(func(x, a int) int { return x - a }, 0, []int{1, 2, 3})
	if result != 2 {
		t.Errorf("FoldR(-, 0, [1 2 3]) = %v, want 2", result)
	}
}

func TestFoldRConcatOrder(t *testing.T) {
	xs := []string{"a", "b", "c"}
	result := scriptum.FoldR(func(x, a string) string { return x + a }, "", xs)
	if result != "abc" {
		t.Errorf("FoldR(concat, \"\", [a b c]) = %q, want \"abc\"", result)
	}
}

func TestFoldRSubtractionDeep(t *testing.T) {
	// 100000 ones, initial 0: right-to-left subtraction telescopes to
	// 0, and the fold must stay stack safe.
	ones := make([]int, 100000)
	for i := range ones {
		ones[i] = 1
	}
	result := scriptum.FoldR(func(x, a int) int { return x - a }, 0, ones)
	if result != 0 {
		t.Errorf("FoldR(-, 0, 100000 ones) = %v, want 0", result)
	}
}

func TestFoldLDeep(t *testing.T) {
	xs := make([]int, 1000000)
	for i := range xs {
		xs[i] = 1
	}
	result := scriptum.FoldL(func(a, x int) int { return a + x }, 0, xs)
	if result != 1000000 {
		t.Errorf("FoldL(+, 0, 1e6 ones) = %v, want 1000000", result)
	}
}

func TestFoldEmpty(t *testing.T) {
	if got := scriptum.FoldL(func(a, x int) int { return a + x }, 42, nil); got != 42 {
		t.Errorf("FoldL on empty = %v, want 42", got)
	}
	if got := scriptum.FoldR(func(x, a int) int { return x + a }, 42, nil); got != 42 {
		t.Errorf("FoldR on empty = %v, want 42", got)
	}
}

func TestFoldTypeConversion(t *testing.T) {
	xs := []int{1, 2, 3}
	result := scriptum.FoldL(func(a string, x int) string {
		return a + string(rune('0'+x))
	}, "", xs)
	if result != "123" {
		t.Errorf("FoldL to string = %q, want \"123\"", result)
	}
}
