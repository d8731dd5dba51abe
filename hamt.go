// Copyright (c) 2026 the scriptum authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptum

import (
	"hash/maphash"
	"math/bits"
)

// Persistent key/value map backed by a hash array mapped trie.
//
// Every update returns a new map value; the receiver is never mutated.
// Unaffected keys are shared between versions, not copied: an update
// copies only the path from the root to the touched leaf. The trie
// branches 32 ways on successive 5-bit chunks of a 64-bit key hash;
// keys whose hashes collide in full are kept in a flat bucket.

const (
	hamtBits  = 5
	hamtWidth = 1 << hamtBits
	hamtMask  = hamtWidth - 1
)

// Hamt is a persistent, structurally shared map from K to V.
// The zero value is not usable; create maps with [NewHamt].
// Hamt values are immutable and safe to share freely.
type Hamt[K comparable, V any] struct {
	root node[K, V]
	size int
	hash func(K) uint64
}

// NewHamt creates an empty persistent map.
// Keys are hashed with hash/maphash under a per-map random seed, so
// hash values are not stable across maps or processes.
func NewHamt[K comparable, V any]() Hamt[K, V] {
	seed := maphash.MakeSeed()
	return Hamt[K, V]{
		hash: func(k K) uint64 { return maphash.Comparable(seed, k) },
	}
}

// newHamtWithHash creates an empty map with a caller-supplied hash
// function. Test hook: forcing collisions exercises bucket paths that
// a 64-bit hash never reaches in practice.
func newHamtWithHash[K comparable, V any](hash func(K) uint64) Hamt[K, V] {
	return Hamt[K, V]{hash: hash}
}

// Len returns the number of keys in the map.
func (m Hamt[K, V]) Len() int { return m.size }

// Get returns the value stored under key, and whether it is present.
func (m Hamt[K, V]) Get(key K) (V, bool) {
	if m.root == nil {
		var zero V
		return zero, false
	}
	return m.root.get(m.hash(key), 0, key)
}

// Has reports whether key is present.
func (m Hamt[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Set returns a new map in which key maps to value.
// The receiver is unchanged; untouched subtrees are shared.
func (m Hamt[K, V]) Set(key K, value V) Hamt[K, V] {
	h := m.hash(key)
	if m.root == nil {
		m.root = &leaf[K, V]{hash: h, key: key, val: value}
		m.size = 1
		return m
	}
	root, added := m.root.set(h, 0, key, value)
	m.root = root
	if added {
		m.size++
	}
	return m
}

// Delete returns a new map without key.
// Deleting an absent key returns the receiver unchanged.
func (m Hamt[K, V]) Delete(key K) Hamt[K, V] {
	if m.root == nil {
		return m
	}
	root, removed := m.root.del(m.hash(key), 0, key)
	if !removed {
		return m
	}
	m.root = root
	m.size--
	return m
}

// Update returns a new map in which key maps to f applied to the
// current value. f receives the zero value and false when key is
// absent, and the stored value and true when present.
func (m Hamt[K, V]) Update(key K, f func(v V, ok bool) V) Hamt[K, V] {
	v, ok := m.Get(key)
	return m.Set(key, f(v, ok))
}

// node is the closed sum of trie node shapes.
// set and del return the replacement node (nil for "became empty") and
// whether the key count changed. Nodes are immutable once built;
// replacements share every untouched child with the original.
type node[K comparable, V any] interface {
	get(h uint64, shift uint, key K) (V, bool)
	set(h uint64, shift uint, key K, v V) (node[K, V], bool)
	del(h uint64, shift uint, key K) (node[K, V], bool)
}

// chunk extracts the 5-bit branch index of h at the given shift.
func chunk(h uint64, shift uint) uint {
	return uint(h>>shift) & hamtMask
}

// leaf holds a single key/value pair and its full hash.
type leaf[K comparable, V any] struct {
	hash uint64
	key  K
	val  V
}

func (l *leaf[K, V]) get(h uint64, _ uint, key K) (V, bool) {
	if h == l.hash && key == l.key {
		return l.val, true
	}
	var zero V
	return zero, false
}

func (l *leaf[K, V]) set(h uint64, shift uint, key K, v V) (node[K, V], bool) {
	if h == l.hash && key == l.key {
		return &leaf[K, V]{hash: h, key: key, val: v}, false
	}
	if h == l.hash {
		return &bucket[K, V]{
			hash:    h,
			entries: []entry[K, V]{{l.key, l.val}, {key, v}},
		}, true
	}
	return mergeLeaves(shift, l, &leaf[K, V]{hash: h, key: key, val: v}), true
}

func (l *leaf[K, V]) del(h uint64, _ uint, key K) (node[K, V], bool) {
	if h == l.hash && key == l.key {
		return nil, true
	}
	return l, false
}

// mergeLeaves builds the minimal subtree separating two leaves with
// distinct hashes. Hashes differing somewhere in 64 bits always yield
// distinct chunks before the shift runs out, so the recursion is
// bounded by the trie depth.
func mergeLeaves[K comparable, V any](shift uint, a, b *leaf[K, V]) node[K, V] {
	ia, ib := chunk(a.hash, shift), chunk(b.hash, shift)
	if ia == ib {
		return &branch[K, V]{
			bitmap:   1 << ia,
			children: []node[K, V]{mergeLeaves(shift+hamtBits, a, b)},
		}
	}
	if ia > ib {
		a, b = b, a
		ia, ib = ib, ia
	}
	return &branch[K, V]{
		bitmap:   1<<ia | 1<<ib,
		children: []node[K, V]{a, b},
	}
}

// branch is a bitmap-indexed interior node. The i-th set bit of bitmap
// marks an occupied 5-bit chunk; children are stored densely in chunk
// order, so the child for a chunk sits at the popcount of the lower
// bits.
type branch[K comparable, V any] struct {
	bitmap   uint32
	children []node[K, V]
}

// slot returns the dense child index for bit.
func (b *branch[K, V]) slot(bit uint32) int {
	return bits.OnesCount32(b.bitmap & (bit - 1))
}

func (b *branch[K, V]) get(h uint64, shift uint, key K) (V, bool) {
	bit := uint32(1) << chunk(h, shift)
	if b.bitmap&bit == 0 {
		var zero V
		return zero, false
	}
	return b.children[b.slot(bit)].get(h, shift+hamtBits, key)
}

func (b *branch[K, V]) set(h uint64, shift uint, key K, v V) (node[K, V], bool) {
	bit := uint32(1) << chunk(h, shift)
	i := b.slot(bit)
	if b.bitmap&bit != 0 {
		child, added := b.children[i].set(h, shift+hamtBits, key, v)
		children := make([]node[K, V], len(b.children))
		copy(children, b.children)
		children[i] = child
		return &branch[K, V]{bitmap: b.bitmap, children: children}, added
	}
	children := make([]node[K, V], len(b.children)+1)
	copy(children, b.children[:i])
	children[i] = &leaf[K, V]{hash: h, key: key, val: v}
	copy(children[i+1:], b.children[i:])
	return &branch[K, V]{bitmap: b.bitmap | bit, children: children}, true
}

func (b *branch[K, V]) del(h uint64, shift uint, key K) (node[K, V], bool) {
	bit := uint32(1) << chunk(h, shift)
	if b.bitmap&bit == 0 {
		return b, false
	}
	i := b.slot(bit)
	child, removed := b.children[i].del(h, shift+hamtBits, key)
	if !removed {
		return b, false
	}
	if child == nil {
		if len(b.children) == 1 {
			return nil, true
		}
		children := make([]node[K, V], len(b.children)-1)
		copy(children, b.children[:i])
		copy(children[i:], b.children[i+1:])
		return &branch[K, V]{bitmap: b.bitmap &^ bit, children: children}, true
	}
	children := make([]node[K, V], len(b.children))
	copy(children, b.children)
	children[i] = child
	return &branch[K, V]{bitmap: b.bitmap, children: children}, true
}

// entry is one key/value pair in a collision bucket.
type entry[K comparable, V any] struct {
	key K
	val V
}

// bucket holds keys whose hashes collide in all 64 bits.
type bucket[K comparable, V any] struct {
	hash    uint64
	entries []entry[K, V]
}

func (c *bucket[K, V]) get(h uint64, _ uint, key K) (V, bool) {
	if h == c.hash {
		for _, e := range c.entries {
			if e.key == key {
				return e.val, true
			}
		}
	}
	var zero V
	return zero, false
}

func (c *bucket[K, V]) set(h uint64, shift uint, key K, v V) (node[K, V], bool) {
	if h != c.hash {
		// Diverging hash: grow a branch above the bucket, then insert.
		grown := &branch[K, V]{
			bitmap:   1 << chunk(c.hash, shift),
			children: []node[K, V]{c},
		}
		return grown.set(h, shift, key, v)
	}
	for i, e := range c.entries {
		if e.key == key {
			entries := make([]entry[K, V], len(c.entries))
			copy(entries, c.entries)
			entries[i] = entry[K, V]{key, v}
			return &bucket[K, V]{hash: h, entries: entries}, false
		}
	}
	entries := make([]entry[K, V], len(c.entries)+1)
	copy(entries, c.entries)
	entries[len(c.entries)] = entry[K, V]{key, v}
	return &bucket[K, V]{hash: h, entries: entries}, true
}

func (c *bucket[K, V]) del(h uint64, _ uint, key K) (node[K, V], bool) {
	if h != c.hash {
		return c, false
	}
	for i, e := range c.entries {
		if e.key != key {
			continue
		}
		if len(c.entries) == 2 {
			// Collapse to a plain leaf.
			rest := c.entries[1-i]
			return &leaf[K, V]{hash: h, key: rest.key, val: rest.val}, true
		}
		entries := make([]entry[K, V], len(c.entries)-1)
		copy(entries, c.entries[:i])
		copy(entries[i:], c.entries[i+1:])
		return &bucket[K, V]{hash: h, entries: entries}, true
	}
	return c, false
}
