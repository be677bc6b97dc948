// Copyright 2024 WaterCylinder
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hashtable implements an open-chaining hash table: a prime-sized
// bucket array of singly-linked node chains, with automatic grow/shrink
// driven by load factor. It is the engine behind the hashmap and hashset
// packages; most callers want those instead.
//
// The table is not internally synchronized. Concurrent mutation without
// external locking is undefined behavior.
package hashtable

import (
	"github.com/WaterCylinder/original-sub001/pkg/common/mempool"
	"github.com/WaterCylinder/original-sub001/pkg/container/vector"
	"github.com/WaterCylinder/original-sub001/pkg/hash"
)

// node is one key/value entry, linked intrusively into its bucket's
// chain. The chain is forward-only; there is no back link.
type node[K comparable, V any] struct {
	key  K
	val  V
	next *node[K, V]
}

// HashTable maps keys to values. The zero value is not usable; call
// Init or New. Every entry lives in exactly one chain, and the chain is
// always the one at hash(key) % BucketCount().
type HashTable[K comparable, V any] struct {
	elemCnt uint64
	buckets *vector.Vector[*node[K, V]]
	hasher  hash.Hasher[K]
	arena   *mempool.Arena[node[K, V]]
}

type Option func(*options)

type options struct {
	name     string
	capacity int64
}

// WithName names the table's node arena in diagnostics.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithCapacity bounds the number of live entries; inserts beyond it
// fail with an OOM error. 0 means unlimited.
func WithCapacity(capacity int64) Option {
	return func(o *options) { o.capacity = capacity }
}

func New[K comparable, V any](hasher hash.Hasher[K], opts ...Option) *HashTable[K, V] {
	ht := &HashTable[K, V]{}
	ht.Init(hasher, opts...)
	return ht
}

func (ht *HashTable[K, V]) Init(hasher hash.Hasher[K], opts ...Option) {
	o := options{name: "hashtable"}
	for _, opt := range opts {
		opt(&o)
	}
	ht.elemCnt = 0
	ht.buckets = vector.NewWithSize[*node[K, V]](kInitialBucketCnt, nil)
	ht.hasher = hasher
	ht.arena = mempool.NewArena[node[K, V]](o.name, o.capacity)
}

// Cardinality returns the number of stored entries.
func (ht *HashTable[K, V]) Cardinality() uint64 {
	return ht.elemCnt
}

func (ht *HashTable[K, V]) BucketCount() uint64 {
	return uint64(ht.buckets.Len())
}

func (ht *HashTable[K, V]) LoadFactor() float64 {
	return float64(ht.elemCnt) / float64(ht.buckets.Len())
}

func (ht *HashTable[K, V]) getBucket(key K) uint64 {
	return ht.hasher.Hash(key) % uint64(ht.buckets.Len())
}

func (ht *HashTable[K, V]) findNode(key K) *node[K, V] {
	for n := ht.buckets.At(ht.getBucket(key)); n != nil; n = n.next {
		if n.key == key {
			return n
		}
	}
	return nil
}

// Find returns the value stored under key.
func (ht *HashTable[K, V]) Find(key K) (V, bool) {
	if n := ht.findNode(key); n != nil {
		return n.val, true
	}
	var zero V
	return zero, false
}

func (ht *HashTable[K, V]) ContainsKey(key K) bool {
	return ht.findNode(key) != nil
}

// Modify overwrites the value of an existing key in place. It never
// changes the entry count and never triggers a rehash.
func (ht *HashTable[K, V]) Modify(key K, val V) bool {
	if n := ht.findNode(key); n != nil {
		n.val = val
		return true
	}
	return false
}

func (ht *HashTable[K, V]) createNode(key K, val V, next *node[K, V]) (*node[K, V], error) {
	n, err := ht.arena.Alloc()
	if err != nil {
		return nil, err
	}
	n.key, n.val, n.next = key, val, next
	return n, nil
}

func (ht *HashTable[K, V]) destroyNode(n *node[K, V]) {
	ht.arena.Free(n)
}

// adjust restores the target load-factor range before a mutation, using
// the entry count as it stands right now. Rehashing to an unchanged
// bucket count is a no-op.
func (ht *HashTable[K, V]) adjust() error {
	bucketCnt := uint64(ht.buckets.Len())
	switch {
	case ht.elemCnt*kLoadFactorDenominator >= bucketCnt*kMaxLoadFactorNumerator:
		next, err := nextBucketSize(bucketCnt)
		if err != nil {
			return err
		}
		ht.rehash(next)
	case ht.elemCnt*kLoadFactorDenominator <= bucketCnt*kMinLoadFactorNumerator:
		ht.rehash(prevBucketSize(bucketCnt))
	}
	return nil
}

// rehash builds a fresh bucket array of newCnt slots and relinks every
// existing node into it, prepending each to its new chain. No node
// memory is allocated or destroyed. All live iterators are invalidated.
func (ht *HashTable[K, V]) rehash(newCnt uint64) {
	if newCnt == uint64(ht.buckets.Len()) {
		return
	}
	newBuckets := vector.NewWithSize[*node[K, V]](newCnt, nil)
	for b := uint64(0); b < uint64(ht.buckets.Len()); b++ {
		n := ht.buckets.At(b)
		for n != nil {
			next := n.next
			idx := ht.hasher.Hash(n.key) % newCnt
			n.next = newBuckets.At(idx)
			newBuckets.Set(idx, n)
			n = next
		}
	}
	ht.buckets = newBuckets
}

// Insert stores a new entry. A duplicate key is rejected and the table
// left untouched; the error return fires only on allocation failure or
// when the table can no longer grow.
func (ht *HashTable[K, V]) Insert(key K, val V) (bool, error) {
	if err := ht.adjust(); err != nil {
		return false, err
	}
	idx := ht.getBucket(key)
	head := ht.buckets.At(idx)
	if head == nil {
		n, err := ht.createNode(key, val, nil)
		if err != nil {
			return false, err
		}
		ht.buckets.Set(idx, n)
		ht.elemCnt++
		return true, nil
	}
	cur := head
	for {
		if cur.key == key {
			return false, nil
		}
		if cur.next == nil {
			break
		}
		cur = cur.next
	}
	n, err := ht.createNode(key, val, nil)
	if err != nil {
		return false, err
	}
	cur.next = n
	ht.elemCnt++
	return true, nil
}

// Erase removes the entry under key, returning false if it is absent.
func (ht *HashTable[K, V]) Erase(key K) bool {
	if ht.elemCnt == 0 {
		return false
	}
	// a table that can no longer grow keeps operating on its current
	// buckets, so the adjust error is dropped here
	_ = ht.adjust()
	idx := ht.getBucket(key)
	var prev *node[K, V]
	for cur := ht.buckets.At(idx); cur != nil; cur = cur.next {
		if cur.key == key {
			if prev == nil {
				ht.buckets.Set(idx, cur.next)
			} else {
				prev.next = cur.next
			}
			ht.destroyNode(cur)
			ht.elemCnt--
			return true
		}
		prev = cur
	}
	return false
}

// Clone deep-copies the table: same bucket count, same chain order,
// nodes drawn from the clone's own arena.
func (ht *HashTable[K, V]) Clone() (*HashTable[K, V], error) {
	dup := &HashTable[K, V]{
		elemCnt: ht.elemCnt,
		buckets: vector.NewWithSize[*node[K, V]](uint64(ht.buckets.Len()), nil),
		hasher:  ht.hasher,
		arena:   mempool.NewArena[node[K, V]](ht.arena.Name(), 0),
	}
	for b := uint64(0); b < uint64(ht.buckets.Len()); b++ {
		var tail *node[K, V]
		for n := ht.buckets.At(b); n != nil; n = n.next {
			cp, err := dup.createNode(n.key, n.val, nil)
			if err != nil {
				dup.Close()
				return nil, err
			}
			if tail == nil {
				dup.buckets.Set(b, cp)
			} else {
				tail.next = cp
			}
			tail = cp
		}
	}
	return dup, nil
}

// Close destroys every node and drops the arena. The table must not be
// used afterwards, except for another Close.
func (ht *HashTable[K, V]) Close() {
	if ht.arena == nil {
		return
	}
	for b := uint64(0); b < uint64(ht.buckets.Len()); b++ {
		n := ht.buckets.At(b)
		for n != nil {
			next := n.next
			ht.destroyNode(n)
			n = next
		}
		ht.buckets.Set(b, nil)
	}
	ht.elemCnt = 0
	ht.arena.Close()
	ht.arena = nil
}
