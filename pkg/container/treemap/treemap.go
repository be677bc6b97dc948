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

// Package treemap provides the ordered counterparts of the hash-backed
// map and set, built on an in-memory B-tree. Use these when iteration
// order or range queries matter; the hash containers are faster for
// point lookups.
package treemap

import (
	"cmp"

	"github.com/google/btree"

	"github.com/WaterCylinder/original-sub001/pkg/common/oerr"
)

const degree = 32

type entry[K any, V any] struct {
	key K
	val V
}

// TreeMap is a map ordered by its less function. Not internally
// synchronized.
type TreeMap[K any, V any] struct {
	tree *btree.BTreeG[entry[K, V]]
}

// New builds a map ordered by less over keys.
func New[K any, V any](less func(a, b K) bool) *TreeMap[K, V] {
	return &TreeMap[K, V]{
		tree: btree.NewG(degree, func(a, b entry[K, V]) bool {
			return less(a.key, b.key)
		}),
	}
}

// NewOrdered builds a map over a naturally ordered key type.
func NewOrdered[K cmp.Ordered, V any]() *TreeMap[K, V] {
	return New[K, V](func(a, b K) bool { return a < b })
}

func (m *TreeMap[K, V]) Len() int {
	return m.tree.Len()
}

func (m *TreeMap[K, V]) ContainsKey(key K) bool {
	return m.tree.Has(entry[K, V]{key: key})
}

// Put upserts an entry, returning true if the key was new.
func (m *TreeMap[K, V]) Put(key K, val V) bool {
	_, replaced := m.tree.ReplaceOrInsert(entry[K, V]{key: key, val: val})
	return !replaced
}

// Get returns the value under key, failing with an element-not-exist
// error if it is absent.
func (m *TreeMap[K, V]) Get(key K) (V, error) {
	e, found := m.tree.Get(entry[K, V]{key: key})
	if !found {
		var zero V
		return zero, oerr.NewElementNotExist("key %v", key)
	}
	return e.val, nil
}

// Remove deletes the entry, returning false if the key is absent.
func (m *TreeMap[K, V]) Remove(key K) bool {
	_, removed := m.tree.Delete(entry[K, V]{key: key})
	return removed
}

// Min returns the smallest entry.
func (m *TreeMap[K, V]) Min() (K, V, bool) {
	e, found := m.tree.Min()
	return e.key, e.val, found
}

// Max returns the largest entry.
func (m *TreeMap[K, V]) Max() (K, V, bool) {
	e, found := m.tree.Max()
	return e.key, e.val, found
}

// Ascend calls f on every entry in ascending key order until f returns
// false.
func (m *TreeMap[K, V]) Ascend(f func(key K, val V) bool) {
	m.tree.Ascend(func(e entry[K, V]) bool {
		return f(e.key, e.val)
	})
}

// AscendRange calls f on entries with ge <= key < lt, in order.
func (m *TreeMap[K, V]) AscendRange(ge, lt K, f func(key K, val V) bool) {
	m.tree.AscendRange(entry[K, V]{key: ge}, entry[K, V]{key: lt},
		func(e entry[K, V]) bool {
			return f(e.key, e.val)
		})
}

// Clone is a lazy copy-on-write snapshot; both maps stay usable.
func (m *TreeMap[K, V]) Clone() *TreeMap[K, V] {
	return &TreeMap[K, V]{tree: m.tree.Clone()}
}

// TreeSet is an ordered set of distinct elements. Not internally
// synchronized.
type TreeSet[K any] struct {
	m *TreeMap[K, struct{}]
}

func NewSet[K any](less func(a, b K) bool) *TreeSet[K] {
	return &TreeSet[K]{m: New[K, struct{}](less)}
}

func NewOrderedSet[K cmp.Ordered]() *TreeSet[K] {
	return &TreeSet[K]{m: NewOrdered[K, struct{}]()}
}

func (s *TreeSet[K]) Len() int {
	return s.m.Len()
}

func (s *TreeSet[K]) Contains(e K) bool {
	return s.m.ContainsKey(e)
}

// Add inserts an element, returning false if it is already present.
func (s *TreeSet[K]) Add(e K) bool {
	return s.m.Put(e, struct{}{})
}

func (s *TreeSet[K]) Remove(e K) bool {
	return s.m.Remove(e)
}

func (s *TreeSet[K]) Min() (K, bool) {
	k, _, found := s.m.Min()
	return k, found
}

func (s *TreeSet[K]) Max() (K, bool) {
	k, _, found := s.m.Max()
	return k, found
}

// Ascend calls f on every element in ascending order until f returns
// false.
func (s *TreeSet[K]) Ascend(f func(e K) bool) {
	s.m.Ascend(func(k K, _ struct{}) bool {
		return f(k)
	})
}

func (s *TreeSet[K]) Clone() *TreeSet[K] {
	return &TreeSet[K]{m: s.m.Clone()}
}
