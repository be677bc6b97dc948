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

// Package hashmap presents the hash table engine as a key/value map.
package hashmap

import (
	"fmt"
	"strings"

	"github.com/WaterCylinder/original-sub001/pkg/common/oerr"
	"github.com/WaterCylinder/original-sub001/pkg/container/hashtable"
	"github.com/WaterCylinder/original-sub001/pkg/hash"
)

// HashMap is an unordered map with rejected-duplicate Add semantics and
// an explicit upsert path (Put, GetOrInsert). Not internally
// synchronized.
type HashMap[K comparable, V any] struct {
	ht *hashtable.HashTable[K, V]
}

// New builds a map hashing with the runtime default for K.
func New[K comparable, V any](opts ...hashtable.Option) *HashMap[K, V] {
	return NewWithHasher[K, V](hash.Default[K](), opts...)
}

func NewWithHasher[K comparable, V any](h hash.Hasher[K], opts ...hashtable.Option) *HashMap[K, V] {
	return &HashMap[K, V]{ht: hashtable.New[K, V](h, opts...)}
}

func (m *HashMap[K, V]) Len() int {
	return int(m.ht.Cardinality())
}

func (m *HashMap[K, V]) ContainsKey(key K) bool {
	return m.ht.ContainsKey(key)
}

// Add stores a new entry, returning false if the key is already
// present. Present keys are never overwritten; use Put or Update.
func (m *HashMap[K, V]) Add(key K, val V) (bool, error) {
	return m.ht.Insert(key, val)
}

// Remove deletes the entry, returning false if the key is absent.
func (m *HashMap[K, V]) Remove(key K) bool {
	return m.ht.Erase(key)
}

// Get returns the value under key, failing with an element-not-exist
// error if it is absent.
func (m *HashMap[K, V]) Get(key K) (V, error) {
	v, found := m.ht.Find(key)
	if !found {
		return v, oerr.NewElementNotExist("key %v", key)
	}
	return v, nil
}

// GetOrZero returns the value under key, or the zero value.
func (m *HashMap[K, V]) GetOrZero(key K) (V, bool) {
	return m.ht.Find(key)
}

// Update overwrites the value of an existing key, returning false if
// the key is absent.
func (m *HashMap[K, V]) Update(key K, val V) bool {
	return m.ht.Modify(key, val)
}

// Put upserts: overwrite if present, insert otherwise.
func (m *HashMap[K, V]) Put(key K, val V) error {
	if m.ht.Modify(key, val) {
		return nil
	}
	_, err := m.ht.Insert(key, val)
	return err
}

// GetOrInsert returns the value under key, inserting the zero value
// first when the key is absent.
func (m *HashMap[K, V]) GetOrInsert(key K) (V, error) {
	if v, found := m.ht.Find(key); found {
		return v, nil
	}
	var zero V
	if _, err := m.ht.Insert(key, zero); err != nil {
		return zero, err
	}
	return zero, nil
}

// Range calls f on every entry until f returns false. The map must not
// be mutated during the walk.
func (m *HashMap[K, V]) Range(f func(key K, val V) bool) {
	it := m.ht.Begin()
	for it.Valid() {
		k, v, _ := it.Get()
		if !f(k, v) {
			return
		}
		_ = it.Next()
	}
}

// Iterator walks entries in bucket-then-chain order. It is invalidated
// by any mutation that rehashes the table.
func (m *HashMap[K, V]) Iterator() *hashtable.Iterator[K, V] {
	return m.ht.Begin()
}

func (m *HashMap[K, V]) Clone() (*HashMap[K, V], error) {
	dup, err := m.ht.Clone()
	if err != nil {
		return nil, err
	}
	return &HashMap[K, V]{ht: dup}, nil
}

// Close releases all entries. The map must not be used afterwards.
func (m *HashMap[K, V]) Close() {
	m.ht.Close()
}

func (m *HashMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("hashMap{")
	first := true
	m.Range(func(k K, v V) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v: %v", k, v)
		return true
	})
	sb.WriteString("}")
	return sb.String()
}

// Equal reports whether two maps hold the same entries, regardless of
// bucket layout.
func Equal[K, V comparable](a, b *HashMap[K, V]) bool {
	if a.Len() != b.Len() {
		return false
	}
	same := true
	a.Range(func(k K, v V) bool {
		other, found := b.ht.Find(k)
		if !found || other != v {
			same = false
		}
		return same
	})
	return same
}
