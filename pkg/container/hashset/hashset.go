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

// Package hashset presents the hash table engine as an element set.
package hashset

import (
	"fmt"
	"strings"

	"github.com/WaterCylinder/original-sub001/pkg/container/hashtable"
	"github.com/WaterCylinder/original-sub001/pkg/hash"
)

// HashSet stores distinct elements. It is the key-only face of the hash
// table engine; the stored value is a constant true. Not internally
// synchronized.
type HashSet[K comparable] struct {
	ht *hashtable.HashTable[K, bool]
}

func New[K comparable](opts ...hashtable.Option) *HashSet[K] {
	return NewWithHasher[K](hash.Default[K](), opts...)
}

func NewWithHasher[K comparable](h hash.Hasher[K], opts ...hashtable.Option) *HashSet[K] {
	return &HashSet[K]{ht: hashtable.New[K, bool](h, opts...)}
}

func (s *HashSet[K]) Len() int {
	return int(s.ht.Cardinality())
}

func (s *HashSet[K]) Contains(e K) bool {
	return s.ht.ContainsKey(e)
}

// Add inserts an element, returning false if it is already present.
func (s *HashSet[K]) Add(e K) (bool, error) {
	return s.ht.Insert(e, true)
}

// Remove deletes an element, returning false if it is absent.
func (s *HashSet[K]) Remove(e K) bool {
	return s.ht.Erase(e)
}

// Range calls f on every element until f returns false. The set must
// not be mutated during the walk.
func (s *HashSet[K]) Range(f func(e K) bool) {
	it := s.ht.Begin()
	for it.Valid() {
		e, _, _ := it.Get()
		if !f(e) {
			return
		}
		_ = it.Next()
	}
}

// Iterator walks elements in bucket-then-chain order. It is invalidated
// by any mutation that rehashes the table.
func (s *HashSet[K]) Iterator() *hashtable.Iterator[K, bool] {
	return s.ht.Begin()
}

func (s *HashSet[K]) Clone() (*HashSet[K], error) {
	dup, err := s.ht.Clone()
	if err != nil {
		return nil, err
	}
	return &HashSet[K]{ht: dup}, nil
}

// Equal reports whether two sets hold the same elements.
func (s *HashSet[K]) Equal(other *HashSet[K]) bool {
	if s.Len() != other.Len() {
		return false
	}
	same := true
	s.Range(func(e K) bool {
		if !other.Contains(e) {
			same = false
		}
		return same
	})
	return same
}

// Union adds every element of other to this set.
func (s *HashSet[K]) Union(other *HashSet[K]) error {
	var err error
	other.Range(func(e K) bool {
		_, err = s.Add(e)
		return err == nil
	})
	return err
}

// Close releases all elements. The set must not be used afterwards.
func (s *HashSet[K]) Close() {
	s.ht.Close()
}

func (s *HashSet[K]) String() string {
	var sb strings.Builder
	sb.WriteString("hashSet{")
	first := true
	s.Range(func(e K) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", e)
		return true
	})
	sb.WriteString("}")
	return sb.String()
}
