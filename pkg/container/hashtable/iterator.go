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

package hashtable

import (
	"github.com/WaterCylinder/original-sub001/pkg/common/oerr"
	"github.com/WaterCylinder/original-sub001/pkg/container/vector"
)

// Iterator walks a table in bucket-then-chain order. It is a cursor of
// (bucket index, node pointer); either the node is live in the chain at
// that bucket, or the cursor is the past-the-end sentinel (nil node,
// bucket == bucket count).
//
// A rehash replaces the bucket array wholesale and silently invalidates
// every iterator created before it; using a stale iterator is a
// precondition violation, not a checked error. The chains are
// singly-linked, so all reverse movement fails loudly with an
// unsupported-operation error instead of guessing.
type Iterator[K comparable, V any] struct {
	buckets *vector.Vector[*node[K, V]]
	bucket  uint64
	cur     *node[K, V]
}

// Begin returns an iterator on the first entry, or the end sentinel for
// an empty table.
func (ht *HashTable[K, V]) Begin() *Iterator[K, V] {
	it := &Iterator[K, V]{buckets: ht.buckets}
	n := uint64(ht.buckets.Len())
	for b := uint64(0); b < n; b++ {
		if head := ht.buckets.At(b); head != nil {
			it.bucket, it.cur = b, head
			return it
		}
	}
	it.bucket = n
	return it
}

// End returns the past-the-end sentinel.
func (ht *HashTable[K, V]) End() *Iterator[K, V] {
	return &Iterator[K, V]{buckets: ht.buckets, bucket: uint64(ht.buckets.Len())}
}

// Valid reports whether the cursor points at a live entry.
func (it *Iterator[K, V]) Valid() bool {
	return it.cur != nil
}

// HasNext reports whether a step forward lands on an entry: either an
// in-chain successor or a later non-empty bucket.
func (it *Iterator[K, V]) HasNext() bool {
	if it.cur == nil {
		return false
	}
	if it.cur.next != nil {
		return true
	}
	for b := it.bucket + 1; b < uint64(it.buckets.Len()); b++ {
		if it.buckets.At(b) != nil {
			return true
		}
	}
	return false
}

// Next advances one entry, moving within the chain first, then to the
// head of the next non-empty bucket, and finally to the end sentinel.
// Advancing the end sentinel fails with an out-of-bound error.
func (it *Iterator[K, V]) Next() error {
	if it.cur == nil {
		return oerr.NewOutOfBound("iterator advanced past the end")
	}
	if it.cur.next != nil {
		it.cur = it.cur.next
		return nil
	}
	n := uint64(it.buckets.Len())
	for b := it.bucket + 1; b < n; b++ {
		if head := it.buckets.At(b); head != nil {
			it.bucket, it.cur = b, head
			return nil
		}
	}
	it.bucket, it.cur = n, nil
	return nil
}

// Prev always fails: the chains are forward-only.
func (it *Iterator[K, V]) Prev() error {
	return oerr.NewUnsupportedOperation("prev on a forward-only iterator")
}

// HasPrev always fails, mirroring Prev.
func (it *Iterator[K, V]) HasPrev() (bool, error) {
	return false, oerr.NewUnsupportedOperation("hasPrev on a forward-only iterator")
}

// Skip advances n steps. Negative steps are reverse movement and fail
// as unsupported.
func (it *Iterator[K, V]) Skip(n int64) error {
	if n < 0 {
		return oerr.NewUnsupportedOperation("negative skip on a forward-only iterator")
	}
	for ; n > 0; n-- {
		if err := it.Next(); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the current entry, failing at the end sentinel.
func (it *Iterator[K, V]) Get() (K, V, error) {
	if it.cur == nil {
		var k K
		var v V
		return k, v, oerr.NewOutOfBound("dereference of end iterator")
	}
	return it.cur.key, it.cur.val, nil
}

// Set overwrites the current entry's value, failing at the end sentinel.
func (it *Iterator[K, V]) Set(val V) error {
	if it.cur == nil {
		return oerr.NewOutOfBound("write through end iterator")
	}
	it.cur.val = val
	return nil
}

func (it *Iterator[K, V]) Clone() *Iterator[K, V] {
	return &Iterator[K, V]{buckets: it.buckets, bucket: it.bucket, cur: it.cur}
}

// Equal compares the (bucket array identity, bucket index, node) triple.
func (it *Iterator[K, V]) Equal(other *Iterator[K, V]) bool {
	return it.buckets == other.buckets && it.bucket == other.bucket && it.cur == other.cur
}

// AtNext reports whether advancing this iterator one step lands exactly
// on other.
func (it *Iterator[K, V]) AtNext(other *Iterator[K, V]) bool {
	probe := it.Clone()
	if err := probe.Next(); err != nil {
		return false
	}
	return probe.Equal(other)
}

// AtPrev reports whether other sits immediately before this iterator.
func (it *Iterator[K, V]) AtPrev(other *Iterator[K, V]) bool {
	return other.AtNext(it)
}
