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

// Package bitmap wraps a compressed roaring bitmap as the library's set
// of uint32 positions. It complements hashset for dense integer
// domains, where the compressed representation is far smaller than a
// chained table.
package bitmap

import (
	"github.com/RoaringBitmap/roaring"
)

// Bitmap is a set of uint32 values. Not internally synchronized.
type Bitmap struct {
	bm *roaring.Bitmap
}

func New() *Bitmap {
	return &Bitmap{bm: roaring.New()}
}

// FromSlice builds a bitmap holding the given positions.
func FromSlice(positions []uint32) *Bitmap {
	return &Bitmap{bm: roaring.BitmapOf(positions...)}
}

func (n *Bitmap) Add(pos uint32) {
	n.bm.Add(pos)
}

// CheckedAdd adds pos, returning false if it was already set.
func (n *Bitmap) CheckedAdd(pos uint32) bool {
	return n.bm.CheckedAdd(pos)
}

func (n *Bitmap) AddRange(lo, hi uint64) {
	n.bm.AddRange(lo, hi)
}

func (n *Bitmap) Contains(pos uint32) bool {
	return n.bm.Contains(pos)
}

// Remove clears pos, returning false if it was not set.
func (n *Bitmap) Remove(pos uint32) bool {
	return n.bm.CheckedRemove(pos)
}

// Count returns the number of set positions.
func (n *Bitmap) Count() uint64 {
	return n.bm.GetCardinality()
}

func (n *Bitmap) IsEmpty() bool {
	return n.bm.IsEmpty()
}

// Or unions other into this bitmap.
func (n *Bitmap) Or(other *Bitmap) {
	n.bm.Or(other.bm)
}

// And intersects this bitmap with other.
func (n *Bitmap) And(other *Bitmap) {
	n.bm.And(other.bm)
}

// AndNot clears every position set in other.
func (n *Bitmap) AndNot(other *Bitmap) {
	n.bm.AndNot(other.bm)
}

func (n *Bitmap) Equal(other *Bitmap) bool {
	return n.bm.Equals(other.bm)
}

func (n *Bitmap) Clone() *Bitmap {
	return &Bitmap{bm: n.bm.Clone()}
}

func (n *Bitmap) Clear() {
	n.bm.Clear()
}

// Range calls f on every set position in ascending order until f
// returns false.
func (n *Bitmap) Range(f func(pos uint32) bool) {
	it := n.bm.Iterator()
	for it.HasNext() {
		if !f(it.Next()) {
			return
		}
	}
}

// ToSlice returns the set positions in ascending order.
func (n *Bitmap) ToSlice() []uint32 {
	return n.bm.ToArray()
}

func (n *Bitmap) String() string {
	return n.bm.String()
}
