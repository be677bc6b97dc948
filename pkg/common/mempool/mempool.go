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

// Package mempool provides a typed arena allocator. An Arena hands out
// slots of a single element type from chunked slabs and recycles freed
// slots through a free list, so containers that churn many small nodes
// do not hammer the general-purpose heap one object at a time.
//
// An Arena is not internally synchronized; each container owns its own.
package mempool

import (
	"go.uber.org/zap"

	"github.com/WaterCylinder/original-sub001/pkg/common/oerr"
	"github.com/WaterCylinder/original-sub001/pkg/logutil"
)

const (
	kMinChunkLen = 64
	kMaxChunkLen = 8192
)

// Arena allocates values of type T. Alloc returns a zeroed slot and
// Free recycles it. Slots are never handed to two callers at once, and
// chunk memory is only released when the whole arena is dropped.
type Arena[T any] struct {
	name     string
	capacity int64
	chunks   [][]T
	next     int
	free     []*T
	allocs   int64
	frees    int64
	closed   bool
}

// NewArena creates an arena named for diagnostics. capacity bounds the
// number of live slots; 0 means unlimited.
func NewArena[T any](name string, capacity int64) *Arena[T] {
	return &Arena[T]{name: name, capacity: capacity}
}

func (a *Arena[T]) Name() string {
	return a.name
}

// InUse returns the number of live slots.
func (a *Arena[T]) InUse() int64 {
	return a.allocs - a.frees
}

// Allocs returns the total number of allocations served, including
// free-list hits.
func (a *Arena[T]) Allocs() int64 {
	return a.allocs
}

// Alloc returns a zeroed slot. It fails with an OOM error once the
// configured capacity is reached.
func (a *Arena[T]) Alloc() (*T, error) {
	if a.capacity > 0 && a.InUse() >= a.capacity {
		return nil, oerr.NewOOM(a.name)
	}
	if n := len(a.free); n > 0 {
		p := a.free[n-1]
		a.free = a.free[:n-1]
		a.allocs++
		return p, nil
	}
	if len(a.chunks) == 0 || a.next == len(a.chunks[len(a.chunks)-1]) {
		size := kMinChunkLen
		if n := len(a.chunks); n > 0 {
			size = len(a.chunks[n-1]) * 2
			if size > kMaxChunkLen {
				size = kMaxChunkLen
			}
		}
		a.chunks = append(a.chunks, make([]T, size))
		a.next = 0
	}
	chunk := a.chunks[len(a.chunks)-1]
	p := &chunk[a.next]
	a.next++
	a.allocs++
	return p, nil
}

// Free zeroes the slot and returns it to the free list. The slot must
// have come from this arena and must not be used afterwards.
func (a *Arena[T]) Free(p *T) {
	var zero T
	*p = zero
	a.free = append(a.free, p)
	a.frees++
}

// Reset discards all slots and slabs. Outstanding pointers become
// dangling; callers must drop them first.
func (a *Arena[T]) Reset() {
	a.chunks = nil
	a.free = nil
	a.next = 0
	a.frees = a.allocs
}

// Close reports leaked slots and drops the slabs. Closing twice is a
// no-op.
func (a *Arena[T]) Close() {
	if a.closed {
		return
	}
	a.closed = true
	if leaked := a.InUse(); leaked > 0 {
		logutil.Warn("arena closed with live slots",
			zap.String("arena", a.name),
			zap.Int64("leaked", leaked))
	}
	a.Reset()
}
