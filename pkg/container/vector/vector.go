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

// Package vector provides a simple indexed sequence. The hash
// containers use it for their bucket arrays: fixed-size construction
// with a fill value plus indexed read/write.
package vector

import (
	"fmt"
	"strings"
)

type Vector[T any] struct {
	data []T
}

func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithSize builds a vector of n slots, each set to fill.
func NewWithSize[T any](n uint64, fill T) *Vector[T] {
	v := &Vector[T]{data: make([]T, n)}
	for i := range v.data {
		v.data[i] = fill
	}
	return v
}

func (v *Vector[T]) Len() int {
	return len(v.data)
}

// At reads slot i. Out-of-range indices fault, as with a slice.
func (v *Vector[T]) At(i uint64) T {
	return v.data[i]
}

func (v *Vector[T]) Set(i uint64, val T) {
	v.data[i] = val
}

func (v *Vector[T]) Append(val T) {
	v.data = append(v.data, val)
}

func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{data: append([]T(nil), v.data...)}
}

func (v *Vector[T]) Reset() {
	v.data = v.data[:0]
}

func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString("vector[")
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", x)
	}
	sb.WriteString("]")
	return sb.String()
}
