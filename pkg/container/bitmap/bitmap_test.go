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

package bitmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddContainsRemove(t *testing.T) {
	n := New()
	require.True(t, n.IsEmpty())

	n.Add(7)
	require.True(t, n.Contains(7))
	require.False(t, n.Contains(8))
	require.Equal(t, uint64(1), n.Count())

	require.False(t, n.CheckedAdd(7))
	require.True(t, n.CheckedAdd(8))

	require.True(t, n.Remove(7))
	require.False(t, n.Remove(7))
	require.Equal(t, uint64(1), n.Count())
}

func TestAddRange(t *testing.T) {
	n := New()
	n.AddRange(10, 20)
	require.Equal(t, uint64(10), n.Count())
	require.True(t, n.Contains(10))
	require.True(t, n.Contains(19))
	require.False(t, n.Contains(20))
}

func TestSetAlgebra(t *testing.T) {
	a := FromSlice([]uint32{1, 2, 3})
	b := FromSlice([]uint32{2, 3, 4})

	u := a.Clone()
	u.Or(b)
	require.Equal(t, []uint32{1, 2, 3, 4}, u.ToSlice())

	i := a.Clone()
	i.And(b)
	require.Equal(t, []uint32{2, 3}, i.ToSlice())

	d := a.Clone()
	d.AndNot(b)
	require.Equal(t, []uint32{1}, d.ToSlice())

	// the operands are untouched
	require.Equal(t, []uint32{1, 2, 3}, a.ToSlice())
	require.Equal(t, []uint32{2, 3, 4}, b.ToSlice())
}

func TestEqualCloneClear(t *testing.T) {
	a := FromSlice([]uint32{5, 6})
	b := a.Clone()
	require.True(t, a.Equal(b))

	b.Add(7)
	require.False(t, a.Equal(b))

	b.Clear()
	require.True(t, b.IsEmpty())
	require.Equal(t, uint64(2), a.Count())
}

func TestRangeOrder(t *testing.T) {
	n := FromSlice([]uint32{30, 10, 20})
	var got []uint32
	n.Range(func(pos uint32) bool {
		got = append(got, pos)
		return true
	})
	require.Equal(t, []uint32{10, 20, 30}, got)

	// early stop
	count := 0
	n.Range(func(uint32) bool {
		count++
		return false
	})
	require.Equal(t, 1, count)
}
