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

package treemap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WaterCylinder/original-sub001/pkg/common/oerr"
)

func TestPutGetRemove(t *testing.T) {
	m := NewOrdered[string, int]()

	require.True(t, m.Put("b", 2))
	require.True(t, m.Put("a", 1))
	require.False(t, m.Put("a", 10)) // upsert of an existing key

	v, err := m.Get("a")
	require.NoError(t, err)
	require.Equal(t, 10, v)

	_, err = m.Get("zzz")
	require.True(t, oerr.IsErrCode(err, oerr.ErrElementNotExist))

	require.True(t, m.Remove("a"))
	require.False(t, m.Remove("a"))
	require.Equal(t, 1, m.Len())
	require.False(t, m.ContainsKey("a"))
}

func TestOrderedIteration(t *testing.T) {
	m := NewOrdered[int, string]()
	for _, k := range []int{5, 1, 4, 2, 3} {
		m.Put(k, "v")
	}

	var keys []int
	m.Ascend(func(k int, _ string) bool {
		keys = append(keys, k)
		return true
	})
	require.Equal(t, []int{1, 2, 3, 4, 5}, keys)

	mn, _, ok := m.Min()
	require.True(t, ok)
	require.Equal(t, 1, mn)
	mx, _, ok := m.Max()
	require.True(t, ok)
	require.Equal(t, 5, mx)
}

func TestAscendRange(t *testing.T) {
	m := NewOrdered[int, int]()
	for i := 0; i < 10; i++ {
		m.Put(i, i)
	}

	var keys []int
	m.AscendRange(3, 7, func(k, _ int) bool {
		keys = append(keys, k)
		return true
	})
	require.Equal(t, []int{3, 4, 5, 6}, keys)
}

func TestCustomLess(t *testing.T) {
	// descending order
	m := New[int, int](func(a, b int) bool { return a > b })
	for _, k := range []int{1, 3, 2} {
		m.Put(k, k)
	}
	var keys []int
	m.Ascend(func(k, _ int) bool {
		keys = append(keys, k)
		return true
	})
	require.Equal(t, []int{3, 2, 1}, keys)
}

func TestMapClone(t *testing.T) {
	m := NewOrdered[int, int]()
	m.Put(1, 1)

	dup := m.Clone()
	dup.Put(2, 2)
	require.Equal(t, 1, m.Len())
	require.Equal(t, 2, dup.Len())
}

func TestSet(t *testing.T) {
	s := NewOrderedSet[string]()
	require.True(t, s.Add("b"))
	require.True(t, s.Add("a"))
	require.False(t, s.Add("a"))
	require.Equal(t, 2, s.Len())
	require.True(t, s.Contains("a"))

	var elems []string
	s.Ascend(func(e string) bool {
		elems = append(elems, e)
		return true
	})
	require.Equal(t, []string{"a", "b"}, elems)

	mn, ok := s.Min()
	require.True(t, ok)
	require.Equal(t, "a", mn)
	mx, ok := s.Max()
	require.True(t, ok)
	require.Equal(t, "b", mx)

	dup := s.Clone()
	require.True(t, dup.Remove("a"))
	require.True(t, s.Contains("a"))
	require.False(t, dup.Contains("a"))
}
