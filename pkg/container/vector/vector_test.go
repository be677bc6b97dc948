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

package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWithSize(t *testing.T) {
	v := NewWithSize[int](5, 7)
	require.Equal(t, 5, v.Len())
	for i := uint64(0); i < 5; i++ {
		require.Equal(t, 7, v.At(i))
	}
}

func TestSetAtAppend(t *testing.T) {
	v := New[string]()
	require.Equal(t, 0, v.Len())
	v.Append("a")
	v.Append("b")
	v.Set(1, "c")
	require.Equal(t, "a", v.At(0))
	require.Equal(t, "c", v.At(1))
	require.Equal(t, "vector[a, c]", v.String())
}

func TestClone(t *testing.T) {
	v := NewWithSize[int](3, 1)
	w := v.Clone()
	w.Set(0, 9)
	require.Equal(t, 1, v.At(0))
	require.Equal(t, 9, w.At(0))
}

func TestReset(t *testing.T) {
	v := NewWithSize[int](3, 0)
	v.Reset()
	require.Equal(t, 0, v.Len())
}
