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

package hash

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesDeterministic(t *testing.T) {
	inputs := [][]byte{
		nil,
		{},
		[]byte("a"),
		[]byte("abc"),
		[]byte("0123456789abcdef"),
		[]byte("Discard medicine more than two years old."),
	}
	for _, in := range inputs {
		require.Equal(t, Bytes(in), Bytes(in))
	}
	require.Equal(t, Bytes(nil), Bytes([]byte{}))
}

func TestStringMatchesBytes(t *testing.T) {
	for _, s := range []string{"", "x", "hello world", "0123456789abcdef0123456789abcdef0123456789abcdef0123456789"} {
		require.Equal(t, Bytes([]byte(s)), String(s))
	}
}

func TestInt64Spread(t *testing.T) {
	seen := make(map[uint64]uint64)
	for i := uint64(0); i < 10000; i++ {
		h := Int64(i)
		prev, dup := seen[h]
		require.False(t, dup, "collision between %d and %d", prev, i)
		seen[h] = i
	}
}

func TestFuncAdapter(t *testing.T) {
	var h Hasher[int] = Func[int](func(k int) uint64 { return uint64(k) * 3 })
	require.Equal(t, uint64(21), h.Hash(7))
}

func TestDefaultHasher(t *testing.T) {
	h := Default[string]()
	require.Equal(t, h.Hash("k"), h.Hash("k"))

	type pair struct {
		a int
		b string
	}
	hp := Default[pair]()
	require.Equal(t, hp.Hash(pair{1, "x"}), hp.Hash(pair{1, "x"}))
	require.NotEqual(t, hp.Hash(pair{1, "x"}), hp.Hash(pair{2, "x"}))
}

func TestBucketSpread(t *testing.T) {
	// 1000 distinct keys over 17 buckets should not pile into a few chains.
	counts := make([]int, 17)
	for i := 0; i < 1000; i++ {
		counts[String(fmt.Sprintf("key-%d", i))%17]++
	}
	for b, c := range counts {
		require.Greater(t, c, 10, "bucket %d starved", b)
	}
}
