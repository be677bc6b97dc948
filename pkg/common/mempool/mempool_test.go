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

package mempool

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WaterCylinder/original-sub001/pkg/common/oerr"
)

type payload struct {
	a uint64
	b string
}

func TestArenaAllocFree(t *testing.T) {
	a := NewArena[payload]("test", 0)
	defer a.Close()

	p, err := a.Alloc()
	require.NoError(t, err)
	require.Equal(t, payload{}, *p)
	require.Equal(t, int64(1), a.InUse())

	p.a, p.b = 42, "x"
	a.Free(p)
	require.Equal(t, int64(0), a.InUse())

	// a freed slot comes back zeroed
	q, err := a.Alloc()
	require.NoError(t, err)
	require.Same(t, p, q)
	require.Equal(t, payload{}, *q)
	a.Free(q)
}

func TestArenaChunkGrowth(t *testing.T) {
	a := NewArena[uint64]("grow", 0)
	defer a.Close()

	ptrs := make([]*uint64, 0, kMinChunkLen*4)
	for i := 0; i < kMinChunkLen*4; i++ {
		p, err := a.Alloc()
		require.NoError(t, err)
		*p = uint64(i)
		ptrs = append(ptrs, p)
	}
	for i, p := range ptrs {
		require.Equal(t, uint64(i), *p)
	}
	require.Equal(t, int64(kMinChunkLen*4), a.InUse())
	for _, p := range ptrs {
		a.Free(p)
	}
	require.Equal(t, int64(0), a.InUse())
}

func TestArenaCapacity(t *testing.T) {
	a := NewArena[int]("bounded", 2)
	defer a.Close()

	p1, err := a.Alloc()
	require.NoError(t, err)
	_, err = a.Alloc()
	require.NoError(t, err)

	_, err = a.Alloc()
	require.True(t, oerr.IsErrCode(err, oerr.ErrOOM))

	a.Free(p1)
	_, err = a.Alloc()
	require.NoError(t, err)
}

func TestArenaCloseTwice(t *testing.T) {
	a := NewArena[int]("twice", 0)
	p, err := a.Alloc()
	require.NoError(t, err)
	_ = p
	a.Close()
	a.Close()
	require.Equal(t, int64(0), a.InUse())
}

func BenchmarkArena(b *testing.B) {
	a := NewArena[payload]("bench", 0)
	defer a.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := a.Alloc()
		if err != nil {
			b.Fatal(err)
		}
		a.Free(p)
	}
}
