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

// Package hash supplies the hash-function collaborator consumed by the
// hash containers: a Hasher contract plus wyhash-based implementations
// for bytes, strings and integers, and a generic default for any
// comparable key. Hash values are per-process; the seeds are drawn at
// startup and must not be persisted.
package hash

import (
	"hash/maphash"
	"math/bits"
	"math/rand"
	"unsafe"
)

// Hasher maps a key to a uint64, deterministically within a process.
type Hasher[K any] interface {
	Hash(k K) uint64
}

// Func adapts a plain function to the Hasher interface.
type Func[K any] func(K) uint64

func (f Func[K]) Hash(k K) uint64 {
	return f(k)
}

var hashkey [4]uint64

func init() {
	hashkey[0] = rand.Uint64()
	hashkey[1] = rand.Uint64()
	hashkey[2] = rand.Uint64()
	hashkey[3] = rand.Uint64()
}

const (
	m1 = 0xa0761d6478bd642f
	m2 = 0xe7037ed1a0b428db
	m3 = 0x8ebc6af09c88c6e3
	m4 = 0x589965cc75374cc3
	m5 = 0x1d8e4e27c47d124f
)

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

func r4(data unsafe.Pointer, p uint64) uint64 {
	return uint64(*(*uint32)(unsafe.Add(data, p)))
}

func r8(data unsafe.Pointer, p uint64) uint64 {
	return *(*uint64)(unsafe.Add(data, p))
}

func wyhash(data unsafe.Pointer, seed, s uint64) uint64 {
	var a, b uint64
	seed ^= hashkey[0] ^ m1
	switch {
	case s == 0:
		return seed
	case s < 4:
		a = uint64(*(*byte)(data))
		a |= uint64(*(*byte)(unsafe.Add(data, s>>1))) << 8
		a |= uint64(*(*byte)(unsafe.Add(data, s-1))) << 16
	case s == 4:
		a = r4(data, 0)
		b = a
	case s < 8:
		a = r4(data, 0)
		b = r4(data, s-4)
	case s == 8:
		a = r8(data, 0)
		b = a
	case s <= 16:
		a = r8(data, 0)
		b = r8(data, s-8)
	default:
		l := s
		if l > 48 {
			seed1 := seed
			seed2 := seed
			for ; l > 48; l -= 48 {
				seed = mix(r8(data, 0)^m2, r8(data, 8)^seed)
				seed1 = mix(r8(data, 16)^m3, r8(data, 24)^seed1)
				seed2 = mix(r8(data, 32)^m4, r8(data, 40)^seed2)
				data = unsafe.Add(data, 48)
			}
			seed ^= seed1 ^ seed2
		}
		for ; l > 16; l -= 16 {
			seed = mix(r8(data, 0)^m2, r8(data, 8)^seed)
			data = unsafe.Add(data, 16)
		}
		a = r8(data, l-16)
		b = r8(data, l-8)
	}

	return mix(m5^s, mix(a^m2, b^seed))
}

// Bytes hashes an arbitrary byte slice.
func Bytes(data []byte) uint64 {
	if len(data) == 0 {
		return wyhash(nil, 0, 0)
	}
	return wyhash(unsafe.Pointer(&data[0]), 0, uint64(len(data)))
}

// String hashes a string without copying it.
func String(s string) uint64 {
	if len(s) == 0 {
		return wyhash(nil, 0, 0)
	}
	return wyhash(unsafe.Pointer(unsafe.StringData(s)), 0, uint64(len(s)))
}

// Int64 hashes a 64-bit value.
func Int64(x uint64) uint64 {
	return mix(m5^8, mix(x^m2, x^hashkey[1]^hashkey[0]^m1))
}

type comparableHasher[K comparable] struct {
	seed maphash.Seed
}

func (h comparableHasher[K]) Hash(k K) uint64 {
	return maphash.Comparable(h.seed, k)
}

// Default returns a Hasher for any comparable key type, backed by the
// runtime hash. Two hashers from separate Default calls use distinct
// seeds and disagree on values; containers that must agree share one
// Hasher instance.
func Default[K comparable]() Hasher[K] {
	return comparableHasher[K]{seed: maphash.MakeSeed()}
}
