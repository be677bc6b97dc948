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
)

// bucketSizes is the bucket-count progression: ascending primes, each
// roughly double the previous, topped by the largest prime below 2^32.
var bucketSizes = [...]uint64{
	17, 37, 79, 163, 331, 673, 1361, 2729, 5471, 10949,
	21911, 43853, 87719, 175447, 350899, 701819, 1403641, 2807303,
	5614657, 11229331, 22458671, 44917381, 89834777, 179669557,
	359339171, 718678369, 1437356741, 2874713497, 4294967291,
}

const (
	kInitialBucketCnt uint64 = 17

	// target load-factor range is [1/4, 3/4]
	kMinLoadFactorNumerator uint64 = 1
	kMaxLoadFactorNumerator uint64 = 3
	kLoadFactorDenominator  uint64 = 4
)

// nextBucketSize returns the smallest table entry strictly greater than
// cur. It fails once the progression is exhausted.
func nextBucketSize(cur uint64) (uint64, error) {
	for _, n := range bucketSizes {
		if n > cur {
			return n, nil
		}
	}
	return 0, oerr.NewOutOfBound("bucket size progression exhausted at %d", cur)
}

// prevBucketSize returns the largest table entry strictly smaller than
// cur, clamped to the smallest entry.
func prevBucketSize(cur uint64) uint64 {
	prev := bucketSizes[0]
	for _, n := range bucketSizes {
		if n >= cur {
			break
		}
		prev = n
	}
	return prev
}
