package lenbucket

import (
	"sort"
)

// stringHash is FNV-1a over the bytes of str, seeded with d so that each
// value of d gives a different hash function. The result is never negative.
func stringHash(d int32, str string) int {
	h := uint32(d)
	if d == 0 {
		h = 0x811c9dc5
	}

	for i := 0; i < len(str); i++ {
		h ^= uint32(str[i])
		h *= 0x01000193
	}

	return int(h & 0x7fffffff)
}

// minimalPerfectHash builds a minimal perfect hash over size distinct items.
// hash(d, i) hashes item i with variant d.
//
// G is indexed by hash(0, item) % size. A positive entry is the d to use for
// the second hash; a negative entry -slot-1 places the item directly. The
// second result gives, for each slot, the item stored there.
func minimalPerfectHash(size int, hash func(d int32, i int) int) ([]int32, []int) {
	buckets := make([][]int, size)
	G := make([]int32, size)
	values := make([]int, size)

	for i := range values {
		values[i] = -1
	}

	for item := 0; item < size; item++ {
		b := hash(0, item) % size
		buckets[b] = append(buckets[b], item)
	}

	// Largest buckets first, they are the hardest to place.
	sort.SliceStable(buckets, func(i, j int) bool {
		return len(buckets[i]) > len(buckets[j])
	})

	var b int
	for b = 0; b < len(buckets); b++ {
		bucket := buckets[b]
		if len(bucket) <= 1 {
			break
		}

		d := int32(1)
		item := 0
		slots := make([]int, 0, len(bucket))

		// try values of d until every item in the bucket lands in a free slot
		for item < len(bucket) {
			slot := hash(d, bucket[item]) % size
			taken := values[slot] != -1
			for _, pos := range slots {
				if slot == pos {
					taken = true
					break
				}
			}
			if taken {
				d++
				item = 0
				slots = slots[:0]
			} else {
				item++
				slots = append(slots, slot)
			}
		}

		G[hash(0, bucket[0])%size] = d
		for i := range bucket {
			values[slots[i]] = bucket[i]
		}
	}

	// Only single items remain; put each one straight into a free slot.
	freelist := make([]int, 0, size)
	for i := 0; i < size; i++ {
		if values[i] == -1 {
			freelist = append(freelist, i)
		}
	}

	for ; b < len(buckets); b++ {
		bucket := buckets[b]
		if len(bucket) == 0 || len(freelist) == 0 {
			break
		}
		slot := freelist[len(freelist)-1]
		freelist = freelist[:len(freelist)-1]
		G[hash(0, bucket[0])%size] = int32(-slot - 1)
		values[slot] = bucket[0]
	}

	return G, values
}
