package bloom

import "math"

// maxBits bounds filter sizes to the uint32 range so the 32-bit seeded
// index stays uniform over [0, m).
const maxBits = uint64(^uint32(0))

// OptimalHashes returns the hash function count for a target false
// positive rate p in (0, 1):
//
//	k = round(-log2 p)
//
// floored at 1.
func OptimalHashes(fpr float64) int {
	k := int(math.Round(-math.Log2(fpr)))
	if k < 1 {
		k = 1
	}
	return k
}

// OptimalBits returns the bit array size for capacity n and target
// false positive rate p in (0, 1):
//
//	m = round(-n·ln p / (ln 2)²)
//
// floored at 1. The closed form assumes m is large and at most n
// distinct insertions.
func OptimalBits(capacity int, fpr float64) uint64 {
	m := uint64(math.Round(-float64(capacity) * math.Log(fpr) / (math.Ln2 * math.Ln2)))
	if m < 1 {
		m = 1
	}
	return m
}

// estimateItems approximates the number of distinct items represented
// by a filter of m bits and k hashes with ones bits set, by
// inclusion-exclusion:
//
//	n ≈ -(m/k)·ln(1 - ones/m)
//
// A saturated filter estimates +Inf, which forces growth in Scalable
// rather than producing NaN.
func estimateItems(m uint64, k int, ones uint64) float64 {
	if ones >= m {
		return math.Inf(1)
	}
	return -(float64(m) / float64(k)) * math.Log(1-float64(ones)/float64(m))
}
