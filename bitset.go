package bloom

// bitset is a word-addressed bit array. Bits are numbered LSB-first
// within each 64-bit word.
type bitset []uint64

func newBitset(mBits uint64) bitset {
	return make(bitset, (mBits+63)/64)
}

// set turns bit i on and reports whether it was previously clear, so
// the owning filter can maintain its ones count in O(1).
func (b bitset) set(i uint64) bool {
	word, mask := i>>6, uint64(1)<<(i&63)
	if b[word]&mask != 0 {
		return false
	}
	b[word] |= mask
	return true
}

func (b bitset) test(i uint64) bool {
	return b[i>>6]&(uint64(1)<<(i&63)) != 0
}

func (b bitset) clone() bitset {
	out := make(bitset, len(b))
	copy(out, b)
	return out
}
