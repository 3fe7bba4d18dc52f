package bloom

// Basic is the raw Bloom filter primitive: a fixed bit array of m bits
// and k seeded hash functions, both chosen by the caller. It offers no
// sizing policy; see Sized for capacity-driven parameters.
type Basic struct {
	bits bitset
	m    uint64
	k    int
	ones uint64
}

// NewBasic returns a filter over nbits bits using nhash hash functions.
func NewBasic(nbits, nhash int) (*Basic, error) {
	if nbits < 1 {
		return nil, ErrBadBits
	}
	if nhash < 1 {
		return nil, ErrBadHashes
	}
	if uint64(nbits) > maxBits {
		return nil, ErrBitsOverflow
	}
	m := uint64(nbits)
	return &Basic{bits: newBitset(m), m: m, k: nhash}, nil
}

// Add inserts item. O(k), idempotent, and allocation-free for scalar
// and string items. Filter state is unchanged on error.
func (f *Basic) Add(item any) error {
	key, err := keyOf(item)
	if err != nil {
		return err
	}
	f.addKey(key)
	return nil
}

// Query reports whether item may have been added: false is definitive,
// true may be a false positive. O(k).
func (f *Basic) Query(item any) (bool, error) {
	key, err := keyOf(item)
	if err != nil {
		return false, err
	}
	return f.queryKey(key), nil
}

func (f *Basic) addKey(key uint64) {
	for seed := 0; seed < f.k; seed++ {
		if f.bits.set(indexAt(key, uint32(seed), f.m)) {
			f.ones++
		}
	}
}

func (f *Basic) queryKey(key uint64) bool {
	for seed := 0; seed < f.k; seed++ {
		if !f.bits.test(indexAt(key, uint32(seed), f.m)) {
			return false
		}
	}
	return true
}

// BitLen returns m, the size of the bit array.
func (f *Basic) BitLen() uint64 { return f.m }

// HashCount returns k, the number of hash functions.
func (f *Basic) HashCount() int { return f.k }

// SetBits returns the number of bits currently set to 1.
func (f *Basic) SetBits() uint64 { return f.ones }

// EstimatedItems approximates the number of distinct items inserted so
// far from the filter's fill level. +Inf once every bit is set.
func (f *Basic) EstimatedItems() float64 {
	return estimateItems(f.m, f.k, f.ones)
}
