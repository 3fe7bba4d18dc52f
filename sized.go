package bloom

// Sized is a Bloom filter sized from intent: the caller states an
// expected capacity and a target false positive rate, and the bit
// array size and hash count are derived once at construction via
// OptimalBits and OptimalHashes. It composes a Basic rather than
// extending it, keeping sizing policy apart from bit mechanics.
//
// Nothing enforces the capacity: Add keeps working past it, but the
// false positive guarantee only holds for up to Capacity distinct
// insertions.
type Sized struct {
	filter   *Basic
	capacity int
	fpr      float64
}

// NewSized returns a filter sized for capacity items at target false
// positive rate fpr.
func NewSized(capacity int, fpr float64) (*Sized, error) {
	if capacity < 1 {
		return nil, ErrBadCapacity
	}
	if fpr <= 0 || fpr >= 1 {
		return nil, ErrBadFPRate
	}
	m := OptimalBits(capacity, fpr)
	if m > maxBits {
		return nil, ErrBitsOverflow
	}
	filter, err := NewBasic(int(m), OptimalHashes(fpr))
	if err != nil {
		return nil, err
	}
	return &Sized{filter: filter, capacity: capacity, fpr: fpr}, nil
}

// Add inserts item. See Basic.Add.
func (f *Sized) Add(item any) error { return f.filter.Add(item) }

// Query reports whether item may have been added. See Basic.Query.
func (f *Sized) Query(item any) (bool, error) { return f.filter.Query(item) }

// Capacity returns the capacity the filter was sized for.
func (f *Sized) Capacity() int { return f.capacity }

// TargetFPR returns the false positive rate the filter was sized for.
func (f *Sized) TargetFPR() float64 { return f.fpr }

// AtCapacity reports whether the fill estimator has reached the
// filter's capacity. Scalable uses this to decide when to grow.
func (f *Sized) AtCapacity() bool {
	return f.filter.EstimatedItems() >= float64(f.capacity)
}

// BitLen returns the derived bit array size.
func (f *Sized) BitLen() uint64 { return f.filter.BitLen() }

// HashCount returns the derived hash function count.
func (f *Sized) HashCount() int { return f.filter.HashCount() }

// SetBits returns the number of bits currently set to 1.
func (f *Sized) SetBits() uint64 { return f.filter.SetBits() }

// EstimatedItems approximates the number of distinct items inserted.
func (f *Sized) EstimatedItems() float64 { return f.filter.EstimatedItems() }
