package bloom

import "math"

// Scalable is a Bloom filter over an unbounded item stream: an
// append-only sequence of Sized filters in which stage i holds
// cap0·sⁱ items at target rate p·r^(i+1). With 0 < r < 1 the
// per-stage rates form a geometric series summing to p·r/(1-r),
// which the default r of 0.5 pins at exactly p, so the aggregate
// false positive rate stays bounded no matter how many stages
// accumulate.
//
// Only the newest stage accepts inserts; older stages are frozen at
// their fill level and serve queries.
type Scalable struct {
	filters []*Sized
	fpr     float64
	growth  float64
	decay   float64

	// Schedule for the newest stage. Capacity accumulates as float64
	// so non-integer growth rates do not drift under repeated
	// rounding.
	capLast float64
	fprLast float64
}

// NewScalable returns a scalable filter seeded with one stage of
// capacity cap0, with overall target false positive rate fpr and the
// default growth and decay policy.
func NewScalable(cap0 int, fpr float64) (*Scalable, error) {
	return NewScalableWithPolicy(cap0, fpr, DefaultGrowth, DefaultDecay)
}

// NewScalableWithPolicy is NewScalable with an explicit capacity
// growth rate (> 1) and false positive decay rate (in (0, 1)).
func NewScalableWithPolicy(cap0 int, fpr, growth, decay float64) (*Scalable, error) {
	if cap0 < 1 {
		return nil, ErrBadCapacity
	}
	if fpr <= 0 || fpr >= 1 {
		return nil, ErrBadFPRate
	}
	if growth <= 1 {
		return nil, ErrBadGrowth
	}
	if decay <= 0 || decay >= 1 {
		return nil, ErrBadDecay
	}
	first, err := NewSized(cap0, fpr*decay)
	if err != nil {
		return nil, err
	}
	return &Scalable{
		filters: []*Sized{first},
		fpr:     fpr,
		growth:  growth,
		decay:   decay,
		capLast: float64(cap0),
		fprLast: fpr * decay,
	}, nil
}

// Add inserts item. A hit anywhere in the sequence (possibly a false
// positive) suppresses the insert, so repeated items cannot force
// growth; the accepted tradeoff is that a false positive can swallow
// one legitimate distinct insert. Otherwise the item lands in the
// newest stage, after appending a fresh stage if the fill estimator
// says the newest one is full.
func (s *Scalable) Add(item any) error {
	_, _, err := s.add(item)
	return err
}

// Query reports whether item may have been added to any stage,
// short-circuiting on the first hit.
func (s *Scalable) Query(item any) (bool, error) {
	key, err := keyOf(item)
	if err != nil {
		return false, err
	}
	return s.queryKey(key), nil
}

// add is Add reporting what happened, for instrumentation.
func (s *Scalable) add(item any) (inserted, grew bool, err error) {
	key, err := keyOf(item)
	if err != nil {
		return false, false, err
	}
	if s.queryKey(key) {
		return false, false, nil
	}
	last := s.filters[len(s.filters)-1]
	if last.AtCapacity() {
		if last, err = s.grow(); err != nil {
			return false, false, err
		}
		grew = true
	}
	last.filter.addKey(key)
	return true, grew, nil
}

// grow appends the next stage of the schedule and makes it current.
func (s *Scalable) grow() (*Sized, error) {
	capNext := s.capLast * s.growth
	fprNext := s.fprLast * s.decay
	next, err := NewSized(roundCapacity(capNext), fprNext)
	if err != nil {
		return nil, err
	}
	s.capLast = capNext
	s.fprLast = fprNext
	s.filters = append(s.filters, next)
	return next, nil
}

func (s *Scalable) queryKey(key uint64) bool {
	for _, f := range s.filters {
		if f.filter.queryKey(key) {
			return true
		}
	}
	return false
}

func roundCapacity(c float64) int {
	if c < 1 {
		return 1
	}
	return int(math.Round(c))
}

// Len returns the number of stages in the sequence.
func (s *Scalable) Len() int { return len(s.filters) }

// Capacity returns the capacity of the newest stage.
func (s *Scalable) Capacity() int {
	return s.filters[len(s.filters)-1].Capacity()
}

// TargetFPR returns the overall target false positive rate.
func (s *Scalable) TargetFPR() float64 { return s.fpr }

// SetBits returns the number of bits set across all stages.
func (s *Scalable) SetBits() uint64 {
	var ones uint64
	for _, f := range s.filters {
		ones += f.SetBits()
	}
	return ones
}

// BitLen returns the total bit array size across all stages.
func (s *Scalable) BitLen() uint64 {
	var m uint64
	for _, f := range s.filters {
		m += f.BitLen()
	}
	return m
}

// EstimatedItems approximates the number of distinct items inserted,
// summing the per-stage fill estimators.
func (s *Scalable) EstimatedItems() float64 {
	var n float64
	for _, f := range s.filters {
		n += f.EstimatedItems()
	}
	return n
}
