package bloom

import "errors"

const (
	// DefaultGrowth is the capacity multiplier applied when a Scalable
	// filter appends a new stage.
	DefaultGrowth = 2.0

	// DefaultDecay is the per-stage false positive rate multiplier. At
	// 0.5 the per-stage rates sum to exactly the configured target.
	DefaultDecay = 0.5
)

var (
	ErrBadBits        = errors.New("bloom: bit count must be positive")
	ErrBadHashes      = errors.New("bloom: hash count must be positive")
	ErrBadCapacity    = errors.New("bloom: capacity must be positive")
	ErrBadFPRate      = errors.New("bloom: false positive rate must be in (0, 1)")
	ErrBadGrowth      = errors.New("bloom: growth rate must be greater than 1")
	ErrBadDecay       = errors.New("bloom: decay rate must be in (0, 1)")
	ErrBitsOverflow   = errors.New("bloom: bit count exceeds supported range")
	ErrUnhashableItem = errors.New("bloom: item is not hashable")
)

// Filter is the capability set shared by Basic, Sized and Scalable.
type Filter interface {
	// Add inserts item into the filter. Adding an item that is (or
	// appears to be) already present is a no-op.
	Add(item any) error

	// Query reports whether item may have been added. A false result
	// is definitive; a true result may be a false positive.
	Query(item any) (bool, error)
}
