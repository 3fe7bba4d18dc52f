package bloom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimalParameters(t *testing.T) {
	// k = round(-log2 0.01) = round(6.64) = 7
	// m = round(-1000·ln 0.01 / (ln 2)²) = round(9585.06) = 9585
	require.Equal(t, 7, OptimalHashes(0.01))
	require.Equal(t, uint64(9585), OptimalBits(1000, 0.01))

	// p = 2⁻ᵏ gives exact hash counts.
	require.Equal(t, 1, OptimalHashes(0.5))
	require.Equal(t, 4, OptimalHashes(0.0625))
	require.Equal(t, 10, OptimalHashes(1.0/1024))
}

func TestOptimalParametersFloorAtOne(t *testing.T) {
	// Very permissive rates round to zero hashes / bits; both floor at 1.
	require.Equal(t, 1, OptimalHashes(0.9))
	require.Equal(t, uint64(1), OptimalBits(1, 0.99))
}

func TestOptimalBitsScalesLinearly(t *testing.T) {
	small := OptimalBits(1000, 0.01)
	large := OptimalBits(10000, 0.01)
	require.InDelta(t, 10*float64(small), float64(large), 10)
}

func TestEstimateItems(t *testing.T) {
	// Empty filter estimates zero.
	require.Zero(t, estimateItems(1024, 4, 0))

	// A saturated filter estimates +Inf rather than NaN.
	require.True(t, math.IsInf(estimateItems(64, 4, 64), 1))

	// One item inserted with no collisions: x = k, and for m >> k the
	// estimate is close to 1.
	require.InDelta(t, 1.0, estimateItems(1<<16, 8, 8), 0.01)
}

func TestEstimateItemsTracksInsertions(t *testing.T) {
	f, err := NewSized(1000, 0.01)
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		require.NoError(t, f.Add([2]int{i, i * 31}))
	}
	require.InDelta(t, 500, f.EstimatedItems(), 50)
}
