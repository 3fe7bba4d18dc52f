package bloom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSizedValidatesParameters(t *testing.T) {
	_, err := NewSized(0, 0.01)
	require.ErrorIs(t, err, ErrBadCapacity)
	_, err = NewSized(-5, 0.01)
	require.ErrorIs(t, err, ErrBadCapacity)

	for _, fpr := range []float64{0, 1, -0.1, 1.5} {
		_, err = NewSized(100, fpr)
		require.ErrorIs(t, err, ErrBadFPRate, "fpr %v", fpr)
	}
}

func TestNewSizedRejectsOversizedFilters(t *testing.T) {
	// m = round(-n·ln p / (ln 2)²) blows past the uint32 bit range.
	_, err := NewSized(1_000_000_000, 0.0001)
	require.ErrorIs(t, err, ErrBitsOverflow)
}

func TestSizedDerivesParameters(t *testing.T) {
	f, err := NewSized(1000, 0.01)
	require.NoError(t, err)

	require.Equal(t, uint64(9585), f.BitLen())
	require.Equal(t, 7, f.HashCount())
	require.Equal(t, 1000, f.Capacity())
	require.InEpsilon(t, 0.01, f.TargetFPR(), 1e-12)
}

func TestSizedNoFalseNegatives(t *testing.T) {
	f, err := NewSized(500, 0.02)
	require.NoError(t, err)

	items := []any{"hello", [2]int{1, 2}, 3, 66.6, uint32(9)}
	for i := 0; i < 500; i++ {
		items = append(items, fmt.Sprintf("member-%d", i))
	}
	for _, item := range items {
		require.NoError(t, f.Add(item))
	}
	for _, item := range items {
		ok, err := f.Query(item)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestSizedEmpiricalFalsePositiveRate(t *testing.T) {
	f, err := NewSized(1000, 0.01)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		require.NoError(t, f.Add(fmt.Sprintf("member-%d", i)))
	}

	falsePositives := 0
	const probes = 10000
	for i := 0; i < probes; i++ {
		ok, err := f.Query(fmt.Sprintf("probe-%d", i))
		require.NoError(t, err)
		if ok {
			falsePositives++
		}
	}

	rate := float64(falsePositives) / probes
	// At exactly its capacity the filter should sit near its target
	// rate; 3x leaves room for rounding of (m, k) and sampling noise.
	require.Less(t, rate, 0.03, "empirical fpr %.4f", rate)
}

func TestSizedAtCapacity(t *testing.T) {
	f, err := NewSized(100, 0.01)
	require.NoError(t, err)
	require.False(t, f.AtCapacity())

	for i := 0; i < 50; i++ {
		require.NoError(t, f.Add(fmt.Sprintf("half-%d", i)))
	}
	require.False(t, f.AtCapacity())

	for i := 0; i < 200; i++ {
		require.NoError(t, f.Add(fmt.Sprintf("over-%d", i)))
	}
	require.True(t, f.AtCapacity())
}
