package bloom

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestInstrumentCountsAddsAndQueries(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	s, err := NewScalable(100, 0.01)
	require.NoError(t, err)
	f := Instrument(s, m)

	require.NoError(t, f.Add("a"))
	require.NoError(t, f.Add("b"))
	require.NoError(t, f.Add("a")) // suppressed by the earlier insert

	require.Equal(t, 2.0, testutil.ToFloat64(m.Adds))
	require.Equal(t, 1.0, testutil.ToFloat64(m.SuppressedAdds))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Stages))
	require.Greater(t, testutil.ToFloat64(m.BitsSet), 0.0)

	ok, err := f.Query("a")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = f.Query("definitely-absent")
	require.NoError(t, err)
	require.False(t, ok)

	require.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("hit")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("miss")))
}

func TestInstrumentTracksGrowth(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	s, err := NewScalable(16, 0.05)
	require.NoError(t, err)
	f := Instrument(s, m)

	for i := 0; i < 200; i++ {
		require.NoError(t, f.Add(fmt.Sprintf("item-%d", i)))
	}

	require.Greater(t, s.Len(), 1)
	require.Equal(t, float64(s.Len()), testutil.ToFloat64(m.Stages))
	require.Equal(t, float64(s.Len()-1), testutil.ToFloat64(m.Growths))
	require.Equal(t, float64(s.SetBits()), testutil.ToFloat64(m.BitsSet))
}

func TestInstrumentPlainFilter(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	b, err := NewBasic(1024, 4)
	require.NoError(t, err)
	f := Instrument(b, m)

	require.NoError(t, f.Add("x"))
	require.NoError(t, f.Add("x"))
	require.Equal(t, 2.0, testutil.ToFloat64(m.Adds))
	// Basic has no sequence to grow or suppress into.
	require.Equal(t, 0.0, testutil.ToFloat64(m.SuppressedAdds))
	require.Equal(t, 0.0, testutil.ToFloat64(m.Growths))

	require.ErrorIs(t, f.Add(map[int]int{}), ErrUnhashableItem)
	require.Equal(t, 2.0, testutil.ToFloat64(m.Adds))
}
