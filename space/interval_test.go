package space

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalContains(t *testing.T) {
	testCases := []struct {
		lower, upper Bound
		in, out      []float64
	}{
		{Closed(0), Closed(1), []float64{0, 0.5, 1}, []float64{-0.1, 1.1}},
		{Open(0), Closed(1), []float64{1e-9, 1}, []float64{0, 2}},
		{Closed(0), Open(1), []float64{0, 0.999}, []float64{1}},
		{Open(0), Open(1), []float64{0.5}, []float64{0, 1}},
		{Unbounded(), Closed(1), []float64{-1e300, 1}, []float64{1.5}},
		{Open(-1), Unbounded(), []float64{0, 1e300}, []float64{-1}},
		{Unbounded(), Unbounded(), []float64{-1e300, 0, 1e300}, nil},
		{Closed(2), Closed(2), []float64{2}, []float64{1.999}},
	}
	for _, tc := range testCases {
		interval, err := NewInterval(tc.lower, tc.upper)
		require.NoError(t, err)
		t.Run(interval.String(), func(t *testing.T) {
			for _, x := range tc.in {
				assert.True(t, interval.Contains(Real(x)), "%v should contain %v", interval, x)
			}
			for _, x := range tc.out {
				assert.False(t, interval.Contains(Real(x)), "%v should not contain %v", interval, x)
			}
			assert.False(t, interval.Contains(Real(math.NaN())))
			assert.False(t, interval.Contains(Int(0)), "only reals are members")
		})
	}
}

func TestIntervalInvalidBounds(t *testing.T) {
	testCases := []struct {
		name         string
		lower, upper Bound
	}{
		{"reversed", Closed(1), Closed(0)},
		{"reversed open", Open(1), Open(0.5)},
		{"NaN lower", Closed(math.NaN()), Closed(0)},
		{"NaN upper", Closed(0), Open(math.NaN())},
		{"lower is +inf", Closed(math.Inf(1)), Unbounded()},
		{"upper is -inf", Unbounded(), Closed(math.Inf(-1))},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			interval, err := NewInterval(tc.lower, tc.upper)
			assert.Nil(t, interval)
			assert.Equal(t, InvalidBounds, CodeOf(err))
			assert.Contains(t, FormatWithCode(err), "(E001) invalid bounds")
		})
	}
}

func TestIntervalInfiniteBoundsAreUnbounded(t *testing.T) {
	interval, err := NewInterval(Closed(math.Inf(-1)), Open(math.Inf(1)))
	require.NoError(t, err)

	unbounded, err := NewInterval(Unbounded(), Unbounded())
	require.NoError(t, err)
	assert.True(t, Equal(interval, unbounded))
	assert.Equal(t, "(-∞, ∞)", interval.String())
}

func TestIntervalCardinality(t *testing.T) {
	testCases := []struct {
		lower, upper Bound
		expected     Cardinality
	}{
		{Closed(0), Closed(1), Infinite},
		{Unbounded(), Closed(1), Infinite},
		{Closed(1), Closed(1), Finite(1)},
		{Open(1), Closed(1), Finite(0)},
		{Closed(1), Open(1), Finite(0)},
	}
	for _, tc := range testCases {
		interval, err := NewInterval(tc.lower, tc.upper)
		require.NoError(t, err)
		t.Run(interval.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, interval.Cardinality())
			assert.Equal(t, Scalar, interval.Dimension())
		})
	}
}

func TestIntervalSample(t *testing.T) {
	rng := newRng(7)
	testCases := []struct {
		lower, upper Bound
	}{
		{Closed(-1), Closed(1)},
		{Open(0), Open(1e-3)},
		{Closed(-math.MaxFloat64), Closed(math.MaxFloat64)},
		{Closed(5), Unbounded()},
		{Open(5), Unbounded()},
		{Unbounded(), Open(-5)},
		{Unbounded(), Unbounded()},
	}
	for _, tc := range testCases {
		interval, err := NewInterval(tc.lower, tc.upper)
		require.NoError(t, err)
		t.Run(interval.String(), func(t *testing.T) {
			for range 1000 {
				v, err := interval.Sample(rng)
				require.NoError(t, err)
				assert.True(t, interval.Contains(v), "%v sampled outside %v", v, interval)
			}
		})
	}

	t.Run("point", func(t *testing.T) {
		point, err := NewInterval(Closed(3), Closed(3))
		require.NoError(t, err)
		v, err := point.Sample(rng)
		assert.NoError(t, err)
		assert.Equal(t, Real(3), v)
	})

	t.Run("empty", func(t *testing.T) {
		empty, err := NewInterval(Closed(3), Open(3))
		require.NoError(t, err)
		_, err = empty.Sample(rng)
		assert.Equal(t, EmptySpace, CodeOf(err))
	})

	t.Run("no float between open bounds", func(t *testing.T) {
		tight, err := NewInterval(Open(1), Open(math.Nextafter(1, 2)))
		require.NoError(t, err)
		_, err = tight.Sample(rng)
		assert.Equal(t, EmptySpace, CodeOf(err))
	})
}

func TestIntervalSampleMean(t *testing.T) {
	rng := newRng(11)
	interval, err := NewInterval(Closed(10), Closed(20))
	require.NoError(t, err)

	const draws = 20_000
	sum := 0.0
	for range draws {
		v, err := interval.Sample(rng)
		require.NoError(t, err)
		sum += float64(v.(Real))
	}
	// the standard error of the mean is 10/sqrt(12*draws) ≈ 0.02
	assert.InDelta(t, 15, sum/draws, 0.1)
}

func TestIntervalClipAndBounds(t *testing.T) {
	interval, err := NewInterval(Open(0), Closed(1))
	require.NoError(t, err)

	assert.Equal(t, 0.0, interval.Clip(-3))
	assert.Equal(t, 1.0, interval.Clip(3))
	assert.Equal(t, 0.25, interval.Clip(0.25))

	inf, ok := interval.Inf()
	assert.True(t, ok)
	assert.Equal(t, Real(0), inf)
	sup, ok := interval.Sup()
	assert.True(t, ok)
	assert.Equal(t, Real(1), sup)

	lower, bounded := interval.Lower().Value()
	assert.True(t, bounded)
	assert.Equal(t, 0.0, lower)
	assert.False(t, interval.Lower().Inclusive())
	assert.True(t, interval.Upper().Inclusive())
	assert.Equal(t, "(0, 1]", interval.String())

	halfLine, err := NewInterval(Closed(0), Unbounded())
	require.NoError(t, err)
	_, ok = halfLine.Sup()
	assert.False(t, ok)
	assert.Equal(t, 1e9, halfLine.Clip(1e9))
	assert.Equal(t, "[0, ∞)", halfLine.String())
}
