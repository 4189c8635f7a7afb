package space

import (
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRng(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestDiscreteLabels(t *testing.T) {
	testCases := [][]string{
		{},
		{"left"},
		{"left", "right"},
		{"north", "east", "south", "west"},
	}
	for _, labels := range testCases {
		t.Run(fmtLabels(labels), func(t *testing.T) {
			d, err := NewDiscrete(labels...)
			require.NoError(t, err)

			assert.Equal(t, Finite(uint64(len(labels))), d.Cardinality())
			assert.Equal(t, Scalar, d.Dimension())
			for _, l := range labels {
				assert.True(t, d.Contains(Label(l)), "should contain %s", l)
			}
			assert.False(t, d.Contains(Label("up")))
			assert.False(t, d.Contains(Int(0)), "integers are not labels")
		})
	}
}

func fmtLabels(labels []string) string {
	if len(labels) == 0 {
		return "no labels"
	}
	return strings.Join(labels, ",")
}

func TestDiscreteDuplicateLabel(t *testing.T) {
	d, err := NewDiscrete("a", "a", "b")
	assert.Nil(t, d)
	assert.Equal(t, DuplicateLabel, CodeOf(err))

	var dupErr *DuplicateLabelError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "a", dupErr.Label)
	assert.Equal(t, "(E002) duplicate label 'a'", FormatWithCode(err))
}

func TestDiscreteLabelsAreCopied(t *testing.T) {
	labels := []string{"a", "b"}
	d, err := NewDiscrete(labels...)
	require.NoError(t, err)

	labels[0] = "z"
	assert.True(t, d.Contains(Label("a")))
	assert.False(t, d.Contains(Label("z")))

	got := d.Labels()
	got[1] = "y"
	assert.Equal(t, []string{"a", "b"}, d.Labels())
}

func TestDiscreteRange(t *testing.T) {
	d, err := NewRange(-2, 3)
	require.NoError(t, err)

	assert.True(t, d.IsRange())
	assert.Equal(t, Finite(5), d.Cardinality())
	assert.Equal(t, "{-2..2}", d.String())
	for i := int64(-2); i < 3; i++ {
		assert.True(t, d.Contains(Int(i)))
	}
	assert.False(t, d.Contains(Int(-3)))
	assert.False(t, d.Contains(Int(3)))
	assert.False(t, d.Contains(Label("0")))

	inf, ok := d.Inf()
	assert.True(t, ok)
	assert.Equal(t, Int(-2), inf)
	sup, ok := d.Sup()
	assert.True(t, ok)
	assert.Equal(t, Int(2), sup)

	assert.Equal(t, []Value{Int(-2), Int(-1), Int(0), Int(1), Int(2)}, slices.Collect(d.Values()))
}

func TestDiscreteRangeEdges(t *testing.T) {
	_, err := NewRange(3, 2)
	assert.Equal(t, InvalidBounds, CodeOf(err))

	empty, err := NewRange(4, 4)
	require.NoError(t, err)
	assert.Equal(t, Finite(0), empty.Cardinality())
	_, ok := empty.Inf()
	assert.False(t, ok)
	_, err = empty.Sample(newRng(1))
	assert.Equal(t, EmptySpace, CodeOf(err))

	wide, err := NewRange(math.MinInt64, math.MaxInt64)
	require.NoError(t, err)
	assert.Equal(t, Finite(math.MaxUint64), wide.Cardinality())
	assert.True(t, wide.Contains(Int(math.MinInt64)))
	assert.False(t, wide.Contains(Int(math.MaxInt64)))
}

func TestDiscreteIndexAndBounds(t *testing.T) {
	d, err := NewDiscrete("low", "mid", "high")
	require.NoError(t, err)

	i, ok := d.Index(Label("mid"))
	assert.True(t, ok)
	assert.Equal(t, uint64(1), i)
	assert.Equal(t, Label("high"), d.At(2))

	inf, _ := d.Inf()
	sup, _ := d.Sup()
	assert.Equal(t, Label("low"), inf)
	assert.Equal(t, Label("high"), sup)
	assert.Equal(t, "{low, mid, high}", d.String())
}

func TestDiscreteSampleUniform(t *testing.T) {
	labels := []string{"a", "b", "c", "d", "e"}
	d, err := NewDiscrete(labels...)
	require.NoError(t, err)

	const draws = 50_000
	rng := newRng(42)
	counts := map[Value]int{}
	for range draws {
		v, err := d.Sample(rng)
		require.NoError(t, err)
		counts[v]++
	}
	assert.Len(t, counts, len(labels))

	// chi-square with 4 degrees of freedom; 18.47 is the 0.999 quantile
	expected := float64(draws) / float64(len(labels))
	chiSquare := 0.0
	for _, l := range labels {
		diff := float64(counts[Label(l)]) - expected
		chiSquare += diff * diff / expected
	}
	assert.Less(t, chiSquare, 18.47, "counts %v are not uniform", counts)
}

func TestDiscreteHash(t *testing.T) {
	ab1, _ := NewDiscrete("a", "b")
	ab2, _ := NewDiscrete("a", "b")
	ba, _ := NewDiscrete("b", "a")
	joined, _ := NewDiscrete("ab")
	r1, _ := NewRange(0, 2)
	r2, _ := NewRange(0, 2)

	assert.True(t, Equal(ab1, ab2))
	assert.False(t, Equal(ab1, ba), "order matters")
	assert.False(t, Equal(ab1, joined))
	assert.True(t, Equal(r1, r2))
	assert.False(t, Equal(ab1, r1))
}
