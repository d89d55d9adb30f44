package keeper_test

import (
	"math/rand"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/paw-chain/feed/x/feed/keeper"
)

func intSlice(vals ...int64) []math.Int {
	out := make([]math.Int, 0, len(vals))
	for _, v := range vals {
		out = append(out, math.NewInt(v))
	}
	return out
}

func TestMedianSingleValue(t *testing.T) {
	require.Equal(t, math.NewInt(42), keeper.Median(intSlice(42)))
}

func TestMedianOddCount(t *testing.T) {
	require.Equal(t, math.NewInt(20), keeper.Median(intSlice(30, 10, 20)))
	require.Equal(t, math.NewInt(5), keeper.Median(intSlice(1, 9, 5, 3, 7)))
}

func TestMedianEvenCountTruncates(t *testing.T) {
	// (10 + 20) / 2
	require.Equal(t, math.NewInt(15), keeper.Median(intSlice(20, 10)))
	// (3 + 4) / 2 truncates to 3
	require.Equal(t, math.NewInt(3), keeper.Median(intSlice(1, 3, 4, 100)))
	// negative values truncate toward zero
	require.Equal(t, math.NewInt(-3), keeper.Median(intSlice(-4, -3)))
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	submissions := intSlice(30, 10, 20)
	keeper.Median(submissions)
	require.Equal(t, intSlice(30, 10, 20), submissions)
}

// TestMedianProperties checks that the median is permutation invariant and
// always lies within the submitted values.
func TestMedianProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SliceOfN(rapid.Int64(), 1, 50).Draw(t, "submissions")
		submissions := intSlice(raw...)

		median := keeper.Median(submissions)

		shuffled := make([]math.Int, len(submissions))
		copy(shuffled, submissions)
		seed := rapid.Int64().Draw(t, "seed")
		rand.New(rand.NewSource(seed)).Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		require.True(t, median.Equal(keeper.Median(shuffled)), "median must not depend on submission order")

		min, max := submissions[0], submissions[0]
		for _, v := range submissions[1:] {
			if v.LT(min) {
				min = v
			}
			if v.GT(max) {
				max = v
			}
		}
		require.True(t, median.GTE(min), "median below smallest submission")
		require.True(t, median.LTE(max), "median above largest submission")
	})
}
