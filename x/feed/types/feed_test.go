package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/feed/x/feed/types"
)

func TestValueBoundsContains(t *testing.T) {
	bounds := types.ValueBounds{Min: math.NewInt(10), Max: math.NewInt(20)}

	require.True(t, bounds.Contains(math.NewInt(10)))
	require.True(t, bounds.Contains(math.NewInt(15)))
	require.True(t, bounds.Contains(math.NewInt(20)))
	require.False(t, bounds.Contains(math.NewInt(9)))
	require.False(t, bounds.Contains(math.NewInt(21)))
}

func TestRoundDataConversion(t *testing.T) {
	// open rounds carry no data
	_, ok := types.RoundDataFromRound(types.NewRound(5))
	require.False(t, ok)
	require.False(t, types.NewRound(5).IsAnswered())

	data := types.RoundData{
		StartedAt:       5,
		Answer:          math.NewInt(123),
		UpdatedAt:       7,
		AnsweredInRound: 3,
	}
	round := data.IntoRound()
	require.True(t, round.IsAnswered())

	back, ok := types.RoundDataFromRound(round)
	require.True(t, ok)
	require.Equal(t, data, back)
}

func TestDefaultRoundData(t *testing.T) {
	data := types.DefaultRoundData()
	require.True(t, data.Answer.IsZero())
	require.Zero(t, data.StartedAt)
	require.Zero(t, data.UpdatedAt)
	require.Zero(t, data.AnsweredInRound)
}
