package keeper

import (
	"sort"

	sdkmath "cosmossdk.io/math"
)

// Median computes the median of the given submissions. For an even number of
// submissions the two central values are averaged, truncating. Panics on
// an empty slice; rounds only close with at least one submission.
func Median(submissions []sdkmath.Int) sdkmath.Int {
	sorted := make([]sdkmath.Int, len(submissions))
	copy(sorted, submissions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LT(sorted[j])
	})

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Quo(sdkmath.NewInt(2))
}
