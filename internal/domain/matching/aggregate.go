package matching

import "math"

type WeightedFactor struct {
	Score  float64
	Weight float64
}

// Aggregate returns the weighted mean of factors as an integer percentage.
// Negative weights count as zero; an all-zero weight set scores 0.
func Aggregate(factors []WeightedFactor) int {
	var sum, weights float64
	for _, f := range factors {
		w := math.Max(f.Weight, 0)
		sum += clamp01(f.Score) * w
		weights += w
	}
	if weights == 0 {
		return 0
	}
	return percent(sum / weights)
}

func percent(v float64) int {
	return int(math.Round(clamp01(v) * 100))
}
