package checker

import "math"

// scorePercent calculates count over total as a percentage rounded to two
// decimals, returning 0 if total is 0.
func scorePercent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*10000) / 100
}
