package util

import "math"

// RoundRating rounds an average rating to one decimal place. This is the
// fixed storage policy for derived business ratings: the mean is rounded
// once at recompute time so every read sees the same value.
func RoundRating(rating float64) float64 {
	return math.Round(rating*10) / 10
}
