package utils

import (
	"math"
	"time"
)

// RoundTo rounds v half away from zero to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func HoursBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours()
}

// SecondsToWholeHours converts an average duration in seconds to whole hours.
func SecondsToWholeHours(seconds float64) int {
	return int(math.Round(seconds / 3600))
}
