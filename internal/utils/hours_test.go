package utils

import (
	"testing"
	"time"
)

func TestRoundTo(t *testing.T) {
	cases := []struct {
		in     float64
		places int
		want   float64
	}{
		{1.0, 2, 1.0},
		{1.234, 2, 1.23},
		{1.236, 2, 1.24},
		{0.004, 2, 0},
		{2.5, 0, 3},
	}
	for _, tc := range cases {
		if got := RoundTo(tc.in, tc.places); got != tc.want {
			t.Fatalf("RoundTo(%v, %d): expected %v, got %v", tc.in, tc.places, tc.want, got)
		}
	}
}

func TestHoursBetween(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	if got := HoursBetween(t0, t0.Add(90*time.Minute)); got != 1.5 {
		t.Fatalf("expected 1.5, got %v", got)
	}
}

func TestSecondsToWholeHours(t *testing.T) {
	if got := SecondsToWholeHours(5400); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := SecondsToWholeHours(1000); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
