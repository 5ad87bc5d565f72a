package gamepass

import "testing"

func TestSkipAheadCost(t *testing.T) {
	cases := []struct {
		name       string
		day        int
		currentDay int
		perDay     int64
		want       int64
	}{
		{"three days ahead", 8, 5, 100000, 300000},
		{"one day ahead", 6, 5, 100000, 100000},
		{"current day is free", 5, 5, 100000, 0},
		{"past day is free", 3, 5, 100000, 0},
		{"day one of season", 1, 1, 100000, 0},
		{"full track ahead", 30, 1, 100000, 2900000},
		{"custom per-day price", 10, 5, 250000, 1250000},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := SkipAheadCost(c.day, c.currentDay, c.perDay)
			if got != c.want {
				t.Errorf("SkipAheadCost(%d, %d, %d) = %d, want %d", c.day, c.currentDay, c.perDay, got, c.want)
			}
			if got < 0 {
				t.Errorf("cost must never be negative, got %d", got)
			}
		})
	}
}
