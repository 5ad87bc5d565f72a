package gamepass

import (
	"testing"
	"time"
)

func TestCurrentSeasonEpochIsFirstOfMonth(t *testing.T) {
	cases := []struct {
		now   time.Time
		epoch time.Time
	}{
		{time.Date(2025, 3, 5, 12, 30, 0, 0, time.UTC), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC), time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, c := range cases {
		season := CurrentSeason(c.now)
		if !season.EpochStart.Equal(c.epoch) {
			t.Errorf("CurrentSeason(%v).EpochStart = %v, want %v", c.now, season.EpochStart, c.epoch)
		}
		if season.LengthDays != SeasonLengthDays {
			t.Errorf("LengthDays = %d, want %d", season.LengthDays, SeasonLengthDays)
		}
	}
}

func TestCurrentDay(t *testing.T) {
	epoch := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	season := Season{EpochStart: epoch, LengthDays: SeasonLengthDays}

	cases := []struct {
		offset time.Duration
		want   int
	}{
		{0, 1},
		{23 * time.Hour, 1},
		{24 * time.Hour, 2},
		{24*time.Hour + time.Second, 2},
		{4 * 24 * time.Hour, 5},
		{29 * 24 * time.Hour, 30},
		{30 * 24 * time.Hour, 30}, // clamped, track complete
		{45 * 24 * time.Hour, 30},
	}

	for _, c := range cases {
		got := CurrentDay(epoch.Add(c.offset), season)
		if got != c.want {
			t.Errorf("CurrentDay(epoch+%v) = %d, want %d", c.offset, got, c.want)
		}
	}
}

func TestCurrentDayClampsBeforeEpoch(t *testing.T) {
	epoch := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	season := Season{EpochStart: epoch, LengthDays: SeasonLengthDays}

	if got := CurrentDay(epoch.Add(-time.Hour), season); got != 1 {
		t.Errorf("CurrentDay before epoch = %d, want 1", got)
	}
}

func TestCurrentDayIsDeterministic(t *testing.T) {
	now := time.Date(2025, 3, 17, 9, 41, 3, 0, time.UTC)
	season := CurrentSeason(now)

	first := CurrentDay(now, season)
	second := CurrentDay(now, season)
	if first != second {
		t.Fatalf("CurrentDay not deterministic: %d vs %d", first, second)
	}

	// Global, not per-user: any caller at the same instant sees the
	// same day.
	if got := CurrentDay(now, CurrentSeason(now)); got != first {
		t.Fatalf("CurrentDay differs across callers: %d vs %d", got, first)
	}
}

func TestSeasonEndsAt(t *testing.T) {
	season := CurrentSeason(time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC))

	want := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	if !season.EndsAt().Equal(want) {
		t.Errorf("EndsAt = %v, want %v", season.EndsAt(), want)
	}
}
