package gamepass

import "time"

// SeasonLengthDays is the length of every seasonal reward track.
const SeasonLengthDays = 30

// Season is the current monthly reward window. A new season starts on
// the first calendar day of each month, server-side.
type Season struct {
	EpochStart time.Time
	LengthDays int
}

// EndsAt is when the track resets to day 1 again.
func (s Season) EndsAt() time.Time {
	return s.EpochStart.AddDate(0, 1, 0)
}

// CurrentSeason derives the active season from server time only; client
// supplied timestamps are never used for day computation.
func CurrentSeason(now time.Time) Season {
	now = now.UTC()
	epoch := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Season{EpochStart: epoch, LengthDays: SeasonLengthDays}
}

// CurrentDay returns the 1-based season day, clamped to
// [1, LengthDays]. Once clamped at the last day the track is complete
// until the next epoch. Pure function, same answer for every caller at
// the same instant.
func CurrentDay(now time.Time, season Season) int {
	day := int(now.UTC().Sub(season.EpochStart)/(24*time.Hour)) + 1
	if day < 1 {
		return 1
	}
	if day > season.LengthDays {
		return season.LengthDays
	}
	return day
}
