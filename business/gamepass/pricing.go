package gamepass

// SkipAheadCost prices claiming a free-track reward before its
// scheduled day: zenPerDay per day ahead, zero for any day already
// reached. Paid tiers are rejected before pricing and never get here.
func SkipAheadCost(day, currentDay int, zenPerDay int64) int64 {
	daysAhead := day - currentDay
	if daysAhead <= 0 {
		return 0
	}
	return int64(daysAhead) * zenPerDay
}
