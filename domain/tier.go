package domain

// PassTier is the entitlement level of a game pass. Tiers are totally
// ordered: Free < Elite < Gold, and a higher tier always covers the
// reward tracks below it.
type PassTier string

const (
	TierFree  PassTier = "free"
	TierElite PassTier = "elite"
	TierGold  PassTier = "gold"
)

var tierRank = map[PassTier]int{
	TierFree:  0,
	TierElite: 1,
	TierGold:  2,
}

func (t PassTier) Valid() bool {
	_, ok := tierRank[t]
	return ok
}

func (t PassTier) Rank() int {
	return tierRank[t]
}

// Covers reports whether a user holding tier t may claim rewards on the
// requested track.
func (t PassTier) Covers(requested PassTier) bool {
	return tierRank[t] >= tierRank[requested]
}

func ParseTier(s string) (PassTier, bool) {
	t := PassTier(s)
	return t, t.Valid()
}
