package gamepass

import (
	"time"

	"gamePassAPI/domain"
)

// EffectiveTier degrades an expired entitlement to Free. It is
// evaluated fresh on every status and claim request because an
// entitlement can lapse between a status check and the claim that
// follows it.
func EffectiveTier(ent domain.UserPassEntitlement, now time.Time) domain.PassTier {
	if !ent.Tier.Valid() {
		return domain.TierFree
	}
	if ent.ExpiresAt != nil && now.After(*ent.ExpiresAt) {
		return domain.TierFree
	}
	return ent.Tier
}
