package domain

import "time"

type (
	// ClaimRecord is append-only. The unique index over
	// (user_id, day, tier) is what guarantees at-most-once claims under
	// concurrent requests; application-level checks are only a fast path.
	ClaimRecord struct {
		ID          uint      `gorm:"primaryKey" json:"id"`
		UserID      uint      `gorm:"column:user_id;uniqueIndex:idx_claim_user_day_tier;not null" json:"user_id"`
		Day         int       `gorm:"column:day;uniqueIndex:idx_claim_user_day_tier;not null" json:"day"`
		Tier        PassTier  `gorm:"column:tier;uniqueIndex:idx_claim_user_day_tier;not null" json:"tier"`
		ZenSpent    int64     `gorm:"column:zen_spent;default:0" json:"zen_spent"`
		DeliveryRef string    `gorm:"column:delivery_ref" json:"delivery_ref,omitempty"`
		ClaimedAt   time.Time `gorm:"column:claimed_at;not null" json:"claimed_at"`
	}

	// ClaimedDays groups a user's claimed day numbers per reward track.
	ClaimedDays struct {
		Free  []int `json:"free"`
		Elite []int `json:"elite"`
		Gold  []int `json:"gold"`
	}

	// PassStatus is the per-request snapshot returned to the storefront.
	// Everything in it is re-derived server-side on every call.
	PassStatus struct {
		CurrentDay    int         `json:"current_day"`
		SeasonEndsAt  time.Time   `json:"season_ends_at"`
		EffectiveTier PassTier    `json:"effective_tier"`
		ClaimedDays   ClaimedDays `json:"claimed_days"`
		ZenBalance    int64       `json:"zen_balance"`
		ZenCostPerDay int64       `json:"zen_cost_per_day"`
	}

	// ClaimOutcome is the result of a successful (or idempotently
	// replayed) claim transaction.
	ClaimOutcome struct {
		Day            int           `json:"day"`
		Tier           PassTier      `json:"tier"`
		AlreadyClaimed bool          `json:"already_claimed"`
		Reward         RewardPayload `json:"reward"`
		ZenSpent       int64         `json:"zen_spent"`
	}
)

func (ClaimRecord) TableName() string {
	return "pass_claims"
}
