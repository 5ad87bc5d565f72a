package domain

import "time"

// RewardKind discriminates the reward payload variants. Exactly one
// variant is populated per definition; there are no sentinel item ids.
type RewardKind string

const (
	RewardCurrency RewardKind = "currency"
	RewardItem     RewardKind = "item"
	RewardSpins    RewardKind = "spins"
)

type CurrencyKind string

const (
	CurrencyCoins CurrencyKind = "coins"
	CurrencyZen   CurrencyKind = "zen"
	CurrencyExp   CurrencyKind = "exp"
)

type (
	// RewardDefinition is one admin-authored row of the seasonal reward
	// catalog, unique per (day, tier). The claim engine only reads these.
	RewardDefinition struct {
		ID           uint         `gorm:"primaryKey" json:"id"`
		Day          int          `gorm:"column:day;uniqueIndex:idx_reward_day_tier;not null" json:"day"`
		Tier         PassTier     `gorm:"column:tier;uniqueIndex:idx_reward_day_tier;not null" json:"tier"`
		RewardKind   RewardKind   `gorm:"column:reward_kind;not null" json:"reward_kind"`
		CurrencyKind CurrencyKind `gorm:"column:currency_kind" json:"currency_kind,omitempty"`
		Amount       int64        `gorm:"column:amount;default:0" json:"amount,omitempty"`
		ItemID       int64        `gorm:"column:item_id;default:0" json:"item_id,omitempty"`
		Quantity     int          `gorm:"column:quantity;default:0" json:"quantity,omitempty"`
		SpinCount    int          `gorm:"column:spin_count;default:0" json:"spin_count,omitempty"`
		CreatedAt    time.Time    `json:"created_at"`
		UpdatedAt    time.Time    `json:"updated_at"`
	}

	// RewardPayload is the tagged-union view of a definition, handed to
	// the claim transaction.
	RewardPayload struct {
		Kind      RewardKind   `json:"kind"`
		Currency  CurrencyKind `json:"currency,omitempty"`
		Amount    int64        `json:"amount,omitempty"`
		ItemID    int64        `json:"item_id,omitempty"`
		Quantity  int          `json:"quantity,omitempty"`
		SpinCount int          `json:"spin_count,omitempty"`
	}
)

func (RewardDefinition) TableName() string {
	return "reward_definitions"
}

func (d RewardDefinition) Payload() RewardPayload {
	return RewardPayload{
		Kind:      d.RewardKind,
		Currency:  d.CurrencyKind,
		Amount:    d.Amount,
		ItemID:    d.ItemID,
		Quantity:  d.Quantity,
		SpinCount: d.SpinCount,
	}
}
