package catalog

import (
	"testing"

	"gamePassAPI/domain"
)

func TestValidateDefinition(t *testing.T) {
	cases := []struct {
		name    string
		def     domain.RewardDefinition
		wantErr bool
	}{
		{
			"valid currency reward",
			domain.RewardDefinition{Day: 1, Tier: domain.TierFree, RewardKind: domain.RewardCurrency, CurrencyKind: domain.CurrencyCoins, Amount: 500},
			false,
		},
		{
			"valid zen reward",
			domain.RewardDefinition{Day: 12, Tier: domain.TierElite, RewardKind: domain.RewardCurrency, CurrencyKind: domain.CurrencyZen, Amount: 50000},
			false,
		},
		{
			"valid item reward",
			domain.RewardDefinition{Day: 30, Tier: domain.TierGold, RewardKind: domain.RewardItem, ItemID: 9001, Quantity: 1},
			false,
		},
		{
			"valid spins reward",
			domain.RewardDefinition{Day: 7, Tier: domain.TierFree, RewardKind: domain.RewardSpins, SpinCount: 3},
			false,
		},
		{
			"day below range",
			domain.RewardDefinition{Day: 0, Tier: domain.TierFree, RewardKind: domain.RewardCurrency, CurrencyKind: domain.CurrencyCoins, Amount: 500},
			true,
		},
		{
			"day above range",
			domain.RewardDefinition{Day: 31, Tier: domain.TierFree, RewardKind: domain.RewardCurrency, CurrencyKind: domain.CurrencyCoins, Amount: 500},
			true,
		},
		{
			"unknown tier",
			domain.RewardDefinition{Day: 1, Tier: domain.PassTier("vip"), RewardKind: domain.RewardCurrency, CurrencyKind: domain.CurrencyCoins, Amount: 500},
			true,
		},
		{
			"unknown reward kind",
			domain.RewardDefinition{Day: 1, Tier: domain.TierFree, RewardKind: domain.RewardKind("loot")},
			true,
		},
		{
			"currency without kind",
			domain.RewardDefinition{Day: 1, Tier: domain.TierFree, RewardKind: domain.RewardCurrency, Amount: 500},
			true,
		},
		{
			"currency with zero amount",
			domain.RewardDefinition{Day: 1, Tier: domain.TierFree, RewardKind: domain.RewardCurrency, CurrencyKind: domain.CurrencyCoins},
			true,
		},
		{
			"currency with item fields set",
			domain.RewardDefinition{Day: 1, Tier: domain.TierFree, RewardKind: domain.RewardCurrency, CurrencyKind: domain.CurrencyCoins, Amount: 500, ItemID: 9001},
			true,
		},
		{
			"item without item_id",
			domain.RewardDefinition{Day: 1, Tier: domain.TierFree, RewardKind: domain.RewardItem, Quantity: 1},
			true,
		},
		{
			"item with zero quantity",
			domain.RewardDefinition{Day: 1, Tier: domain.TierFree, RewardKind: domain.RewardItem, ItemID: 9001},
			true,
		},
		{
			"item with currency fields set",
			domain.RewardDefinition{Day: 1, Tier: domain.TierFree, RewardKind: domain.RewardItem, ItemID: 9001, Quantity: 1, Amount: 500},
			true,
		},
		{
			"spins with zero count",
			domain.RewardDefinition{Day: 1, Tier: domain.TierFree, RewardKind: domain.RewardSpins},
			true,
		},
		{
			"spins with item fields set",
			domain.RewardDefinition{Day: 1, Tier: domain.TierFree, RewardKind: domain.RewardSpins, SpinCount: 3, ItemID: 9001},
			true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateDefinition(c.def)
			if c.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !c.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
