package gamepass

import (
	"testing"
	"time"

	"gamePassAPI/domain"
)

func TestEffectiveTier(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	cases := []struct {
		name string
		ent  domain.UserPassEntitlement
		want domain.PassTier
	}{
		{"no expiry keeps tier", domain.UserPassEntitlement{Tier: domain.TierGold}, domain.TierGold},
		{"future expiry keeps tier", domain.UserPassEntitlement{Tier: domain.TierElite, ExpiresAt: &future}, domain.TierElite},
		{"past expiry degrades to free", domain.UserPassEntitlement{Tier: domain.TierGold, ExpiresAt: &past}, domain.TierFree},
		{"unknown tier degrades to free", domain.UserPassEntitlement{Tier: domain.PassTier("vip")}, domain.TierFree},
		{"free stays free", domain.UserPassEntitlement{Tier: domain.TierFree}, domain.TierFree},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := EffectiveTier(c.ent, now); got != c.want {
				t.Errorf("EffectiveTier = %q, want %q", got, c.want)
			}
		})
	}
}

func TestTierCovers(t *testing.T) {
	cases := []struct {
		held      domain.PassTier
		requested domain.PassTier
		want      bool
	}{
		{domain.TierFree, domain.TierFree, true},
		{domain.TierFree, domain.TierElite, false},
		{domain.TierFree, domain.TierGold, false},
		{domain.TierElite, domain.TierFree, true},
		{domain.TierElite, domain.TierElite, true},
		{domain.TierElite, domain.TierGold, false},
		{domain.TierGold, domain.TierFree, true},
		{domain.TierGold, domain.TierElite, true},
		{domain.TierGold, domain.TierGold, true},
	}

	for _, c := range cases {
		if got := c.held.Covers(c.requested); got != c.want {
			t.Errorf("%q.Covers(%q) = %v, want %v", c.held, c.requested, got, c.want)
		}
	}
}
