package postgres

import (
	"context"
	"errors"
	"fmt"

	"gamePassAPI/business/gamepass"
	"gamePassAPI/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClaimRepository struct {
	DB *gorm.DB
}

var _ gamepass.ClaimLedger = (*ClaimRepository)(nil)

func NewClaimRepository(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{DB: db}
}

func (r *ClaimRepository) HasClaimed(ctx context.Context, userID uint, day int, tier domain.PassTier) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&domain.ClaimRecord{}).
		Where("user_id = ? AND day = ? AND tier = ?", userID, day, tier).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ClaimRepository) ClaimedDays(ctx context.Context, userID uint) (domain.ClaimedDays, error) {
	var records []domain.ClaimRecord
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day").
		Find(&records).Error
	if err != nil {
		return domain.ClaimedDays{}, err
	}

	var claimed domain.ClaimedDays
	for _, rec := range records {
		switch rec.Tier {
		case domain.TierFree:
			claimed.Free = append(claimed.Free, rec.Day)
		case domain.TierElite:
			claimed.Elite = append(claimed.Elite, rec.Day)
		case domain.TierGold:
			claimed.Gold = append(claimed.Gold, rec.Day)
		}
	}

	return claimed, nil
}

// ExecuteClaim commits the whole claim as a single transaction: zen
// debit, ledger insert, reward application and (for items) in-game
// delivery. Any failure, including the unique index firing on a
// concurrent duplicate, rolls back every effect.
func (r *ClaimRepository) ExecuteClaim(ctx context.Context, rec *domain.ClaimRecord, reward domain.RewardPayload, deliver func(context.Context) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureWallet(tx, rec.UserID); err != nil {
			return err
		}

		if rec.ZenSpent > 0 {
			// Conditional debit; zero rows means the balance check in
			// the service raced a concurrent spend.
			res := tx.Model(&domain.Wallet{}).
				Where("user_id = ? AND zen >= ?", rec.UserID, rec.ZenSpent).
				Update("zen", gorm.Expr("zen - ?", rec.ZenSpent))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gamepass.ErrInsufficientZen
			}
		}

		if err := tx.Create(rec).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return gamepass.ErrAlreadyClaimed
			}
			return err
		}

		switch reward.Kind {
		case domain.RewardCurrency:
			column, ok := currencyColumn(reward.Currency)
			if !ok {
				return fmt.Errorf("unknown currency kind %q", reward.Currency)
			}
			if err := creditWallet(tx, rec.UserID, column, reward.Amount); err != nil {
				return err
			}
		case domain.RewardSpins:
			if err := creditWallet(tx, rec.UserID, "spins", int64(reward.SpinCount)); err != nil {
				return err
			}
		}

		if deliver != nil {
			if err := deliver(ctx); err != nil {
				return fmt.Errorf("%w: %v", gamepass.ErrDeliveryFailed, err)
			}
		}

		return nil
	})
}

func ensureWallet(tx *gorm.DB, userID uint) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.Wallet{UserID: userID}).Error
}

func creditWallet(tx *gorm.DB, userID uint, column string, amount int64) error {
	return tx.Model(&domain.Wallet{}).
		Where("user_id = ?", userID).
		Update(column, gorm.Expr(column+" + ?", amount)).Error
}

func currencyColumn(kind domain.CurrencyKind) (string, bool) {
	switch kind {
	case domain.CurrencyCoins:
		return "coins", true
	case domain.CurrencyZen:
		return "zen", true
	case domain.CurrencyExp:
		return "exp", true
	default:
		return "", false
	}
}
