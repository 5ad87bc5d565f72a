package postgres

import (
	"context"
	"errors"

	"gamePassAPI/business/gamepass"
	"gamePassAPI/domain"

	"gorm.io/gorm"
)

type WalletRepository struct {
	DB *gorm.DB
}

var _ gamepass.WalletRepository = (*WalletRepository)(nil)

func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{DB: db}
}

// Get returns a zero-balance wallet for users that have never topped up
// or been credited.
func (r *WalletRepository) Get(ctx context.Context, userID uint) (domain.Wallet, error) {
	var wallet domain.Wallet

	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Wallet{UserID: userID}, nil
		}
		return domain.Wallet{}, err
	}

	return wallet, nil
}

// Credit is used by external top-up flows; reward credits happen inside
// the claim transaction instead.
func (r *WalletRepository) Credit(ctx context.Context, userID uint, kind domain.CurrencyKind, amount int64) error {
	if amount <= 0 {
		return errors.New("credit amount must be positive")
	}

	column, ok := currencyColumn(kind)
	if !ok {
		return errors.New("unknown currency kind")
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureWallet(tx, userID); err != nil {
			return err
		}
		return creditWallet(tx, userID, column, amount)
	})
}
