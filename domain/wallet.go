package domain

import "time"

// Wallet holds a user's site-side currency balances. All amounts are
// non-negative integers; the zen column is only debited inside the
// claim transaction and credited by top-up flows and zen rewards.
type Wallet struct {
	UserID    uint      `gorm:"column:user_id;primaryKey" json:"user_id"`
	Zen       int64     `gorm:"column:zen;default:0" json:"zen"`
	Coins     int64     `gorm:"column:coins;default:0" json:"coins"`
	Exp       int64     `gorm:"column:exp;default:0" json:"exp"`
	Spins     int64     `gorm:"column:spins;default:0" json:"spins"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Wallet) TableName() string {
	return "wallets"
}
