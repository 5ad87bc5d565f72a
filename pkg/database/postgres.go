package database

import (
	"fmt"

	"gamePassAPI/domain"
	"gamePassAPI/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitPostgres opens the database and keeps the schema current.
// TranslateError is on so duplicate-key inserts surface as
// gorm.ErrDuplicatedKey, which the claim ledger depends on.
func InitPostgres(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	err = db.AutoMigrate(
		&domain.RewardDefinition{},
		&domain.ClaimRecord{},
		&domain.UserPassEntitlement{},
		&domain.Wallet{},
		&domain.Setting{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
