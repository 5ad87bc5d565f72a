package postgres

import (
	"context"
	"errors"

	"gamePassAPI/business/gamepass"
	"gamePassAPI/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	DB *gorm.DB
}

var _ gamepass.SettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// ZenCostPerDay falls back to the default price until an admin sets the
// global value.
func (r *SettingsRepository) ZenCostPerDay(ctx context.Context) (int64, error) {
	var setting domain.Setting

	err := r.DB.WithContext(ctx).
		Where("key = ?", domain.SettingZenCostPerDay).
		First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.DefaultZenCostPerDay, nil
	}
	if err != nil {
		return 0, err
	}

	return setting.Value, nil
}

func (r *SettingsRepository) UpsertSetting(ctx context.Context, key string, value int64) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&domain.Setting{Key: key, Value: value}).Error
}
