package postgres

import (
	"context"
	"errors"

	"gamePassAPI/business/catalog"
	"gamePassAPI/business/gamepass"
	"gamePassAPI/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CatalogRepository struct {
	DB *gorm.DB
}

var (
	_ catalog.CatalogRepository = (*CatalogRepository)(nil)
	_ gamepass.CatalogReader    = (*CatalogRepository)(nil)
)

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) GetDefinition(ctx context.Context, day int, tier domain.PassTier) (domain.RewardDefinition, bool, error) {
	var def domain.RewardDefinition

	err := r.DB.WithContext(ctx).
		Where("day = ? AND tier = ?", day, tier).
		First(&def).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RewardDefinition{}, false, nil
	}
	if err != nil {
		return domain.RewardDefinition{}, false, err
	}

	return def, true, nil
}

func (r *CatalogRepository) ListDefinitions(ctx context.Context) ([]domain.RewardDefinition, error) {
	var defs []domain.RewardDefinition

	err := r.DB.WithContext(ctx).
		Order("day, tier").
		Find(&defs).Error
	if err != nil {
		return nil, err
	}

	return defs, nil
}

func (r *CatalogRepository) UpsertDefinition(ctx context.Context, def domain.RewardDefinition) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "day"}, {Name: "tier"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"reward_kind",
				"currency_kind",
				"amount",
				"item_id",
				"quantity",
				"spin_count",
				"updated_at",
			}),
		}).
		Create(&def).Error
}

func (r *CatalogRepository) DeleteDefinition(ctx context.Context, day int, tier domain.PassTier) error {
	row := r.DB.WithContext(ctx).
		Where("day = ? AND tier = ?", day, tier).
		Delete(&domain.RewardDefinition{})
	if row.Error != nil {
		return row.Error
	}
	if row.RowsAffected == 0 {
		return errors.New("reward definition not found")
	}

	return nil
}
