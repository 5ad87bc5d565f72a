package postgres

import (
	"context"
	"errors"

	"gamePassAPI/business/gamepass"
	"gamePassAPI/domain"

	"gorm.io/gorm"
)

type EntitlementRepository struct {
	DB *gorm.DB
}

var _ gamepass.EntitlementRepository = (*EntitlementRepository)(nil)

func NewEntitlementRepository(db *gorm.DB) *EntitlementRepository {
	return &EntitlementRepository{DB: db}
}

// GetActive returns the most recent purchase record. Expiry is not
// filtered here; the resolver degrades lapsed entitlements to free so
// the decision stays in one place.
func (r *EntitlementRepository) GetActive(ctx context.Context, userID uint) (domain.UserPassEntitlement, bool, error) {
	var ent domain.UserPassEntitlement

	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&ent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserPassEntitlement{}, false, nil
	}
	if err != nil {
		return domain.UserPassEntitlement{}, false, err
	}

	return ent, true, nil
}
