package catalog

import (
	"context"
	"errors"
	"fmt"

	"gamePassAPI/business/gamepass"
	"gamePassAPI/domain"
	"gamePassAPI/pkg/logger"
)

type CatalogRepository interface {
	GetDefinition(ctx context.Context, day int, tier domain.PassTier) (domain.RewardDefinition, bool, error)
	ListDefinitions(ctx context.Context) ([]domain.RewardDefinition, error)
	UpsertDefinition(ctx context.Context, def domain.RewardDefinition) error
	DeleteDefinition(ctx context.Context, day int, tier domain.PassTier) error
}

// CatalogService fronts the GM authoring surface of the reward catalog.
// The claim engine never goes through it; it reads definitions straight
// from the repository.
type CatalogService struct {
	catalogRepo CatalogRepository
}

func NewCatalogService(catalogRepo CatalogRepository) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
	}
}

func (s *CatalogService) ListDefinitions(ctx context.Context) ([]domain.RewardDefinition, error) {
	return s.catalogRepo.ListDefinitions(ctx)
}

func (s *CatalogService) GetDefinition(ctx context.Context, day int, tier domain.PassTier) (domain.RewardDefinition, bool, error) {
	return s.catalogRepo.GetDefinition(ctx, day, tier)
}

func (s *CatalogService) UpsertDefinition(ctx context.Context, def domain.RewardDefinition) error {
	if err := ValidateDefinition(def); err != nil {
		return err
	}

	if err := s.catalogRepo.UpsertDefinition(ctx, def); err != nil {
		logger.Error("Failed to upsert reward definition", err)
		return err
	}

	return nil
}

func (s *CatalogService) DeleteDefinition(ctx context.Context, day int, tier domain.PassTier) error {
	return s.catalogRepo.DeleteDefinition(ctx, day, tier)
}

// ValidateDefinition checks that exactly one payload variant is
// populated and that the (day, tier) key is in range, so the engine
// never has to parse sentinel values out of half-filled rows.
func ValidateDefinition(def domain.RewardDefinition) error {
	if def.Day < 1 || def.Day > gamepass.SeasonLengthDays {
		return fmt.Errorf("day must be between 1 and %d", gamepass.SeasonLengthDays)
	}
	if !def.Tier.Valid() {
		return errors.New("invalid tier")
	}

	switch def.RewardKind {
	case domain.RewardCurrency:
		switch def.CurrencyKind {
		case domain.CurrencyCoins, domain.CurrencyZen, domain.CurrencyExp:
		default:
			return errors.New("currency rewards need a currency kind of coins, zen or exp")
		}
		if def.Amount <= 0 {
			return errors.New("currency rewards need a positive amount")
		}
		if def.ItemID != 0 || def.Quantity != 0 || def.SpinCount != 0 {
			return errors.New("currency rewards must not set item or spin fields")
		}
	case domain.RewardItem:
		if def.ItemID <= 0 {
			return errors.New("item rewards need an item_id")
		}
		if def.Quantity <= 0 {
			return errors.New("item rewards need a positive quantity")
		}
		if def.CurrencyKind != "" || def.Amount != 0 || def.SpinCount != 0 {
			return errors.New("item rewards must not set currency or spin fields")
		}
	case domain.RewardSpins:
		if def.SpinCount <= 0 {
			return errors.New("spin rewards need a positive spin_count")
		}
		if def.CurrencyKind != "" || def.Amount != 0 || def.ItemID != 0 || def.Quantity != 0 {
			return errors.New("spin rewards must not set currency or item fields")
		}
	default:
		return errors.New("reward_kind must be currency, item or spins")
	}

	return nil
}
