package gamepass

import (
	"context"
	"errors"
	"time"

	"gamePassAPI/domain"
	"gamePassAPI/pkg/logger"

	"github.com/google/uuid"
)

// ClaimLedger is the append-only record of successful claims. Record
// insertion must fail with ErrAlreadyClaimed on a duplicate
// (user, day, tier); that constraint, not the HasClaimed fast path, is
// what holds under concurrent duplicate requests.
type ClaimLedger interface {
	HasClaimed(ctx context.Context, userID uint, day int, tier domain.PassTier) (bool, error)
	ClaimedDays(ctx context.Context, userID uint) (domain.ClaimedDays, error)
	// ExecuteClaim runs the whole claim as one transaction: conditional
	// zen debit, ledger insert, reward application. deliver (when non
	// nil) is invoked inside the transaction; its failure rolls back
	// every effect.
	ExecuteClaim(ctx context.Context, rec *domain.ClaimRecord, reward domain.RewardPayload, deliver func(context.Context) error) error
}

type WalletRepository interface {
	Get(ctx context.Context, userID uint) (domain.Wallet, error)
}

type EntitlementRepository interface {
	GetActive(ctx context.Context, userID uint) (domain.UserPassEntitlement, bool, error)
}

type CatalogReader interface {
	GetDefinition(ctx context.Context, day int, tier domain.PassTier) (domain.RewardDefinition, bool, error)
}

type SettingsRepository interface {
	ZenCostPerDay(ctx context.Context) (int64, error)
}

// ItemDeliverer enqueues in-game mail for the selected character. The
// engine needs its success/failure signal to decide whether the claim
// commits.
type ItemDeliverer interface {
	DeliverItem(ctx context.Context, characterID uint, itemID int64, quantity int, refID string) error
}

type ClaimInput struct {
	Day         int
	Tier        domain.PassTier
	PayWithZen  bool
	CharacterID uint
}

var (
	ErrInvalidDay        = errors.New("day must be between 1 and 30")
	ErrInvalidTier       = errors.New("invalid pass tier")
	ErrCharacterRequired = errors.New("character_id is required for item rewards")
)

type Service struct {
	ledger       ClaimLedger
	wallets      WalletRepository
	entitlements EntitlementRepository
	catalog      CatalogReader
	settings     SettingsRepository
	deliverer    ItemDeliverer
	now          func() time.Time
}

func NewService(
	ledger ClaimLedger,
	wallets WalletRepository,
	entitlements EntitlementRepository,
	catalog CatalogReader,
	settings SettingsRepository,
	deliverer ItemDeliverer,
) *Service {
	return &Service{
		ledger:       ledger,
		wallets:      wallets,
		entitlements: entitlements,
		catalog:      catalog,
		settings:     settings,
		deliverer:    deliverer,
		now:          time.Now,
	}
}

// Status re-derives everything server-side for one request. Nothing in
// the snapshot is cached across requests.
func (s *Service) Status(ctx context.Context, userID uint) (domain.PassStatus, error) {
	now := s.now()
	season := CurrentSeason(now)

	claimed, err := s.ledger.ClaimedDays(ctx, userID)
	if err != nil {
		logger.Error("Failed to load claimed days", err)
		return domain.PassStatus{}, err
	}

	wallet, err := s.wallets.Get(ctx, userID)
	if err != nil {
		logger.Error("Failed to load wallet", err)
		return domain.PassStatus{}, err
	}

	perDay, err := s.settings.ZenCostPerDay(ctx)
	if err != nil {
		logger.Error("Failed to load zen cost setting", err)
		return domain.PassStatus{}, err
	}

	effective, err := s.effectiveTier(ctx, userID, now)
	if err != nil {
		return domain.PassStatus{}, err
	}

	return domain.PassStatus{
		CurrentDay:    CurrentDay(now, season),
		SeasonEndsAt:  season.EndsAt(),
		EffectiveTier: effective,
		ClaimedDays:   claimed,
		ZenBalance:    wallet.Zen,
		ZenCostPerDay: perDay,
	}, nil
}

// Claim is the single state transition Unclaimed -> Claimed for one
// (user, day, tier). At most one concurrent caller ever commits it.
func (s *Service) Claim(ctx context.Context, userID uint, in ClaimInput) (domain.ClaimOutcome, error) {
	if in.Day < 1 || in.Day > SeasonLengthDays {
		return domain.ClaimOutcome{}, ErrInvalidDay
	}
	if !in.Tier.Valid() {
		return domain.ClaimOutcome{}, ErrInvalidTier
	}

	now := s.now()
	currentDay := CurrentDay(now, CurrentSeason(now))

	// Fast path; the ledger constraint is the real guarantee.
	claimed, err := s.ledger.HasClaimed(ctx, userID, in.Day, in.Tier)
	if err != nil {
		logger.Error("Failed to check claim ledger", err)
		return domain.ClaimOutcome{}, err
	}
	if claimed {
		return s.alreadyClaimed(in), nil
	}

	effective, err := s.effectiveTier(ctx, userID, now)
	if err != nil {
		return domain.ClaimOutcome{}, err
	}
	if !effective.Covers(in.Tier) {
		return domain.ClaimOutcome{}, ErrTierNotEntitled
	}

	var zenCost int64
	if in.Day > currentDay {
		if in.Tier != domain.TierFree {
			// Paid tracks are never claimable ahead of schedule.
			return domain.ClaimOutcome{}, ErrDayNotYetReachable
		}

		perDay, err := s.settings.ZenCostPerDay(ctx)
		if err != nil {
			logger.Error("Failed to load zen cost setting", err)
			return domain.ClaimOutcome{}, err
		}
		zenCost = SkipAheadCost(in.Day, currentDay, perDay)

		if !in.PayWithZen {
			return domain.ClaimOutcome{}, &ConfirmationRequiredError{Day: in.Day, ZenCost: zenCost}
		}

		wallet, err := s.wallets.Get(ctx, userID)
		if err != nil {
			logger.Error("Failed to load wallet", err)
			return domain.ClaimOutcome{}, err
		}
		if wallet.Zen < zenCost {
			return domain.ClaimOutcome{}, ErrInsufficientZen
		}
	}

	def, ok, err := s.catalog.GetDefinition(ctx, in.Day, in.Tier)
	if err != nil {
		logger.Error("Failed to load reward definition", err)
		return domain.ClaimOutcome{}, err
	}
	if !ok {
		// Configuration fault, not a user error.
		logger.Error("Reward catalog has no entry", "day", in.Day, "tier", string(in.Tier))
		return domain.ClaimOutcome{}, ErrCatalogMissing
	}

	reward := def.Payload()
	if reward.Kind == domain.RewardItem && in.CharacterID == 0 {
		return domain.ClaimOutcome{}, ErrCharacterRequired
	}

	rec := domain.ClaimRecord{
		UserID:    userID,
		Day:       in.Day,
		Tier:      in.Tier,
		ZenSpent:  zenCost,
		ClaimedAt: now,
	}

	var deliver func(context.Context) error
	if reward.Kind == domain.RewardItem {
		rec.DeliveryRef = uuid.NewString()
		deliver = func(ctx context.Context) error {
			return s.deliverer.DeliverItem(ctx, in.CharacterID, reward.ItemID, reward.Quantity, rec.DeliveryRef)
		}
	}

	if err := s.ledger.ExecuteClaim(ctx, &rec, reward, deliver); err != nil {
		switch {
		case errors.Is(err, ErrAlreadyClaimed):
			// Lost the race to a duplicate request; same stable outcome
			// as the fast path.
			return s.alreadyClaimed(in), nil
		case errors.Is(err, ErrInsufficientZen):
			return domain.ClaimOutcome{}, ErrInsufficientZen
		case errors.Is(err, ErrDeliveryFailed):
			logger.Warn("Claim rolled back after delivery failure", "user_id", userID, "day", in.Day)
			return domain.ClaimOutcome{}, err
		default:
			logger.Error("Claim transaction failed", err)
			return domain.ClaimOutcome{}, err
		}
	}

	return domain.ClaimOutcome{
		Day:      in.Day,
		Tier:     in.Tier,
		Reward:   reward,
		ZenSpent: rec.ZenSpent,
	}, nil
}

func (s *Service) alreadyClaimed(in ClaimInput) domain.ClaimOutcome {
	return domain.ClaimOutcome{
		Day:            in.Day,
		Tier:           in.Tier,
		AlreadyClaimed: true,
	}
}

func (s *Service) effectiveTier(ctx context.Context, userID uint, now time.Time) (domain.PassTier, error) {
	ent, ok, err := s.entitlements.GetActive(ctx, userID)
	if err != nil {
		logger.Error("Failed to load entitlement", err)
		return domain.TierFree, err
	}
	if !ok {
		return domain.TierFree, nil
	}
	return EffectiveTier(ent, now), nil
}
