package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gamePassAPI/business/gamepass"
	"gamePassAPI/domain"
	"gamePassAPI/pkg/logger"
	"gamePassAPI/pkg/metrics"

	jsonres "gamePassAPI/pkg/response"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	GamePassHandler struct {
		validate        *validator.Validate
		gamePassService GamePassService
	}

	GamePassService interface {
		Status(ctx context.Context, userID uint) (domain.PassStatus, error)
		Claim(ctx context.Context, userID uint, in gamepass.ClaimInput) (domain.ClaimOutcome, error)
	}

	ClaimRequest struct {
		Day         int    `json:"day" validate:"required,min=1,max=30"`
		Tier        string `json:"tier" validate:"required,oneof=free elite gold"`
		PayWithZen  bool   `json:"pay_with_zen"`
		CharacterID uint   `json:"character_id"`
	}
)

func NewGamePassHandler(svc GamePassService) *GamePassHandler {
	return &GamePassHandler{
		validate:        validator.New(),
		gamePassService: svc,
	}
}

// GET /api/v1/gamepass/status
func (h *GamePassHandler) Status(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	status, err := h.gamePassService.Status(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to build game pass status", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to load game pass status"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(status))
}

// POST /api/v1/gamepass/claim
// body: { "day": 8, "tier": "free", "pay_with_zen": true, "character_id": 42 }
func (h *GamePassHandler) Claim(c echo.Context) error {
	timer := time.Now()
	defer func() {
		metrics.ClaimLatency.Observe(time.Since(timer).Seconds())
	}()

	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req ClaimRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	tier, _ := domain.ParseTier(req.Tier)

	outcome, err := h.gamePassService.Claim(c.Request().Context(), userID, gamepass.ClaimInput{
		Day:         req.Day,
		Tier:        tier,
		PayWithZen:  req.PayWithZen,
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return h.claimError(c, err)
	}

	if outcome.AlreadyClaimed {
		metrics.ClaimOutcomes.WithLabelValues("already_claimed").Inc()
	} else {
		metrics.ClaimOutcomes.WithLabelValues("claimed").Inc()
		if outcome.ZenSpent > 0 {
			metrics.SkipAheadZenSpent.Add(float64(outcome.ZenSpent))
		}
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(outcome))
}

// claimError maps the typed claim taxonomy onto HTTP. Every branch here
// is an expected, caller-recoverable condition.
func (h *GamePassHandler) claimError(c echo.Context, err error) error {
	var confirm *gamepass.ConfirmationRequiredError
	if errors.As(err, &confirm) {
		metrics.ClaimOutcomes.WithLabelValues("confirmation_required").Inc()
		return c.JSON(http.StatusConflict, jsonres.Error(
			"SKIP_AHEAD_CONFIRMATION_REQUIRED",
			confirm.Error(),
			echo.Map{"day": confirm.Day, "zen_cost": confirm.ZenCost},
		))
	}

	switch {
	case errors.Is(err, gamepass.ErrTierNotEntitled):
		metrics.ClaimOutcomes.WithLabelValues("tier_not_entitled").Inc()
		return c.JSON(http.StatusForbidden, jsonres.Error("TIER_NOT_ENTITLED", err.Error(), nil))
	case errors.Is(err, gamepass.ErrDayNotYetReachable):
		metrics.ClaimOutcomes.WithLabelValues("day_not_reachable").Inc()
		return c.JSON(http.StatusUnprocessableEntity, jsonres.Error("DAY_NOT_YET_REACHABLE", err.Error(), nil))
	case errors.Is(err, gamepass.ErrInsufficientZen):
		metrics.ClaimOutcomes.WithLabelValues("insufficient_zen").Inc()
		return c.JSON(http.StatusPaymentRequired, jsonres.Error("INSUFFICIENT_ZEN", err.Error(), nil))
	case errors.Is(err, gamepass.ErrCatalogMissing):
		metrics.ClaimOutcomes.WithLabelValues("catalog_missing").Inc()
		return c.JSON(http.StatusInternalServerError, jsonres.Error("CATALOG_MISSING", "reward is not configured", nil))
	case errors.Is(err, gamepass.ErrDeliveryFailed):
		metrics.ClaimOutcomes.WithLabelValues("delivery_failed").Inc()
		return c.JSON(http.StatusBadGateway, jsonres.Error("DELIVERY_FAILED", "reward delivery failed, nothing was charged", nil))
	case errors.Is(err, gamepass.ErrInvalidDay),
		errors.Is(err, gamepass.ErrInvalidTier),
		errors.Is(err, gamepass.ErrCharacterRequired):
		return c.JSON(http.StatusBadRequest, jsonres.Error("BAD_REQUEST", err.Error(), nil))
	default:
		metrics.ClaimOutcomes.WithLabelValues("error").Inc()
		logger.Error("Claim failed", err)
		return c.JSON(http.StatusInternalServerError, jsonres.Error("INTERNAL", "failed to process claim", nil))
	}
}
