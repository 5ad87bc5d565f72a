package rest

import (
	"net/http"
	"strconv"

	"gamePassAPI/business/catalog"
	"gamePassAPI/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	CatalogAdminHandler struct {
		validate       *validator.Validate
		catalogService *catalog.CatalogService
	}

	RewardDefinitionInput struct {
		Day          int    `json:"day" validate:"required,min=1,max=30"`
		Tier         string `json:"tier" validate:"required,oneof=free elite gold"`
		RewardKind   string `json:"reward_kind" validate:"required,oneof=currency item spins"`
		CurrencyKind string `json:"currency_kind" validate:"omitempty,oneof=coins zen exp"`
		Amount       int64  `json:"amount"`
		ItemID       int64  `json:"item_id"`
		Quantity     int    `json:"quantity"`
		SpinCount    int    `json:"spin_count"`
	}
)

func NewCatalogAdminHandler(catalogService *catalog.CatalogService) *CatalogAdminHandler {
	return &CatalogAdminHandler{
		validate:       validator.New(),
		catalogService: catalogService,
	}
}

// GET /api/v1/admin/gamepass/rewards
func (h *CatalogAdminHandler) ListDefinitions(c echo.Context) error {
	defs, err := h.catalogService.ListDefinitions(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(defs))
}

// PUT /api/v1/admin/gamepass/rewards
// body: RewardDefinitionInput JSON
func (h *CatalogAdminHandler) UpsertDefinition(c echo.Context) error {
	var req RewardDefinitionInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	def := domain.RewardDefinition{
		Day:          req.Day,
		Tier:         domain.PassTier(req.Tier),
		RewardKind:   domain.RewardKind(req.RewardKind),
		CurrencyKind: domain.CurrencyKind(req.CurrencyKind),
		Amount:       req.Amount,
		ItemID:       req.ItemID,
		Quantity:     req.Quantity,
		SpinCount:    req.SpinCount,
	}

	if err := h.catalogService.UpsertDefinition(c.Request().Context(), def); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("reward definition saved"))
}

// DELETE /api/v1/admin/gamepass/rewards?day=8&tier=free
func (h *CatalogAdminHandler) DeleteDefinition(c echo.Context) error {
	day, err := strconv.Atoi(c.QueryParam("day"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid day"})
	}

	tier, ok := domain.ParseTier(c.QueryParam("tier"))
	if !ok {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid tier"})
	}

	if err := h.catalogService.DeleteDefinition(c.Request().Context(), day, tier); err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("reward definition deleted"))
}
