package rest

import (
	"context"
	"net/http"

	"gamePassAPI/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	SettingsAdminHandler struct {
		validate     *validator.Validate
		settingsRepo SettingsAdminRepository
	}

	SettingsAdminRepository interface {
		ZenCostPerDay(ctx context.Context) (int64, error)
		UpsertSetting(ctx context.Context, key string, value int64) error
	}

	ZenCostInput struct {
		ZenCostPerDay int64 `json:"zen_cost_per_day" validate:"required,min=0"`
	}
)

func NewSettingsAdminHandler(settingsRepo SettingsAdminRepository) *SettingsAdminHandler {
	return &SettingsAdminHandler{
		validate:     validator.New(),
		settingsRepo: settingsRepo,
	}
}

// GET /api/v1/admin/gamepass/settings
func (h *SettingsAdminHandler) GetSettings(c echo.Context) error {
	perDay, err := h.settingsRepo.ZenCostPerDay(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(echo.Map{
		"zen_cost_per_day": perDay,
	}))
}

// PUT /api/v1/admin/gamepass/settings
// body: { "zen_cost_per_day": 100000 }
func (h *SettingsAdminHandler) UpdateSettings(c echo.Context) error {
	var req ZenCostInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.settingsRepo.UpsertSetting(c.Request().Context(), domain.SettingZenCostPerDay, req.ZenCostPerDay); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("settings saved"))
}
