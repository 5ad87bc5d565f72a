package router

import (
	"gamePassAPI/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupGamePassRoutes(api *echo.Group, handler *rest.GamePassHandler, authRequired echo.MiddlewareFunc) {
	gamePass := api.Group("/gamepass", authRequired)

	gamePass.GET("/status", handler.Status)
	gamePass.POST("/claim", handler.Claim)
}

func SetupCatalogAdminRoutes(api *echo.Group, handler *rest.CatalogAdminHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	rewards := api.Group("/admin/gamepass/rewards", authRequired, adminOnly)

	rewards.GET("", handler.ListDefinitions)
	rewards.PUT("", handler.UpsertDefinition)
	rewards.DELETE("", handler.DeleteDefinition)
}

func SetupSettingsAdminRoutes(api *echo.Group, handler *rest.SettingsAdminHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	settings := api.Group("/admin/gamepass/settings", authRequired, adminOnly)

	settings.GET("", handler.GetSettings)
	settings.PUT("", handler.UpdateSettings)
}
