package middleware

import (
	"net/http"

	"gamePassAPI/pkg/logger"

	jsonres "gamePassAPI/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo HTTPErrorHandler. Anything reaching it is an
// infrastructure failure or a routing error; the claim taxonomy is
// handled in the rest layer and never lands here.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err, "path", c.Request().URL.Path)
	}

	_ = c.JSON(code, jsonres.Error(http.StatusText(code), message, nil))
}
