package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"b2bcart/internal/handler"
)

// RegisterRoutes は全ハンドラのルートを登録する。
func RegisterRoutes(
	e *echo.Echo,
	cartH *handler.CartHandler,
	checkoutH *handler.CheckoutHandler,
	catalogH *handler.CatalogHandler,
) {
	e.GET("/", root)
	e.GET("/health", health)

	cartH.RegisterRoutes(e)
	checkoutH.RegisterRoutes(e)
	catalogH.RegisterRoutes(e)
}

func root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"name":    "b2bcart API",
		"version": "1.0.0",
	})
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
