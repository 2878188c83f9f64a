package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"b2bcart/internal/usecase"
)

// /checkoutのHTTP
type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// /checkout配下のルートを登録
func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/checkout")

	g.POST("/:cart_id", h.startCheckout)
	g.POST("/payment/:cart_id", h.finalizePayment)
}

func (h *CheckoutHandler) startCheckout(c echo.Context) error {
	cartID, err := parseID(c.Param("cart_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "BadRequest", Detail: "invalid cart_id"})
	}

	out, err := h.uc.StartCheckout(c.Request().Context(), cartID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CheckoutHandler) finalizePayment(c echo.Context) error {
	cartID, err := parseID(c.Param("cart_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "BadRequest", Detail: "invalid cart_id"})
	}

	out, err := h.uc.FinalizePayment(c.Request().Context(), cartID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
