package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"b2bcart/internal/usecase"
)

// /cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddOfferRequest struct {
	OfferID  int64 `json:"offer_id"`
	Quantity int64 `json:"quantity"`
}

// /cart配下のルートを登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/cart")

	g.POST("/create-cart/:client_id", h.createCart)
	g.POST("/:cart_id/items", h.addOffer)
	g.DELETE("/:cart_id/items/:cart_item_id", h.removeOffer)
}

func (h *CartHandler) createCart(c echo.Context) error {
	clientID, err := parseID(c.Param("client_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "BadRequest", Detail: "invalid client_id"})
	}

	out, err := h.uc.CreateCart(c.Request().Context(), clientID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *CartHandler) addOffer(c echo.Context) error {
	cartID, err := parseID(c.Param("cart_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "BadRequest", Detail: "invalid cart_id"})
	}

	var req AddOfferRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "BadRequest", Detail: "invalid body"})
	}
	if req.OfferID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "BadRequest", Detail: "invalid offer_id"})
	}
	//数量>0は境界層で弾く
	if req.Quantity < 1 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "BadRequest", Detail: "quantity must be greater than zero"})
	}

	out, err := h.uc.AddOfferToCart(c.Request().Context(), cartID, usecase.AddOfferInput{
		OfferID:  req.OfferID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeOffer(c echo.Context) error {
	cartID, err := parseID(c.Param("cart_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "BadRequest", Detail: "invalid cart_id"})
	}

	cartItemID, err := parseID(c.Param("cart_item_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "BadRequest", Detail: "invalid cart_item_id"})
	}

	out, err := h.uc.RemoveOfferFromCart(c.Request().Context(), cartID, cartItemID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
