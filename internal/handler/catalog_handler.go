package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"b2bcart/internal/usecase"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// 業務エラーは種別＋詳細で返す。それ以外は500。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if be, ok := usecase.AsBusinessError(err); ok {
		return c.JSON(be.Status, ErrorResponse{Error: string(be.Kind), Detail: be.Detail})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "InternalError", Detail: "internal error"})
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}

// /catalogの公開API
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// /catalog配下のルートを登録
func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/catalog")

	g.GET("/products", h.listProducts)
	g.GET("/customers", h.listCustomers)
	g.GET("/client/offers/:client_id", h.listCustomerOffers)
}

func (h *CatalogHandler) listProducts(c echo.Context) error {
	out, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) listCustomers(c echo.Context) error {
	out, err := h.uc.ListCustomers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) listCustomerOffers(c echo.Context) error {
	clientID, err := parseID(c.Param("client_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "BadRequest", Detail: "invalid client_id"})
	}

	out, err := h.uc.ListCustomerOffers(c.Request().Context(), clientID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
