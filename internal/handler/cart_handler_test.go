package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"b2bcart/internal/handler"
	repo "b2bcart/internal/repository"
	"b2bcart/internal/usecase"
)

// WithinTxを一切実行せず固定エラーだけ返すスタブ。
// 境界層バリデーションのテストではfnは呼ばれないまま終わる。
type errTxManager struct{ err error }

func (s errTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return s.err
}

func newCartEcho(txErr error) *echo.Echo {
	uc := usecase.NewCartUsecase(errTxManager{err: txErr}, usecase.RealClock{})
	e := echo.New()
	handler.NewCartHandler(uc).RegisterRoutes(e)
	return e
}

func doRequest(e *echo.Echo, method string, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCartHandler_CreateCart_InvalidClientID(t *testing.T) {
	e := newCartEcho(nil)

	rec := doRequest(e, http.MethodPost, "/api/v1/cart/create-cart/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/v1/cart/create-cart/0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_AddOffer_QuantityMustBePositive(t *testing.T) {
	e := newCartEcho(nil)

	//数量0と負数はユースケースに届く前に弾かれる
	rec := doRequest(e, http.MethodPost, "/api/v1/cart/10/items", `{"offer_id":5,"quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/v1/cart/10/items", `{"offer_id":5,"quantity":-3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handler.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "quantity must be greater than zero", resp.Detail)
}

func TestCartHandler_AddOffer_InvalidOfferID(t *testing.T) {
	e := newCartEcho(nil)

	rec := doRequest(e, http.MethodPost, "/api/v1/cart/10/items", `{"offer_id":0,"quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_BusinessErrorIsMappedToKindAndStatus(t *testing.T) {
	e := newCartEcho(usecase.ErrCartAlreadyExists())

	rec := doRequest(e, http.MethodPost, "/api/v1/cart/create-cart/5", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp handler.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "CartAlreadyExists", resp.Error)
	assert.NotEmpty(t, resp.Detail)
}

func TestCartHandler_UnknownErrorBecomes500(t *testing.T) {
	e := newCartEcho(assert.AnError)

	rec := doRequest(e, http.MethodPost, "/api/v1/cart/create-cart/5", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp handler.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "InternalError", resp.Error)
}
