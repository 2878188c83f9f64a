package usecase

import (
	"errors"
	"fmt"
	"net/http"

	"b2bcart/internal/domain/model"
)

// 業務ルール違反の種別。レスポンスのerrorフィールドにそのまま出す。
type ErrorKind string

const (
	KindCartAlreadyExists           ErrorKind = "CartAlreadyExists"
	KindCartNotFound                ErrorKind = "CartNotFound"
	KindCartIsEmpty                 ErrorKind = "CartIsEmpty"
	KindInvalidCartState            ErrorKind = "InvalidCartState"
	KindCartItemNotFound            ErrorKind = "CartItemNotFound"
	KindCartItemDoesNotBelongToCart ErrorKind = "CartItemDoesNotBelongToCart"
	KindOfferNotFound               ErrorKind = "OfferNotFound"
	KindOfferDoesNotBelongToClient  ErrorKind = "OfferDoesNotBelongToClient"
	KindExpiredOffer                ErrorKind = "ExpiredOffer"
)

// 業務エラー。種別＋HTTPステータス＋詳細メッセージ。
type BusinessError struct {
	Kind   ErrorKind
	Status int
	Detail string
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func AsBusinessError(err error) (*BusinessError, bool) {
	var be *BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

func ErrCartAlreadyExists() error {
	return &BusinessError{
		Kind:   KindCartAlreadyExists,
		Status: http.StatusBadRequest,
		Detail: "customer already has an open shopping cart",
	}
}

func ErrCartNotFound(cartID int64) error {
	return &BusinessError{
		Kind:   KindCartNotFound,
		Status: http.StatusNotFound,
		Detail: fmt.Sprintf("cart with id %d not found", cartID),
	}
}

func ErrCartIsEmpty() error {
	return &BusinessError{
		Kind:   KindCartIsEmpty,
		Status: http.StatusBadRequest,
		Detail: "it is not possible to proceed with an empty cart",
	}
}

func ErrInvalidCartState(status model.CartStatus) error {
	return &BusinessError{
		Kind:   KindInvalidCartState,
		Status: http.StatusBadRequest,
		Detail: fmt.Sprintf("cart is in '%s' state and cannot be modified", status),
	}
}

func ErrCartItemNotFound(cartItemID int64) error {
	return &BusinessError{
		Kind:   KindCartItemNotFound,
		Status: http.StatusNotFound,
		Detail: fmt.Sprintf("cart item with id %d does not exist", cartItemID),
	}
}

func ErrCartItemDoesNotBelongToCart() error {
	return &BusinessError{
		Kind:   KindCartItemDoesNotBelongToCart,
		Status: http.StatusForbidden,
		Detail: "the specified item does not belong to this cart",
	}
}

func ErrOfferNotFound(offerID int64) error {
	return &BusinessError{
		Kind:   KindOfferNotFound,
		Status: http.StatusNotFound,
		Detail: fmt.Sprintf("offer with id %d not found", offerID),
	}
}

func ErrOfferDoesNotBelongToClient() error {
	return &BusinessError{
		Kind:   KindOfferDoesNotBelongToClient,
		Status: http.StatusForbidden,
		Detail: "the offer does not belong to the customer of this cart",
	}
}

func ErrExpiredOffer() error {
	return &BusinessError{
		Kind:   KindExpiredOffer,
		Status: http.StatusBadRequest,
		Detail: "the offer has expired",
	}
}
