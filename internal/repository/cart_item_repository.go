package repository

import (
	"context"

	"b2bcart/internal/domain/model"
)

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)

	//同一(cart, offer)の既存明細を行ロック付きで取得
	FindByCartAndOfferForUpdate(ctx context.Context, cartID int64, offerID int64) (model.CartItem, error)

	Create(ctx context.Context, item model.CartItem) (model.CartItem, error)
	// 既存明細に数量をプラス
	AddQuantity(ctx context.Context, cartItemID int64, addQty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error
}
