package repository

import (
	"context"
	"errors"

	"b2bcart/internal/domain/model"
)

var (
	ErrNotFound = errors.New("not found")

	//ユニーク制約違反（同時作成の競合）
	ErrDuplicate = errors.New("duplicate")
)

type CartRepository interface {
	FindByID(ctx context.Context, cartID int64) (model.Cart, error)

	//取引先のOPEN/CHECKOUTカートを行ロック付きで1件取得
	FindActiveByClientIDForUpdate(ctx context.Context, clientID int64) (model.Cart, error)

	Create(ctx context.Context, cart model.Cart) (model.Cart, error)

	//現在のステータスがfromの行だけtoへ更新する。
	//一致する行が無ければErrNotFound（状態遷移の競合ガード）。
	UpdateStatus(ctx context.Context, cartID int64, from model.CartStatus, to model.CartStatus) error
}
