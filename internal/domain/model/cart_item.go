package model

import "github.com/shopspring/decimal"

// カートの明細。(cart_id, offer_id) は重複不可で、
// 同じオファーの追加は数量加算になる。
type CartItem struct {
	ID       int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID   int64 `gorm:"not null;index;uniqueIndex:uq_cart_offer" json:"cart_id"`
	OfferID  int64 `gorm:"not null;index;uniqueIndex:uq_cart_offer" json:"offer_id"`
	Quantity int64 `gorm:"not null" json:"quantity"`

	//追加時点の単価（その後のオファー価格変更の影響を受けない）
	UnitPriceSnapshot decimal.Decimal `gorm:"type:numeric(10,2);not null;column:unit_price_snapshot" json:"unit_price_snapshot"`
}
