package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 取引先ごとの価格オファー。作成後は読み取り専用。
// 1つのオファーは必ず1つの取引先に属する。
type Offer struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID  int64 `gorm:"not null;index" json:"client_id"`
	ProductID int64 `gorm:"not null;index" json:"product_id"`

	//単価（小数2桁固定）
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price"`

	//有効期限（日付のみ、当日までは有効）
	ValidUntil time.Time `gorm:"type:date;not null;index" json:"valid_until"`
}
