package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

// 到達可能なステータスはPAIDのみ。
const PaymentStatusPaid PaymentStatus = "PAID"

// 支払い記録。カートがPAIDになった時点で1件だけ作成され、以後不変。
type Payment struct {
	ID     int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID int64         `gorm:"not null;index" json:"cart_id"`
	Status PaymentStatus `gorm:"type:varchar(20);not null" json:"status"`

	//注文合計（小数2桁固定）
	Amount decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}
