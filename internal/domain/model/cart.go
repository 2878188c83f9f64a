package model

import "time"

type CartStatus string

const (
	CartStatusOpen     CartStatus = "OPEN"
	CartStatusCheckout CartStatus = "CHECKOUT"
	CartStatusPaid     CartStatus = "PAID"
)

// 1取引先につきOPEN/CHECKOUTのカートは同時に1つまで。
// 状態遷移は OPEN -> CHECKOUT -> PAID の一方向のみ。
type Cart struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID  int64      `gorm:"not null;index" json:"client_id"`
	Status    CartStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt time.Time  `gorm:"not null;index" json:"created_at"`
}
