package model

// 商品マスタ。変更しない参照データ。
type Product struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	//外部商品コード（EAN）。重複不可
	EAN string `gorm:"type:varchar(50);not null;uniqueIndex" json:"ean"`

	Name string `gorm:"type:varchar(200);not null" json:"name"`

	//1ケースあたりの入数
	ItemsPerBox int64 `gorm:"not null" json:"items_per_box"`
}
