package model

// 取引先（B2Bの顧客店舗）。作成後は変更しない参照データ。
type Client struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(200);not null" json:"name"`

	//税務番号（CNPJ）。重複不可
	TaxID string `gorm:"type:varchar(14);not null;uniqueIndex" json:"tax_id"`

	Address string `gorm:"type:varchar(300);not null" json:"address"`
}
