package model

import "time"

// 注文時点の商品情報スナップショット。商品が後から変更・削除されても明細は変わらない。
type OrderItem struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID             int64     `gorm:"not null;index" json:"orderId"`
	ProductID           int64     `gorm:"not null;index" json:"productId"`
	ProductNameSnapshot string    `gorm:"type:varchar(255);not null" json:"productName"`
	UnitPriceSnapshot   int64     `gorm:"not null" json:"unitPrice"`
	Quantity            int64     `gorm:"not null" json:"quantity"`
	CreatedAt           time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}

// 明細の小計
func (i OrderItem) LineTotal() int64 {
	return i.UnitPriceSnapshot * i.Quantity
}
