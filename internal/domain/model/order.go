package model

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// statusの許容値チェック（大文字小文字は区別しない）
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case OrderStatusPending:
		return OrderStatusPending, true
	case OrderStatusConfirmed:
		return OrderStatusConfirmed, true
	case OrderStatusProcessing:
		return OrderStatusProcessing, true
	case OrderStatusShipped:
		return OrderStatusShipped, true
	case OrderStatusDelivered:
		return OrderStatusDelivered, true
	case OrderStatusCancelled:
		return OrderStatusCancelled, true
	default:
		return "", false
	}
}

type Order struct {
	ID            int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerEmail string      `gorm:"type:varchar(255);not null;index" json:"customerEmail"`
	CustomerName  string      `gorm:"type:varchar(255);not null" json:"customerName"`
	Status        OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalAmount   int64       `gorm:"not null" json:"totalAmount"`
	CreatedAt     time.Time   `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time   `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
