package repository

import (
	"context"

	"shop/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]model.Order, error)

	// 注文と明細を同一トランザクションで作成し、採番されたIDを返す
	Create(ctx context.Context, order model.Order, items []model.OrderItem) (int64, error)

	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	ListItemsByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}
