package repository

import (
	"context"
	"errors"

	"shop/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得・在庫減算）だけを約束。
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error

	// 在庫が足りるときだけ減算。1本のUPDATEで行う（read-then-write禁止）。
	ReduceStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)
}
