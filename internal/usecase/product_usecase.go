package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

type ProductInput struct {
	Name        string
	Description string
	Price       int64
	Stock       int64
}

func validateProductInput(in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price <= 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be > 0")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	return nil
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in ProductInput) (model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	now := time.Now()
	p, err := u.productRepo.Create(ctx, model.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

// 全項目上書き更新
func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID int64, in ProductInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	err := u.productRepo.Update(ctx, model.Product{
		ID:          productID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
	})
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) DeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.productRepo.Delete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type AvailabilityInput struct {
	ProductID int64
	Quantity  int64
}

type AvailabilityOutput struct {
	ProductID         int64  `json:"productId"`
	ProductName       string `json:"productName"`
	Available         bool   `json:"available"`
	RequestedQuantity int64  `json:"requestedQuantity"`
	AvailableStock    int64  `json:"availableStock"`
	UnitPrice         *int64 `json:"unitPrice"`
	Message           string `json:"message"`
}

// 在庫確認（読み取りのみ。在庫は減らさない）
func (u *ProductUsecase) CheckAvailability(ctx context.Context, in AvailabilityInput) (AvailabilityOutput, error) {
	if in.ProductID <= 0 {
		return AvailabilityOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if in.Quantity < 1 {
		return AvailabilityOutput{}, NewHTTPError(http.StatusBadRequest, "quantity must be >= 1")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		// 商品が存在しない場合も200で返す（availableがfalse）
		return AvailabilityOutput{
			ProductID:         in.ProductID,
			Available:         false,
			RequestedQuantity: in.Quantity,
			AvailableStock:    0,
			Message:           "product not found",
		}, nil
	}
	if err != nil {
		return AvailabilityOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := AvailabilityOutput{
		ProductID:         p.ID,
		ProductName:       p.Name,
		Available:         p.Stock >= in.Quantity,
		RequestedQuantity: in.Quantity,
		AvailableStock:    p.Stock,
		UnitPrice:         &p.Price,
	}
	if out.Available {
		out.Message = "product available"
	} else {
		out.Message = fmt.Sprintf("insufficient stock, available: %d", p.Stock)
	}
	return out, nil
}

// 在庫減算（足りないなら false）。注文フローからは呼ばれない。
func (u *ProductUsecase) ReduceStock(ctx context.Context, productID int64, qty int64) (bool, error) {
	if productID <= 0 {
		return false, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if qty < 1 {
		return false, NewHTTPError(http.StatusBadRequest, "quantity must be >= 1")
	}

	ok, err := u.productRepo.ReduceStockIfEnough(ctx, productID, qty)
	if err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ok, nil
}
