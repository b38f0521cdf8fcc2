package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

// product-serviceの在庫確認結果
type AvailabilityResult struct {
	ProductID         int64  `json:"productId"`
	ProductName       string `json:"productName"`
	Available         bool   `json:"available"`
	RequestedQuantity int64  `json:"requestedQuantity"`
	AvailableStock    int64  `json:"availableStock"`
	UnitPrice         *int64 `json:"unitPrice"`
	Message           string `json:"message"`
}

// product-serviceへの同期HTTP呼び出しを抽象化。
// 通信エラーはerrorで返し、呼び出し側が「在庫なし」として扱う。
type ProductGateway interface {
	CheckAvailability(ctx context.Context, productID int64, quantity int64) (AvailabilityResult, error)
}

// 注文作成の入力検証
type OrderValidator interface {
	ValidateCreateOrder(in CreateOrderInput) error
}

type OrderUsecase struct {
	orderRepo repo.OrderRepository
	products  ProductGateway
	validator OrderValidator
}

// DI
func NewOrderUsecase(orderRepo repo.OrderRepository, products ProductGateway, validator OrderValidator) *OrderUsecase {
	return &OrderUsecase{
		orderRepo: orderRepo,
		products:  products,
		validator: validator,
	}
}

type CreateOrderItemInput struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type CreateOrderInput struct {
	CustomerEmail string                 `json:"customerEmail"`
	CustomerName  string                 `json:"customerName"`
	Items         []CreateOrderItemInput `json:"items"`
}

type OrderItemOutput struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int64  `json:"quantity"`
	LineTotal   int64  `json:"lineTotal"`
}

type OrderOutput struct {
	ID            int64             `json:"id"`
	CustomerEmail string            `json:"customerEmail"`
	CustomerName  string            `json:"customerName"`
	Status        string            `json:"status"`
	TotalAmount   int64             `json:"totalAmount"`
	Items         []OrderItemOutput `json:"items"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// 注文作成。全明細の在庫を確認してから、注文＋明細を一括保存する。
// 1件でも在庫がなければ保存は一切行わない（all-or-nothing）。
// 在庫の減算はここでは行わない（確認のみ）。
func (u *OrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (OrderOutput, error) {
	if err := u.validator.ValidateCreateOrder(in); err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// 明細ごとに1回ずつ同期で在庫確認（入力順を保つ）
	results := make([]AvailabilityResult, 0, len(in.Items))
	for _, item := range in.Items {
		res, err := u.products.CheckAvailability(ctx, item.ProductID, item.Quantity)
		if err != nil {
			// 通信エラーは「在庫なし」と同じ扱い（リトライしない）
			res = AvailabilityResult{
				ProductID:         item.ProductID,
				Available:         false,
				RequestedQuantity: item.Quantity,
				Message:           fmt.Sprintf("product service unreachable for product %d", item.ProductID),
			}
		}
		results = append(results, res)
	}

	var unavailable []string
	for _, res := range results {
		if !res.Available || res.UnitPrice == nil {
			unavailable = append(unavailable, res.Message)
		}
	}
	if len(unavailable) > 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest,
			"products not available: "+strings.Join(unavailable, ", "))
	}

	now := time.Now()
	items := make([]model.OrderItem, 0, len(results))
	var total int64 = 0
	for _, res := range results {
		// 注文時点の商品名と単価をスナップショット
		items = append(items, model.OrderItem{
			ProductID:           res.ProductID,
			ProductNameSnapshot: res.ProductName,
			UnitPriceSnapshot:   *res.UnitPrice,
			Quantity:            res.RequestedQuantity,
			CreatedAt:           now,
		})
		total += *res.UnitPrice * res.RequestedQuantity
	}

	order := model.Order{
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),
		CustomerName:  strings.TrimSpace(in.CustomerName),
		Status:        model.OrderStatusPending,
		TotalAmount:   total,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	orderID, err := u.orderRepo.Create(ctx, order, items)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	order.ID = orderID
	return toOrderOutput(order, items), nil
}

func (u *OrderUsecase) GetOrderDetail(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.orderRepo.ListItemsByOrderID(ctx, orderID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toOrderOutput(o, items), nil
}

// emailが空なら全件
func (u *OrderUsecase) ListOrders(ctx context.Context, customerEmail string) ([]OrderOutput, error) {
	var orders []model.Order
	var err error

	if strings.TrimSpace(customerEmail) != "" {
		orders, err = u.orderRepo.ListByCustomerEmail(ctx, strings.TrimSpace(customerEmail))
	} else {
		orders, err = u.orderRepo.ListAll(ctx)
	}
	if err != nil {
		return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		items, err := u.orderRepo.ListItemsByOrderID(ctx, o.ID)
		if err != nil {
			return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		outs = append(outs, toOrderOutput(o, items))
	}
	return outs, nil
}

// 状態の上書き。遷移の妥当性チェックは行わない（任意の状態に変更できる）。
func (u *OrderUsecase) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	// 存在確認を先に行う（不在なら書き込みしない）
	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		if err == repo.ErrNotFound {
			return OrderOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
		}
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	o.Status = status
	items, err := u.orderRepo.ListItemsByOrderID(ctx, orderID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toOrderOutput(o, items), nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID:   it.ProductID,
			ProductName: it.ProductNameSnapshot,
			UnitPrice:   it.UnitPriceSnapshot,
			Quantity:    it.Quantity,
			LineTotal:   it.LineTotal(),
		})
	}

	return OrderOutput{
		ID:            o.ID,
		CustomerEmail: o.CustomerEmail,
		CustomerName:  o.CustomerName,
		Status:        string(o.Status),
		TotalAmount:   o.TotalAmount,
		Items:         outItems,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
