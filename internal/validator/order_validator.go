package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"shop/internal/usecase"
)

var (
	// 入力が不正
	ErrInvalidEmail = errors.New("invalid customer email")

	ErrNameRequired = errors.New("customer name required")

	ErrNoItems = errors.New("at least one item required")
)

type orderValidator struct{}

// Usecaseは interface を依存注入
func NewOrderValidator() usecase.OrderValidator {
	return &orderValidator{}
}

// 注文作成の入力を検証（業務ロジックより前に弾く）
func (v *orderValidator) ValidateCreateOrder(in usecase.CreateOrderInput) error {
	email := strings.TrimSpace(in.CustomerEmail)

	// 必須チェック
	if email == "" || !isEmailLike(email) {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return ErrNameRequired
	}
	if len(in.Items) == 0 {
		return ErrNoItems
	}

	for _, item := range in.Items {
		if item.ProductID <= 0 {
			return fmt.Errorf("invalid product id: %d", item.ProductID)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("quantity must be >= 1 for product %d", item.ProductID)
		}
	}

	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	re := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	return re.MatchString(s)
}
