package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shop/internal/usecase"
)

// product-serviceをHTTPで呼ぶクライアント
type ProductHTTPClient struct {
	baseURL string
	http    *http.Client
}

// DI
func NewProductHTTPClient(baseURL string) *ProductHTTPClient {
	return &ProductHTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type availabilityCheckRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// POST /api/products/check-availability を1明細ごとに呼ぶ。
// 通信エラー・非200はerrorで返し、usecase側で「在庫なし」に変換する。
func (c *ProductHTTPClient) CheckAvailability(ctx context.Context, productID int64, quantity int64) (usecase.AvailabilityResult, error) {
	body, err := json.Marshal(availabilityCheckRequest{
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		return usecase.AvailabilityResult{}, err
	}

	url := c.baseURL + "/api/products/check-availability"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return usecase.AvailabilityResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return usecase.AvailabilityResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return usecase.AvailabilityResult{}, fmt.Errorf("product service returned %d", resp.StatusCode)
	}

	var out usecase.AvailabilityResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return usecase.AvailabilityResult{}, err
	}
	return out, nil
}
