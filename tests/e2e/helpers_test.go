package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

func newClient(t *testing.T, envKey string, def string) *TestClient {
	t.Helper()

	baseURL := os.Getenv(envKey)
	if baseURL == "" {
		baseURL = def
	}

	return &TestClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// product-service（default :8081）
func NewProductClient(t *testing.T) *TestClient {
	return newClient(t, "PRODUCT_BASE_URL", "http://localhost:8081")
}

// order-service（default :8080）
func NewOrderClient(t *testing.T) *TestClient {
	return newClient(t, "ORDER_BASE_URL", "http://localhost:8080")
}

// サービスが起動していなければskip
func (c *TestClient) RequireUp(t *testing.T, probePath string) {
	t.Helper()

	resp, err := c.HTTP.Get(c.BaseURL + probePath)
	if err != nil {
		t.Skipf("service not reachable at %s: %v", c.BaseURL, err)
	}
	resp.Body.Close()
}

// JSONリクエストを送り、ステータスとデコード済みボディを返す
func (c *TestClient) DoJSON(t *testing.T, method string, path string, body interface{}, out interface{}) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request failed: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		t.Fatalf("new request failed: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body failed: %v", err)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("decode body failed: %v (body=%s)", err, string(raw))
		}
	}

	return resp.StatusCode
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ProductDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Stock       int64  `json:"stock"`
}

type AvailabilityDTO struct {
	ProductID         int64  `json:"productId"`
	ProductName       string `json:"productName"`
	Available         bool   `json:"available"`
	RequestedQuantity int64  `json:"requestedQuantity"`
	AvailableStock    int64  `json:"availableStock"`
	UnitPrice         *int64 `json:"unitPrice"`
	Message           string `json:"message"`
}

type OrderItemDTO struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int64  `json:"quantity"`
	LineTotal   int64  `json:"lineTotal"`
}

type OrderDTO struct {
	ID            int64          `json:"id"`
	CustomerEmail string         `json:"customerEmail"`
	CustomerName  string         `json:"customerName"`
	Status        string         `json:"status"`
	TotalAmount   int64          `json:"totalAmount"`
	Items         []OrderItemDTO `json:"items"`
}

// テスト用の商品を作る
func createProduct(t *testing.T, c *TestClient, name string, price int64, stock int64) ProductDTO {
	t.Helper()

	var created ProductDTO
	status := c.DoJSON(t, http.MethodPost, "/api/products", map[string]interface{}{
		"name":        name,
		"description": "e2e test product",
		"price":       price,
		"stock":       stock,
	}, &created)
	if status != http.StatusCreated {
		t.Fatalf("create product: status = %d", status)
	}
	return created
}
