package config

import "os"

// Configはサービス全体の設定
type Config struct {
	Port string // サーバーポート

	ProductServiceURL string // product-serviceのベースURL（order-serviceのみ使う）
}

// Loadは環境変数から読む。未設定はデフォルト値。
func Load(defaultPort string) Config {
	return Config{
		Port:              getenv("PORT", defaultPort),
		ProductServiceURL: getenv("PRODUCT_SERVICE_URL", "http://localhost:8081"),
	}
}

// リッスンアドレス（":8080"形式）
func (c Config) Addr() string {
	if c.Port != "" && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
