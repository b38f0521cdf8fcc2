package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New はミドルウェア設定済みのechoを返す。
func New() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// アクセスログとpanic回復
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	return e
}
