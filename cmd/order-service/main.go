package main

import (
	"shop/internal/config"
	"shop/internal/domain/model"
	"shop/internal/handler"
	"shop/internal/infra/client"
	"shop/internal/infra/db"
	infraRepo "shop/internal/infra/repository"
	"shop/internal/server"
	"shop/internal/usecase"
	"shop/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	// .envは無ければそのまま進む
	_ = godotenv.Load()

	cfg := config.Load("8080")

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)

	//product-serviceクライアント
	productClient := client.NewProductHTTPClient(cfg.ProductServiceURL)

	//Usecase生成
	orderUC := usecase.NewOrderUsecase(orderRepo, productClient, validator.NewOrderValidator())

	//Handler生成
	orderH := handler.NewOrderHandler(orderUC)

	//Server起動
	e := server.New()
	orderH.RegisterRoutes(e)

	if err := e.Start(cfg.Addr()); err != nil {
		e.Logger.Fatal(err)
	}
}
