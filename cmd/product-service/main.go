package main

import (
	"shop/internal/config"
	"shop/internal/domain/model"
	"shop/internal/handler"
	"shop/internal/infra/db"
	infraRepo "shop/internal/infra/repository"
	"shop/internal/server"
	"shop/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	// .envは無ければそのまま進む
	_ = godotenv.Load()

	cfg := config.Load("8081")

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)

	//Handler生成
	productH := handler.NewProductHandler(productUC)

	//Server起動
	e := server.New()
	productH.RegisterRoutes(e)

	if err := e.Start(cfg.Addr()); err != nil {
		e.Logger.Fatal(err)
	}
}
