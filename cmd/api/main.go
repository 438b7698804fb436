package main

import (
	"log"

	"vastrakala/internal/config"
	"vastrakala/internal/handler"
	"vastrakala/internal/infra/db"
	infraRepo "vastrakala/internal/infra/repository"
	"vastrakala/internal/server"
	"vastrakala/internal/session"
	"vastrakala/internal/usecase"
	auth "vastrakala/internal/usecase/auth_usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	//初回起動でスキーマ作成＋サンプル商品投入
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}
	if err := db.SeedProducts(gormDB); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//セッション（カートとログイン状態を持つ）
	store := session.NewCookieStore(cfg.SessionSecret)
	sm := session.NewManager()

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, hasher)
	loginUC := auth.NewLoginUsecase(userRepo, verifier)
	catalogUC := usecase.NewCatalogUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(txManager)

	//Handler生成
	handlers := server.Handlers{
		Auth:         handler.NewAuthHandler(registerUC, loginUC, sm),
		Product:      handler.NewProductHandler(catalogUC),
		Cart:         handler.NewCartHandler(cartUC, sm),
		Order:        handler.NewOrderHandler(orderUC, sm),
		AdminProduct: handler.NewAdminProductHandler(catalogUC, sm),
	}

	//Server起動
	addr := ":" + cfg.Port

	if err := server.Start(addr, store, handlers); err != nil {
		log.Fatal(err)
	}
}
