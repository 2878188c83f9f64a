package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"b2bcart/internal/config"
	"b2bcart/internal/handler"
	"b2bcart/internal/infra/db"
	infraRepo "b2bcart/internal/infra/repository"
	"b2bcart/internal/server"
	"b2bcart/internal/usecase"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	//.envは無くてもよい（本番は環境変数のみ）
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect failed")
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal().Err(err).Msg("db migrate failed")
	}

	//Repository（GORM実装）生成
	txm := infraRepo.NewTxManagerGorm(gormDB)
	clientRepo := infraRepo.NewClientGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	offerRepo := infraRepo.NewOfferGormRepository(gormDB)

	//Usecase生成
	clock := usecase.RealClock{}
	cartUC := usecase.NewCartUsecase(txm, clock)
	checkoutUC := usecase.NewCheckoutUsecase(txm, cartUC, clock)
	catalogUC := usecase.NewCatalogUsecase(clientRepo, productRepo, offerRepo)

	//Handler生成
	cartH := handler.NewCartHandler(cartUC)
	checkoutH := handler.NewCheckoutHandler(checkoutUC)
	catalogH := handler.NewCatalogHandler(catalogUC)

	//Server起動
	e := server.New(logger)
	server.RegisterRoutes(e, cartH, checkoutH, catalogH)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	logger.Info().Str("addr", addr).Str("env", cfg.GoEnv).Msg("starting api server")
	if err := e.Start(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
