package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"b2bcart/internal/config"
	"b2bcart/internal/domain/model"
	"b2bcart/internal/infra/db"
	infraRepo "b2bcart/internal/infra/repository"
)

// サンプルデータ投入用のユーティリティ。業務不変条件の対象外。
func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("no .env file, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect failed")
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal().Err(err).Msg("db migrate failed")
	}

	ctx := context.Background()

	//既存データをクリア（依存順）
	for _, table := range []string{"payments", "cart_items", "carts", "offers", "products", "clients"} {
		if err := gormDB.Exec("DELETE FROM " + table).Error; err != nil {
			logger.Fatal().Err(err).Str("table", table).Msg("cleanup failed")
		}
	}

	productRepo := infraRepo.NewProductGormRepository(gormDB)
	clientRepo := infraRepo.NewClientGormRepository(gormDB)
	offerRepo := infraRepo.NewOfferGormRepository(gormDB)

	products := []model.Product{
		{EAN: "7891234567890", Name: "Arroz Branco Tipo 1 - 1kg", ItemsPerBox: 10},
		{EAN: "7891234567891", Name: "Feijao Preto - 1kg", ItemsPerBox: 10},
		{EAN: "7891234567894", Name: "Cafe Torrado e Moido - 500g", ItemsPerBox: 10},
		{EAN: "7891234567898", Name: "Refrigerante Cola 2L", ItemsPerBox: 6},
		{EAN: "7891234567901", Name: "Agua Mineral 500ml", ItemsPerBox: 24},
		{EAN: "7891234567903", Name: "Sabao em Po - 1kg", ItemsPerBox: 8},
		{EAN: "7891234567908", Name: "Leite Integral 1L", ItemsPerBox: 12},
		{EAN: "7891234567911", Name: "Biscoito Cream Cracker 200g", ItemsPerBox: 20},
	}

	created := make([]model.Product, 0, len(products))
	for _, p := range products {
		saved, err := productRepo.Create(ctx, p)
		if err != nil {
			logger.Fatal().Err(err).Str("ean", p.EAN).Msg("product create failed")
		}
		created = append(created, saved)
	}
	logger.Info().Int("count", len(created)).Msg("products created")

	clients := []model.Client{
		{Name: "Minimercado Sao Jorge", TaxID: "12345678000190", Address: "Rua das Laranjeiras 120, Rio de Janeiro"},
		{Name: "Mercearia Dona Rosa", TaxID: "98765432000155", Address: "Av. Atlantica 450, Rio de Janeiro"},
		{Name: "Emporio do Centro", TaxID: "45678912000133", Address: "Rua do Ouvidor 88, Rio de Janeiro"},
	}

	savedClients := make([]model.Client, 0, len(clients))
	for _, c := range clients {
		saved, err := clientRepo.Create(ctx, c)
		if err != nil {
			logger.Fatal().Err(err).Str("name", c.Name).Msg("client create failed")
		}
		savedClients = append(savedClients, saved)
	}
	logger.Info().Int("count", len(savedClients)).Msg("clients created")

	//各取引先に商品ごとのオファーを作る。一部はテスト用に期限切れ。
	prices := []string{"25.90", "8.50", "18.75", "9.99", "1.25", "14.30", "4.80", "3.60"}
	now := time.Now().UTC()

	offerCount := 0
	for ci, client := range savedClients {
		for pi, product := range created {
			validUntil := now.AddDate(0, 1, 0)
			if (ci+pi)%7 == 0 {
				// 期限切れオファー
				validUntil = now.AddDate(0, 0, -10)
			}

			price, err := decimal.NewFromString(prices[pi%len(prices)])
			if err != nil {
				logger.Fatal().Err(err).Msg("invalid price")
			}

			if _, err := offerRepo.Create(ctx, model.Offer{
				ClientID:   client.ID,
				ProductID:  product.ID,
				UnitPrice:  price,
				ValidUntil: validUntil,
			}); err != nil {
				logger.Fatal().Err(err).Msg("offer create failed")
			}
			offerCount++
		}
	}
	logger.Info().Int("count", offerCount).Msg("offers created")

	logger.Info().Msg("seed finished")
}
