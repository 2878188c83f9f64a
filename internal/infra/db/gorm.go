package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"b2bcart/internal/config"
	"b2bcart/internal/domain/model"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	// DATABASE_URL があれば最優先で使う
	// TranslateErrorでユニーク制約違反をgorm.ErrDuplicatedKeyとして受け取る
	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser,
		cfg.PostgresPassword, cfg.PostgresDB, cfg.PostgresSSLMode,
	)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// Migrate はテーブルと制約を作成する。
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&model.Client{},
		&model.Product{},
		&model.Offer{},
		&model.Cart{},
		&model.CartItem{},
		&model.Payment{},
	); err != nil {
		return err
	}

	// 「1取引先につきアクティブなカートは1つ」をDB側で保証する。
	// アプリ側のread-then-writeだけだと同時作成の競合で2つできてしまう。
	if err := gormDB.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_carts_client_active
		 ON carts (client_id)
		 WHERE status IN ('OPEN', 'CHECKOUT')`,
	).Error; err != nil {
		return err
	}

	// 支払いはカートごとに必ず1件。二重確定をDB側でも塞ぐ
	if err := gormDB.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_payments_cart
		 ON payments (cart_id)`,
	).Error; err != nil {
		return err
	}

	// カート削除時に明細も一緒に消す（明細はカートが所有する）
	if err := gormDB.Exec(
		`ALTER TABLE cart_items DROP CONSTRAINT IF EXISTS fk_cart_items_cart`,
	).Error; err != nil {
		return err
	}
	if err := gormDB.Exec(
		`ALTER TABLE cart_items
		 ADD CONSTRAINT fk_cart_items_cart
		 FOREIGN KEY (cart_id) REFERENCES carts (id) ON DELETE CASCADE`,
	).Error; err != nil {
		return err
	}

	return nil
}
