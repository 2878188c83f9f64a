package repository

import (
	"context"

	"gorm.io/gorm"

	repo "b2bcart/internal/repository"
)

type txReposGorm struct {
	carts     repo.CartRepository
	cartItems repo.CartItemRepository
	offers    repo.OfferRepository
	payments  repo.PaymentRepository
}

func (r *txReposGorm) Carts() repo.CartRepository         { return r.carts }
func (r *txReposGorm) CartItems() repo.CartItemRepository { return r.cartItems }
func (r *txReposGorm) Offers() repo.OfferRepository       { return r.offers }
func (r *txReposGorm) Payments() repo.PaymentRepository   { return r.payments }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			carts:     NewCartGormRepository(tx),
			cartItems: NewCartItemGormRepository(tx),
			offers:    NewOfferGormRepository(tx),
			payments:  NewPaymentGormRepository(tx),
		}
		return fn(r)
	})
}
