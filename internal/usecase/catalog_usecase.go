package usecase

import (
	"context"

	"b2bcart/internal/domain/model"
	repo "b2bcart/internal/repository"
)

// CatalogUsecase は読み取り専用のカタログ照会。
// 状態変更も業務不変条件も持たない。該当なしはエラーではなく空リスト。
type CatalogUsecase struct {
	clientRepo  repo.ClientRepository
	productRepo repo.ProductRepository
	offerRepo   repo.OfferRepository
}

func NewCatalogUsecase(
	clientRepo repo.ClientRepository,
	productRepo repo.ProductRepository,
	offerRepo repo.OfferRepository,
) *CatalogUsecase {
	return &CatalogUsecase{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		offerRepo:   offerRepo,
	}
}

func (u *CatalogUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return u.productRepo.List(ctx)
}

func (u *CatalogUsecase) ListCustomers(ctx context.Context) ([]model.Client, error) {
	return u.clientRepo.List(ctx)
}

func (u *CatalogUsecase) ListCustomerOffers(ctx context.Context, clientID int64) ([]model.Offer, error) {
	return u.offerRepo.ListByClientID(ctx, clientID)
}
