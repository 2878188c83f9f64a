package repository

import (
	"context"

	"b2bcart/internal/domain/model"
)

type OfferRepository interface {
	FindByID(ctx context.Context, offerID int64) (model.Offer, error)

	//取引先のオファー一覧を返す
	ListByClientID(ctx context.Context, clientID int64) ([]model.Offer, error)

	Create(ctx context.Context, offer model.Offer) (model.Offer, error)
}
