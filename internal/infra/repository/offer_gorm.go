package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"b2bcart/internal/domain/model"
	repo "b2bcart/internal/repository"
)

type OfferGormRepository struct {
	db *gorm.DB
}

// DI
func NewOfferGormRepository(db *gorm.DB) *OfferGormRepository {
	return &OfferGormRepository{db: db}
}

// オファーをIDで1件取得
func (r *OfferGormRepository) FindByID(ctx context.Context, offerID int64) (model.Offer, error) {
	var offer model.Offer

	err := r.db.WithContext(ctx).
		Where("id = ?", offerID).
		First(&offer).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Offer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Offer{}, err
	}
	return offer, nil
}

// 取引先のオファー一覧（該当なしは空スライス）
func (r *OfferGormRepository) ListByClientID(ctx context.Context, clientID int64) ([]model.Offer, error) {
	var offers []model.Offer

	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("id asc").
		Find(&offers).Error; err != nil {
		return []model.Offer{}, err
	}

	return offers, nil
}

// オファーを新規作成
func (r *OfferGormRepository) Create(ctx context.Context, offer model.Offer) (model.Offer, error) {
	if err := r.db.WithContext(ctx).Create(&offer).Error; err != nil {
		return model.Offer{}, err
	}
	return offer, nil
}
