package repository

import (
	"context"

	"gorm.io/gorm"

	"b2bcart/internal/domain/model"
)

type ClientGormRepository struct {
	db *gorm.DB
}

// DI
func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// 取引先の全件一覧（該当なしは空スライス）
func (r *ClientGormRepository) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&clients).Error; err != nil {
		return []model.Client{}, err
	}

	return clients, nil
}

// 取引先を新規作成
func (r *ClientGormRepository) Create(ctx context.Context, client model.Client) (model.Client, error) {
	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return model.Client{}, err
	}
	return client, nil
}
