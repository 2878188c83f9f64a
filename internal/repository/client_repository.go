package repository

import (
	"context"

	"b2bcart/internal/domain/model"
)

// 取引先の永続化（保存・取得）だけを約束。
type ClientRepository interface {
	List(ctx context.Context) ([]model.Client, error)
	Create(ctx context.Context, client model.Client) (model.Client, error)
}
