package repository

import (
	"context"
	"errors"

	"vastrakala/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	//全商品をID昇順で返す（ページングなし）
	ListAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	//商品が1件も無いかどうか（初回シード判定に使う）
	Count(ctx context.Context) (int64, error)
}
