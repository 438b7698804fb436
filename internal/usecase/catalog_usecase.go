package usecase

import (
	"context"
	"net/http"
	"strings"

	"vastrakala/internal/domain/model"
	repo "vastrakala/internal/repository"

	"github.com/spf13/cast"
)

// CatalogUsecase は商品一覧と商品登録の業務ロジックです。
type CatalogUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewCatalogUsecase(productRepo repo.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{productRepo: productRepo}
}

// ListProducts は全商品をID昇順で返す（ページングなし・絞り込みなし）。
func (u *CatalogUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

// 商品登録の入力。
// price / stock はJSONの数値でも数値文字列でも受ける（castで変換）。
type CreateProductInput struct {
	Name        string
	Description string
	Price       interface{}
	Category    string
	ImageURL    string
	Stock       interface{}
	Badge       string
}

func (u *CatalogUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	//必須チェック（badgeだけ任意）
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "description is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "category is required")
	}
	if strings.TrimSpace(in.ImageURL) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "image_url is required")
	}
	if in.Price == nil {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price is required")
	}
	if in.Stock == nil {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "stock is required")
	}

	//数値変換
	price, err := cast.ToFloat64E(in.Price)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be a number")
	}
	stock, err := cast.ToInt64E(in.Stock)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "stock must be a number")
	}

	if price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if stock < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}

	p := model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Stock:       stock,
		Badge:       in.Badge,
	}

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return created, nil
}
