package usecase

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"vastrakala/internal/domain/model"
	repo "vastrakala/internal/repository"
)

// CartUsecase はセッション保持カートの業務ロジックです。
// カート自体はセッション側（handler）が持ち、ここでは集計だけを行う。
type CartUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewCartUsecase(productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{productRepo: productRepo}
}

type CartLine struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
	Total    float64 `json:"total"`
	ImageURL string  `json:"image_url"`
}

type CartView struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

// BuildView はカートの各行を現在のカタログ価格で集計する。
// 商品が消えている行は黙ってスキップする（カート自体からは消さない）。
func (u *CartUsecase) BuildView(ctx context.Context, cart model.Cart) (CartView, error) {
	view := CartView{Items: []CartLine{}}

	//出力を安定させるため商品ID昇順で回す
	ids := make([]int64, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		quantity := cart[id]

		p, err := u.productRepo.FindByID(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			continue
		}
		if err != nil {
			return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		lineTotal := p.Price * float64(quantity)
		view.Items = append(view.Items, CartLine{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Quantity: quantity,
			Total:    lineTotal,
			ImageURL: p.ImageURL,
		})
		view.Total += lineTotal
	}

	return view, nil
}
