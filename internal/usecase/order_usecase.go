package usecase

import (
	"context"
	"net/http"

	"vastrakala/internal/domain/model"
	repo "vastrakala/internal/repository"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type CheckoutItemInput struct {
	ProductID int64
	Quantity  int64
	Price     float64
}

type CheckoutInput struct {
	Total float64
	Items []CheckoutItemInput
}

// Checkout はカートの内容を注文に確定する。
// 注文＋明細の作成は1トランザクション（途中で失敗したら全部戻す）。
// 金額はクライアント申告値をそのまま保存する（カタログから再計算しない）。
func (u *OrderUsecase) Checkout(ctx context.Context, userID int64, in CheckoutInput) (int64, error) {
	if userID <= 0 {
		return 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if len(in.Items) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "cart empty")
	}
	for _, it := range in.Items {
		if it.ProductID <= 0 {
			return 0, NewHTTPError(http.StatusBadRequest, "invalid product id")
		}
		if it.Quantity <= 0 {
			return 0, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
	}

	var orderID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//注文作成
		id, err := r.Orders().Create(ctx, model.Order{
			UserID:      userID,
			TotalAmount: in.Total,
			Status:      model.OrderStatusPending,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//注文明細一括作成
		items := make([]model.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			items = append(items, model.OrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     it.Price,
			})
		}

		if err := r.OrderItems().CreateBulk(ctx, id, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		orderID = id
		return nil
	})

	if err != nil {
		return 0, err
	}
	return orderID, nil
}
