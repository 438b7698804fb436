package handler

import (
	"net/http"

	"vastrakala/internal/middleware"
	"vastrakala/internal/session"
	"vastrakala/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
	sm *session.Manager
}

func NewOrderHandler(uc *usecase.OrderUsecase, sm *session.Manager) *OrderHandler {
	return &OrderHandler{uc: uc, sm: sm}
}

type CheckoutItemRequest struct {
	ID       int64   `json:"id"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
}

type CheckoutRequest struct {
	Total float64               `json:"total"`
	Items []CheckoutItemRequest `json:"items"`
}

type CheckoutResponse struct {
	Success bool  `json:"success"`
	OrderID int64 `json:"order_id"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/checkout")
	g.Use(middleware.RequireLoginAPI(h.sm))

	g.POST("", h.checkout)
}

func (h *OrderHandler) checkout(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
	}

	items := make([]usecase.CheckoutItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.CheckoutItemInput{
			ProductID: it.ID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	orderID, err := h.uc.Checkout(c.Request().Context(), userID, usecase.CheckoutInput{
		Total: req.Total,
		Items: items,
	})
	if err != nil {
		return writeError(c, err)
	}

	//注文が確定できたらカートを空にする
	if err := h.sm.ClearCart(c); err != nil {
		return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
	}

	return c.JSON(http.StatusOK, CheckoutResponse{
		Success: true,
		OrderID: orderID,
	})
}
