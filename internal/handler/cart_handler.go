package handler

import (
	"net/http"

	"vastrakala/internal/session"
	"vastrakala/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
)

// /api/cartのHTTP。カートはセッションに持つ（DBには入れない）。
type CartHandler struct {
	uc *usecase.CartUsecase
	sm *session.Manager
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, sm *session.Manager) *CartHandler {
	return &CartHandler{uc: uc, sm: sm}
}

// /api/cart/add と /api/cart を登録（認証不要）
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/cart/add", h.addToCart)
	e.GET("/api/cart", h.getCart)
}

// product_id / quantity は数値でも数値文字列でも受ける
type AddCartRequest struct {
	ProductID interface{} `json:"product_id"`
	Quantity  interface{} `json:"quantity"`
}

type AddCartResponse struct {
	Success   bool `json:"success"`
	CartCount int  `json:"cart_count"`
}

func (h *CartHandler) addToCart(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
	}

	productID, err := cast.ToInt64E(req.ProductID)
	if err != nil || productID <= 0 {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid product_id"))
	}

	//quantity省略時は1
	var quantity int64 = 1
	if req.Quantity != nil {
		quantity, err = cast.ToInt64E(req.Quantity)
		if err != nil || quantity < 1 {
			return c.JSON(http.StatusBadRequest, errorJSON("invalid quantity"))
		}
	}

	//同一商品は数量加算。商品の実在チェックはしない（表示時にスキップする）。
	cart := h.sm.Cart(c)
	cart.Add(productID, quantity)

	if err := h.sm.SaveCart(c, cart); err != nil {
		return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
	}

	return c.JSON(http.StatusOK, AddCartResponse{
		Success:   true,
		CartCount: cart.Count(),
	})
}

func (h *CartHandler) getCart(c echo.Context) error {
	cart := h.sm.Cart(c)

	out, err := h.uc.BuildView(c.Request().Context(), cart)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
