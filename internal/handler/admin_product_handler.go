package handler

import (
	"net/http"

	"vastrakala/internal/middleware"
	"vastrakala/internal/session"
	"vastrakala/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin/products のHTTP（要ログイン）
type AdminProductHandler struct {
	uc *usecase.CatalogUsecase
	sm *session.Manager
}

// DI
func NewAdminProductHandler(uc *usecase.CatalogUsecase, sm *session.Manager) *AdminProductHandler {
	return &AdminProductHandler{uc: uc, sm: sm}
}

// price / stock は数値でも数値文字列でも受ける（usecaseでcast）
type ProductCreateRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       interface{} `json:"price"`
	Category    string      `json:"category"`
	ImageURL    string      `json:"image_url"`
	Stock       interface{} `json:"stock"`
	Badge       string      `json:"badge"`
}

type ProductCreateResponse struct {
	Success   bool  `json:"success"`
	ProductID int64 `json:"product_id"`
}

// adminを登録
func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/admin")

	//ページは未ログインなら /login へ、APIは401 JSON
	page := admin.Group("/products")
	page.Use(middleware.RequireLoginPage(h.sm))
	page.GET("", h.productsPage)

	api := admin.Group("/products/add")
	api.Use(middleware.RequireLoginAPI(h.sm))
	api.POST("", h.createProduct)
}

func (h *AdminProductHandler) productsPage(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.Render(http.StatusOK, "admin_products.html", map[string]interface{}{
		"Products": products,
	})
}

func (h *AdminProductHandler) createProduct(c echo.Context) error {
	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
	}

	created, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		Badge:       req.Badge,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, ProductCreateResponse{
		Success:   true,
		ProductID: created.ID,
	})
}
