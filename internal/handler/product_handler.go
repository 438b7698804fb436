package handler

import (
	"net/http"

	"vastrakala/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 公開ページと公開APIのHTTP
type ProductHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewProductHandler(uc *usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 公開ルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.root)
	e.GET("/home", h.home)
	e.GET("/products", h.productsPage)
	e.GET("/api/products", h.apiProducts)
}

func (h *ProductHandler) root(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/home")
}

func (h *ProductHandler) home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", nil)
}

func (h *ProductHandler) productsPage(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.Render(http.StatusOK, "products.html", map[string]interface{}{
		"Products": products,
	})
}

// GET /api/products は全商品のJSON配列
func (h *ProductHandler) apiProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}
