package server

import (
	"vastrakala/internal/handler"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlers はルート登録に必要なhandler一式。
type Handlers struct {
	Auth         *handler.AuthHandler
	Product      *handler.ProductHandler
	Cart         *handler.CartHandler
	Order        *handler.OrderHandler
	AdminProduct *handler.AdminProductHandler
}

// New はechoを組み立てる（起動はしない。テストでも使う）。
func New(store *sessions.CookieStore, h Handlers) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echosession.Middleware(store))

	renderer, err := NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	RegisterRoutes(e, h)
	return e, nil
}

// Start はサーバーを起動する。
func Start(addr string, store *sessions.CookieStore, h Handlers) error {
	e, err := New(store, h)
	if err != nil {
		return err
	}
	return e.Start(addr)
}
