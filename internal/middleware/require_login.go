package middleware

import (
	"net/http"

	"vastrakala/internal/session"

	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey = "user_id" // int64
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RequireLoginPage はページ用の認可ミドルウェア。
// 未ログインはエラーではなく /login へリダイレクトする。
func RequireLoginPage(sm *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := sm.CurrentUserID(c)
			if !ok {
				return c.Redirect(http.StatusFound, "/login")
			}

			//contextへ保存
			c.Set(CtxUserIDKey, userID)
			return next(c)
		}
	}
}

// RequireLoginAPI はAPI用の認可ミドルウェア。
// 未ログインはJSONで返す（リダイレクトしない）。
func RequireLoginAPI(sm *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := sm.CurrentUserID(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorResponse{Success: false, Error: "unauthorized"})
			}

			c.Set(CtxUserIDKey, userID)
			return next(c)
		}
	}
}
