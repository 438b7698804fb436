package handler

import (
	"net/http"

	"vastrakala/internal/middleware"
	"vastrakala/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ErrorResponse は失敗時のJSON（{success:false, error}）。
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func errorJSON(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, errorJSON(he.Message))
	}

	//500
	return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
}

// middlewareが保存したuser_idを取り出す
func getUserIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get(middleware.CtxUserIDKey)
	id, ok := v.(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}
