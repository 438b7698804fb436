package handler

import (
	"errors"
	"net/http"

	"vastrakala/internal/middleware"
	"vastrakala/internal/session"
	auth "vastrakala/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// 会員登録・ログイン・ログアウトのHTTP
type AuthHandler struct {
	registerUC *auth.RegisterUserUsecase // 会員登録usecase
	loginUC    *auth.LoginUsecase        // ログインusecase
	sm         *session.Manager
}

// DIコンストラクタ
func NewAuthHandler(
	registerUC *auth.RegisterUserUsecase,
	loginUC *auth.LoginUsecase,
	sm *session.Manager,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		sm:         sm,
	}
}

// /register, /login, /logout を登録
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/register", h.register)
	e.GET("/login", h.loginPage)
	e.POST("/login", h.login)

	g := e.Group("/logout")
	g.Use(middleware.RequireLoginPage(h.sm))
	g.GET("", h.logout)
}

// /register のリクエストボディ。
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// /login のリクエストボディ。
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// registerはPOST /registerのハンドラ
func (h *AuthHandler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
	}

	_, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, errorJSON("missing fields"))
		case errors.Is(err, auth.ErrEmailAlreadyExists):
			return c.JSON(http.StatusConflict, errorJSON("Email already registered"))
		default:
			return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
		}
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// GET /login はページを返す
func (h *AuthHandler) loginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", nil)
}

// loginはPOST /loginのハンドラ。
// 成功したらセッションにuser_idを紐付ける。
func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
	}

	out, err := h.loginUC.Execute(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorJSON("Invalid credentials"))
		}
		return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
	}

	//セッションへの紐付け（ここがログイン状態の確立）
	if err := h.sm.SetCurrentUser(c, out.User.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// logoutはGET /logoutのハンドラ。紐付けを消して/homeへ。
func (h *AuthHandler) logout(c echo.Context) error {
	if err := h.sm.ClearCurrentUser(c); err != nil {
		return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
	}

	return c.Redirect(http.StatusFound, "/home")
}
