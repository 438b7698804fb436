package session

import (
	"net/http"

	"vastrakala/internal/domain/model"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// Cookie名
	sessionName = "vastrakala_session"

	userIDKey = "user_id"
	cartKey   = "cart"
)

// NewCookieStore はカートとログイン状態を入れるCookieストアを作る。
func NewCookieStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Manager はセッションに入れる値（user_id / cart）の読み書きをまとめる。
// セッション自体はecho-contribのmiddlewareがcontextに載せる。
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// CurrentUserID はログイン中のユーザーIDを返す。未ログインならfalse。
func (m *Manager) CurrentUserID(c echo.Context) (int64, bool) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return 0, false
	}

	v, ok := sess.Values[userIDKey]
	if !ok {
		return 0, false
	}

	id, ok := v.(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// SetCurrentUser はログイン成功時にユーザーIDをセッションに紐付ける。
func (m *Manager) SetCurrentUser(c echo.Context, userID int64) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}

	sess.Values[userIDKey] = userID
	return sess.Save(c.Request(), c.Response())
}

// ClearCurrentUser はログアウト時に紐付けを消す。
func (m *Manager) ClearCurrentUser(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}

	delete(sess.Values, userIDKey)
	return sess.Save(c.Request(), c.Response())
}

// Cart はセッションからカートを復元する。無ければ空カート。
func (m *Manager) Cart(c echo.Context) model.Cart {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return model.NewCart()
	}

	raw, ok := sess.Values[cartKey].(string)
	if !ok {
		return model.NewCart()
	}
	return model.DecodeCart(raw)
}

// SaveCart はカートをJSON文字列にしてセッションに書き戻す。
func (m *Manager) SaveCart(c echo.Context, cart model.Cart) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}

	raw, err := cart.Encode()
	if err != nil {
		return err
	}

	sess.Values[cartKey] = raw
	return sess.Save(c.Request(), c.Response())
}

// ClearCart はカートを丸ごと消す（チェックアウト成功後）。
func (m *Manager) ClearCart(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}

	delete(sess.Values, cartKey)
	return sess.Save(c.Request(), c.Response())
}
