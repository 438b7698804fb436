package repository

import (
	"context"
	"errors"

	"vastrakala/internal/domain/model"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成（email/usernameの重複はDBのunique制約で弾く）
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。見つからなければErrUserNotFound。
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	//メールからユーザーを一件取得する。見つからなければ(nil, nil)。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}
