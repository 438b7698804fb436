package auth

import (
	"context"
	"errors"

	"vastrakala/internal/domain/model"
	"vastrakala/internal/repository"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Email    string
	Password string
}

// handlerがセッションに詰めるために必要な値
type LoginOutput struct {
	User model.User
}

// メールまたはパスワードが違う
var ErrInvalidCredentials = errors.New("invalid credentials")

type LoginUsecase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
}

func NewLoginUsecase(userRepo repository.UserRepository, verifier PasswordVerifier) *LoginUsecase {
	return &LoginUsecase{
		userRepo: userRepo,
		verifier: verifier,
	}
}

// ログイン処理を実行する
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	//emailでユーザー取得
	user, err := u.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return out, err
	}
	if user == nil {
		return out, ErrInvalidCredentials
	}

	//パスワード照合
	if ok := u.verifier.Verify(in.Password, user.PasswordHash); !ok {
		return out, ErrInvalidCredentials
	}

	//出力（hashは返さない）
	safeUser := *user
	safeUser.PasswordHash = ""

	out.User = safeUser
	return out, nil
}
