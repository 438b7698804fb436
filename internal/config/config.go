package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     string // DBポート
	PostgresSSLMode  string // disable/require

	SessionSecret string // セッションCookieの署名シークレット

	GoEnv string // dev/prod
}

// Loadは環境変数から設定を読む。未設定は開発向けデフォルト。
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "vastrakala"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		SessionSecret: os.Getenv("SESSION_SECRET"),

		GoEnv: getenv("GO_ENV", "dev"),
	}

	//必須チェック（prodではシークレット必須）
	if cfg.SessionSecret == "" {
		if cfg.GoEnv == "prod" {
			return Config{}, fmt.Errorf("SESSION_SECRET is required")
		}
		cfg.SessionSecret = "dev_secret_change_me"
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
