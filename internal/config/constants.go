// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "Vokabelbuch"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort       = ":8080"
	DefaultLogLevel         = "info"
	DefaultAuthEnabled      = true
	DefaultAccessTokenTTL   = 24 * time.Hour
	DefaultQuestionCount    = 10
	DefaultMaxQuestionCount = 50
	DefaultSessionTTL       = 2 * time.Hour
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)
