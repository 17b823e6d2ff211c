// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL         string `mapstructure:"url"`
	AutoMigrate bool   `mapstructure:"auto_migrate"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AuthConfig struct {
	// false の場合は X-User-ID ヘッダーをそのまま信用する (開発用)
	Enabled bool `mapstructure:"enabled"`
}

type JWTConfig struct {
	SecretKey      string        `mapstructure:"secret_key"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type QuizConfig struct {
	DefaultQuestionCount int           `mapstructure:"default_question_count"`
	MaxQuestionCount     int           `mapstructure:"max_question_count"`
	SessionStore         string        `mapstructure:"session_store"` // "memory" or "redis"
	SessionTTL           time.Duration `mapstructure:"session_ttl"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Auth     AuthConfig     `mapstructure:"auth"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Quiz     QuizConfig     `mapstructure:"quiz"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

// LoadConfig は path 配下の config.yaml、.env、APP_ 接頭辞の環境変数の順に設定を読み込みます。
func LoadConfig(path string) (*Config, error) {
	// .env は任意
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP") // 例: APP_DATABASE_URL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("database.url", "APP_DATABASE_URL", "DATABASE_URL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			return nil, fmt.Errorf("config.LoadConfig: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config.LoadConfig: unmarshal: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", cfg.Server.Port)
	log.Printf("Auth Enabled: %t", cfg.Auth.Enabled)
	log.Printf("Quiz Session Store: %s", cfg.Quiz.SessionStore)

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("database.url", "")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("auth.enabled", DefaultAuthEnabled)
	v.SetDefault("jwt.secret_key", "")
	v.SetDefault("jwt.access_token_ttl", DefaultAccessTokenTTL)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Authorization", "Content-Type", "X-User-ID"})
	v.SetDefault("cors.exposed_headers", []string{})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 300)
	v.SetDefault("quiz.default_question_count", DefaultQuestionCount)
	v.SetDefault("quiz.max_question_count", DefaultMaxQuestionCount)
	v.SetDefault("quiz.session_store", SessionStoreMemory)
	v.SetDefault("quiz.session_ttl", DefaultSessionTTL)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
}

func (c *Config) validate() error {
	if c.Quiz.DefaultQuestionCount <= 0 {
		log.Printf("Quiz default question count not set or invalid, using default '%d'", DefaultQuestionCount)
		c.Quiz.DefaultQuestionCount = DefaultQuestionCount
	}
	if c.Quiz.MaxQuestionCount < c.Quiz.DefaultQuestionCount {
		c.Quiz.MaxQuestionCount = c.Quiz.DefaultQuestionCount
	}
	switch c.Quiz.SessionStore {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("config: unknown quiz.session_store %q", c.Quiz.SessionStore)
	}
	if c.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if c.Auth.Enabled && c.JWT.SecretKey == "" {
		return errors.New("config: jwt.secret_key is required when auth is enabled")
	}
	return nil
}
