package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Бэкенды хранилища сессий
const (
	SessionMemory = "memory"
	SessionRedis  = "redis"
	SessionBolt   = "bolt"
)

type Config struct {
	TelegramToken string `mapstructure:"TELEGRAM_TOKEN"`
	DBDSN         string `mapstructure:"DB_DSN"`
	Environment   string `mapstructure:"ENV"`

	// ADMIN_ID записывается в bot_settings при старте, 0 - оставить как есть
	AdminID  int64  `mapstructure:"ADMIN_ID"`
	Timezone string `mapstructure:"TIMEZONE"`

	SessionBackend string        `mapstructure:"SESSION_BACKEND"`
	SessionTTL     time.Duration `mapstructure:"SESSION_TTL"` // 0 - без истечения
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	RedisPassword  string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB        int           `mapstructure:"REDIS_DB"`
	BoltPath       string        `mapstructure:"BOLT_PATH"`

	// Пустой WEBHOOK_URL - long polling
	WebhookURL    string `mapstructure:"WEBHOOK_URL"`
	WebhookPath   string `mapstructure:"WEBHOOK_PATH"`
	WebhookSecret string `mapstructure:"WEBHOOK_SECRET"`
	HTTPAddr      string `mapstructure:"HTTP_ADDR"`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}
	return FromEnv()
}

// FromEnv читает конфигурацию из переменных окружения
func FromEnv() (*Config, error) {
	cfg := &Config{
		DBDSN:          os.Getenv("DB_DSN"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		Environment:    getEnv("ENV", "development"),
		Timezone:       getEnv("TIMEZONE", "Asia/Tashkent"),
		SessionBackend: getEnv("SESSION_BACKEND", SessionMemory),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		BoltPath:       getEnv("BOLT_PATH", "sessions.db"),
		WebhookURL:     os.Getenv("WEBHOOK_URL"),
		WebhookPath:    getEnv("WEBHOOK_PATH", "/webhook"),
		WebhookSecret:  os.Getenv("WEBHOOK_SECRET"),
		HTTPAddr:       getEnv("HTTP_ADDR", "0.0.0.0:8080"),
	}

	var err error
	if cfg.AdminID, err = getInt64("ADMIN_ID"); err != nil {
		return nil, err
	}
	redisDB, err := getInt64("REDIS_DB")
	if err != nil {
		return nil, err
	}
	cfg.RedisDB = int(redisDB)
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		if cfg.SessionTTL, err = time.ParseDuration(raw); err != nil {
			return nil, fmt.Errorf("SESSION_TTL: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	if c.DBDSN == "" {
		return fmt.Errorf("DB_DSN is required but not set")
	}
	switch c.SessionBackend {
	case SessionMemory, SessionRedis, SessionBolt:
	default:
		return fmt.Errorf("SESSION_BACKEND must be one of memory, redis, bolt: got %q", c.SessionBackend)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("SESSION_TTL must not be negative")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE: %w", err)
	}
	return nil
}

// Location часовой пояс для календаря заказа
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// UseWebhook true если бот получает обновления через webhook
func (c *Config) UseWebhook() bool {
	return c.WebhookURL != ""
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt64(key string) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
