// Package config 以 koanf 分層載入設定：預設值 → YAML 檔 (CONFIG_PATH) → 環境變數
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"cafe-map/internal/geocode"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar 指定 YAML 設定檔路徑
const ConfigPathEnvVar = "CONFIG_PATH"

const (
	DefaultPort       = 3000
	DefaultJWTTTL     = 24 * time.Hour
	DefaultGeocodeURL = geocode.DefaultURL
)

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")
	ErrMissingJWTSecret   = errors.New("JWT_SECRET is required")
)

type Config struct {
	Port        int           `koanf:"port"`
	DatabaseURL string        `koanf:"database_url"`
	JWT         JWTConfig     `koanf:"jwt"`
	Redis       RedisConfig   `koanf:"redis"`
	Geocode     GeocodeConfig `koanf:"geocode"`
	Log         LogConfig     `koanf:"log"`
}

type JWTConfig struct {
	Secret string        `koanf:"secret"`
	TTL    time.Duration `koanf:"ttl"`
}

// RedisConfig Addr 為空時不啟用快取
type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// GeocodeConfig Timeout 為 0 表示不設逾時；Breaker 預設關閉，每次地址變更都會呼叫供應商
type GeocodeConfig struct {
	URL     string        `koanf:"url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`
	Breaker bool          `koanf:"breaker"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaultConfig() *Config {
	return &Config{
		Port: DefaultPort,
		JWT:  JWTConfig{TTL: DefaultJWTTTL},
		Geocode: GeocodeConfig{
			URL: DefaultGeocodeURL,
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

// envMappings 環境變數 (小寫) → koanf 路徑；未列出的變數一律忽略
var envMappings = map[string]string{
	"port":                   "port",
	"database_url":           "database_url",
	"jwt_secret":             "jwt.secret",
	"jwt_ttl":                "jwt.ttl",
	"redis_addr":             "redis.addr",
	"redis_password":         "redis.password",
	"redis_db":               "redis.db",
	"google_maps_server_key": "geocode.api_key",
	"geocode_url":            "geocode.url",
	"geocode_timeout":        "geocode.timeout",
	"geocode_breaker":        "geocode.breaker",
	"log_level":              "log.level",
	"log_format":             "log.format",
}

func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// Load 讀取設定並驗證
func Load() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDatabaseURL 只需要資料庫連線的工具 (cmd/seed) 使用，不要求 JWT_SECRET
func LoadDatabaseURL() (string, error) {
	cfg, err := load()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return "", ErrMissingDatabaseURL
	}
	return cfg.DatabaseURL, nil
}

func load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return cfg, nil
}

// Validate 回傳第一個不合法的設定
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.DatabaseURL) == "":
		return ErrMissingDatabaseURL
	case c.JWT.Secret == "":
		return ErrMissingJWTSecret
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("PORT out of range: %d", c.Port)
	case c.JWT.TTL < 0:
		return fmt.Errorf("JWT_TTL must not be negative: %s", c.JWT.TTL)
	case c.Geocode.Timeout < 0:
		return fmt.Errorf("GEOCODE_TIMEOUT must not be negative: %s", c.Geocode.Timeout)
	case c.Geocode.URL == "":
		return errors.New("GEOCODE_URL must not be empty")
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console: %q", c.Log.Format)
	}
	return nil
}

// Addr 回傳 echo 監聽位址
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// CacheEnabled 是否設定了 Redis
func (c *Config) CacheEnabled() bool {
	return c.Redis.Addr != ""
}
