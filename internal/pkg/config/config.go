package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets, etc.)
// - default: Values common across all environments (timezone, TTLs, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Cache  CacheConfig
	Prize  PrizeConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Cookie CookieConfig
	Admin  AdminConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StoreBackendMemory = "memory"
	StoreBackendRedis  = "redis"
)

type StoreConfig struct {
	Backend       string        `envconfig:"STORE_BACKEND" default:"memory"`
	Namespace     string        `envconfig:"STORE_NAMESPACE" default:"ruleta_"`
	QuotaBytes    int           `envconfig:"STORE_QUOTA_BYTES" default:"5242880"` // 5 MiB
	SweepInterval time.Duration `envconfig:"STORE_SWEEP_INTERVAL" default:"10m"`
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `envconfig:"CACHE_DEFAULT_TTL" default:"5m"`
}

type PrizeConfig struct {
	TTL           time.Duration `envconfig:"PRIZE_TTL" default:"24h"`
	CollectionKey string        `envconfig:"PRIZE_COLLECTION_KEY" default:"prizes"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type AdminConfig struct {
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"` // bcrypt
}

func (c *StoreConfig) Validate() error {
	switch c.Backend {
	case StoreBackendMemory, StoreBackendRedis:
	default:
		return fmt.Errorf("unsupported STORE_BACKEND %q", c.Backend)
	}
	if c.QuotaBytes < 0 {
		return fmt.Errorf("STORE_QUOTA_BYTES must not be negative")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Store.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.Prize.TTL <= 0 {
		return Config{}, fmt.Errorf("PRIZE_TTL must be positive")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Backend:    StoreBackendMemory,
			Namespace:  "ruleta_test_",
			QuotaBytes: 5 * 1024 * 1024,
		},
		Cache: CacheConfig{
			DefaultTTL: time.Minute,
		},
		Prize: PrizeConfig{
			TTL:           24 * time.Hour,
			CollectionKey: "prizes",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Argentina/Buenos_Aires",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
	}
}
