package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration loaded from environment variables or config files.
// It is shared by every binary; each binary checks the keys it needs with Require.
type Config struct {
	AppEnv          string        `mapstructure:"APP_ENV" validate:"required,oneof=development staging production test"`
	HTTPAddr        string        `mapstructure:"HTTP_ADDR" validate:"required,hostname_port"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" validate:"required"`

	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"required,oneof=debug info warn error dpanic panic fatal"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"required,oneof=json console"`

	DatabaseURL string `mapstructure:"DATABASE_URL" validate:"omitempty,url|uri"`

	RedisAddr     string `mapstructure:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	JWTSecret           string        `mapstructure:"JWT_SECRET" validate:"omitempty,min=16"`
	JWTExpiresIn        time.Duration `mapstructure:"JWT_EXPIRES_IN" validate:"gt=0"`
	ResetTokenExpiresIn time.Duration `mapstructure:"RESET_TOKEN_EXPIRES_IN" validate:"gt=0"`

	PackagesServiceURL string `mapstructure:"PACKAGES_SERVICE_URL" validate:"omitempty,url"`
	FrontendURL        string `mapstructure:"FRONTEND_URL" validate:"omitempty,url"`

	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT" validate:"gte=0,lte=65535"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	MailFrom     string `mapstructure:"MAIL_FROM"`

	AsynqConcurrency int `mapstructure:"ASYNQ_CONCURRENCY" validate:"gte=1,lte=1000"`

	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS" validate:"gt=0"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST" validate:"gte=1"`
	TrustProxy     bool    `mapstructure:"TRUST_PROXY"`

	GoMaxProcs int `mapstructure:"GOMAXPROCS" validate:"gte=0,lte=4096"`
}

var (
	cfg      *Config
	validate = validator.New(validator.WithRequiredStructEnabled())
)

var keys = []string{
	"APP_ENV",
	"HTTP_ADDR",
	"SHUTDOWN_TIMEOUT",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"DATABASE_URL",
	"REDIS_ADDR",
	"REDIS_PASSWORD",
	"JWT_SECRET",
	"JWT_EXPIRES_IN",
	"RESET_TOKEN_EXPIRES_IN",
	"PACKAGES_SERVICE_URL",
	"FRONTEND_URL",
	"CLOUDINARY_CLOUD_NAME",
	"CLOUDINARY_API_KEY",
	"CLOUDINARY_API_SECRET",
	"SMTP_HOST",
	"SMTP_PORT",
	"SMTP_USERNAME",
	"SMTP_PASSWORD",
	"MAIL_FROM",
	"ASYNQ_CONCURRENCY",
	"RATE_LIMIT_RPS",
	"RATE_LIMIT_BURST",
	"TRUST_PROXY",
	"GOMAXPROCS",
}

// Load initializes configuration using Viper. It loads from .env if present,
// applies defaults, binds env vars, and validates the result.
func Load() (*Config, error) {
	// Load .env if present (non-fatal)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	// Defaults
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_ADDR", "0.0.0.0:8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("JWT_EXPIRES_IN", "360h")
	v.SetDefault("RESET_TOKEN_EXPIRES_IN", "15m")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("MAIL_FROM", "Uptraa <onboarding@resend.dev>")
	v.SetDefault("ASYNQ_CONCURRENCY", 10)
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("TRUST_PROXY", false)
	v.SetDefault("GOMAXPROCS", 0)

	// Optional config file
	_ = v.ReadInConfig()

	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}

	// Durations may come in as plain strings from the environment.
	for key, dst := range map[string]*time.Duration{
		"SHUTDOWN_TIMEOUT":       &c.ShutdownTimeout,
		"JWT_EXPIRES_IN":         &c.JWTExpiresIn,
		"RESET_TOKEN_EXPIRES_IN": &c.ResetTokenExpiresIn,
	} {
		if s := v.GetString(key); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return nil, fmt.Errorf("invalid %s: %w", key, err)
			}
			*dst = d
		}
	}

	c.FrontendURL = strings.TrimRight(c.FrontendURL, "/")
	c.PackagesServiceURL = strings.TrimRight(c.PackagesServiceURL, "/")

	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if c.GoMaxProcs > 0 {
		runtime.GOMAXPROCS(c.GoMaxProcs)
	}

	cfg = &c
	return cfg, nil
}

// Require returns an error naming every listed key that is empty.
func (c *Config) Require(names ...string) error {
	values := map[string]string{
		"DATABASE_URL":          c.DatabaseURL,
		"REDIS_ADDR":            c.RedisAddr,
		"JWT_SECRET":            c.JWTSecret,
		"PACKAGES_SERVICE_URL":  c.PackagesServiceURL,
		"FRONTEND_URL":          c.FrontendURL,
		"CLOUDINARY_CLOUD_NAME": c.CloudinaryCloudName,
		"CLOUDINARY_API_KEY":    c.CloudinaryAPIKey,
		"CLOUDINARY_API_SECRET": c.CloudinaryAPISecret,
		"SMTP_HOST":             c.SMTPHost,
		"MAIL_FROM":             c.MailFrom,
	}
	var missing []string
	for _, name := range names {
		val, known := values[name]
		if !known {
			return fmt.Errorf("unknown config key %q", name)
		}
		if val == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// MustLoad loads configuration or exits the process on failure.
func MustLoad() *Config {
	c, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	return c
}

// Get returns the loaded configuration. Panics if not loaded.
func Get() *Config {
	if cfg == nil {
		panic("config not loaded: call config.Load or config.MustLoad first")
	}
	return cfg
}
