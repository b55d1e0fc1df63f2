package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	SessionStorePostgres = "postgres"
	SessionStoreRedis    = "redis"
)

type Config struct {
	Port         string   `env:"PORT" envDefault:"8080"`
	DatabaseURL  string   `env:"DATABASE_URL,required,notEmpty"`
	AllowOrigins []string `env:"ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
	LogLevel     string   `env:"LOG_LEVEL" envDefault:"info"`

	LogstashTCPAddr string `env:"LOGSTASH_TCP_ADDR"`

	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	SessionSecret       string        `env:"SESSION_SECRET,required,notEmpty"`
	SessionTTL          time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	SessionCookieSecure bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
	SessionStore        string        `env:"SESSION_STORE" envDefault:"postgres"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	SMTPHost        string   `env:"SMTP_HOST"`
	SMTPPort        string   `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername    string   `env:"SMTP_USERNAME"`
	SMTPPassword    string   `env:"SMTP_PASSWORD"`
	SMTPFrom        string   `env:"SMTP_FROM"`
	ContactNotifyTo []string `env:"CONTACT_NOTIFY_TO" envSeparator:","`

	MinIOEndpoint     string `env:"MINIO_ENDPOINT"`
	MinIOAccessKey    string `env:"MINIO_ACCESS_KEY"`
	MinIOSecretKey    string `env:"MINIO_SECRET_KEY"`
	MinIOUseSSL       bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	MinIOBucketPlaces string `env:"MINIO_BUCKET_PLACES" envDefault:"explore-places"`
	MinIOPublicURL    string `env:"MINIO_PUBLIC_URL"`

	SeedImageDir          string `env:"SEED_IMAGE_DIR"`
	SeedImageMaxDimension int    `env:"SEED_IMAGE_MAX_DIMENSION" envDefault:"1920"`
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg(".env file not loaded")
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.AllowOrigins = trimAll(cfg.AllowOrigins)
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"*"}
	}
	cfg.ContactNotifyTo = trimAll(cfg.ContactNotifyTo)
	cfg.SessionStore = strings.ToLower(strings.TrimSpace(cfg.SessionStore))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.SessionStore {
	case SessionStorePostgres:
	case SessionStoreRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			errs = append(errs, errors.New("REDIS_ADDR is required when SESSION_STORE=redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("SESSION_STORE must be %q or %q, got %q", SessionStorePostgres, SessionStoreRedis, c.SessionStore))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if len(c.SessionSecret) < 16 {
		errs = append(errs, errors.New("SESSION_SECRET must be at least 16 characters"))
	}
	if c.SeedImageMaxDimension < 0 {
		errs = append(errs, errors.New("SEED_IMAGE_MAX_DIMENSION must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (c Config) MinIOConfigured() bool {
	return c.MinIOEndpoint != "" && c.MinIOAccessKey != "" && c.MinIOSecretKey != ""
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
