package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=3000"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`
	LogFile   string `env:"LOG_FILE"`

	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL, default=24h"`
	AuditWorkers   int           `env:"AUDIT_WORKERS,   default=4"`

	JWT      JWTConfig
	Postgres PostgresConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type JWTConfig struct {
	Secret    string        `env:"JWT_SECRET, required"`
	ExpiresIn time.Duration `env:"JWT_EXPIRES_IN, default=1h"`
}

type PostgresConfig struct {
	Host        string `env:"DB_HOST,         required"`
	Port        int    `env:"DB_PORT,         default=5432"`
	User        string `env:"DB_USERNAME,     required"`
	Password    string `env:"DB_PASSWORD,     required"`
	Database    string `env:"DB_NAME,         required"`
	SSLMode     string `env:"DB_SSLMODE,      default=disable"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE, default=true"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=store_audit"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory when one exists.
func Load(ctx context.Context) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("config: load .env: %w", err)
		}
	}
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.JWT.ExpiresIn <= 0 {
		errs = append(errs, fmt.Errorf("JWT_EXPIRES_IN must be positive, got %s", c.JWT.ExpiresIn))
	}
	if c.IdempotencyTTL <= 0 {
		errs = append(errs, fmt.Errorf("IDEMPOTENCY_TTL must be positive, got %s", c.IdempotencyTTL))
	}
	if c.AuditWorkers <= 0 {
		errs = append(errs, fmt.Errorf("AUDIT_WORKERS must be positive, got %d", c.AuditWorkers))
	}
	return errors.Join(errs...)
}
