package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Embedding EmbeddingConfig
	Matching  MatchingConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	PoolMaxConns        int32
	PoolMaxConnLifetime time.Duration

	RunMigrations bool
	MigrationsDir string
	RunSeeders    bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type JWTConfig struct {
	AccessSecret    string
	AccessExpiresIn time.Duration
}

type EmbeddingConfig struct {
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type MatchingConfig struct {
	BatchSize  int
	ItemDelay  time.Duration
	BatchDelay time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "team-match"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:              req("DB_HOST"),
		DBPort:              opt("DB_PORT", "5432"),
		DBName:              req("DB_NAME"),
		DBUser:              req("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBSSLMode:           opt("DB_SSL_MODE", "disable"),
		PoolMaxConns:        int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMaxConnLifetime: optDuration("DB_POOL_MAX_CONN_LIFETIME", 0),
		RunMigrations:       optBool("DB_RUN_MIGRATIONS", true),
		MigrationsDir:       strings.TrimSpace(os.Getenv("DB_MIGRATIONS_DIR")),
		RunSeeders:          optBool("DB_RUN_SEEDERS", true),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:    req("JWT_ACCESS_SECRET"),
		AccessExpiresIn: optDuration("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
	}

	cfg.Embedding = EmbeddingConfig{
		APIKey:   os.Getenv("OPENAI_API_KEY"),
		BaseURL:  strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		Model:    opt("EMBEDDING_MODEL", "text-embedding-ada-002"),
		Timeout:  optDuration("EMBEDDING_TIMEOUT", 10*time.Second),
		CacheTTL: optDuration("EMBEDDING_CACHE_TTL", time.Hour),
	}

	cfg.Matching = MatchingConfig{
		BatchSize:  optInt("MATCHING_BATCH_SIZE", 5),
		ItemDelay:  optDuration("MATCHING_ITEM_DELAY", 100*time.Millisecond),
		BatchDelay: optDuration("MATCHING_BATCH_DELAY", 200*time.Millisecond),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func optBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func optDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
