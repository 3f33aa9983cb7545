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
	App      AppConfig
	Database DatabaseConfig
	Token    TokenConfig
}

type AppConfig struct {
	AppName       string
	Environment   string
	HTTPPort      string
	MigrationsDir string
	SeedDemoData  bool
}

type DatabaseConfig struct {
	Host           string
	Port           string
	Name           string
	User           string
	Password       string
	SSLMode        string
	MaxConns       int32
	MinConns       int32
	ConnectTimeout time.Duration
}

type TokenConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	var parseErrs []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optBool := func(key string) bool {
		v := opt(key)
		if v == "" {
			return false
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			parseErrs = append(parseErrs, key)
			return false
		}
		return b
	}
	optInt32 := func(key string) int32 {
		v := opt(key)
		if v == "" {
			return 0
		}
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			parseErrs = append(parseErrs, key)
			return 0
		}
		return int32(n)
	}
	optDuration := func(key string, fallback time.Duration) time.Duration {
		v := opt(key)
		if v == "" {
			return fallback
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			parseErrs = append(parseErrs, key)
			return fallback
		}
		return d
	}

	cfg.App = AppConfig{
		AppName:       req("APP_NAME"),
		Environment:   req("APP_ENV"),
		HTTPPort:      req("HTTP_PORT"),
		MigrationsDir: opt("MIGRATIONS_DIR"),
		SeedDemoData:  optBool("SEED_DEMO_DATA"),
	}

	cfg.Database = DatabaseConfig{
		Host:           opt("DB_HOST"),
		Port:           opt("DB_PORT"),
		Name:           opt("DB_NAME"),
		User:           opt("DB_USER"),
		Password:       opt("DB_PASSWORD"),
		SSLMode:        opt("DB_SSL_MODE"),
		MaxConns:       optInt32("DB_POOL_MAX_CONNS"),
		MinConns:       optInt32("DB_POOL_MIN_CONNS"),
		ConnectTimeout: optDuration("DB_CONNECT_TIMEOUT", 0),
	}

	cfg.Token = TokenConfig{
		Secret:    req("TOKEN_SECRET"),
		ExpiresIn: optDuration("TOKEN_EXPIRES_IN", 24*time.Hour),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(parseErrs) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(parseErrs, ", "))
	}

	return cfg, nil
}
