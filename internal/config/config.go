package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig   `toml:"app"`
	Auth  AuthConfig  `toml:"auth"`
	MySQL MySQLConfig `toml:"mysql"`
	CORS  CORSConfig  `toml:"cors"`
}

type AppConfig struct {
	Name    string `toml:"name"`
	Env     string `toml:"env"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	GinMode string `toml:"gin_mode"`
}

type AuthConfig struct {
	// JWTSecret defaults to a test-only value; production deployments
	// must override it via JWT_SECRET.
	JWTSecret            string `toml:"jwt_secret"`
	TokenTTLHours        int    `toml:"token_ttl_hours"`
	AllowLegacyPlaintext bool   `toml:"allow_legacy_plaintext"`
}

type MySQLConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	DB       string `toml:"db"`
	Params   string `toml:"params"`
}

type CORSConfig struct {
	// AllowedOrigins is comma-separated in the env override.
	AllowedOrigins []string `toml:"allowed_origins"`
}

// DefaultJWTSecret is intentionally insecure and only acceptable for
// local development and tests.
const DefaultJWTSecret = "change-me-in-production"

func Load() (*Config, error) {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		c.MySQL.User,
		c.MySQL.Password,
		c.MySQL.Host,
		c.MySQL.Port,
		c.MySQL.DB,
		c.MySQL.Params,
	)
}

// UsesDefaultSecret reports whether the signing secret is still the
// shipped test-only value.
func (c *Config) UsesDefaultSecret() bool {
	return c.Auth.JWTSecret == DefaultJWTSecret
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "mural-api",
			Env:     "dev",
			Host:    "0.0.0.0",
			Port:    3000,
			GinMode: "debug",
		},
		Auth: AuthConfig{
			JWTSecret:            DefaultJWTSecret,
			TokenTTLHours:        24,
			AllowLegacyPlaintext: false,
		},
		MySQL: MySQLConfig{
			Host:     "127.0.0.1",
			Port:     3306,
			User:     "root",
			Password: "",
			DB:       "mural",
			Params:   "parseTime=true&loc=Local&charset=utf8mb4",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("APP_PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)

	cfg.Auth.JWTSecret = getEnv("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.TokenTTLHours = getEnvAsInt("JWT_TTL_HOURS", cfg.Auth.TokenTTLHours)
	cfg.Auth.AllowLegacyPlaintext = getEnvAsBool("AUTH_ALLOW_LEGACY_PLAINTEXT", cfg.Auth.AllowLegacyPlaintext)

	cfg.MySQL.Host = getEnv("MYSQL_HOST", cfg.MySQL.Host)
	cfg.MySQL.Port = getEnvAsInt("MYSQL_PORT", cfg.MySQL.Port)
	cfg.MySQL.User = getEnv("MYSQL_USER", cfg.MySQL.User)
	cfg.MySQL.Password = getEnv("MYSQL_PASSWORD", cfg.MySQL.Password)
	cfg.MySQL.DB = getEnv("MYSQL_DB", cfg.MySQL.DB)
	cfg.MySQL.Params = getEnv("MYSQL_PARAMS", cfg.MySQL.Params)

	if raw, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok && raw != "" {
		origins := strings.Split(raw, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORS.AllowedOrigins = origins
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
