package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	defaultPort          = "5000"
	defaultJWTExpiration = 24
	defaultStaticDir     = "client/build"
)

// Config holds the process-wide settings. It is built once at startup and
// passed by value to whoever needs it.
type Config struct {
	DatabaseURL        string
	JWTSecret          string
	JWTExpirationHours int64 // 0 means tokens never expire
	Port               string
	Env                string
	StaticDir          string
}

// IsProduction reports whether the process runs in production mode
func (c Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Load reads the configuration from environment variables
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:               getenv("PORT"),
		Env:                getenv("APP_ENV"),
		StaticDir:          getenv("STATIC_DIR"),
		JWTSecret:          getenv("JWT_SECRET_KEY"),
		JWTExpirationHours: defaultJWTExpiration,
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET_KEY not set in environment")
	}

	if raw := getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		hours, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || hours < 0 {
			return Config{}, fmt.Errorf("invalid JWT_EXPIRATION_HOURS %q", raw)
		}
		cfg.JWTExpirationHours = hours
	}

	dsn, err := databaseURL(getenv)
	if err != nil {
		return Config{}, err
	}
	cfg.DatabaseURL = dsn

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = EnvDevelopment
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = defaultStaticDir
	}
	return cfg, nil
}

// databaseURL prefers DATABASE_URL and falls back to the discrete DB_* variables
func databaseURL(getenv func(string) string) (string, error) {
	if url := getenv("DATABASE_URL"); url != "" {
		return url, nil
	}

	dbHost := getenv("DB_HOST")
	dbPort := getenv("DB_PORT")
	dbUser := getenv("DB_USER")
	dbPassword := getenv("DB_PASSWORD")
	dbName := getenv("DB_NAME")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbName == "" {
		return "", errors.New("database environment variables not set (DATABASE_URL or DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName), nil
}
