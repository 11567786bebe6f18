package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const defaultJWTSecret = "supersecret"

var schemaName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Config holds everything the server process reads from the environment.
type Config struct {
	Env  string
	Port string

	DB          DBConfig
	StoreDriver string

	JWTSecret string
	JWTTTL    time.Duration

	RedisURL string
	CacheTTL time.Duration

	LogFile  string
	LogLevel string

	LoginRatePerMin int
	CORSOrigins     []string

	// Admin seeded into the in-memory store.
	SeedAdminEmail    string
	SeedAdminPassword string
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	Schema      string
	SSLMode     string
	TimeZone    string
	AutoMigrate bool

	sslModeSet bool
}

// DSN is the lib/pq keyword/value connection string. The schema is applied as
// the session search_path so unqualified table names resolve inside it.
func (d DBConfig) DSN() string {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode, d.TimeZone,
	)
	if d.Schema != "" {
		dsn += " search_path=" + d.Schema
	}
	return dsn
}

// Load reads .env (if present) and the process environment, then validates the result.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, relying on env vars")
	}

	var parseErrs []error
	c := Config{
		Env:         strings.ToLower(getEnv("APP_ENV", "development")),
		Port:        getEnv("APP_PORT", "8080"),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", "postgres")),
		JWTSecret:   getEnv("JWT_SECRET", defaultJWTSecret),
		RedisURL:    strings.TrimSpace(getEnv("REDIS_URL", "")),
		LogFile:     getEnv("LOG_FILE", "./logs/app.log"),
		LogLevel:    getEnv("LOG_LEVEL", "debug"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "")),

		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", ""),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "password"),
			Name:     getEnv("DB_NAME", "vtpartner"),
			Schema:   strings.TrimSpace(getEnv("DB_SCHEMA", "vtpartner")),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			TimeZone: getEnv("DB_TIMEZONE", "UTC"),
		},
	}
	_, c.DB.sslModeSet = os.LookupEnv("DB_SSLMODE")

	var err error
	if c.DB.AutoMigrate, err = getBool("DB_AUTOMIGRATE", false); err != nil {
		parseErrs = append(parseErrs, err)
	}
	if c.JWTTTL, err = getDuration("JWT_TTL", 24*time.Hour); err != nil {
		parseErrs = append(parseErrs, err)
	}
	if c.CacheTTL, err = getDuration("CACHE_TTL", 5*time.Minute); err != nil {
		parseErrs = append(parseErrs, err)
	}
	if c.LoginRatePerMin, err = getInt("LOGIN_RATE_PER_MIN", 10); err != nil {
		parseErrs = append(parseErrs, err)
	}

	if err := errors.Join(parseErrs...); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var errs []error

	if n, err := strconv.Atoi(c.Port); err != nil || n <= 0 || n > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT must be a valid port, got %q", c.Port))
	}
	switch c.StoreDriver {
	case "postgres":
		if c.DB.Host == "" {
			errs = append(errs, errors.New("DB_HOST is required"))
		}
		if c.DB.Name == "" {
			errs = append(errs, errors.New("DB_NAME is required"))
		}
		if c.DB.Schema != "" && !schemaName.MatchString(c.DB.Schema) {
			errs = append(errs, fmt.Errorf("DB_SCHEMA must be a lowercase identifier, got %q", c.DB.Schema))
		}
	case "memory":
		if c.SeedAdminEmail != "" && c.SeedAdminPassword == "" {
			errs = append(errs, errors.New("SEED_ADMIN_PASSWORD is required with SEED_ADMIN_EMAIL"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER must be postgres or memory, got %q", c.StoreDriver))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	if c.CacheTTL <= 0 {
		errs = append(errs, errors.New("CACHE_TTL must be positive"))
	}
	if c.LoginRatePerMin <= 0 {
		errs = append(errs, errors.New("LOGIN_RATE_PER_MIN must be positive"))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	if c.IsProduction() {
		if c.JWTSecret == defaultJWTSecret {
			errs = append(errs, errors.New("JWT_SECRET must be set in production"))
		}
		if c.StoreDriver == "postgres" && !c.DB.sslModeSet {
			errs = append(errs, errors.New("DB_SSLMODE must be set explicitly in production"))
		}
		if c.StoreDriver == "memory" {
			errs = append(errs, errors.New("STORE_DRIVER=memory is not allowed in production"))
		}
	}

	return errors.Join(errs...)
}

func (c Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func getInt(key string, def int) (int, error) {
	v := strings.TrimSpace(getEnv(key, ""))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func getBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(getEnv(key, ""))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, v)
	}
	return b, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(getEnv(key, ""))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration, got %q", key, v)
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
