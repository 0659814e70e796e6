package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/passgen/passgen-api/internal/crypto"
)

// Limits bounds the work a single request may ask for.
type Limits struct {
	MinLength     int
	MaxLength     int
	DefaultLength int
	MaxCount      int
	DefaultCount  int
}

type Config struct {
	Port           string
	Env            string
	SentryDSN      string
	AllowedOrigins []string
	Limits         Limits
	CategoryPolicy crypto.CategoryPolicy
}

// DefaultLimits returns the limits used when no overrides are set.
func DefaultLimits() Limits {
	return Limits{
		MinLength:     4,
		MaxLength:     128,
		DefaultLength: 16,
		MaxCount:      100,
		DefaultCount:  5,
	}
}

func Load() (Config, error) {
	defaults := DefaultLimits()

	var errs []error
	intEnv := func(key string, fallback int) int {
		v, err := getEnvInt(key, fallback)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}

	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		SentryDSN:      getEnv("SENTRY_DSN", ""),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		Limits: Limits{
			MinLength:     intEnv("PASSWORD_MIN_LENGTH", defaults.MinLength),
			MaxLength:     intEnv("PASSWORD_MAX_LENGTH", defaults.MaxLength),
			DefaultLength: intEnv("PASSWORD_DEFAULT_LENGTH", defaults.DefaultLength),
			MaxCount:      intEnv("PASSWORD_MAX_COUNT", defaults.MaxCount),
			DefaultCount:  intEnv("PASSWORD_DEFAULT_COUNT", defaults.DefaultCount),
		},
	}
	if len(errs) > 0 {
		return Config{}, errs[0]
	}

	policy, err := crypto.ParseCategoryPolicy(getEnv("EMPTY_CATEGORY_POLICY", "skip"))
	if err != nil {
		return Config{}, err
	}
	cfg.CategoryPolicy = policy

	if err := cfg.Limits.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with ENV=production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate rejects limits that contradict each other.
func (l Limits) Validate() error {
	switch {
	case l.MinLength < 1:
		return fmt.Errorf("PASSWORD_MIN_LENGTH must be at least 1, got %d", l.MinLength)
	case l.MaxLength < l.MinLength:
		return fmt.Errorf("PASSWORD_MAX_LENGTH (%d) must not be below PASSWORD_MIN_LENGTH (%d)", l.MaxLength, l.MinLength)
	case l.DefaultLength < l.MinLength || l.DefaultLength > l.MaxLength:
		return fmt.Errorf("PASSWORD_DEFAULT_LENGTH (%d) must be between %d and %d", l.DefaultLength, l.MinLength, l.MaxLength)
	case l.MaxCount < 1:
		return fmt.Errorf("PASSWORD_MAX_COUNT must be at least 1, got %d", l.MaxCount)
	case l.DefaultCount < 1 || l.DefaultCount > l.MaxCount:
		return fmt.Errorf("PASSWORD_DEFAULT_COUNT (%d) must be between 1 and %d", l.DefaultCount, l.MaxCount)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
