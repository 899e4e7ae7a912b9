package config

import (
	stderrors "errors"
	"fmt"
	"log"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" validate:"oneof=DEBUG INFO WARN ERROR"`
	Backend  string `env:"FLASHCARDS_BACKEND" validate:"oneof=memory sqlite"`
	Shuffle  bool   `env:"FLASHCARDS_SHUFFLE"`
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults that reproduce the plain interactive program when nothing is set.
func Load() Config {
	// Ignore error so the program still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		LogLevel: strings.ToUpper(envOr("LOG_LEVEL", "WARN")),
		Backend:  strings.ToLower(envOr("FLASHCARDS_BACKEND", BackendMemory)),
		Shuffle:  envBoolOr("FLASHCARDS_SHUFFLE", true),
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// Validate checks the configuration and reports every invalid variable by its
// environment name. Log level and backend are compared case-insensitively.
func (c Config) Validate() error {
	normalized := c
	normalized.LogLevel = strings.ToUpper(c.LogLevel)
	normalized.Backend = strings.ToLower(c.Backend)

	err := validate.Struct(normalized)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s=%q must be one of [%s]", fe.Field(), fe.Value(), fe.Param()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
