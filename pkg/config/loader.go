package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load reads the given .env files (or the default ".env" if none are given)
// and parses the environment into v.
func Load[T any](v *T, files ...string) error {
	return LoadWithPrefix(v, "", files...)
}

// LoadWithPrefix works like Load but prepends prefix to every env tag.
func LoadWithPrefix[T any](v *T, prefix string, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	if err := loadEnvFiles(files...); err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, files ...string) {
	if err := Load(v, files...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func loadEnvFiles(files ...string) error {
	if len(files) == 0 {
		// The default file is optional.
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}
