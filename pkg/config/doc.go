// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv, which loads optional .env files into the
// process environment without overriding variables that are already set, and
// github.com/caarlos0/env/v11, which parses the environment into a struct
// using field tags.
//
// # Usage
//
//	type Config struct {
//	    BaseURL        string        `env:"BASE_URL"`
//	    ReconnectDelay time.Duration `env:"RECONNECT_DELAY" envDefault:"5s"`
//	}
//
//	var cfg Config
//	if err := config.LoadWithPrefix(&cfg, "NOTIFY_"); err != nil {
//	    return err
//	}
//
// Without explicit files the default ".env" in the working directory is read
// when present. Explicitly listed files must exist.
//
// # Errors
//
//   - ErrNilPointer: a nil pointer was passed.
//   - ErrLoadingEnvFile: an explicitly listed file could not be read.
//   - ErrParsingConfig: the environment could not be parsed into the struct.
package config
