package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/notifystream/pkg/config"
	"github.com/dmitrymomot/notifystream/pkg/environment"
	"github.com/dmitrymomot/notifystream/pkg/httpserver"
	"github.com/dmitrymomot/notifystream/pkg/logger"
	"github.com/dmitrymomot/notifystream/pkg/notifier"
	"github.com/dmitrymomot/notifystream/pkg/redis"
)

const envPrefix = "NOTIFY_"

// Flags holds global options and the configuration loaded in Before.
type Flags struct {
	EnvFile     string
	Env         string
	LogLevel    string
	LogFormat   string
	Credentials string
	BaseURL     string
	Token       string

	Notify notifier.Config
	HTTP   httpserver.Config
	Redis  redis.Config
	Logger *slog.Logger
}

func (f *Flags) cliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "env-file",
			Usage:       "dotenv file with NOTIFY_* settings",
			Sources:     cli.EnvVars("NOTIFY_ENV_FILE"),
			Destination: &f.EnvFile,
		},
		&cli.StringFlag{
			Name:        "env",
			Usage:       "deployment environment (development, staging, production)",
			Sources:     cli.EnvVars("NOTIFY_ENV"),
			Value:       string(environment.Development),
			Destination: &f.Env,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error); defaults per environment",
			Sources:     cli.EnvVars("NOTIFY_LOG_LEVEL"),
			Destination: &f.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (json, text); defaults per environment",
			Sources:     cli.EnvVars("NOTIFY_LOG_FORMAT"),
			Destination: &f.LogFormat,
		},
		&cli.StringFlag{
			Name:        "credentials",
			Usage:       "credentials file (.env, .yaml or .json) used as the persistent tier",
			Sources:     cli.EnvVars("NOTIFY_CREDENTIALS_FILE"),
			Value:       "~/.config/notifystream/credentials.yaml",
			Destination: &f.Credentials,
		},
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "marketplace API base URL",
			Destination: &f.BaseURL,
		},
		&cli.StringFlag{
			Name:        "token",
			Usage:       "explicit bearer token; overrides stored credentials",
			Destination: &f.Token,
		},
	}
}

func (f *Flags) setup(ctx context.Context) (context.Context, error) {
	var files []string
	if f.EnvFile != "" {
		files = append(files, f.EnvFile)
	}

	if err := config.LoadWithPrefix(&f.Notify, envPrefix, files...); err != nil {
		return ctx, fmt.Errorf("load notifier config: %w", err)
	}
	if err := config.LoadWithPrefix(&f.HTTP, envPrefix, files...); err != nil {
		return ctx, fmt.Errorf("load http config: %w", err)
	}
	if err := config.LoadWithPrefix(&f.Redis, envPrefix, files...); err != nil {
		return ctx, fmt.Errorf("load redis config: %w", err)
	}

	if f.BaseURL != "" {
		f.Notify.BaseURL = f.BaseURL
	}
	if f.Token != "" {
		f.Notify.Token = f.Token
	}

	log, err := f.newLogger()
	if err != nil {
		return ctx, err
	}
	f.Logger = log
	logger.SetAsDefault(log)

	return ctx, nil
}

func (f *Flags) newLogger() (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithOutput(os.Stderr),
		logger.WithEnvironment(f.Env, "notifyd"),
	}
	if f.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.TrimSpace(f.LogLevel))); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", f.LogLevel, err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	switch format := logger.Format(f.LogFormat); format {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(format))
	default:
		return nil, fmt.Errorf("invalid log format %q", f.LogFormat)
	}
	return logger.New(opts...), nil
}
