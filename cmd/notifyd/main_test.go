package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out

	require.NoError(t, app.Run(context.Background(), append([]string{"notifyd"}, args...)))
	return out.String()
}

func TestTokenCmd_Explicit(t *testing.T) {
	out := runApp(t,
		"--credentials", filepath.Join(t.TempDir(), "missing.yaml"),
		"--token", "secret-token",
		"token",
	)
	assert.Contains(t, out, "credential resolved from explicit")
	assert.NotContains(t, out, "secret-token")
}

func TestTokenCmd_CredentialsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auth:\n  accessToken: from-file\n"), 0o600))

	out := runApp(t, "--credentials", path, "--log-format", "text", "token")
	assert.Contains(t, out, "credential resolved from persistent/auth.accessToken")
	assert.NotContains(t, out, "from-file")
}

func TestFlags_InvalidLogFormat(t *testing.T) {
	f := &Flags{Env: "production", LogFormat: "xml"}
	_, err := f.newLogger()
	assert.Error(t, err)

	f.LogFormat = "json"
	log, err := f.newLogger()
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestFlags_LogLevel(t *testing.T) {
	f := &Flags{Env: "production", LogLevel: "verbose"}
	_, err := f.newLogger()
	assert.Error(t, err)

	f.LogLevel = "warn"
	log, err := f.newLogger()
	require.NoError(t, err)
	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, log.Enabled(context.Background(), slog.LevelWarn))
}

func TestRequestLogger_SingleEnvAttr(t *testing.T) {
	var buf bytes.Buffer
	log := newRequestLogger(&buf, "production")

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-1")
	log.InfoContext(ctx, "request handled")

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, `"env":`))
	assert.Contains(t, out, `"env":"production"`)
	assert.Contains(t, out, `"request_id":"req-1"`)
}
