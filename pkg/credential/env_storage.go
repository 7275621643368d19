package credential

import (
	"context"
	"os"
	"strings"
	"unicode"
)

// EnvStorage reads keys from the process environment. Keys are converted to
// upper snake case and prefixed, so "accessToken" with prefix "NOTIFY_" is
// read from NOTIFY_ACCESS_TOKEN.
type EnvStorage struct {
	prefix string
}

// NewEnvStorage creates an environment-backed storage.
func NewEnvStorage(prefix string) *EnvStorage {
	return &EnvStorage{prefix: prefix}
}

func (e *EnvStorage) Get(ctx context.Context, key string) (string, error) {
	v, ok := os.LookupEnv(e.VarName(key))
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// VarName returns the environment variable consulted for key.
func (e *EnvStorage) VarName(key string) string {
	var b strings.Builder
	b.WriteString(e.prefix)

	prevLower := false
	for _, r := range key {
		switch {
		case r == '-' || r == '.' || r == ' ':
			b.WriteByte('_')
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			prevLower = false
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	return b.String()
}
