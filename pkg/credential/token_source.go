package credential

import (
	"context"

	"golang.org/x/oauth2"
)

// TokenSource supplies an explicit token that takes precedence over storage.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a fixed token.
type StaticToken string

func (s StaticToken) Token(context.Context) (string, error) {
	return string(s), nil
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

func (f TokenFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// FromOAuth2 uses the access token of an oauth2.TokenSource, refreshing it
// through the source as needed.
func FromOAuth2(ts oauth2.TokenSource) TokenSource {
	return TokenFunc(func(context.Context) (string, error) {
		t, err := ts.Token()
		if err != nil {
			return "", err
		}
		return t.AccessToken, nil
	})
}
