package credential_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/dmitrymomot/notifystream/pkg/credential"
	"github.com/dmitrymomot/notifystream/pkg/logger"
)

type failingStorage struct{ err error }

func (f failingStorage) Get(context.Context, string) (string, error) {
	return "", f.err
}

func newResolver(session, persistent map[string]string) *credential.Resolver {
	return credential.NewResolver(
		credential.WithSessionStorage(credential.NewMemoryStorage(session)),
		credential.WithPersistentStorage(credential.NewMemoryStorage(persistent)),
		credential.WithLogger(logger.Discard()),
	)
}

func TestResolver_ExplicitWins(t *testing.T) {
	t.Parallel()

	r := newResolver(map[string]string{"accessToken": "stored"}, nil)

	token, ok := r.Resolve(context.Background(), credential.StaticToken("abc"))
	require.True(t, ok)
	assert.Equal(t, "abc", token)

	res, ok := r.Describe(context.Background(), credential.StaticToken("abc"))
	require.True(t, ok)
	assert.True(t, res.Explicit())
	assert.Equal(t, "explicit", res.String())
}

func TestResolver_ExplicitPlaceholderFallsThrough(t *testing.T) {
	t.Parallel()

	r := newResolver(map[string]string{"token": "stored"}, nil)

	for _, explicit := range []string{"", "  ", "null", "undefined", "NULL"} {
		token, ok := r.Resolve(context.Background(), credential.StaticToken(explicit))
		require.True(t, ok, explicit)
		assert.Equal(t, "stored", token, explicit)
	}
}

func TestResolver_ExplicitErrorFallsThrough(t *testing.T) {
	t.Parallel()

	r := newResolver(map[string]string{"token": "stored"}, nil)
	src := credential.TokenFunc(func(context.Context) (string, error) {
		return "", errors.New("refresh failed")
	})

	token, ok := r.Resolve(context.Background(), src)
	require.True(t, ok)
	assert.Equal(t, "stored", token)
}

func TestResolver_SessionBeforePersistent(t *testing.T) {
	t.Parallel()

	r := newResolver(
		map[string]string{"buyerToken": "session-token"},
		map[string]string{"accessToken": "persistent-token"},
	)

	res, ok := r.Describe(context.Background(), nil)
	require.True(t, ok)
	assert.Equal(t, "session-token", res.Token)
	assert.Equal(t, credential.TierSession, res.Tier)
	assert.Equal(t, "buyerToken", res.Key)
}

func TestResolver_KeyOrder(t *testing.T) {
	t.Parallel()

	r := newResolver(map[string]string{"sellerToken": "seller", "token": "plain"}, nil)

	token, ok := r.Resolve(context.Background(), nil)
	require.True(t, ok)
	assert.Equal(t, "plain", token)
}

func TestResolver_PlaceholdersSkipped(t *testing.T) {
	t.Parallel()

	r := newResolver(
		map[string]string{"accessToken": "undefined", "token": "null"},
		map[string]string{"adminToken": "admin"},
	)

	res, ok := r.Describe(context.Background(), nil)
	require.True(t, ok)
	assert.Equal(t, "admin", res.Token)
	assert.Equal(t, "persistent/adminToken", res.String())
}

func TestResolver_AuthRecord(t *testing.T) {
	t.Parallel()

	t.Run("flat keys win over record", func(t *testing.T) {
		r := newResolver(
			map[string]string{"auth": `{"token":"from-record"}`},
			map[string]string{"token": "flat"},
		)
		token, ok := r.Resolve(context.Background(), nil)
		require.True(t, ok)
		assert.Equal(t, "flat", token)
	})

	t.Run("embedded field", func(t *testing.T) {
		r := newResolver(nil, map[string]string{"auth": `{"user":"u1","access_token":"rec"}`})
		res, ok := r.Describe(context.Background(), nil)
		require.True(t, ok)
		assert.Equal(t, "rec", res.Token)
		assert.Equal(t, "auth.access_token", res.Key)
	})

	t.Run("session record before persistent record", func(t *testing.T) {
		r := newResolver(
			map[string]string{"auth": `{"accessToken":"s"}`},
			map[string]string{"auth": `{"accessToken":"p"}`},
		)
		token, ok := r.Resolve(context.Background(), nil)
		require.True(t, ok)
		assert.Equal(t, "s", token)
	})

	t.Run("malformed record ignored", func(t *testing.T) {
		r := newResolver(map[string]string{"auth": `{not json`}, nil)
		_, ok := r.Resolve(context.Background(), nil)
		assert.False(t, ok)
	})

	t.Run("record without token", func(t *testing.T) {
		r := newResolver(map[string]string{"auth": `{"token":"null"}`}, nil)
		_, ok := r.Resolve(context.Background(), nil)
		assert.False(t, ok)
	})
}

func TestResolver_NothingFound(t *testing.T) {
	t.Parallel()

	r := newResolver(nil, nil)
	token, ok := r.Resolve(context.Background(), nil)
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestResolver_StorageFailureTreatedAsAbsent(t *testing.T) {
	t.Parallel()

	r := credential.NewResolver(
		credential.WithSessionStorage(failingStorage{err: errors.New("storage disabled")}),
		credential.WithPersistentStorage(credential.NewMemoryStorage(map[string]string{"token": "ok"})),
		credential.WithLogger(logger.Discard()),
	)

	token, ok := r.Resolve(context.Background(), nil)
	require.True(t, ok)
	assert.Equal(t, "ok", token)
}

func TestResolver_CustomKeys(t *testing.T) {
	t.Parallel()

	r := credential.NewResolver(
		credential.WithSessionStorage(credential.NewMemoryStorage(map[string]string{"jwt": "custom", "token": "default"})),
		credential.WithKeys("jwt"),
		credential.WithLogger(logger.Discard()),
	)

	token, ok := r.Resolve(context.Background(), nil)
	require.True(t, ok)
	assert.Equal(t, "custom", token)
}

func TestFromOAuth2(t *testing.T) {
	t.Parallel()

	src := credential.FromOAuth2(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "oauth-token"}))
	r := newResolver(map[string]string{"token": "stored"}, nil)

	token, ok := r.Resolve(context.Background(), src)
	require.True(t, ok)
	assert.Equal(t, "oauth-token", token)
}

func TestIsPlaceholder(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"", " ", "null", "Null", "undefined", " UNDEFINED "} {
		assert.True(t, credential.IsPlaceholder(v), v)
	}
	for _, v := range []string{"abc", "nil", "0"} {
		assert.False(t, credential.IsPlaceholder(v), v)
	}
}
