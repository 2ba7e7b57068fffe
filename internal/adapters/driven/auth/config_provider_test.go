package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/reflets-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/reflets-cli/internal/core/domain"
	"github.com/custodia-labs/reflets-cli/internal/core/services"
)

func TestConfigTokenProvider_ReadsEveryCall(t *testing.T) {
	t.Setenv(services.EnvAPIToken, "")
	store := memory.NewConfigStore()
	p := NewConfigTokenProvider(services.NewSettingsService(store))

	_ = store.Set(services.KeyAPIToken, "first")
	first, err := p.GetToken(context.Background())
	require.NoError(t, err)

	_ = store.Set(services.KeyAPIToken, "second")
	second, err := p.GetToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "first", first)
	assert.Equal(t, "second", second)
	assert.Equal(t, 2, store.Loads())
	assert.True(t, p.IsAuthenticated())
}

type failingLoader struct{ err error }

func (f failingLoader) Load() (domain.Settings, error) { return domain.Settings{}, f.err }

func TestConfigTokenProvider_Errors(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		p := NewConfigTokenProvider(failingLoader{})
		_, err := p.GetToken(context.Background())
		assert.ErrorIs(t, err, domain.ErrAuthRequired)
		assert.False(t, p.IsAuthenticated())
	})

	t.Run("load fails", func(t *testing.T) {
		boom := errors.New("unreadable")
		_, err := NewConfigTokenProvider(failingLoader{err: boom}).GetToken(context.Background())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no loader", func(t *testing.T) {
		_, err := NewConfigTokenProvider(nil).GetToken(context.Background())
		assert.ErrorIs(t, err, domain.ErrAuthRequired)
	})
}

func TestStaticTokenProvider(t *testing.T) {
	token, err := NewStaticTokenProvider(" abc ").GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	empty := NewStaticTokenProvider("")
	_, err = empty.GetToken(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	assert.False(t, empty.IsAuthenticated())
}
