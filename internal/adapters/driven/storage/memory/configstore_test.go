package memory

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("pappers.api_key", "original"))
	require.NoError(t, store.Set("pappers.api_key", "updated"))

	val, ok := store.Get("pappers.api_key")
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("s", "text")
	_ = store.Set("i", 5)
	_ = store.Set("i64", int64(7))
	_ = store.Set("f", 2.5)
	_ = store.Set("b", true)

	assert.Equal(t, "text", store.GetString("s"))
	assert.Equal(t, "", store.GetString("i"))
	assert.Equal(t, 5, store.GetInt("i"))
	assert.Equal(t, 7, store.GetInt("i64"))
	assert.Equal(t, 2, store.GetInt("f"))
	assert.Equal(t, 0, store.GetInt("s"))
	assert.InDelta(t, 2.5, store.GetFloat("f"), 0.0001)
	assert.InDelta(t, 5.0, store.GetFloat("i"), 0.0001)
	assert.InDelta(t, 7.0, store.GetFloat("i64"), 0.0001)
	assert.Zero(t, store.GetFloat("b"))
	assert.True(t, store.GetBool("b"))
	assert.False(t, store.GetBool("s"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_Load_CountsCalls(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("k", "v")

	require.NoError(t, store.Load())
	require.NoError(t, store.Load())

	assert.Equal(t, 2, store.Loads())
	assert.Equal(t, "v", store.GetString("k"))
}

func TestConfigStore_FailLoad(t *testing.T) {
	store := NewConfigStore()
	boom := errors.New("disk on fire")
	store.FailLoad(boom)

	assert.ErrorIs(t, store.Load(), boom)
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("counter", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("counter")
			_ = store.Load()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.Loads())
}
