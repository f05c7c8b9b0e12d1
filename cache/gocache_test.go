package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoCache_Basic(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)

	cache.Set("price:btc:eth", []byte("65000"), 0)
	cache.Set("price:pepe:eth", []byte("0.00001"), 0)

	data, ok := cache.Get("price:btc:eth")
	assert.True(t, ok)
	assert.Equal(t, []byte("65000"), data)

	_, ok = cache.Get("price:missing:eth")
	assert.False(t, ok)

	assert.Equal(t, 2, cache.ItemCount())
}

func TestGoCache_Clear(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)
	cache.Set("key1", []byte("value1"), 0)
	cache.Set("key2", []byte("value2"), 0)
	assert.Equal(t, 2, cache.ItemCount())

	cache.Clear()
	assert.Equal(t, 0, cache.ItemCount())
}

func TestGoCache_Expiration(t *testing.T) {
	cache := NewGoCache(5*time.Minute, 10*time.Minute)

	cache.Set("short", []byte("expires soon"), 100*time.Millisecond)
	cache.Set("forever", []byte("never expires"), -1)

	_, ok := cache.Get("short")
	assert.True(t, ok)

	time.Sleep(150 * time.Millisecond)

	_, ok = cache.Get("short")
	assert.False(t, ok)
	data, ok := cache.Get("forever")
	assert.True(t, ok)
	assert.Equal(t, []byte("never expires"), data)
}
