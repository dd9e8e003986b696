package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replsite/internal/locale"
)

func TestLRUGetSet(t *testing.T) {
	c := NewLRU(4, time.Minute)
	ctx := context.Background()

	_, ok := c.Get(ctx, locale.French)
	assert.False(t, ok)

	c.Set(ctx, locale.French, locale.Messages{"title": "Accueil"})

	got, ok := c.Get(ctx, locale.French)
	require.True(t, ok)
	assert.Equal(t, locale.Messages{"title": "Accueil"}, got)
	assert.Equal(t, DriverLRU, c.Driver())
}

func TestLRUReturnsCopies(t *testing.T) {
	c := NewLRU(4, time.Minute)
	ctx := context.Background()
	stored := locale.Messages{"Home": map[string]any{"title": "Accueil"}}
	c.Set(ctx, locale.French, stored)

	stored["Home"].(map[string]any)["title"] = "changed after set"
	got, ok := c.Get(ctx, locale.French)
	require.True(t, ok)
	got["Home"].(map[string]any)["title"] = "changed after get"

	again, ok := c.Get(ctx, locale.French)
	require.True(t, ok)
	assert.Equal(t, "Accueil", again["Home"].(map[string]any)["title"])
}

func TestLRUEvictsAndPurges(t *testing.T) {
	c := NewLRU(2, 0)
	ctx := context.Background()

	c.Set(ctx, locale.French, locale.Messages{"a": "1"})
	c.Set(ctx, locale.German, locale.Messages{"a": "2"})
	c.Set(ctx, locale.EnglishUS, locale.Messages{"a": "3"})

	_, ok := c.Get(ctx, locale.French)
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())

	c.Purge(ctx)
	assert.Equal(t, 0, c.Len())
}

func TestNoop(t *testing.T) {
	var c Cache = Noop{}
	c.Set(context.Background(), locale.French, locale.Messages{"a": "1"})

	_, ok := c.Get(context.Background(), locale.French)
	assert.False(t, ok)
	assert.Equal(t, DriverNone, c.Driver())
}
