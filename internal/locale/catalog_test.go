package locale

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replsite/messages"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, []Locale{EnglishNZ, EnglishUS, French, ChineseTW, ChineseSG, German}, c.Locales())
	assert.Equal(t, "Français", c.Name(French))
	assert.Equal(t, "漢語", c.Name(ChineseTW))
	assert.Equal(t, "中文", c.Name(ChineseSG))
	assert.True(t, c.Supported(German))
	assert.False(t, c.Supported("xx-yy"))
	assert.False(t, c.Supported("zh-hant"))
	assert.Empty(t, c.Name("xx-yy"))
}

func TestCatalogEntriesIsCopy(t *testing.T) {
	c := DefaultCatalog()
	entries := c.Entries()
	entries[0].Name = "changed"

	assert.Equal(t, "English", c.Name(EnglishNZ))
	assert.Equal(t, "English", c.Entries()[0].Name)
}

func TestCatalogMatch(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		header string
		want   Locale
	}{
		{header: "", want: EnglishNZ},
		{header: "garbage;;;", want: EnglishNZ},
		{header: "fr-CA,fr;q=0.9,en;q=0.5", want: French},
		{header: "en-US,en;q=0.9", want: EnglishUS},
		{header: "de-DE", want: German},
		{header: "zh-TW", want: ChineseTW},
		{header: "ja-JP", want: EnglishNZ},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Match(tt.header))
		})
	}
}

func TestFSLoaderEmbeddedBundles(t *testing.T) {
	c := DefaultCatalog()
	loader := NewFSLoader(messages.FS, ".", c)

	for _, l := range c.Locales() {
		t.Run(string(l), func(t *testing.T) {
			msgs, err := loader.Load(context.Background(), l)
			require.NoError(t, err)
			assert.NotEmpty(t, msgs)
		})
	}

	msgs, err := loader.Load(context.Background(), EnglishNZ)
	require.NoError(t, err)
	title, ok := msgs.Lookup("Home", "title")
	assert.True(t, ok)
	assert.NotEmpty(t, title)
}

func TestFSLoaderRejectsOutsideCatalog(t *testing.T) {
	fsys := fstest.MapFS{
		"bundles/xx-yy.toml": {Data: []byte(`title = "x"`)},
	}
	loader := NewFSLoader(fsys, "bundles", DefaultCatalog())

	_, err := loader.Load(context.Background(), "xx-yy")

	assert.True(t, errors.Is(err, ErrLocaleNotFound))
}

func TestFSLoaderMissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, ".", DefaultCatalog())

	_, err := loader.Load(context.Background(), French)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, French, nf.Locale)
}

func TestFSLoaderDecodesNestedTables(t *testing.T) {
	fsys := fstest.MapFS{
		"fr.toml": {Data: []byte("title = \"Accueil\"\n\n[Home]\ntitle = \"Bonjour\"\n")},
	}
	loader := NewFSLoader(fsys, "", nil)

	msgs, err := loader.Load(context.Background(), French)

	require.NoError(t, err)
	assert.Equal(t, Messages{
		"title": "Accueil",
		"Home":  map[string]any{"title": "Bonjour"},
	}, msgs)
}

func TestFSLoaderBadTOML(t *testing.T) {
	fsys := fstest.MapFS{"fr.toml": {Data: []byte("title = ")}}
	loader := NewFSLoader(fsys, ".", nil)

	_, err := loader.Load(context.Background(), French)

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrLocaleNotFound))
}
