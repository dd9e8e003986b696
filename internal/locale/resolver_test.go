package locale

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLoader 记录加载顺序
type recordingLoader struct {
	inner Loader
	calls []Locale
}

func (r *recordingLoader) Load(ctx context.Context, l Locale) (Messages, error) {
	r.calls = append(r.calls, l)
	return r.inner.Load(ctx, l)
}

func fixtureLoader() MapLoader {
	return MapLoader{
		EnglishNZ: {"title": "Home", "subtitle": "Welcome", "Home": map[string]any{"title": "Home", "loading": "Starting..."}},
		EnglishUS: {"subtitle": "Welcome!"},
		French:    {"title": "Accueil", "Home": map[string]any{"title": "Accueil"}},
		German:    {"title": "Startseite"},
		ChineseTW: {"title": "首頁(繁)", "only_tw": "繁"},
		ChineseSG: {"title": "首页(简)", "only_sg": "简"},
	}
}

func TestResolveEnglishNZIsIdentity(t *testing.T) {
	loader := fixtureLoader()
	rec := &recordingLoader{inner: loader}
	r := NewResolver(rec, DefaultPolicy())

	got, err := r.Resolve(context.Background(), EnglishNZ)

	require.NoError(t, err)
	assert.Equal(t, loader[EnglishNZ], got)
	assert.Equal(t, []Locale{EnglishNZ}, rec.calls)
}

func TestResolveMergesOnTopOfBase(t *testing.T) {
	loader := fixtureLoader()
	r := NewResolver(loader, DefaultPolicy())

	for _, l := range []Locale{EnglishUS, French, German} {
		t.Run(string(l), func(t *testing.T) {
			got, err := r.Resolve(context.Background(), l)
			require.NoError(t, err)
			assert.Equal(t, Merge(loader[EnglishNZ], loader[l]), got)
		})
	}
}

func TestResolveFrenchKeepsBaseKeys(t *testing.T) {
	r := NewResolver(MapLoader{
		EnglishNZ: {"title": "Home", "subtitle": "Welcome"},
		French:    {"title": "Accueil"},
	}, DefaultPolicy())

	got, err := r.Resolve(context.Background(), French)

	require.NoError(t, err)
	assert.Equal(t, Messages{"title": "Accueil", "subtitle": "Welcome"}, got)
}

func TestResolveChinesePrecedence(t *testing.T) {
	loader := MapLoader{
		ChineseTW: {"greeting": "你好(繁)"},
		ChineseSG: {"greeting": "你好(简)", "farewell": "再见"},
		"zh-hant": {"greeting": "您好"},
		EnglishNZ: {"greeting": "Hello", "farewell": "Bye"},
	}
	rec := &recordingLoader{inner: loader}
	r := NewResolver(rec, DefaultPolicy())

	got, err := r.Resolve(context.Background(), "zh-hant")

	require.NoError(t, err)
	assert.Equal(t, Messages{"greeting": "您好", "farewell": "再见"}, got)
	assert.Equal(t, []Locale{"zh-hant", ChineseTW, ChineseSG, EnglishNZ}, rec.calls)
}

func TestResolveChineseMatchesFormula(t *testing.T) {
	loader := fixtureLoader()
	r := NewResolver(loader, DefaultPolicy())

	for _, l := range []Locale{ChineseTW, ChineseSG} {
		t.Run(string(l), func(t *testing.T) {
			got, err := r.Resolve(context.Background(), l)
			require.NoError(t, err)

			want := Merge(loader[EnglishNZ], Merge(Merge(loader[ChineseTW], loader[ChineseSG]), loader[l]))
			assert.Equal(t, want, got)
		})
	}

	// zh-tw 自身覆盖 zh-sg
	got, err := r.Resolve(context.Background(), ChineseTW)
	require.NoError(t, err)
	assert.Equal(t, "首頁(繁)", got["title"])
	assert.Equal(t, "简", got["only_sg"])
	assert.Equal(t, "Welcome", got["subtitle"])
}

func TestResolveUnknownLocale(t *testing.T) {
	r := NewResolver(fixtureLoader(), DefaultPolicy())

	got, err := r.Resolve(context.Background(), "xx-yy")

	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLocaleNotFound))

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, Locale("xx-yy"), nf.Locale)
}

func TestResolveMissingFallback(t *testing.T) {
	tests := []struct {
		name    string
		drop    Locale
		request Locale
	}{
		{name: "base", drop: EnglishNZ, request: French},
		{name: "zh-tw", drop: ChineseTW, request: ChineseSG},
		{name: "zh-sg", drop: ChineseSG, request: ChineseTW},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := fixtureLoader()
			delete(loader, tt.drop)
			r := NewResolver(loader, DefaultPolicy())

			got, err := r.Resolve(context.Background(), tt.request)

			assert.Nil(t, got)
			var nf *NotFoundError
			require.True(t, errors.As(err, &nf))
			assert.Equal(t, tt.drop, nf.Locale)
		})
	}
}

func TestResolveWrapsLoaderError(t *testing.T) {
	boom := errors.New("disk on fire")
	r := NewResolver(LoaderFunc(func(ctx context.Context, l Locale) (Messages, error) {
		return nil, boom
	}), DefaultPolicy())

	_, err := r.Resolve(context.Background(), French)

	assert.ErrorIs(t, err, ErrLocaleNotFound)
	assert.ErrorIs(t, err, boom)
}

func TestResolveCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewResolver(fixtureLoader(), DefaultPolicy())

	_, err := r.Resolve(ctx, French)

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrLocaleNotFound)
}

func TestResolveDoesNotAliasLoaderBundles(t *testing.T) {
	shared := Messages{"Home": map[string]any{"title": "Home"}}
	r := NewResolver(LoaderFunc(func(ctx context.Context, l Locale) (Messages, error) {
		if l == EnglishNZ {
			return shared, nil
		}
		return Messages{"Home": map[string]any{"title": "Accueil"}}, nil
	}), DefaultPolicy())

	got, err := r.Resolve(context.Background(), French)
	require.NoError(t, err)
	got["Home"].(map[string]any)["title"] = "mutated"

	assert.Equal(t, "Home", shared["Home"].(map[string]any)["title"])
}

func TestResolveCustomPolicy(t *testing.T) {
	loader := MapLoader{
		"pt-br": {"a": "br"},
		"pt-pt": {"a": "pt", "b": "pt"},
		"en":    {"a": "en", "b": "en", "c": "en"},
	}
	r := NewResolver(loader, FallbackPolicy{
		Rules: []FallbackRule{{Prefix: "pt", Chain: []Locale{"pt-pt"}}},
		Base:  "en",
	})

	got, err := r.Resolve(context.Background(), "pt-br")

	require.NoError(t, err)
	assert.Equal(t, Messages{"a": "br", "b": "pt", "c": "en"}, got)
}
