package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"acronymer/internal/domain"
)

func newTestTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := NewTranslator("en", zap.NewNop())
	require.NoError(t, err)
	return tr
}

func TestNewTranslator_LoadsEmbeddedCatalogs(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, language.English, tr.DefaultLanguage())
	assert.ElementsMatch(t,
		[]language.Tag{language.English, language.French, language.Spanish},
		tr.Languages(),
	)
}

func TestNewTranslator_InvalidDefaultFallsBackToEnglish(t *testing.T) {
	tr, err := NewTranslator("not a tag!", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, language.English, tr.DefaultLanguage())
}

func TestNewTranslatorFromFS_NoCatalogs(t *testing.T) {
	_, err := NewTranslatorFromFS(fstest.MapFS{}, "locales/*.toml", "en", zap.NewNop())
	assert.Error(t, err)
}

func TestNewTranslatorFromFS_BadCatalog(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/active.en.toml": {Data: []byte("this is = = not toml")},
	}
	_, err := NewTranslatorFromFS(fsys, "locales/*.toml", "en", zap.NewNop())
	assert.Error(t, err)
}

func TestTranslator_Localize(t *testing.T) {
	tr := newTestTranslator(t)

	tests := []struct {
		name     string
		tag      language.Tag
		key      domain.TranslationKey
		expected string
		found    bool
	}{
		{
			name:     "english key",
			tag:      language.English,
			key:      domain.KeyContactTitle,
			expected: "Get in touch",
			found:    true,
		},
		{
			name:     "french key",
			tag:      language.French,
			key:      domain.KeyContactTitle,
			expected: "Contactez-nous",
			found:    true,
		},
		{
			name:     "regional variant matches base catalog",
			tag:      language.MustParse("fr-CA"),
			key:      domain.KeyLoading,
			expected: "Chargement...",
			found:    true,
		},
		{
			name:     "missing in spanish falls back to default language",
			tag:      language.Spanish,
			key:      domain.KeyQuoteAuthor,
			expected: "Unknown",
			found:    true,
		},
		{
			name:     "unknown key",
			tag:      language.French,
			key:      domain.TranslationKey("nope.nothing"),
			expected: "",
			found:    false,
		},
		{
			name:     "empty key",
			tag:      language.English,
			key:      "",
			expected: "",
			found:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := tr.Localize(tt.tag, tt.key, nil)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, msg)
		})
	}
}

func TestTranslator_EveryKnownKeyHasDefaultText(t *testing.T) {
	tr := newTestTranslator(t)

	for _, key := range domain.KnownTranslationKeys() {
		msg, ok := tr.Localize(language.English, key, nil)
		assert.True(t, ok, string(key))
		assert.NotEmpty(t, msg, string(key))
	}
}

func TestTranslator_Match(t *testing.T) {
	tr := newTestTranslator(t)

	assert.Equal(t, language.French, tr.Match(language.MustParse("fr-BE")))
	assert.Equal(t, language.Spanish, tr.Match(language.German, language.Spanish))
	assert.Equal(t, language.English, tr.Match(language.Japanese))
	assert.Equal(t, language.English, tr.Match())
}

func TestTranslator_ParseLanguage(t *testing.T) {
	tr := newTestTranslator(t)

	tests := []struct {
		name     string
		value    string
		expected language.Tag
		ok       bool
	}{
		{name: "supported", value: "fr", expected: language.French, ok: true},
		{name: "regional", value: "es-MX", expected: language.Spanish, ok: true},
		{name: "unsupported", value: "de", expected: language.English, ok: false},
		{name: "garbage", value: "%%%", expected: language.English, ok: false},
		{name: "empty", value: "  ", expected: language.English, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, ok := tr.ParseLanguage(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, tag)
		})
	}
}

func TestLocalizer_Resolve(t *testing.T) {
	tr := newTestTranslator(t)
	l := tr.For(language.French)

	assert.Equal(t, language.French, l.Language())

	msg, ok := l.Resolve(domain.KeySectionAbout)
	assert.True(t, ok)
	assert.Equal(t, "À propos", msg)
}

func TestText_FallsBackThroughDefaultLanguageBeforeCallerDefault(t *testing.T) {
	tr := newTestTranslator(t)
	es := tr.For(language.Spanish)

	// quote.author is absent from the Spanish catalog
	assert.Equal(t, "Unknown", Text(es, domain.KeyQuoteAuthor, ""))
	assert.Equal(t, "Unknown", Text(es, domain.KeyQuoteAuthor, "Anónimo"))
	assert.Equal(t, "Acerca de", Text(es, domain.KeySectionAbout, "About"))
	assert.Equal(t, "Fallback", Text(es, domain.TranslationKey("nope.nothing"), "Fallback"))
}
