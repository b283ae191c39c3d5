package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"acronymer/internal/domain"
)

//go:embed locales/active.*.toml
var localeFS embed.FS

const localePattern = "locales/active.*.toml"

// Translator wraps a go-i18n bundle loaded from TOML catalogs
type Translator struct {
	bundle          *goi18n.Bundle
	defaultLanguage language.Tag
	matcher         language.Matcher
	supported       []language.Tag
	logger          *zap.Logger
}

// NewTranslator loads the embedded catalogs with defaultLocale as the
// bundle's fallback language
func NewTranslator(defaultLocale string, logger *zap.Logger) (*Translator, error) {
	return NewTranslatorFromFS(localeFS, localePattern, defaultLocale, logger)
}

// NewTranslatorFromFS loads every catalog in fsys matching pattern.
// File names must carry the language tag, e.g. active.fr.toml.
func NewTranslatorFromFS(fsys fs.FS, pattern, defaultLocale string, logger *zap.Logger) (*Translator, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}

	bundle := goi18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	paths, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale catalogs match %q", pattern)
	}

	for _, path := range paths {
		if _, err := bundle.LoadMessageFileFS(fsys, path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	supported := bundle.LanguageTags()

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		matcher:         language.NewMatcher(supported),
		supported:       supported,
		logger:          logger,
	}, nil
}

// DefaultLanguage returns the fallback language
func (t *Translator) DefaultLanguage() language.Tag {
	return t.defaultLanguage
}

// Languages returns the languages that have a catalog
func (t *Translator) Languages() []language.Tag {
	out := make([]language.Tag, len(t.supported))
	copy(out, t.supported)
	return out
}

// Match picks the best supported language for the given preferences,
// falling back to the default language
func (t *Translator) Match(tags ...language.Tag) language.Tag {
	if len(tags) == 0 {
		return t.defaultLanguage
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.defaultLanguage
	}
	return t.supported[idx]
}

// ParseLanguage parses value and reports whether a supported language matches it
func (t *Translator) ParseLanguage(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return t.defaultLanguage, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return t.defaultLanguage, false
	}
	_, idx, conf := t.matcher.Match(tag)
	if conf == language.No {
		return t.defaultLanguage, false
	}
	return t.supported[idx], true
}

// Localize renders key for tag. Missing keys fall back to the default
// language; ok is false when no catalog has a non-empty value.
func (t *Translator) Localize(tag language.Tag, key domain.TranslationKey, data map[string]any) (string, bool) {
	if key == "" {
		return "", false
	}

	localizer := goi18n.NewLocalizer(t.bundle, tag.String(), t.defaultLanguage.String())
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    string(key),
		TemplateData: data,
	})
	if err != nil {
		// go-i18n returns the default-language message together with
		// MessageNotFoundErr when only the requested language lacks key
		var notFound *goi18n.MessageNotFoundErr
		if errors.As(err, &notFound) && msg != "" {
			t.logger.Debug("Translation fell back to default language",
				zap.String("key", string(key)),
				zap.String("language", tag.String()),
			)
			return msg, true
		}
		t.logger.Debug("Translation missing",
			zap.String("key", string(key)),
			zap.String("language", tag.String()),
			zap.Error(err),
		)
		return "", false
	}
	if msg == "" {
		return "", false
	}
	return msg, true
}

// For returns a Resolver bound to tag
func (t *Translator) For(tag language.Tag) *Localizer {
	return &Localizer{translator: t, tag: tag}
}

var _ Resolver = (*Localizer)(nil)

// Localizer resolves keys in a fixed language
type Localizer struct {
	translator *Translator
	tag        language.Tag
}

// Language returns the bound language
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// Resolve implements Resolver
func (l *Localizer) Resolve(key domain.TranslationKey) (string, bool) {
	return l.translator.Localize(l.tag, key, nil)
}
