package i18n

import "acronymer/internal/domain"

// Resolver maps a translation key to localized text
type Resolver interface {
	Resolve(key domain.TranslationKey) (string, bool)
}

// Text resolves key through r and falls back to def when the lookup
// yields nothing. Unresolvable keys are never an error.
func Text(r Resolver, key domain.TranslationKey, def string) string {
	if r != nil {
		if s, ok := r.Resolve(key); ok && s != "" {
			return s
		}
	}
	return def
}

// Table is a fixed translation table
type Table map[domain.TranslationKey]string

// Resolve implements Resolver
func (t Table) Resolve(key domain.TranslationKey) (string, bool) {
	s, ok := t[key]
	return s, ok
}
