package i18n

import (
	"sync"

	"golang.org/x/text/language"

	"acronymer/internal/domain"
)

// LanguageContext holds a mutable current language and notifies
// subscribers when it changes
type LanguageContext struct {
	translator *Translator

	mu        sync.RWMutex
	current   language.Tag
	listeners map[int]func(language.Tag)
	nextID    int
}

// NewLanguageContext starts at the best supported match for tag
func NewLanguageContext(translator *Translator, tag language.Tag) *LanguageContext {
	return &LanguageContext{
		translator: translator,
		current:    translator.Match(tag),
		listeners:  make(map[int]func(language.Tag)),
	}
}

// Language returns the current language
func (c *LanguageContext) Language() language.Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// SetLanguage switches to the best supported match for tag and reports
// whether the language changed. Subscribers run after the switch.
func (c *LanguageContext) SetLanguage(tag language.Tag) bool {
	next := c.translator.Match(tag)

	c.mu.Lock()
	if next == c.current {
		c.mu.Unlock()
		return false
	}
	c.current = next
	listeners := make([]func(language.Tag), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
	return true
}

// Subscribe registers fn for language changes and returns its cancel func
func (c *LanguageContext) Subscribe(fn func(language.Tag)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Resolve implements Resolver against the current language
func (c *LanguageContext) Resolve(key domain.TranslationKey) (string, bool) {
	return c.translator.Localize(c.Language(), key, nil)
}

// T returns the translation for key, or empty
func (c *LanguageContext) T(key domain.TranslationKey) string {
	return Text(c, key, "")
}
