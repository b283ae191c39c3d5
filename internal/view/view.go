// Package view renders the site's presentational fragments.
//
// Every visible string goes through TranslatedText so it can be looked
// up in the active language and fall back to a default.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"acronymer/internal/domain"
	"acronymer/internal/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

// Fragment names a renderable template
type Fragment string

const (
	FragmentTranslatedText    Fragment = "translated_text"
	FragmentSectionLabel      Fragment = "section_label"
	FragmentQuoteSection      Fragment = "quote_section"
	FragmentContactFormHeader Fragment = "contact_form_header"
	FragmentLoadingState      Fragment = "loading_state"
	FragmentPage              Fragment = "page"
)

// TranslatedText is a key rendered in the active language, or Default
// when the key has no translation
type TranslatedText struct {
	Key     domain.TranslationKey
	Default string
	Class   string
}

// SectionLabel is a small heading above a section
type SectionLabel struct {
	Text TranslatedText
}

// QuoteSection shows a quotation and its author
type QuoteSection struct {
	Quote  TranslatedText
	Author TranslatedText
}

// ContactFormHeader introduces the contact form
type ContactFormHeader struct {
	Title    TranslatedText
	Subtitle TranslatedText
}

// LoadingState is a spinner with a label
type LoadingState struct {
	Label TranslatedText
}

// Renderer executes the embedded templates
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("view").
		Funcs(translateFuncs(nil)).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func translateFuncs(r i18n.Resolver) template.FuncMap {
	return template.FuncMap{
		"t": func(key domain.TranslationKey, def string) string {
			return i18n.Text(r, key, def)
		},
	}
}

// Render writes fragment with data, resolving text through r
func (rd *Renderer) Render(w io.Writer, r i18n.Resolver, fragment Fragment, data any) error {
	tmpl, err := rd.tmpl.Clone()
	if err != nil {
		return fmt.Errorf("clone templates: %w", err)
	}
	tmpl.Funcs(translateFuncs(r))

	if err := tmpl.ExecuteTemplate(w, string(fragment), data); err != nil {
		return fmt.Errorf("render %s: %w", fragment, err)
	}
	return nil
}
