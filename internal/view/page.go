package view

import "acronymer/internal/domain"

// Page composes every fragment into the landing page
type Page struct {
	Lang          string
	TitleKey      domain.TranslationKey
	About         SectionLabel
	Quote         QuoteSection
	Contact       SectionLabel
	ContactHeader ContactFormHeader
	Loading       LoadingState
	Now           domain.DateTime
}

// NewPage builds the landing page with the site's keys and defaults
func NewPage(lang string, now domain.DateTime) Page {
	return Page{
		Lang:     lang,
		TitleKey: domain.KeySectionAcronyms,
		About: SectionLabel{
			Text: TranslatedText{Key: domain.KeySectionAbout, Default: "About", Class: "section-label__text"},
		},
		Quote: QuoteSection{
			Quote:  TranslatedText{Key: domain.KeyQuoteText, Class: "quote-section__text"},
			Author: TranslatedText{Key: domain.KeyQuoteAuthor, Class: "quote-section__name"},
		},
		Contact: SectionLabel{
			Text: TranslatedText{Key: domain.KeySectionContact, Default: "Contact", Class: "section-label__text"},
		},
		ContactHeader: ContactFormHeader{
			Title:    TranslatedText{Key: domain.KeyContactTitle, Default: "Get in touch"},
			Subtitle: TranslatedText{Key: domain.KeyContactSubtitle},
		},
		Loading: LoadingState{
			Label: TranslatedText{Key: domain.KeyLoading, Default: "Loading...", Class: "loading-state__label"},
		},
		Now: now,
	}
}
