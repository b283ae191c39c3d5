package domain

// TranslationKey identifies a localized display string
type TranslationKey string

const (
	KeySectionAbout    TranslationKey = "section.about"
	KeySectionAcronyms TranslationKey = "section.acronyms"
	KeySectionContact  TranslationKey = "section.contact"

	KeyQuoteText   TranslationKey = "quote.text"
	KeyQuoteAuthor TranslationKey = "quote.author"

	KeyContactTitle    TranslationKey = "contact.title"
	KeyContactSubtitle TranslationKey = "contact.subtitle"

	KeyLoading TranslationKey = "loading.text"

	KeyAcronymFullName    TranslationKey = "acronym.full_name"
	KeyAcronymDescription TranslationKey = "acronym.description"
	KeyAcronymCategory    TranslationKey = "acronym.category"
	KeyAcronymNotFound    TranslationKey = "acronym.not_found"

	KeyBotWelcome         TranslationKey = "bot.welcome"
	KeyBotLanguageChanged TranslationKey = "bot.language_changed"
	KeyBotLanguageUnknown TranslationKey = "bot.language_unknown"
	KeyBotError           TranslationKey = "bot.error"

	KeyToastAcronymCreated TranslationKey = "toast.acronym_created"
	KeyToastVoteRecorded   TranslationKey = "toast.vote_recorded"
)

var knownTranslationKeys = []TranslationKey{
	KeySectionAbout,
	KeySectionAcronyms,
	KeySectionContact,
	KeyQuoteText,
	KeyQuoteAuthor,
	KeyContactTitle,
	KeyContactSubtitle,
	KeyLoading,
	KeyAcronymFullName,
	KeyAcronymDescription,
	KeyAcronymCategory,
	KeyAcronymNotFound,
	KeyBotWelcome,
	KeyBotLanguageChanged,
	KeyBotLanguageUnknown,
	KeyBotError,
	KeyToastAcronymCreated,
	KeyToastVoteRecorded,
}

// KnownTranslationKeys returns a copy of the closed key set
func KnownTranslationKeys() []TranslationKey {
	out := make([]TranslationKey, len(knownTranslationKeys))
	copy(out, knownTranslationKeys)
	return out
}

// IsKnown reports whether k belongs to the key set
func (k TranslationKey) IsKnown() bool {
	for _, known := range knownTranslationKeys {
		if k == known {
			return true
		}
	}
	return false
}
