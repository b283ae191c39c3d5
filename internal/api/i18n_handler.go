package api

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"acronymer/internal/domain"
	"acronymer/internal/i18n"
	"acronymer/internal/view"
)

// TranslationResponse is the body of GET /translations/{key}
type TranslationResponse struct {
	Key      domain.TranslationKey `json:"key"`
	Text     string                `json:"text"`
	Language string                `json:"language"`
	Found    bool                  `json:"found"`
}

// LocaleHandler serves translations, the localized date and the landing page
type LocaleHandler struct {
	translator *i18n.Translator
	renderer   *view.Renderer
	now        func(language.Tag) domain.DateTime
	logger     *zap.Logger
}

func NewLocaleHandler(translator *i18n.Translator, renderer *view.Renderer, logger *zap.Logger) *LocaleHandler {
	return &LocaleHandler{
		translator: translator,
		renderer:   renderer,
		now:        domain.CurrentDateTimeIn,
		logger:     logger,
	}
}

func (h *LocaleHandler) RegisterRoutes(r chi.Router) {
	r.Get("/translations/{key}", h.getTranslation) // GET /api/v1/translations/section.about?default=About
	r.Get("/datetime", h.getDateTime)
}

func (h *LocaleHandler) language(r *http.Request) language.Tag {
	if tag, ok := LanguageFromContext(r.Context()); ok {
		return tag
	}
	tag, _ := ResolveLanguage(h.translator, r)
	return tag
}

// locale is the client's own locale, used for date layouts
func (h *LocaleHandler) locale(r *http.Request) language.Tag {
	if tag, ok := LocaleFromContext(r.Context()); ok {
		return tag
	}
	if tag, ok := RequestedLocale(r); ok {
		return tag
	}
	return h.language(r)
}

func (h *LocaleHandler) getTranslation(w http.ResponseWriter, r *http.Request) {
	key := domain.TranslationKey(chi.URLParam(r, "key"))
	def := r.URL.Query().Get("default")
	tag := h.language(r)

	text, found := h.translator.Localize(tag, key, nil)
	if !found {
		text = def
	}

	RespondWithJSON(w, http.StatusOK, TranslationResponse{
		Key:      key,
		Text:     text,
		Language: tag.String(),
		Found:    found,
	})
}

func (h *LocaleHandler) getDateTime(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, h.now(h.locale(r)))
}

// ServeIndex renders the landing page in the request language
func (h *LocaleHandler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	tag := h.language(r)

	var buf bytes.Buffer
	page := view.NewPage(tag.String(), h.now(h.locale(r)))
	if err := h.renderer.Render(&buf, h.translator.For(tag), view.FragmentPage, page); err != nil {
		h.logger.Error("Failed to render page", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
