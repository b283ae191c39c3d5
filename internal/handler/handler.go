package handler

import (
	"sync"

	"acronymer/internal/i18n"
	"acronymer/internal/service"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	acronyms   *service.AcronymService
	translator *i18n.Translator
	logger     *zap.Logger

	// Per-chat language, in memory
	chats   map[int64]*i18n.LanguageContext
	chatMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	acronyms *service.AcronymService,
	translator *i18n.Translator,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:        bot,
		acronyms:   acronyms,
		translator: translator,
		logger:     logger,
		chats:      make(map[int64]*i18n.LanguageContext),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/lang", h.handleLang)

	// Text messages are acronym lookups
	h.bot.Handle(tele.OnText, h.handleText)

	// Vote buttons carry the acronym id as data
	h.bot.Handle(&btnLike, h.handleLike)
	h.bot.Handle(&btnDislike, h.handleDislike)

	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// EnsureLanguage creates the chat's language context from code unless
// one already exists
func (h *Handler) EnsureLanguage(chatID int64, code string) {
	h.chatMux.RLock()
	_, exists := h.chats[chatID]
	h.chatMux.RUnlock()
	if exists {
		return
	}

	tag, _ := h.translator.ParseLanguage(code)

	h.chatMux.Lock()
	defer h.chatMux.Unlock()
	if _, exists := h.chats[chatID]; exists {
		return
	}

	lc := i18n.NewLanguageContext(h.translator, tag)
	lc.Subscribe(func(next language.Tag) {
		h.logger.Info("Chat language changed",
			zap.Int64("chat_id", chatID),
			zap.String("language", next.String()),
		)
	})
	h.chats[chatID] = lc
}

// Language returns the chat's language context, creating one in the
// default language if needed
func (h *Handler) Language(chatID int64) *i18n.LanguageContext {
	h.chatMux.RLock()
	lc, exists := h.chats[chatID]
	h.chatMux.RUnlock()
	if exists {
		return lc
	}

	h.EnsureLanguage(chatID, "")

	h.chatMux.RLock()
	defer h.chatMux.RUnlock()
	return h.chats[chatID]
}

// SetLanguage switches the chat's language and reports whether code
// names a supported language
func (h *Handler) SetLanguage(chatID int64, code string) (language.Tag, bool) {
	tag, ok := h.translator.ParseLanguage(code)
	if !ok {
		return h.Language(chatID).Language(), false
	}
	lc := h.Language(chatID)
	lc.SetLanguage(tag)
	return lc.Language(), true
}

// Inline keyboard buttons
var (
	btnLike = tele.Btn{
		Unique: "like",
		Text:   "👍",
	}
	btnDislike = tele.Btn{
		Unique: "dislike",
		Text:   "👎",
	}
)

// voteMarkup returns like/dislike buttons for an acronym
func voteMarkup(acronymID string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data(btnLike.Text, btnLike.Unique, acronymID),
			markup.Data(btnDislike.Text, btnDislike.Unique, acronymID),
		),
	)
	return markup
}
