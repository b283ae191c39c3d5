package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// LanguageStore keeps the language of each chat
type LanguageStore interface {
	EnsureLanguage(chatID int64, code string)
}

// LanguageMiddleware seeds a chat's language from the sender's
// Telegram client language the first time the chat is seen
func LanguageMiddleware(store LanguageStore, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chat := c.Chat()
			if chat == nil {
				logger.Debug("Update without chat, skipping language")
				return next(c)
			}

			code := ""
			if sender := c.Sender(); sender != nil {
				code = sender.LanguageCode
			}
			store.EnsureLanguage(chat.ID, code)

			return next(c)
		}
	}
}
