package handler

import (
	"fmt"
	"strings"

	"acronymer/internal/domain"
	"acronymer/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	chatID := c.Chat().ID

	h.logger.Info("User started bot",
		zap.Int64("chat_id", chatID),
		zap.String("username", c.Sender().Username),
	)

	lc := h.Language(chatID)
	return c.Send(i18n.Text(lc, domain.KeyBotWelcome, "Send me an acronym and I will tell you what it stands for."))
}

// handleLang handles /lang <code>
func (h *Handler) handleLang(c tele.Context) error {
	chatID := c.Chat().ID
	code := parseLangArg(c.Message().Payload)

	if code == "" {
		return c.Send(languageList(h.Language(chatID).Language().String(), h.supportedCodes()))
	}

	if _, ok := h.SetLanguage(chatID, code); !ok {
		lc := h.Language(chatID)
		msg := i18n.Text(lc, domain.KeyBotLanguageUnknown, "This language is not supported.")
		return c.Send(msg + "\n" + languageList(lc.Language().String(), h.supportedCodes()))
	}

	return c.Send(i18n.Text(h.Language(chatID), domain.KeyBotLanguageChanged, "Language updated."))
}

func (h *Handler) supportedCodes() []string {
	tags := h.translator.Languages()
	codes := make([]string, 0, len(tags))
	for _, tag := range tags {
		codes = append(codes, tag.String())
	}
	return codes
}

// parseLangArg extracts the language code from a /lang payload
func parseLangArg(payload string) string {
	fields := strings.Fields(payload)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

func languageList(current string, codes []string) string {
	return fmt.Sprintf("%s [%s]", current, strings.Join(codes, ", "))
}
