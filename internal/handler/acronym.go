package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"acronymer/internal/domain"
	"acronymer/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	lookupLimit   = 5
	lookupTimeout = 5 * time.Second
)

// handleText looks the message up as an acronym
func (h *Handler) handleText(c tele.Context) error {
	chatID := c.Chat().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if text == "" || strings.HasPrefix(text, "/") {
		return nil
	}

	lc := h.Language(chatID)

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	page, err := h.acronyms.List(ctx, domain.AcronymQuery{Search: text, Limit: lookupLimit})
	if err != nil {
		h.logger.Error("Failed to look up acronym",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.String("query", text),
		)
		return c.Send(i18n.Text(lc, domain.KeyBotError, "Something went wrong. Please try again later."))
	}

	if len(page.Acronyms) == 0 {
		return c.Send(i18n.Text(lc, domain.KeyAcronymNotFound, "No acronym matches your search."))
	}

	h.logger.Debug("Acronym lookup",
		zap.Int64("chat_id", chatID),
		zap.String("query", text),
		zap.Int("results", len(page.Acronyms)),
	)

	for _, a := range page.Acronyms {
		if err := c.Send(formatAcronym(lc, a), voteMarkup(a.ID)); err != nil {
			return err
		}
	}
	return nil
}

// formatAcronym renders a with labels in the resolver's language
func formatAcronym(r i18n.Resolver, a domain.Acronym) string {
	var b strings.Builder
	b.WriteString(a.Acronym)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s: %s\n", i18n.Text(r, domain.KeyAcronymFullName, "Full name"), a.FullName)
	if a.Description != "" {
		fmt.Fprintf(&b, "%s: %s\n", i18n.Text(r, domain.KeyAcronymDescription, "Description"), a.Description)
	}
	fmt.Fprintf(&b, "%s: %s", i18n.Text(r, domain.KeyAcronymCategory, "Category"), a.Category)
	if a.Likes > 0 || a.Dislikes > 0 {
		fmt.Fprintf(&b, "\n👍 %d  👎 %d", a.Likes, a.Dislikes)
	}
	return b.String()
}
