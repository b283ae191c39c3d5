package handler

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"acronymer/internal/domain"
	"acronymer/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, tele.ErrSameMessageContent) || strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("chat_id", c.Chat().ID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("chat_id", c.Chat().ID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

func (h *Handler) handleLike(c tele.Context) error {
	return h.handleVote(c, domain.VoteLike)
}

func (h *Handler) handleDislike(c tele.Context) error {
	return h.handleVote(c, domain.VoteDislike)
}

// handleVote records a vote and redraws the acronym card
func (h *Handler) handleVote(c tele.Context, vote domain.Vote) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	chatID := c.Chat().ID
	id := cleanCallbackData(callback.Data)
	lc := h.Language(chatID)

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	a, err := h.acronyms.Vote(ctx, id, string(vote))
	if err != nil {
		h.logger.Error("Failed to record vote",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.String("acronym_id", id),
		)
		return c.Respond(&tele.CallbackResponse{
			Text: i18n.Text(lc, domain.KeyBotError, "Something went wrong. Please try again later."),
		})
	}

	text := formatAcronym(lc, *a)
	if err := c.Edit(text, voteMarkup(a.ID)); err != nil {
		if handleErr := h.handleEditError(err, c); handleErr == nil {
			return nil
		}
		return c.Send(text, voteMarkup(a.ID))
	}

	return c.Respond(&tele.CallbackResponse{
		Text: i18n.Text(lc, domain.KeyToastVoteRecorded, "Thanks for your vote"),
	})
}

// handleCallback acknowledges callbacks no button handler claimed
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", cleanCallbackData(callback.Data)),
		zap.String("unique", callback.Unique),
		zap.Int64("chat_id", c.Chat().ID),
	)
	return c.Respond()
}
