package telegram

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-concierge-agent/internal/agent/orchestrator"
	"hotel-concierge-agent/internal/conversation"
	"hotel-concierge-agent/internal/model"
	"hotel-concierge-agent/internal/pms"
	pkgResponse "hotel-concierge-agent/pkg/response"
	pkgTelegram "hotel-concierge-agent/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects an ack within a few seconds, but a
// full agent turn (classification + tool rounds) can take longer.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edited messages, polls, etc.)
	if update.Message == nil || update.Message.From == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	if h.security.checkDuplicate(update.UpdateID) {
		h.l.Infof(ctx, "telegram handler: duplicate update %d ignored", update.UpdateID)
		pkgResponse.OK(c, map[string]string{"status": "duplicate"})
		return
	}

	if err := h.security.checkRateLimit(update.Message.Chat.ID); err != nil {
		h.l.Warnf(ctx, "telegram handler: %v", err)
		pkgResponse.TooManyRequests(c)
		return
	}

	// Snapshot the message before spawning the goroutine to avoid data races
	// on the gin context.
	msg := update.Message

	go func() {
		// Detach from the HTTP request context, which is cancelled right
		// after the ack below.
		bgCtx := context.Background()
		defer func() {
			if r := recover(); r != nil {
				h.l.Errorf(bgCtx, "telegram handler: panic processing message: %v", r)
				_ = h.bot.SendMessage(msg.Chat.ID, technicalDifficultyReply)
			}
		}()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, technicalDifficultyReply)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}
	guestPhone := strconv.FormatInt(msg.From.ID, 10)

	switch msg.Text {
	case "/start":
		return h.bot.SendMessage(msg.Chat.ID, startReply)
	case "/help":
		return h.bot.SendMessage(msg.Chat.ID, helpReply)
	case "/reset":
		if err := h.convs.Reset(ctx, guestPhone); err != nil {
			return err
		}
		return h.bot.SendMessage(msg.Chat.ID, resetReply)
	}

	conv, err := h.convs.GetOrCreate(ctx, h.hotelID, guestPhone, model.PlatformTelegram)
	if err != nil {
		return err
	}

	// Link a booking by phone if the conversation doesn't carry one yet.
	if conv.BookingID == nil {
		booking, err := h.pms.GetBookingByPhone(ctx, guestPhone)
		switch {
		case errors.Is(err, pms.ErrNotFound):
			// guest without a booking
		case err != nil:
			h.l.Warnf(ctx, "telegram handler: booking lookup failed: %v", err)
		default:
			if err := h.convs.LinkBooking(ctx, conv.ID, booking.ID); err != nil {
				h.l.Warnf(ctx, "telegram handler: link booking failed: %v", err)
			}
		}
	}

	out, agentErr := h.orch.ProcessMessage(ctx, orchestrator.ProcessInput{
		ConversationID: conv.ID,
		GuestPhone:     guestPhone,
		Message:        msg.Text,
	})

	responseText := technicalDifficultyReply
	intent := "error"
	metadata := map[string]interface{}{}
	if agentErr != nil {
		h.l.Errorf(ctx, "telegram handler: agent error: %v", agentErr)
		metadata["error"] = agentErr.Error()
	} else {
		responseText = out.Response
		intent = out.Intent
		metadata = out.Metadata
	}

	// Persist the turn after the agent ran so the live message is not
	// duplicated into the transcript the agent just read.
	if _, err := h.convs.AddMessage(ctx, conv.ID, conversation.AddMessageInput{
		Role:    model.RoleUser,
		Content: msg.Text,
	}); err != nil {
		h.l.Errorf(ctx, "telegram handler: persist user message failed: %v", err)
	}
	if _, err := h.convs.AddMessage(ctx, conv.ID, conversation.AddMessageInput{
		Role:     model.RoleAssistant,
		Content:  responseText,
		Intent:   intent,
		Metadata: metadata,
	}); err != nil {
		h.l.Errorf(ctx, "telegram handler: persist assistant message failed: %v", err)
	}

	if err := h.bot.SendMessage(msg.Chat.ID, responseText); err != nil {
		return err
	}
	h.l.Infof(ctx, "telegram handler: response sent to %s (intent=%s)", guestPhone, intent)
	return nil
}
