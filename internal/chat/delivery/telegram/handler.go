package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"hr-agent/internal/chat"
	pkgLog "hr-agent/pkg/log"
	pkgResponse "hr-agent/pkg/response"
	pkgTelegram "hr-agent/pkg/telegram"
)

const startMessage = "👋 Xin chào! Tôi là trợ lý nhân sự.\n" +
	"Gửi yêu cầu như \"Danh sách nhân viên\" hoặc \"Check in nhân viên 7\".\n" +
	"Gõ /help để xem hướng dẫn, /suggestions để xem ví dụ."

// HandleWebhook answers Telegram at once and processes the message in the
// background, detached from the request context.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err)
		return
	}

	// Ignore non-message updates (edits, channel posts, ...)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := pkgLog.WithRequestID(context.Background(), pkgLog.RequestID(ctx))
	go func() {
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch strings.Fields(text)[0] {
	case "/start":
		return h.bot.SendMessage(ctx, msg.Chat.ID, startMessage)
	case "/help":
		return h.bot.SendMessage(ctx, msg.Chat.ID, h.uc.Help(ctx))
	case "/suggestions":
		return h.bot.SendMessage(ctx, msg.Chat.ID, "💡 "+strings.Join(h.uc.Suggestions(ctx), "\n💡 "))
	}

	out, err := h.uc.Handle(ctx, chat.HandleInput{
		Message:        text,
		ConversationID: fmt.Sprintf("telegram_%d", msg.Chat.ID),
	})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: uc.Handle: %v", err)
		reply := "❌ Có lỗi xảy ra khi xử lý yêu cầu của bạn. Vui lòng thử lại."
		if errors.Is(err, chat.ErrEmptyMessage) {
			reply = "⚠️ Tin nhắn trống."
		}
		return h.bot.SendMessage(ctx, msg.Chat.ID, reply)
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, out.Response)
}
