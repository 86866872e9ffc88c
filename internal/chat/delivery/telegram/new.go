package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"hr-agent/internal/chat"
	pkgLog "hr-agent/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender delivers a reply to a chat. *pkg/telegram.Bot implements it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type handler struct {
	l   pkgLog.Logger
	uc  chat.UseCase
	bot Sender
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase, bot Sender) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}
