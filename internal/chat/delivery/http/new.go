package http

import (
	"hr-agent/internal/chat"
	"hr-agent/pkg/log"
)

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates the chat HTTP handler.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
