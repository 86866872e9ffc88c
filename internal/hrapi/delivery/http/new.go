package http

import (
	"hr-agent/internal/dispatcher"
	"hr-agent/pkg/log"
)

type handler struct {
	l  log.Logger
	uc dispatcher.UseCase
}

// New creates the HR API handler. It shares the dispatcher with the chat
// pipeline so both surfaces send the same Data Service requests.
func New(l log.Logger, uc dispatcher.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
