package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"hr-agent/internal/chat"
)

// Handle runs router, extractor, dispatcher and formatter in that order.
// Dispatch failures are answers, not errors: they come back with Success=false
// and a ❌ reply. Only an empty message or a route missing from the catalog
// return an error.
func (uc *implUseCase) Handle(ctx context.Context, input chat.HandleInput) (chat.HandleOutput, error) {
	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		return chat.HandleOutput{}, chat.ErrEmptyMessage
	}

	conversationID := input.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	match := uc.router.Match(ctx, msg)
	route, err := uc.cat.Resolve(match.RouteID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: router returned %s: %v", chat.LogPrefixHandle, match.RouteID, err)
		return chat.HandleOutput{}, fmt.Errorf("%w: %s", chat.ErrUnknownRoute, match.RouteID)
	}

	args := uc.extractor.Extract(ctx, msg, route)
	res := uc.dispatcher.Dispatch(ctx, route, args)
	reply := uc.formatter.Format(ctx, route.ID, res)

	uc.l.Infof(ctx, "%s: conversation=%s route=%s confidence=%.2f success=%t",
		chat.LogPrefixHandle, conversationID, route.ID, match.Confidence, res.Success)

	return chat.HandleOutput{
		Success:        res.Success,
		Response:       reply,
		Error:          res.Error,
		RouteID:        route.ID,
		APICalled:      res.APICalled(),
		Data:           res.Data,
		Intent:         chat.IntentHRAction,
		Confidence:     match.Confidence,
		Fallback:       match.Fallback,
		ConversationID: conversationID,
	}, nil
}
