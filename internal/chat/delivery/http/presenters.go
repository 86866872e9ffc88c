package http

import (
	"strings"

	"hr-agent/internal/chat"
)

// --- Request DTOs ---

type agentReq struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
}

func (r agentReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return chat.ErrEmptyMessage
	}
	return nil
}

func (r agentReq) toInput() chat.HandleInput {
	return chat.HandleInput{
		Message:        r.Message,
		ConversationID: r.ConversationID,
	}
}

// --- Response DTOs ---

type agentResp struct {
	Success        bool    `json:"success"`
	Response       string  `json:"response"`
	APICalled      string  `json:"api_called"`
	Data           any     `json:"data"`
	Intent         string  `json:"intent"`
	Confidence     float64 `json:"confidence"`
	ConversationID string  `json:"conversation_id"`
}

type agentFailResp struct {
	Success        bool   `json:"success"`
	Error          string `json:"error"`
	Response       string `json:"response,omitempty"`
	APICalled      string `json:"api_called,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
}

func newAgentResp(out chat.HandleOutput) any {
	if !out.Success {
		return agentFailResp{
			Error:          out.Error,
			Response:       out.Response,
			APICalled:      out.APICalled,
			ConversationID: out.ConversationID,
		}
	}
	return agentResp{
		Success:        true,
		Response:       out.Response,
		APICalled:      out.APICalled,
		Data:           out.Data,
		Intent:         out.Intent,
		Confidence:     out.Confidence,
		ConversationID: out.ConversationID,
	}
}

type suggestionsResp struct {
	Success     bool     `json:"success"`
	Suggestions []string `json:"suggestions"`
	Count       int      `json:"count"`
}

type helpResp struct {
	Success bool   `json:"success"`
	Help    string `json:"help"`
}
