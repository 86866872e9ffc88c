package chat

// IntentHRAction is the only intent the chat endpoint reports.
const IntentHRAction = "hr_action"

// HandleInput is one chat message.
type HandleInput struct {
	Message        string
	ConversationID string
}

// HandleOutput is the routed, dispatched and rendered answer.
type HandleOutput struct {
	Success        bool
	Response       string
	Error          string
	RouteID        string
	APICalled      string
	Data           any
	Intent         string
	Confidence     float64
	Fallback       bool
	ConversationID string
}
