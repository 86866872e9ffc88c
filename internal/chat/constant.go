package chat

// Log prefixes
const (
	LogPrefixHandle = "internal.chat.Handle"
)
