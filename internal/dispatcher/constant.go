package dispatcher

// Log prefixes
const (
	LogPrefixDispatch = "internal.dispatcher.Dispatch"
)
