package formatter

// Log prefixes
const (
	LogPrefixFormat = "internal.formatter.Format"
)

// Row caps of the list renderers.
const (
	listCap   = 10
	searchCap = 5
)
