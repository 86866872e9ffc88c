package router

// Log prefixes
const (
	LogPrefixMatch = "internal.router.Match"
	LogPrefixNew   = "internal.router.New"
)

// FallbackRouteID is returned when no topic phrase occurs in the utterance.
const FallbackRouteID = "dashboard.stats"

// Confidence tiers
const (
	ConfidenceSpecific = 0.9
	ConfidenceDetail   = 0.85
	ConfidenceTopic    = 0.8
	ConfidenceFallback = 0.5

	// A topic phrase of at least this many runes counts as specific.
	specificTopicRunes = 8
)

// Priority tiers used by the built-in phrase table.
const (
	PriorityEmployee    = 0
	PriorityOverview    = 1
	PrioritySearch      = 2
	PriorityEntity      = 10
	PrioritySubEntity   = 15
	PrioritySpecial     = 20
	PriorityExport      = 25
	minTopicPhraseRunes = 3
)

// topicGap splits a topic into parts that must occur in order.
const topicGap = "…"

// collectionKeywords ask for many records even when a number follows the topic.
var collectionKeywords = []string{"danh sách", "liệt kê", "tất cả", "list"}
