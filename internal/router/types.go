package router

import (
	"context"

	"hr-agent/internal/catalog"
)

// Router picks one route for an utterance.
type Router interface {
	Match(ctx context.Context, text string) Match
}

// VerbKeywords is one verb bucket of a rule: the verb and the phrases that select it.
type VerbKeywords struct {
	Verb    catalog.Verb `yaml:"verb"`
	Phrases []string     `yaml:"phrases"`
}

// PhraseRule makes its entity a candidate when any topic phrase occurs in the utterance.
// A topic may hold a gap, "kỹ năng…cho nhân viên", matching both parts in order.
// Status phrases ("chờ duyệt", "approved") name record states and are blanked
// out before verb keywords are looked up.
type PhraseRule struct {
	Name          string         `yaml:"name"`
	Entity        string         `yaml:"entity"`
	Topics        []string       `yaml:"topics"`
	Verbs         []VerbKeywords `yaml:"verbs"`
	StatusPhrases []string       `yaml:"status_phrases"`
	DefaultVerb   catalog.Verb   `yaml:"default_verb"`
	Priority      int            `yaml:"priority"`
}

// Match is the outcome of routing one utterance.
type Match struct {
	RouteID     string       `json:"route_id"`
	Confidence  float64      `json:"confidence"`
	Rule        string       `json:"rule,omitempty"`
	Topic       string       `json:"matched_topic,omitempty"`
	Verb        catalog.Verb `json:"matched_verb,omitempty"`
	VerbKeyword string       `json:"verb_keyword,omitempty"`
	Fallback    bool         `json:"fallback"`
}
