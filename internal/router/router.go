package router

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"hr-agent/internal/catalog"
	"hr-agent/pkg/metrics"
)

type candidate struct {
	rule    *compiledRule
	topic   string
	runes   int
	verb    catalog.Verb
	keyword string
}

// Match returns the single best route for text. It never fails: an utterance
// without any topic phrase routes to the fallback overview.
func (r *PhraseRouter) Match(ctx context.Context, text string) Match {
	utter := normalize(text)

	var best *candidate
	for i := range r.rules {
		c, ok := r.rules[i].candidate(utter)
		if !ok {
			continue
		}
		if best == nil || c.beats(best) {
			best = &c
		}
	}

	var m Match
	if best == nil {
		m = Match{
			RouteID:    r.fallback.ID,
			Confidence: ConfidenceFallback,
			Verb:       r.fallback.Verb,
			Fallback:   true,
		}
	} else {
		route := best.rule.routes[best.verb]
		m = Match{
			RouteID:     route.ID,
			Confidence:  confidence(route, best),
			Rule:        best.rule.Name,
			Topic:       best.topic,
			Verb:        best.verb,
			VerbKeyword: best.keyword,
		}
	}

	metrics.IntentMatches.WithLabelValues(m.RouteID, strconv.FormatBool(m.Fallback)).Inc()
	r.l.Debugf(ctx, "%s: %q -> %s (%.2f, rule=%s, topic=%q, verb=%s)",
		LogPrefixMatch, text, m.RouteID, m.Confidence, m.Rule, m.Topic, m.Verb)
	return m
}

// Rules returns the compiled rules in declaration order.
func (r *PhraseRouter) Rules() []PhraseRule {
	out := make([]PhraseRule, 0, len(r.rules))
	for _, cr := range r.rules {
		out = append(out, cr.PhraseRule)
	}
	return out
}

func (cr *compiledRule) candidate(utter string) (candidate, bool) {
	c := candidate{rule: cr}
	for _, t := range cr.topics {
		if t.runes > c.runes && t.occursIn(utter) {
			c.topic, c.runes = t.text, t.runes
		}
	}
	if c.topic == "" {
		return c, false
	}

	c.verb = cr.DefaultVerb
	masked := cr.maskStatus(utter)
	for _, vk := range cr.Verbs {
		for _, p := range vk.Phrases {
			if strings.Contains(masked, p) {
				c.verb, c.keyword = vk.Verb, p
				return cr.promote(c, utter), true
			}
		}
	}
	return cr.promote(c, utter), true
}

// maskStatus blanks the rule's status phrases so "chờ duyệt" never reads as "duyệt".
func (cr *compiledRule) maskStatus(utter string) string {
	for _, p := range cr.StatusPhrases {
		utter = strings.ReplaceAll(utter, p, " ")
	}
	return utter
}

// promote turns a non-collection list into a read when a record number is
// attached to the topic, e.g. "xem nhân viên 5".
func (cr *compiledRule) promote(c candidate, utter string) candidate {
	if c.verb != catalog.VerbList || cr.attachedID == nil || slices.Contains(collectionKeywords, c.keyword) {
		return c
	}
	if _, ok := cr.routes[catalog.VerbRead]; !ok {
		return c
	}
	if cr.attachedID.MatchString(utter) {
		c.verb = catalog.VerbRead
	}
	return c
}

func (t topicPattern) occursIn(utter string) bool {
	for _, part := range t.parts {
		i := strings.Index(utter, part)
		if i < 0 {
			return false
		}
		utter = utter[i+len(part):]
	}
	return true
}

// beats applies the tie-break: priority, then the longer topic phrase, then an
// action verb over a plain one, then declaration order.
func (c candidate) beats(o *candidate) bool {
	if c.rule.Priority != o.rule.Priority {
		return c.rule.Priority > o.rule.Priority
	}
	if c.runes != o.runes {
		return c.runes > o.runes
	}
	if a, b := c.verb.IsAction(), o.verb.IsAction(); a != b {
		return a
	}
	return c.rule.order < o.rule.order
}

func confidence(route catalog.Route, c *candidate) float64 {
	switch {
	case route.ID == FallbackRouteID:
		return ConfidenceTopic
	case c.keyword != "" && c.runes >= specificTopicRunes:
		return ConfidenceSpecific
	case route.HasPathParams():
		return ConfidenceDetail
	default:
		return ConfidenceTopic
	}
}

// bucket orders verb classes: update, delete, create, actions, read/list.
func bucket(v catalog.Verb) int {
	switch {
	case v == catalog.VerbUpdate:
		return 0
	case v == catalog.VerbDelete:
		return 1
	case v == catalog.VerbCreate:
		return 2
	case v.IsAction():
		return 3
	default:
		return 4
	}
}

func normalize(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}
