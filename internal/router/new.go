package router

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"hr-agent/internal/catalog"
	"hr-agent/pkg/log"
)

// compiledRule is a PhraseRule with its lower-cased phrases and resolved routes.
type compiledRule struct {
	PhraseRule
	order  int
	topics []topicPattern
	routes map[catalog.Verb]catalog.Route
	// attachedID matches a topic directly followed by a record number.
	attachedID *regexp.Regexp
}

// topicPattern is a topic split at its gaps; parts must occur in order.
type topicPattern struct {
	text  string
	parts []string
	runes int
}

// PhraseRouter matches utterances against phrase rules. Read-only after New.
type PhraseRouter struct {
	cat      *catalog.Catalog
	rules    []compiledRule
	fallback catalog.Route
	l        log.Logger
}

var _ Router = (*PhraseRouter)(nil)

// New checks every rule against the catalog. Rules are the built-in table
// followed by extra, in that declaration order.
func New(cat *catalog.Catalog, l log.Logger, extra ...PhraseRule) (*PhraseRouter, error) {
	fallback, err := cat.Resolve(FallbackRouteID)
	if err != nil {
		return nil, fmt.Errorf("%s: fallback: %w", LogPrefixNew, err)
	}

	all := append(DefaultRules(), extra...)
	r := &PhraseRouter{
		cat:      cat,
		rules:    make([]compiledRule, 0, len(all)),
		fallback: fallback,
		l:        l,
	}

	for i, rule := range all {
		cr, err := compile(cat, rule, i)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogPrefixNew, err)
		}
		r.rules = append(r.rules, cr)
	}

	return r, nil
}

func compile(cat *catalog.Catalog, rule PhraseRule, order int) (compiledRule, error) {
	if rule.Name == "" || rule.Entity == "" || rule.DefaultVerb == "" {
		return compiledRule{}, fmt.Errorf("%w: %q needs name, entity and default_verb", ErrInvalidRule, rule.Name)
	}
	if len(rule.Topics) == 0 {
		return compiledRule{}, fmt.Errorf("%w: %s has no topic phrase", ErrInvalidRule, rule.Name)
	}

	cr := compiledRule{
		PhraseRule: PhraseRule{
			Name:        rule.Name,
			Entity:      rule.Entity,
			DefaultVerb: rule.DefaultVerb,
			Priority:    rule.Priority,
		},
		order:  order,
		routes: make(map[catalog.Verb]catalog.Route, len(rule.Verbs)+1),
	}

	var plain []string
	for _, t := range rule.Topics {
		t = normalize(t)
		tp := topicPattern{text: t, parts: strings.Split(t, topicGap)}
		for _, part := range tp.parts {
			if utf8.RuneCountInString(strings.TrimSpace(part)) < minTopicPhraseRunes {
				return compiledRule{}, fmt.Errorf("%w: %s topic %q is too short", ErrInvalidRule, rule.Name, t)
			}
			tp.runes += utf8.RuneCountInString(part)
		}
		if len(tp.parts) == 1 {
			plain = append(plain, regexp.QuoteMeta(t))
		}
		cr.Topics = append(cr.Topics, t)
		cr.topics = append(cr.topics, tp)
	}
	if len(plain) > 0 {
		cr.attachedID = regexp.MustCompile(`(?:` + strings.Join(plain, "|") + `)\s*(?:id\s*[:#]?\s*|#|số\s*)?\d+(?:[^\d/\-]|$)`)
	}

	for _, p := range rule.StatusPhrases {
		cr.StatusPhrases = append(cr.StatusPhrases, normalize(p))
	}
	sort.SliceStable(cr.StatusPhrases, func(i, j int) bool {
		return len(cr.StatusPhrases[i]) > len(cr.StatusPhrases[j])
	})

	verbs := []catalog.Verb{rule.DefaultVerb}
	for _, vk := range rule.Verbs {
		phrases := make([]string, 0, len(vk.Phrases))
		for _, p := range vk.Phrases {
			phrases = append(phrases, normalize(p))
		}
		cr.Verbs = append(cr.Verbs, VerbKeywords{Verb: vk.Verb, Phrases: phrases})
		verbs = append(verbs, vk.Verb)
	}

	sort.SliceStable(cr.Verbs, func(i, j int) bool {
		return bucket(cr.Verbs[i].Verb) < bucket(cr.Verbs[j].Verb)
	})

	for _, v := range verbs {
		route, ok := cat.ByEntityVerb(rule.Entity, v)
		if !ok {
			return compiledRule{}, fmt.Errorf("%w: %s -> (%s, %s)", ErrUnroutedRule, rule.Name, rule.Entity, v)
		}
		cr.routes[v] = route
	}

	return cr, nil
}
