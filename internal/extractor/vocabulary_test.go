package extractor

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"hr-agent/internal/router"
)

// A state word the filter understands must never be read as a verb by the
// router, or "Danh sách nghỉ phép chờ duyệt" would approve instead of list.
func TestStateWordsAreRouterStatusPhrases(t *testing.T) {
	status := map[string][]string{}
	for _, rule := range router.DefaultRules() {
		status[rule.Entity] = append(status[rule.Entity], rule.StatusPhrases...)
	}

	for entity, words := range stateWords {
		for _, w := range words {
			for _, p := range w.phrases {
				assert.True(t, slices.Contains(status[entity], strings.ToLower(p)),
					"%s state word %q is not a status phrase of any %s rule", entity, p, entity)
			}
		}
	}
}
