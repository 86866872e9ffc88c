package router

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type rulesFile struct {
	Rules []PhraseRule `yaml:"rules"`
}

// LoadRules reads extra phrase rules from a YAML file. An empty path yields no rules.
//
//	rules:
//	  - name: overtime
//	    entity: timesheet
//	    priority: 20
//	    default_verb: action:summary
//	    topics: ["tăng ca", "overtime"]
func LoadRules(path string) ([]PhraseRule, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("router.LoadRules: %w", err)
	}

	var f rulesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("router.LoadRules: %s: %w", path, err)
	}
	return f.Rules, nil
}
