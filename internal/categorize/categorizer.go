// Package categorize assigns spending categories to transactions by keyword
// matching against their descriptions.
package categorize

import (
	"regexp"
	"strings"

	"finplan/internal/config"
	"finplan/internal/model"
)

// Uncategorized is assigned when no rule matches.
const Uncategorized = "Uncategorized"

type compiledRule struct {
	category string
	patterns []*regexp.Regexp
}

// Categorizer matches descriptions against an ordered keyword rule set.
// The first rule with a matching keyword wins.
type Categorizer struct {
	rules []compiledRule
}

// New compiles the rule set. Keywords match on word boundaries so "car"
// does not fire inside "card", and matching is case-insensitive.
func New(rules []config.CategoryRule) *Categorizer {
	c := &Categorizer{rules: make([]compiledRule, 0, len(rules))}
	for _, rule := range rules {
		cr := compiledRule{category: rule.Category}
		for _, kw := range rule.Keywords {
			pattern := `\b` + regexp.QuoteMeta(strings.ToLower(kw)) + `\b`
			re, err := regexp.Compile(pattern)
			if err != nil {
				continue
			}
			cr.patterns = append(cr.patterns, re)
		}
		c.rules = append(c.rules, cr)
	}
	return c
}

// Categorize returns the category for a transaction description.
func (c *Categorizer) Categorize(description string) string {
	desc := strings.ToLower(description)
	for _, rule := range c.rules {
		for _, re := range rule.patterns {
			if re.MatchString(desc) {
				return rule.category
			}
		}
	}
	return Uncategorized
}

// Apply categorizes every transaction in place.
func (c *Categorizer) Apply(txs []model.Transaction) {
	for i := range txs {
		txs[i].Category = c.Categorize(txs[i].Description)
	}
}
