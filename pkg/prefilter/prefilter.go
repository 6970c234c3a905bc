// Package prefilter decides which custom rules can possibly match a
// file before any regex runs. Custom rules may declare literal
// keywords; a single Aho-Corasick pass over the file content rules out
// every keyword rule whose keywords are absent.
package prefilter

import (
	"github.com/cloudflare/ahocorasick"

	"github.com/alexdonduk/SwiftLint/pkg/rules"
)

// Prefilter narrows a custom rule set down to the rules worth running
// against a particular file.
type Prefilter struct {
	matcher        *ahocorasick.Matcher
	keywords       []string                       // keyword at each matcher index
	keywordRules   map[string][]*rules.CustomRule // keyword -> rules needing it
	noKeywordRules []*rules.CustomRule            // rules without keywords, always run
}

// New builds a prefilter over the given custom rules.
func New(customRules []*rules.CustomRule) *Prefilter {
	pf := &Prefilter{
		keywordRules: make(map[string][]*rules.CustomRule),
	}

	seen := make(map[string]bool)
	for _, rule := range customRules {
		keywords := rule.Keywords()
		if len(keywords) == 0 {
			pf.noKeywordRules = append(pf.noKeywordRules, rule)
			continue
		}
		for _, keyword := range keywords {
			if !seen[keyword] {
				seen[keyword] = true
				pf.keywords = append(pf.keywords, keyword)
			}
			pf.keywordRules[keyword] = append(pf.keywordRules[keyword], rule)
		}
	}

	if len(pf.keywords) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.keywords)
	}

	return pf
}

// Filter returns the rules that might match content: every keyword-less
// rule plus each rule with at least one keyword present in the content.
func (pf *Prefilter) Filter(content []byte) []*rules.CustomRule {
	result := make([]*rules.CustomRule, 0, len(pf.noKeywordRules))
	result = append(result, pf.noKeywordRules...)

	if pf.matcher == nil {
		return result
	}

	included := make(map[*rules.CustomRule]bool, len(result))
	for _, rule := range result {
		included[rule] = true
	}

	for _, hit := range pf.matcher.Match(content) {
		for _, rule := range pf.keywordRules[pf.keywords[hit]] {
			if !included[rule] {
				included[rule] = true
				result = append(result, rule)
			}
		}
	}

	return result
}
