// Package category assigns spending categories to transaction descriptions
// by keyword matching.
package category

import "strings"

// DefaultTag is the fallback for transactions matching no rule. Rows tagged
// MISC are exported separately for manual review.
const DefaultTag = "MISC"

// Rule pairs a category tag with the keywords that select it.
type Rule struct {
	Tag      string
	Keywords []string
}

// Categorize returns the tag of the first rule with a keyword appearing in
// data (case-insensitive substring match), or DefaultTag.
func Categorize(data string) string {
	lowered := strings.ToLower(data)
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Tag
			}
		}
	}
	return DefaultTag
}

// Tags returns all category tags in rule order, ending with DefaultTag.
func Tags() []string {
	tags := make([]string, 0, len(rules)+1)
	for _, rule := range rules {
		tags = append(tags, rule.Tag)
	}
	return append(tags, DefaultTag)
}
