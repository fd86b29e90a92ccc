// Package matching implements the résumé-to-job-description scoring engine.
// It combines a rule-based content scorer driven by requirement extraction
// with a TF-IDF vector space model and cosine similarity, and fuses both
// partial scores into a single ranking score per résumé.
package matching

import (
	"regexp"
	"strings"
)

// minTokenLength is the shortest token kept by the tokenizer. Shorter tokens
// carry almost no ranking signal and would dominate the vocabulary.
const minTokenLength = 3

// punctuation matches every character that is neither a word character nor
// whitespace. Stripped before splitting so "Node.js," and "nodejs" collapse
// toward the same token stream.
var punctuation = regexp.MustCompile(`[^\w\s]`)

// tokenize lower-cases text, strips punctuation, splits on whitespace runs
// and discards tokens shorter than minTokenLength. The same rule is shared
// by vocabulary fitting and document transformation so every document lands
// in the same vector space.
func tokenize(text string) []string {
	cleaned := punctuation.ReplaceAllString(strings.ToLower(text), "")
	fields := strings.Fields(cleaned)

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if len(field) >= minTokenLength {
			tokens = append(tokens, field)
		}
	}
	return tokens
}
