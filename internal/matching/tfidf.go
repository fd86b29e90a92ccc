package matching

import "math"

// Vectorizer builds a shared bag-of-words vector space over a document
// corpus and projects any text into it. Fit once per corpus, then transform;
// refitting replaces the model entirely. A fitted instance is read-only and
// must not be shared across requests with different corpora, because its
// IDF table reflects exactly the corpus it was fitted on.
type Vectorizer struct {
	vocabulary []string       // tokens in first-seen order; fixes vector component order
	index      map[string]int // token -> position in vocabulary
	idf        []float64      // per-vocabulary-position inverse document frequency
}

// NewVectorizer returns an unfitted vectorizer. Transform before Fit yields
// zero-length vectors.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{index: make(map[string]int)}
}

// Fit builds the vocabulary and IDF table from the corpus. Document
// frequency counts documents containing a token at least once, not token
// occurrences; idf = ln(N / (1 + df)) where N is the corpus size. Empty
// documents contribute no tokens but still count toward N.
func (v *Vectorizer) Fit(documents []string) error {
	if documents == nil {
		return &InvalidInputError{Message: "documents must be a non-nil slice"}
	}

	// Refitting replaces the previous model.
	v.vocabulary = nil
	v.index = make(map[string]int)
	v.idf = nil

	docFrequency := make(map[string]int)
	for _, doc := range documents {
		seen := make(map[string]bool)
		for _, token := range tokenize(doc) {
			if seen[token] {
				continue
			}
			seen[token] = true
			docFrequency[token]++
			if _, known := v.index[token]; !known {
				v.index[token] = len(v.vocabulary)
				v.vocabulary = append(v.vocabulary, token)
			}
		}
	}

	total := float64(len(documents))
	v.idf = make([]float64, len(v.vocabulary))
	for i, token := range v.vocabulary {
		v.idf[i] = math.Log(total / (1 + float64(docFrequency[token])))
	}
	return nil
}

// VocabularySize returns the dimension of vectors produced by Transform.
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocabulary)
}

// Transform projects a document into the fitted vector space. The component
// for each vocabulary token is its normalized term frequency in the document
// times its IDF, in the fixed vocabulary order, so repeated calls on the
// same document produce identical vectors. Empty or out-of-vocabulary
// documents yield the all-zero vector.
func (v *Vectorizer) Transform(document string) []float64 {
	vector := make([]float64, len(v.vocabulary))

	tokens := tokenize(document)
	if len(tokens) == 0 {
		return vector
	}

	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}

	totalTokens := float64(len(tokens))
	for token, count := range counts {
		if i, known := v.index[token]; known {
			vector[i] = float64(count) / totalTokens * v.idf[i]
		}
	}
	return vector
}
