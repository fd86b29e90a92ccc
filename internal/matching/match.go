package matching

import (
	"log"
	"math"
	"unicode/utf8"
)

const (
	// similarityWeight scales cosine similarity (0..1 for non-negative
	// TF-IDF vectors) into the 0..50 similarity partial score.
	similarityWeight = 50.0

	// excerptLength bounds the résumé excerpt carried in score details.
	excerptLength = 500
)

// ScoreResult is the per-résumé outcome of a scoring request. Content and
// similarity scores are each bounded by 50; the combined score is their sum.
type ScoreResult struct {
	ContentScore    float64      `json:"contentScore"`
	SimilarityScore float64      `json:"similarityScore"`
	CombinedScore   float64      `json:"combinedScore"`
	Details         MatchDetails `json:"details"`
}

// MatchDetails explains a score: which requirements matched, how many
// projects were found, and an excerpt of the scored résumé.
type MatchDetails struct {
	Experience            int      `json:"experience"`
	MatchedSkills         []string `json:"matchedSkills"`
	ProjectsCount         int      `json:"projectsCount"`
	MatchedCertifications []string `json:"matchedCertifications"`
	ResumeText            string   `json:"resumeText"`
}

// CombinedScores scores every résumé against the job description and
// returns one result per résumé in input order. It is the single entry
// point external callers use.
//
// The function never panics or returns an error: invalid top-level input
// yields an empty result list (logged), and a failure while scoring one
// résumé drops only that résumé. Callers own ranking and top-N selection;
// results are deliberately left in input order.
//
// Each call constructs its own scorer and vectorizer, so concurrent calls
// are isolated from each other.
func CombinedScores(jobDescription string, resumes []string) []ScoreResult {
	if jobDescription == "" {
		log.Printf("matching: empty job description, returning no results")
		return []ScoreResult{}
	}
	if resumes == nil {
		log.Printf("matching: nil resume list, returning no results")
		return []ScoreResult{}
	}

	scorer := NewRuleScorer(jobDescription)

	corpus := make([]string, 0, len(resumes)+1)
	corpus = append(corpus, jobDescription)
	corpus = append(corpus, resumes...)

	vectorizer := NewVectorizer()
	if err := vectorizer.Fit(corpus); err != nil {
		log.Printf("matching: fitting vectorizer failed: %v", err)
		return []ScoreResult{}
	}

	vectors := make([][]float64, len(corpus))
	for i, doc := range corpus {
		vectors[i] = vectorizer.Transform(doc)
	}
	jobVector := vectors[0]

	results := make([]ScoreResult, 0, len(resumes))
	for i, resume := range resumes {
		result, ok := scoreResume(scorer, jobVector, vectors[i+1], resume)
		if !ok {
			log.Printf("matching: skipping resume %d after scoring failure", i)
			continue
		}
		results = append(results, result)
	}
	return results
}

// scoreResume fuses the rule-based and vector-similarity partial scores for
// one résumé. A panic anywhere below is recovered here so one pathological
// résumé cannot abort the rest of the batch.
func scoreResume(scorer *RuleScorer, jobVector, resumeVector []float64, resume string) (result ScoreResult, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("matching: recovered while scoring resume: %v", r)
			ok = false
		}
	}()

	contentScore := round2(scorer.ScoreResume(resume))
	similarityScore := round2(CosineSimilarity(jobVector, resumeVector) * similarityWeight)

	requirements := scorer.Requirements()
	return ScoreResult{
		ContentScore:    contentScore,
		SimilarityScore: similarityScore,
		CombinedScore:   round2(contentScore + similarityScore),
		Details: MatchDetails{
			Experience:            requirements.RequiredExperienceYears,
			MatchedSkills:         scorer.MatchedSkills(resume),
			ProjectsCount:         scorer.ProjectCount(resume),
			MatchedCertifications: scorer.MatchedCertifications(resume),
			ResumeText:            excerpt(resume),
		},
	}, true
}

// excerpt returns the first excerptLength characters of text with an
// ellipsis marker when truncated. Truncation counts runes so a multi-byte
// character is never split into invalid UTF-8.
func excerpt(text string) string {
	if utf8.RuneCountInString(text) <= excerptLength {
		return text
	}
	runes := 0
	for i := range text {
		if runes == excerptLength {
			return text[:i] + "..."
		}
		runes++
	}
	return text
}

// round2 rounds to two decimal places.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
