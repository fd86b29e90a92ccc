package matching

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinedScores_FullScenario(t *testing.T) {
	results := CombinedScores(scenarioJob, []string{scenarioResume})
	require.Len(t, results, 1)

	result := results[0]
	assert.InDelta(t, 42.0, result.ContentScore, 1e-9)
	assert.Greater(t, result.SimilarityScore, 0.0)
	assert.LessOrEqual(t, result.SimilarityScore, 50.0)
	assert.InDelta(t, result.ContentScore+result.SimilarityScore, result.CombinedScore, 0.01)

	assert.Equal(t, 3, result.Details.Experience)
	assert.Equal(t, []string{"python", "sql"}, result.Details.MatchedSkills)
	assert.Equal(t, 1, result.Details.ProjectsCount)
	assert.Equal(t, []string{"aws"}, result.Details.MatchedCertifications)
	assert.Equal(t, scenarioResume, result.Details.ResumeText)
}

func TestCombinedScores_Deterministic(t *testing.T) {
	resumes := []string{scenarioResume, "Go developer. Project: search engine.", ""}

	first := CombinedScores(scenarioJob, resumes)
	second := CombinedScores(scenarioJob, resumes)
	assert.Equal(t, first, second)
}

func TestCombinedScores_ScoreBounds(t *testing.T) {
	resumes := []string{
		scenarioResume,
		"",
		"completely unrelated text about gardening tulips",
		strings.Repeat(scenarioJob+" ", 20),
	}

	results := CombinedScores(scenarioJob, resumes)
	require.Len(t, results, len(resumes))
	for _, result := range results {
		assert.GreaterOrEqual(t, result.ContentScore, 0.0)
		assert.LessOrEqual(t, result.ContentScore, 50.0)
		assert.GreaterOrEqual(t, result.SimilarityScore, 0.0)
		assert.LessOrEqual(t, result.SimilarityScore, 50.0)
		assert.LessOrEqual(t, result.CombinedScore, 100.0)
	}
}

func TestCombinedScores_OrderPreserved(t *testing.T) {
	resumes := []string{"candidate alpha", "candidate bravo", "candidate charlie"}

	results := CombinedScores("Requirements: Python.", resumes)
	require.Len(t, results, 3)
	for i, result := range results {
		assert.Equal(t, resumes[i], result.Details.ResumeText)
	}
}

func TestCombinedScores_InvalidTopLevelInput(t *testing.T) {
	assert.Empty(t, CombinedScores("", []string{"resume"}))
	assert.Empty(t, CombinedScores("Requirements: Python.", nil))
}

func TestCombinedScores_NoResumes(t *testing.T) {
	results := CombinedScores(scenarioJob, []string{})

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestCombinedScores_ZeroSignalJobDescription(t *testing.T) {
	// No requirement sections and no experience phrase: experience and
	// skill contributions are zero, but project headings still count.
	results := CombinedScores("We are a friendly workplace with snacks.",
		[]string{"Project: dashboards. 9 years of experience."})
	require.Len(t, results, 1)

	assert.InDelta(t, 2.0, results[0].ContentScore, 1e-9)
	assert.Empty(t, results[0].Details.MatchedSkills)
	assert.Zero(t, results[0].Details.Experience)
}

func TestCombinedScores_EmptyResumesDegrade(t *testing.T) {
	results := CombinedScores(scenarioJob, []string{"", "   "})
	require.Len(t, results, 2)

	for _, result := range results {
		assert.Equal(t, 0.0, result.ContentScore)
		assert.Equal(t, 0.0, result.SimilarityScore)
		assert.Equal(t, 0.0, result.CombinedScore)
	}
}

func TestCombinedScores_ExcerptTruncated(t *testing.T) {
	long := strings.Repeat("experienced engineer ", 60)
	results := CombinedScores(scenarioJob, []string{long})
	require.Len(t, results, 1)

	excerpted := results[0].Details.ResumeText
	assert.Equal(t, excerptLength+len("..."), utf8.RuneCountInString(excerpted))
	assert.True(t, strings.HasSuffix(excerpted, "..."))
	assert.Equal(t, long[:excerptLength], strings.TrimSuffix(excerpted, "..."))
}

func TestCombinedScores_ExcerptTruncatesOnRuneBoundary(t *testing.T) {
	// Multi-byte characters past the excerpt limit must be dropped whole,
	// never split mid-rune.
	long := "a" + strings.Repeat("é", 600)
	results := CombinedScores(scenarioJob, []string{long})
	require.Len(t, results, 1)

	excerpted := results[0].Details.ResumeText
	assert.True(t, utf8.ValidString(excerpted))
	assert.Equal(t, excerptLength+len("..."), utf8.RuneCountInString(excerpted))
	assert.Equal(t, "a"+strings.Repeat("é", excerptLength-1)+"...", excerpted)
}

func TestScoreResume_PanicIsolated(t *testing.T) {
	// A nil scorer trips a panic inside the per-résumé boundary; the
	// recovery must report failure instead of unwinding the caller.
	_, ok := scoreResume(nil, nil, nil, "any text")

	assert.False(t, ok)
}
