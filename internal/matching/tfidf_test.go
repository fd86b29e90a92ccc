package matching

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorizer_FitNilCorpus(t *testing.T) {
	v := NewVectorizer()

	err := v.Fit(nil)
	require.Error(t, err)

	var invalid *InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestVectorizer_VocabularyInsertionOrder(t *testing.T) {
	v := NewVectorizer()
	require.NoError(t, v.Fit([]string{"golang rust", "golang python"}))

	assert.Equal(t, 3, v.VocabularySize())

	// Component order follows first appearance in the corpus.
	vec := v.Transform("golang rust python")
	require.Len(t, vec, 3)
}

func TestVectorizer_IDFFormula(t *testing.T) {
	v := NewVectorizer()
	require.NoError(t, v.Fit([]string{"golang rust", "golang python"}))

	vec := v.Transform("golang rust")

	// tf("golang") = 0.5, idf = ln(2 / (1 + 2)); present in both documents,
	// so its smoothed IDF is negative.
	assert.InDelta(t, 0.5*math.Log(2.0/3.0), vec[0], 1e-12)
	// tf("rust") = 0.5, idf = ln(2 / (1 + 1)) = 0.
	assert.InDelta(t, 0.0, vec[1], 1e-12)
	// "python" absent from the document.
	assert.Equal(t, 0.0, vec[2])
}

func TestVectorizer_ShortTokensDiscarded(t *testing.T) {
	v := NewVectorizer()
	require.NoError(t, v.Fit([]string{"go is ok but golang works"}))

	// "go", "is", "ok" are all too short to enter the vocabulary.
	assert.Equal(t, 3, v.VocabularySize())
}

func TestVectorizer_TransformDeterministic(t *testing.T) {
	v := NewVectorizer()
	require.NoError(t, v.Fit([]string{"golang rust python", "python tooling", "rust tooling"}))

	first := v.Transform("rust python tooling rust")
	second := v.Transform("rust python tooling rust")
	assert.Equal(t, first, second)
}

func TestVectorizer_EmptyDocumentZeroVector(t *testing.T) {
	v := NewVectorizer()
	require.NoError(t, v.Fit([]string{"golang rust"}))

	vec := v.Transform("")
	require.Len(t, vec, v.VocabularySize())
	for _, component := range vec {
		assert.Equal(t, 0.0, component)
	}
}

func TestVectorizer_RefitReplacesModel(t *testing.T) {
	v := NewVectorizer()
	require.NoError(t, v.Fit([]string{"golang rust python"}))
	require.NoError(t, v.Fit([]string{"kotlin"}))

	assert.Equal(t, 1, v.VocabularySize())
	vec := v.Transform("golang")
	require.Len(t, vec, 1)
	assert.Equal(t, 0.0, vec[0])
}

func TestVectorizer_TransformBeforeFit(t *testing.T) {
	v := NewVectorizer()

	assert.Empty(t, v.Transform("anything"))
}
