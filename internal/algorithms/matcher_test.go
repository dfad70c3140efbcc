package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestExtractKeywords(t *testing.T) {
	t.Run("picks vocabulary terms and role words", func(t *testing.T) {
		got := ExtractKeywords("Senior Software Engineer")
		assert.ElementsMatch(t, []string{"senior", "software", "engineer"}, keys(got))
	})

	t.Run("lower-cases and splits on punctuation", func(t *testing.T) {
		got := ExtractKeywords("Python/SQL, Docker!")
		assert.ElementsMatch(t, []string{"python", "sql", "docker"}, keys(got))
	})

	t.Run("drops short tokens", func(t *testing.T) {
		// "go" and "c" fall below the length floor even though golang is a
		// vocabulary term.
		got := ExtractKeywords("Go & C experience")
		assert.Empty(t, got)
	})

	t.Run("ignores words outside vocabulary and suffixes", func(t *testing.T) {
		got := ExtractKeywords("enthusiastic teamwork synergy")
		assert.Empty(t, got)
	})

	t.Run("suffix rule catches plural and compound role words", func(t *testing.T) {
		got := ExtractKeywords("hiring engineers and salesmanagers")
		assert.ElementsMatch(t, []string{"engineers", "salesmanagers"}, keys(got))
	})

	t.Run("vocabulary match is exact", func(t *testing.T) {
		// "pythonic" is neither the vocabulary term "python" nor a role word.
		got := ExtractKeywords("pythonic")
		assert.Empty(t, got)
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, ExtractKeywords(""))
	})
}

func TestMatchScore(t *testing.T) {
	set := func(terms ...string) map[string]struct{} {
		m := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			m[term] = struct{}{}
		}
		return m
	}

	t.Run("identical sets score 1", func(t *testing.T) {
		a := set("python", "sql", "docker")
		assert.Equal(t, 1.0, MatchScore(a, a))
	})

	t.Run("either side empty scores 0", func(t *testing.T) {
		assert.Equal(t, 0.0, MatchScore(set(), set("python")))
		assert.Equal(t, 0.0, MatchScore(set("python"), set()))
		assert.Equal(t, 0.0, MatchScore(set(), set()))
	})

	t.Run("normalized by the larger set", func(t *testing.T) {
		a := set("python")
		b := set("python", "java", "sql")
		assert.InDelta(t, 1.0/3.0, MatchScore(a, b), 1e-9)
		// symmetric
		assert.Equal(t, MatchScore(a, b), MatchScore(b, a))
	})

	t.Run("disjoint sets score 0", func(t *testing.T) {
		assert.Equal(t, 0.0, MatchScore(set("python"), set("java")))
	})

	t.Run("more overlap never lowers the score", func(t *testing.T) {
		base := set("python", "java", "sql", "docker")
		small := MatchScore(set("python"), base)
		big := MatchScore(set("python", "java"), base)
		require.Greater(t, big, small)
	})
}

func TestExtractThenScore(t *testing.T) {
	cv := ExtractKeywords("Senior backend developer, Python, PostgreSQL, Docker")
	job := ExtractKeywords("Backend Developer wanted: Python, PostgreSQL, Kubernetes")

	score := MatchScore(cv, job)
	assert.Greater(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}
