package skills

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/candidate-assessor/internal/config"
)

func newTestMatcher(sim SimilarityFunc) *Matcher {
	return NewMatcher(config.Default().Taxonomy, sim)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "Python", "python"},
		{"trims", "  golang  ", "golang"},
		{"collapses whitespace", "machine   learning", "machine learning"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestMatchTiers(t *testing.T) {
	m := newTestMatcher(nil)
	tests := []struct {
		name      string
		candidate []string
		jobSkill  string
		tier      string
		credit    float64
	}{
		{"exact", []string{"python"}, "python", TierExact, 1.0},
		{"exact case-insensitive", []string{"Python"}, "PYTHON", TierExact, 1.0},
		{"synonym alias to canonical", []string{"k8s"}, "kubernetes", TierSynonym, 1.0},
		{"synonym canonical to alias", []string{"kubernetes"}, "k8s", TierSynonym, 1.0},
		{"related partial credit", []string{"django"}, "python", TierRelated, creditRelated},
		{"no match", []string{"cobol"}, "react", TierNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, degraded := m.Match(tt.candidate, []string{tt.jobSkill})
			require.Len(t, matches, 1)
			assert.False(t, degraded)
			assert.Equal(t, tt.tier, matches[0].Tier)
			assert.InDelta(t, tt.credit, matches[0].Credit, 0.001)
		})
	}
}

func TestMatchSemanticTier(t *testing.T) {
	sim := func(a, b string) (float64, error) {
		if a == "postgres database" && b == "postgresql administration" {
			return 0.80, nil
		}
		return 0.1, nil
	}
	m := newTestMatcher(sim)

	matches, degraded := m.Match([]string{"postgresql administration"}, []string{"postgres database"})
	require.Len(t, matches, 1)
	assert.False(t, degraded)
	assert.Equal(t, TierSemantic, matches[0].Tier)
	assert.InDelta(t, 0.80, matches[0].Credit, 0.001)
}

func TestMatchDegradedFallback(t *testing.T) {
	sim := func(a, b string) (float64, error) {
		return 0, errors.New("embedding service unavailable")
	}
	m := newTestMatcher(sim)

	// Bigram fallback still finds highly similar strings.
	matches, degraded := m.Match([]string{"postgresql"}, []string{"postgresql9"})
	require.Len(t, matches, 1)
	assert.True(t, degraded)
	assert.Equal(t, TierSemantic, matches[0].Tier)
}

func TestMatchPrefersExactOverSemantic(t *testing.T) {
	m := newTestMatcher(nil)
	matches, _ := m.Match([]string{"java", "javascript"}, []string{"javascript"})
	require.Len(t, matches, 1)
	assert.Equal(t, TierExact, matches[0].Tier)
	assert.Equal(t, "javascript", matches[0].MatchedWith)
}

func TestScoreBlendsRequiredAndPreferred(t *testing.T) {
	m := newTestMatcher(nil)
	report := m.Score(
		[]string{"python", "react"},
		[]string{"python", "cobol"}, // 1 of 2 required
		[]string{"react"},           // 1 of 1 preferred
	)
	// 70*(0.5) + 30*(1.0) = 65
	assert.InDelta(t, 65, report.Score, 0.001)
	assert.InDelta(t, 0.5, report.RequiredCoverage, 0.001)
	assert.InDelta(t, 1.0, report.PreferredCoverage, 0.001)
	assert.Equal(t, []string{"cobol"}, report.MissingRequired)
}

func TestScoreNoRequirements(t *testing.T) {
	m := newTestMatcher(nil)
	report := m.Score([]string{"python"}, nil, nil)
	assert.Equal(t, 100.0, report.Score)
	assert.Empty(t, report.MissingRequired)
}

func TestScoreRequiredOnly(t *testing.T) {
	m := newTestMatcher(nil)
	report := m.Score([]string{"python", "golang"}, []string{"python", "golang"}, nil)
	assert.InDelta(t, 100, report.Score, 0.001)
}

func TestDiceSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, DiceSimilarity("python", "python"))
	assert.Equal(t, 0.0, DiceSimilarity("a", "b"))
	assert.Greater(t, DiceSimilarity("postgresql", "postgres"), 0.7)
	assert.Less(t, DiceSimilarity("react", "fortran"), 0.3)
}
