package confidence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/candidate-assessor/internal/config"
	"github.com/talentops/candidate-assessor/internal/types"
)

func uniformSections(score float64) map[string]float64 {
	return map[string]float64{
		types.SectionSkills:     score,
		types.SectionExperience: score,
		types.SectionEducation:  score,
		types.SectionSalary:     score,
		types.SectionDomain:     score,
	}
}

func TestComputeCompleteAgreedUnambiguous(t *testing.T) {
	calc := NewCalculator(config.Default())
	// 95 sits 15 points above the highest threshold (80)
	conf := calc.Compute(Input{
		AdjustedScore: 95,
		SectionScores: uniformSections(95),
		Completeness:  1.0,
	})

	assert.InDelta(t, 1.0, conf.Score, 0.001)
	assert.Equal(t, types.ConfidenceVeryHigh, conf.Level)
	// full confidence collapses the interval to the point
	assert.InDelta(t, 0, conf.Interval.MarginOfError, 0.001)
	assert.Equal(t, 0.95, conf.Interval.ConfidenceLevel)
}

func TestComputeDisagreementLowersConfidence(t *testing.T) {
	calc := NewCalculator(config.Default())
	spread := map[string]float64{
		types.SectionSkills:     100,
		types.SectionExperience: 20,
		types.SectionEducation:  90,
		types.SectionSalary:     30,
		types.SectionDomain:     95,
	}
	agreed := calc.Compute(Input{AdjustedScore: 95, SectionScores: uniformSections(95), Completeness: 1})
	disagreed := calc.Compute(Input{AdjustedScore: 95, SectionScores: spread, Completeness: 1})

	assert.Less(t, disagreed.Score, agreed.Score)
	assert.Greater(t, disagreed.Interval.MarginOfError, agreed.Interval.MarginOfError)
}

func TestComputeBoundaryProximityLowersConfidence(t *testing.T) {
	calc := NewCalculator(config.Default())
	atBoundary := calc.Compute(Input{AdjustedScore: 70, SectionScores: uniformSections(70), Completeness: 1})
	farFromBoundary := calc.Compute(Input{AdjustedScore: 95, SectionScores: uniformSections(95), Completeness: 1})

	assert.Less(t, atBoundary.Score, farFromBoundary.Score)
	// exactly on a threshold zeroes the boundary signal
	assert.InDelta(t, 0.75, atBoundary.Score, 0.001)
}

func TestComputeDegradedMatchingLowersConfidence(t *testing.T) {
	calc := NewCalculator(config.Default())
	in := Input{AdjustedScore: 95, SectionScores: uniformSections(95), Completeness: 1}

	normal := calc.Compute(in)
	in.Degraded = true
	degraded := calc.Compute(in)

	assert.Less(t, degraded.Score, normal.Score)
}

func TestComputeLevels(t *testing.T) {
	calc := NewCalculator(config.Default())
	// with full agreement and a score far from every boundary, confidence
	// is 0.6 + 0.4 * completeness
	tests := []struct {
		name         string
		completeness float64
		expected     types.ConfidenceLevel
	}{
		{"full data very high", 1.0, types.ConfidenceVeryHigh},
		{"half data high", 0.5, types.ConfidenceHigh},
		{"no data medium", 0.0, types.ConfidenceMedium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := calc.Compute(Input{
				AdjustedScore: 95,
				SectionScores: uniformSections(95),
				Completeness:  tt.completeness,
			})
			assert.Equal(t, tt.expected, conf.Level)
		})
	}
}

func TestComputeLowLevel(t *testing.T) {
	calc := NewCalculator(config.Default())
	// every signal weak at once: no data, scattered sections, score on a
	// decision boundary
	conf := calc.Compute(Input{
		AdjustedScore: 70,
		SectionScores: map[string]float64{
			types.SectionSkills:     100,
			types.SectionExperience: 20,
			types.SectionEducation:  90,
			types.SectionSalary:     30,
			types.SectionDomain:     95,
		},
		Completeness: 0,
	})
	assert.Equal(t, types.ConfidenceLow, conf.Level)
}

func TestIntervalBoundsAreClamped(t *testing.T) {
	calc := NewCalculator(config.Default())

	low := calc.Interval(3, 0.2, 0.95)
	assert.Equal(t, 0.0, low.LowerBound)
	assert.LessOrEqual(t, low.LowerBound, low.PointEstimate)

	high := calc.Interval(98, 0.2, 0.95)
	assert.Equal(t, 100.0, high.UpperBound)
	assert.GreaterOrEqual(t, high.UpperBound, high.PointEstimate)
}

func TestIntervalWidensWithLevel(t *testing.T) {
	calc := NewCalculator(config.Default())
	i90 := calc.Interval(50, 0.5, 0.90)
	i95 := calc.Interval(50, 0.5, 0.95)
	i99 := calc.Interval(50, 0.5, 0.99)

	assert.Less(t, i90.MarginOfError, i95.MarginOfError)
	assert.Less(t, i95.MarginOfError, i99.MarginOfError)
	// z=1.96, spread=10, 1-conf=0.5
	require.InDelta(t, 9.8, i95.MarginOfError, 0.001)
}

func TestIntervalUnknownLevelFallsBack(t *testing.T) {
	calc := NewCalculator(config.Default())
	i := calc.Interval(50, 0.5, 0.42)
	assert.Equal(t, 0.95, i.ConfidenceLevel)
}
