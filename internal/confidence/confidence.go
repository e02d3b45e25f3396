// Package confidence estimates how certain the engine is about an adjusted
// score and derives a statistical interval around it. Certainty is a weighted
// blend of three signals: input completeness, agreement between section
// scores, and distance from the decision boundaries.
package confidence

import (
	"math"

	"github.com/talentops/candidate-assessor/internal/config"
	"github.com/talentops/candidate-assessor/internal/types"
)

// Signal normalization constants. A section score spread of half the scale
// means no agreement at all; a score sitting a full 10 points from every
// decision boundary is maximally unambiguous.
const (
	maxDisagreementSpread = 50.0
	boundaryComfortZone   = 10.0
	degradedFactor        = 0.9
)

// Calculator computes confidence scores and intervals.
type Calculator struct {
	cfg      config.ConfidenceConfig
	decision config.DecisionConfig
}

func NewCalculator(cfg *config.Config) *Calculator {
	return &Calculator{cfg: cfg.Confidence, decision: cfg.Decision}
}

// Input carries the signals the calculator blends.
type Input struct {
	AdjustedScore float64
	SectionScores map[string]float64
	Completeness  float64 // 0-1 field coverage from the quality gate
	Degraded      bool    // similarity fallback was used in skill matching
}

// Compute blends the three signals into a 0-1 confidence score, classifies
// it, and builds the interval at the configured default level.
func (c *Calculator) Compute(in Input) types.Confidence {
	agreement := c.agreement(in.SectionScores)
	boundary := c.boundaryDistance(in.AdjustedScore)

	score := c.cfg.CompletenessWeight*in.Completeness +
		c.cfg.AgreementWeight*agreement +
		c.cfg.BoundaryWeight*boundary
	if in.Degraded {
		score *= degradedFactor
	}
	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}

	return types.Confidence{
		Score:    score,
		Level:    c.classify(score),
		Interval: c.Interval(in.AdjustedScore, score, c.cfg.DefaultLevel),
	}
}

// Interval derives the margin of error at the given confidence level. Bounds
// are clamped to [0,100]; the margin shrinks as confidence rises.
func (c *Calculator) Interval(point, confidenceScore, level float64) types.ConfidenceInterval {
	z, ok := c.cfg.ZTable[level]
	if !ok {
		level = c.cfg.DefaultLevel
		z = c.cfg.ZTable[level]
	}
	margin := z * c.cfg.BaseSpread * (1 - confidenceScore)

	lower := point - margin
	if lower < 0 {
		lower = 0
	}
	upper := point + margin
	if upper > 100 {
		upper = 100
	}

	return types.ConfidenceInterval{
		PointEstimate:   point,
		MarginOfError:   margin,
		LowerBound:      lower,
		UpperBound:      upper,
		ConfidenceLevel: level,
	}
}

// agreement measures how tightly the section scores cluster. It is 1 minus
// the population standard deviation normalized by the maximum useful spread.
func (c *Calculator) agreement(sections map[string]float64) float64 {
	if len(sections) < 2 {
		return 1
	}
	mean := 0.0
	for _, s := range sections {
		mean += s
	}
	mean /= float64(len(sections))

	variance := 0.0
	for _, s := range sections {
		d := s - mean
		variance += d * d
	}
	variance /= float64(len(sections))

	agreement := 1 - math.Sqrt(variance)/maxDisagreementSpread
	if agreement < 0 {
		return 0
	}
	return agreement
}

// boundaryDistance measures how far the score sits from the nearest decision
// threshold, normalized to [0,1]. Scores near a threshold are the ones a
// small input change could flip.
func (c *Calculator) boundaryDistance(score float64) float64 {
	thresholds := []float64{
		c.decision.ImmediateInterview,
		c.decision.Shortlist,
		c.decision.Waitlist,
	}
	nearest := math.MaxFloat64
	for _, t := range thresholds {
		if d := math.Abs(score - t); d < nearest {
			nearest = d
		}
	}
	if nearest >= boundaryComfortZone {
		return 1
	}
	return nearest / boundaryComfortZone
}

func (c *Calculator) classify(score float64) types.ConfidenceLevel {
	switch {
	case score >= c.cfg.VeryHighThreshold:
		return types.ConfidenceVeryHigh
	case score >= c.cfg.HighThreshold:
		return types.ConfidenceHigh
	case score >= c.cfg.MediumThreshold:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceLow
	}
}
