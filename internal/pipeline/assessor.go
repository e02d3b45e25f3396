// Package pipeline orchestrates a full candidate assessment: quality gate,
// eligibility, scoring, adjustments, confidence, growth, insights and the
// final recommendation, in that order.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentops/candidate-assessor/internal/completeness"
	"github.com/talentops/candidate-assessor/internal/config"
	"github.com/talentops/candidate-assessor/internal/confidence"
	"github.com/talentops/candidate-assessor/internal/eligibility"
	"github.com/talentops/candidate-assessor/internal/growth"
	"github.com/talentops/candidate-assessor/internal/insights"
	"github.com/talentops/candidate-assessor/internal/ranking"
	"github.com/talentops/candidate-assessor/internal/recommend"
	"github.com/talentops/candidate-assessor/internal/rules"
	"github.com/talentops/candidate-assessor/internal/scoring"
	"github.com/talentops/candidate-assessor/internal/skills"
	"github.com/talentops/candidate-assessor/internal/types"
)

// Assessor wires the pipeline stages together. It is safe for concurrent
// use: every stage is stateless once constructed.
type Assessor struct {
	cfg        *config.Config
	log        *zap.Logger
	scorer     *scoring.Scorer
	rules      *rules.Engine
	confidence *confidence.Calculator
	growth     *growth.Analyzer
	insights   *insights.Generator
	recommend  *recommend.Engine
	ranker     *ranking.Ranker
}

// New builds an assessor. sim may be nil to use the built-in skill
// similarity; log may be nil for a no-op logger.
func New(cfg *config.Config, log *zap.Logger, sim skills.SimilarityFunc) *Assessor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Assessor{
		cfg:        cfg,
		log:        log,
		scorer:     scoring.NewScorer(cfg, sim),
		rules:      rules.NewEngine(cfg),
		confidence: confidence.NewCalculator(cfg),
		growth:     growth.NewAnalyzer(cfg),
		insights:   insights.NewGenerator(cfg),
		recommend:  recommend.NewEngine(cfg),
		ranker:     ranking.NewRanker(cfg),
	}
}

// Assess runs the full pipeline for one candidate/job pair. now anchors every
// time-dependent computation so a re-run with the same inputs is identical.
func (a *Assessor) Assess(ctx context.Context, c *types.Candidate, j *types.Job, now time.Time) (*types.AssessmentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &types.AssessmentResult{
		ID:          assessmentID(c, j, now),
		CandidateID: c.ID,
		JobID:       j.ID,
		AssessedAt:  now,
	}

	// stage 1: data quality gate. Only missing critical fields block
	// scoring; a low completeness ratio alone just drags the confidence.
	result.Quality = completeness.Check(c)
	if result.Quality.Blocking() {
		a.log.Info("candidate blocked by quality gate",
			zap.String("candidate_id", c.ID),
			zap.Strings("critical_missing", result.Quality.CriticalMissing))
		return a.finishUnacceptable(result), nil
	}

	// stage 2: hard eligibility rules
	result.RejectionReasons = eligibility.Check(c, j)
	result.Rejected = len(result.RejectionReasons) > 0

	// stages 3-4: field scores and weighted aggregation. Scores are computed
	// even for rejected candidates so the rejection is explainable.
	scored, err := a.scorer.Score(c, j)
	if err != nil {
		return nil, fmt.Errorf("assessment of candidate %s failed: %w", c.ID, err)
	}
	result.Sections = scored.Sections
	result.RawScore = scored.BaseScore
	result.BaseScore = scored.BaseScore

	// stages 5-6: contextual rules, then cross-field interactions
	in := rules.Input{
		Candidate: c,
		Job:       j,
		Sections:  result.SectionScores(),
		Skills:    scored.Skills,
		Now:       now,
	}
	adjusted, adjustments := a.rules.Adjust(result.BaseScore, in)
	result.Adjustments = adjustments
	final, interactions := a.rules.Interact(adjusted, in)
	result.Interactions = interactions
	result.AdjustedScore = final

	if result.Rejected {
		result.TotalScore = 0
	} else {
		result.TotalScore = final
	}

	// stage 7: confidence
	result.Confidence = a.confidence.Compute(confidence.Input{
		AdjustedScore: result.AdjustedScore,
		SectionScores: result.SectionScores(),
		Completeness:  result.Quality.Completeness,
		Degraded:      scored.Skills.Degraded,
	})

	// stage 8: growth potential, independent of current fit
	result.Growth = a.growth.Analyze(c, result.AdjustedScore, now)

	// stage 9: insights
	result.Insights = a.insights.Generate(insights.Input{
		Candidate: c,
		Job:       j,
		Sections:  result.SectionScores(),
		Skills:    scored.Skills,
		Quality:   result.Quality,
		Now:       now,
	})

	// stage 10: recommendation
	if result.Rejected {
		result.Recommendation = a.rejectedRecommendation(result)
	} else {
		result.Recommendation = a.recommend.Decide(recommend.Input{
			Score:      result.TotalScore,
			Confidence: result.Confidence,
			Growth:     result.Growth,
			Insights:   result.Insights,
		})
	}

	result.Explanation = explain(result)

	a.log.Debug("assessment complete",
		zap.String("candidate_id", c.ID),
		zap.String("job_id", j.ID),
		zap.Float64("total_score", result.TotalScore),
		zap.String("action", string(result.Recommendation.Action)))
	return result, nil
}

// assessmentID derives the result ID from the inputs, so re-running the same
// assessment reproduces the result bit for bit.
func assessmentID(c *types.Candidate, j *types.Job, now time.Time) string {
	key := fmt.Sprintf("%s|%s|%d", c.ID, j.ID, now.UnixNano())
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}

// finishUnacceptable completes a result that never reached scoring.
func (a *Assessor) finishUnacceptable(result *types.AssessmentResult) *types.AssessmentResult {
	result.Rejected = true
	for _, f := range result.Quality.CriticalMissing {
		result.RejectionReasons = append(result.RejectionReasons,
			fmt.Sprintf("data_quality: missing critical field %s", f))
	}
	result.Confidence = types.Confidence{
		Score: 0,
		Level: types.ConfidenceLow,
		Interval: types.ConfidenceInterval{
			UpperBound:      100,
			ConfidenceLevel: a.cfg.Confidence.DefaultLevel,
			MarginOfError:   100,
		},
	}
	result.Recommendation = &types.SmartRecommendation{
		Action:    types.ActionHoldForReview,
		Priority:  types.PriorityLow,
		RiskLevel: types.RiskHigh,
		Message:   "profile data is insufficient for assessment; collect the missing fields and re-run",
		NextSteps: []string{"request the missing critical fields", "re-run the assessment"},
		DecisionFactors: types.DecisionFactors{
			Confidence: types.ConfidenceLow,
		},
	}
	result.Explanation = fmt.Sprintf("not assessed: data quality %s, missing %s",
		result.Quality.Quality, strings.Join(result.Quality.CriticalMissing, ", "))
	return result
}

// rejectedRecommendation overrides the score-driven decision for candidates
// that failed a hard eligibility rule.
func (a *Assessor) rejectedRecommendation(result *types.AssessmentResult) *types.SmartRecommendation {
	return &types.SmartRecommendation{
		Action:    types.ActionReject,
		Priority:  types.PriorityNone,
		RiskLevel: types.RiskHigh,
		Interval:  result.Confidence.Interval,
		Message: fmt.Sprintf("rejected by eligibility rules: %s",
			strings.Join(result.RejectionReasons, "; ")),
		NextSteps: []string{"send a polite rejection"},
		DecisionFactors: types.DecisionFactors{
			FitScore:   result.RawScore,
			Confidence: result.Confidence.Level,
		},
	}
}

func explain(r *types.AssessmentResult) string {
	var b strings.Builder
	if r.Rejected {
		fmt.Fprintf(&b, "rejected (%s); raw score %.1f.", strings.Join(r.RejectionReasons, "; "), r.RawScore)
		return b.String()
	}
	fmt.Fprintf(&b, "base score %.1f", r.BaseScore)
	for _, adj := range r.Adjustments {
		fmt.Fprintf(&b, "; %+.1f %s", adj.Delta, adj.RuleCode)
	}
	for _, adj := range r.Interactions {
		fmt.Fprintf(&b, "; %+.1f %s", adj.Delta, adj.RuleCode)
	}
	fmt.Fprintf(&b, "; final %.1f (%s confidence).", r.TotalScore, r.Confidence.Level)
	return b.String()
}
