// Package recommend turns a finished assessment into a hiring decision:
// action, priority, risk, success probability and the concrete next steps
// for the recruiter.
package recommend

import (
	"fmt"

	"github.com/talentops/candidate-assessor/internal/config"
	"github.com/talentops/candidate-assessor/internal/types"
)

// Engine derives recommendations from assessment outputs.
type Engine struct {
	cfg config.DecisionConfig
}

func NewEngine(cfg *config.Config) *Engine {
	return &Engine{cfg: cfg.Decision}
}

// Input is the decision-relevant slice of an assessment.
type Input struct {
	Score      float64
	Confidence types.Confidence
	Growth     *types.GrowthPotential
	Insights   *types.Insights
}

// Success probability blend, red flag discounts and the growth tier nudge.
const (
	probScoreWeight      = 0.7
	probConfidenceWeight = 0.3
	probFlagPenalty      = 5.0
	probGrowthNudge      = 5.0
	probFloor            = 5.0
	probCeiling          = 95.0
)

// Decide produces the recommendation bundle. High-potential growth relaxes
// each threshold by the configured offset, so a near-miss with a strong
// trajectory still moves forward.
func (e *Engine) Decide(in Input) *types.SmartRecommendation {
	offset := 0.0
	if in.Growth != nil && in.Growth.Tier == types.GrowthHighPotential {
		offset = e.cfg.GrowthOffset
	}
	effective := in.Score + offset

	action, priority := e.action(effective)

	criticalFlags := 0
	seriousFlags := 0 // critical plus high
	mediumFlags := 0
	if in.Insights != nil {
		criticalFlags = in.Insights.CountBySeverity(types.SeverityCritical)
		seriousFlags = in.Insights.CountBySeverity(types.SeverityHigh)
		mediumFlags = in.Insights.CountBySeverity(types.SeverityMedium) - seriousFlags
	}

	// an immediate interview needs a clean profile and a confident signal
	if action == types.ActionImmediateInterview && (seriousFlags > 0 || !confidentEnough(in.Confidence.Level)) {
		action, priority = types.ActionShortlist, types.PriorityHigh
	}
	// a critical finding caps the action at waitlist regardless of score
	if criticalFlags > 0 && action == types.ActionShortlist {
		action, priority = types.ActionWaitlist, types.PriorityMedium
	}
	// uncertainty routes to a human instead of an automated reject
	if in.Confidence.Level == types.ConfidenceLow {
		action, priority = types.ActionHoldForReview, types.PriorityLow
	}

	rec := &types.SmartRecommendation{
		Action:             action,
		Priority:           priority,
		RiskLevel:          e.risk(seriousFlags, mediumFlags),
		SuccessProbability: e.successProbability(in, seriousFlags),
		Interval:           in.Confidence.Interval,
		Message:            e.message(action, in),
		NextSteps:          nextSteps(action),
		InterviewFocus:     interviewFocus(in.Insights),
		DecisionFactors:    e.factors(in),
	}
	return rec
}

func (e *Engine) action(score float64) (types.Action, types.Priority) {
	switch {
	case score >= e.cfg.ImmediateInterview:
		return types.ActionImmediateInterview, types.PriorityCritical
	case score >= e.cfg.Shortlist:
		return types.ActionShortlist, types.PriorityHigh
	case score >= e.cfg.Waitlist:
		return types.ActionWaitlist, types.PriorityMedium
	default:
		return types.ActionReject, types.PriorityNone
	}
}

func confidentEnough(level types.ConfidenceLevel) bool {
	return level == types.ConfidenceVeryHigh || level == types.ConfidenceHigh
}

func (e *Engine) risk(serious, medium int) types.RiskLevel {
	switch {
	case serious > 0:
		return types.RiskHigh
	case medium >= 2:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}

func (e *Engine) successProbability(in Input, seriousFlags int) float64 {
	prob := probScoreWeight*in.Score + probConfidenceWeight*in.Confidence.Score*100
	prob -= probFlagPenalty * float64(seriousFlags)
	if in.Growth != nil {
		switch in.Growth.Tier {
		case types.GrowthHighPotential:
			prob += probGrowthNudge
		case types.GrowthLimited:
			prob -= probGrowthNudge
		}
	}
	if prob < probFloor {
		return probFloor
	}
	if prob > probCeiling {
		return probCeiling
	}
	return prob
}

func (e *Engine) message(action types.Action, in Input) string {
	i := in.Confidence.Interval
	base := fmt.Sprintf("score %.1f (range %.1f-%.1f at %.0f%% confidence)",
		in.Score, i.LowerBound, i.UpperBound, i.ConfidenceLevel*100)
	switch action {
	case types.ActionImmediateInterview:
		return "strong match, move to interview without delay; " + base
	case types.ActionShortlist:
		return "good match, add to the shortlist; " + base
	case types.ActionWaitlist:
		return "possible match, keep on the waitlist; " + base
	case types.ActionHoldForReview:
		return "assessment is uncertain, route to a human reviewer; " + base
	default:
		return "below the bar for this role; " + base
	}
}

func nextSteps(action types.Action) []string {
	switch action {
	case types.ActionImmediateInterview:
		return []string{
			"schedule a technical interview this week",
			"prepare the compensation discussion",
		}
	case types.ActionShortlist:
		return []string{
			"run a screening call",
			"compare against the rest of the shortlist",
		}
	case types.ActionWaitlist:
		return []string{
			"revisit if the shortlist thins out",
			"request the missing profile details",
		}
	case types.ActionHoldForReview:
		return []string{
			"have a recruiter verify the profile data",
			"re-run the assessment once gaps are filled",
		}
	default:
		return []string{"send a polite rejection"}
	}
}

// interviewFocus turns weaknesses and red flags into probe areas, capped to
// keep the list actionable.
const maxFocusAreas = 5

func interviewFocus(in *types.Insights) []string {
	if in == nil {
		return nil
	}
	focus := append([]string(nil), in.Weaknesses...)
	for _, f := range in.RedFlags {
		focus = append(focus, f.Recommendation)
	}
	if len(focus) > maxFocusAreas {
		focus = focus[:maxFocusAreas]
	}
	return focus
}

func (e *Engine) factors(in Input) types.DecisionFactors {
	f := types.DecisionFactors{
		FitScore: in.Score,
		ScoreRange: fmt.Sprintf("%.1f-%.1f",
			in.Confidence.Interval.LowerBound, in.Confidence.Interval.UpperBound),
		Confidence: in.Confidence.Level,
	}
	if in.Growth != nil {
		f.GrowthTier = in.Growth.Tier
	}
	if in.Insights != nil {
		f.RedFlagCount = len(in.Insights.RedFlags)
		if len(in.Insights.Strengths) > 0 {
			f.TopStrength = in.Insights.Strengths[0]
		}
		if len(in.Insights.Weaknesses) > 0 {
			f.TopWeakness = in.Insights.Weaknesses[0]
		}
	}
	return f
}
