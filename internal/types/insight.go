package types

// GrowthTier classifies a candidate's projected trajectory.
type GrowthTier string

// Growth tiers.
const (
	GrowthHighPotential GrowthTier = "high_potential"
	GrowthStandard      GrowthTier = "standard"
	GrowthLimited       GrowthTier = "limited"
)

// GrowthPotential projects a candidate's future trajectory. It is computed
// independently of the current-fit score; the two only share raw candidate
// data as input.
type GrowthPotential struct {
	Score float64    `json:"score"` // 0-100
	Tier  GrowthTier `json:"tier"`

	LearningAgility      float64 `json:"learning_agility"`
	CareerTrajectory     float64 `json:"career_trajectory"`
	SkillAcquisitionRate float64 `json:"skill_acquisition_rate"`
	Adaptability         float64 `json:"adaptability"`

	Indicators     []string `json:"indicators,omitempty"`
	Recommendation string   `json:"recommendation"`
}

// RedFlagType identifies a detected risk pattern.
type RedFlagType string

// Known red flag types.
const (
	FlagEmploymentGap    RedFlagType = "employment_gap"
	FlagJobHopping       RedFlagType = "job_hopping"
	FlagOverqualified    RedFlagType = "overqualified"
	FlagUnderqualified   RedFlagType = "underqualified"
	FlagSalaryMismatch   RedFlagType = "salary_mismatch"
	FlagCriticalSkillGap RedFlagType = "critical_skill_gap"
	FlagCareerRegression RedFlagType = "career_regression"
	FlagMissingInfo      RedFlagType = "missing_info"
)

// Severity grades how serious a red flag is.
type Severity string

// Red flag severities, from worst to mildest.
const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// RedFlag is a detected risk pattern in a candidate profile.
type RedFlag struct {
	Type           RedFlagType `json:"type"`
	Severity       Severity    `json:"severity"`
	Description    string      `json:"description"`
	Impact         string      `json:"impact"`
	Recommendation string      `json:"recommendation"`
}

// CareerProgression classifies the direction of a candidate's title history.
type CareerProgression string

// Career progression patterns.
const (
	ProgressionStrongUpward CareerProgression = "strong_upward"
	ProgressionSteadyUpward CareerProgression = "steady_upward"
	ProgressionLateral      CareerProgression = "lateral"
	ProgressionStagnant     CareerProgression = "stagnant"
	ProgressionDeclining    CareerProgression = "declining"
	ProgressionUnclear      CareerProgression = "unclear"
)

// Insights bundles red flags, strengths/weaknesses and derived history
// signals for one assessment.
type Insights struct {
	Strengths         []string          `json:"strengths,omitempty"`
	Weaknesses        []string          `json:"weaknesses,omitempty"`
	RedFlags          []RedFlag         `json:"red_flags,omitempty"`
	CareerProgression CareerProgression `json:"career_progression"`
	SkillCurrency     float64           `json:"skill_currency"` // 0-100, modern vs legacy ratio
}

// CountBySeverity returns how many red flags are at least as severe as min.
func (in *Insights) CountBySeverity(min Severity) int {
	rank := severityRank(min)
	n := 0
	for _, f := range in.RedFlags {
		if severityRank(f.Severity) <= rank {
			n++
		}
	}
	return n
}

func severityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	default:
		return 3
	}
}

// Action is the recommended hiring action.
type Action string

// Hiring actions.
const (
	ActionImmediateInterview Action = "immediate_interview"
	ActionShortlist          Action = "shortlist"
	ActionWaitlist           Action = "waitlist"
	ActionReject             Action = "reject"
	ActionHoldForReview      Action = "hold_for_review"
)

// Priority is the scheduling priority attached to an action.
type Priority string

// Interview priorities.
const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
	PriorityNone     Priority = "none"
)

// RiskLevel grades the hiring risk of a recommendation.
type RiskLevel string

// Hiring risk levels.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// SmartRecommendation is the decision bundle produced for one assessment.
type SmartRecommendation struct {
	Action             Action             `json:"action"`
	Priority           Priority           `json:"priority"`
	RiskLevel          RiskLevel          `json:"risk_level"`
	SuccessProbability float64            `json:"success_probability"` // 0-100
	Interval           ConfidenceInterval `json:"confidence_interval"`
	Message            string             `json:"message"`
	NextSteps          []string           `json:"next_steps,omitempty"`
	InterviewFocus     []string           `json:"interview_focus,omitempty"`
	DecisionFactors    DecisionFactors    `json:"decision_factors"`
}

// DecisionFactors summarizes the inputs that drove a recommendation.
type DecisionFactors struct {
	FitScore     float64         `json:"fit_score"`
	ScoreRange   string          `json:"score_range"`
	Confidence   ConfidenceLevel `json:"confidence"`
	GrowthTier   GrowthTier      `json:"growth_tier,omitempty"`
	RedFlagCount int             `json:"red_flag_count"`
	TopStrength  string          `json:"top_strength,omitempty"`
	TopWeakness  string          `json:"top_weakness,omitempty"`
}
