package types

// RankTier is the percentile bucket of a candidate relative to the pool.
type RankTier string

// Rank tiers by pool percentile.
const (
	TierS RankTier = "S" // top 10%
	TierA RankTier = "A" // next 20%
	TierB RankTier = "B" // next 30%
	TierC RankTier = "C" // next 25%
	TierD RankTier = "D" // remainder
)

// InterviewPriority maps a rank tier to scheduling urgency.
type InterviewPriority string

// Interview priorities derived from rank tiers.
const (
	InterviewUrgent InterviewPriority = "urgent"
	InterviewHigh   InterviewPriority = "high"
	InterviewMedium InterviewPriority = "medium"
	InterviewLow    InterviewPriority = "low"
	InterviewNever  InterviewPriority = "do_not_interview"
)

// RankedCandidate is one candidate's position in a ranking run.
type RankedCandidate struct {
	CandidateID       string            `json:"candidate_id"`
	CandidateName     string            `json:"candidate_name,omitempty"`
	Rank              int               `json:"rank"`
	Tier              RankTier          `json:"tier"`
	CompositeScore    float64           `json:"composite_score"`
	TotalScore        float64           `json:"total_score"`
	SkillsScore       float64           `json:"skills_score"`
	ExperienceScore   float64           `json:"experience_score"`
	SalaryScore       float64           `json:"salary_score"`
	GrowthScore       float64           `json:"growth_score"`
	RedFlagCount      int               `json:"red_flag_count"`
	CriticalRedFlags  int               `json:"critical_red_flags"`
	InterviewPriority InterviewPriority `json:"interview_priority"`
	KeyStrengths      []string          `json:"key_strengths,omitempty"`
	KeyConcerns       []string          `json:"key_concerns,omitempty"`
}

// DimensionBest records the leading candidate for one scoring dimension.
type DimensionBest struct {
	CandidateID string  `json:"candidate_id"`
	Score       float64 `json:"score"`
}

// RankingResult is a derived view over many assessment results for one job.
// It is recomputed on demand and never persisted as authoritative state.
type RankingResult struct {
	JobID            string                    `json:"job_id"`
	Ranked           []RankedCandidate         `json:"ranked_candidates"`
	TierDistribution map[RankTier]int          `json:"tier_distribution"`
	ComparisonMatrix map[string]DimensionBest  `json:"comparison_matrix"` // best candidate per dimension
	Priorities       map[InterviewPriority]int `json:"interview_priorities"`
	AverageScore     float64                   `json:"average_score"`
	TopTenAverage    float64                   `json:"top_ten_average"`
}
