package types

import "time"

// MatchLevel describes the quality of a field or section match.
type MatchLevel string

// Match quality levels, from best to worst.
const (
	MatchExcellent MatchLevel = "excellent"
	MatchGood      MatchLevel = "good"
	MatchPartial   MatchLevel = "partial"
	MatchPoor      MatchLevel = "poor"
)

// MatchLevelFor maps a 0-100 score onto a match level.
func MatchLevelFor(score float64) MatchLevel {
	switch {
	case score >= 85:
		return MatchExcellent
	case score >= 70:
		return MatchGood
	case score >= 50:
		return MatchPartial
	default:
		return MatchPoor
	}
}

// Section names used by the field scorers and the weighted aggregator.
const (
	SectionSkills     = "skills"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSalary     = "salary"
	SectionDomain     = "domain"
)

// FieldAssessment is the score for a single candidate field against a single
// job requirement, with a human-readable explanation. Score is always in
// [0,100].
type FieldAssessment struct {
	FieldName      string     `json:"field_name"`
	Section        string     `json:"section"`
	CandidateValue string     `json:"candidate_value"`
	JobRequirement string     `json:"job_requirement"`
	Score          float64    `json:"score"`
	MatchLevel     MatchLevel `json:"match_level"`
	Explanation    string     `json:"explanation"`
	Weight         float64    `json:"weight,omitempty"` // intra-section weight, defaults to 1
}

// SectionAssessment aggregates the field assessments of one section.
type SectionAssessment struct {
	Name        string            `json:"name"`
	Fields      []FieldAssessment `json:"fields"`
	Score       float64           `json:"score"`
	MatchLevel  MatchLevel        `json:"match_level"`
	Explanation string            `json:"explanation"`
}

// ContextualAdjustment records one applied bonus/penalty rule. The ordered
// list of adjustments is part of the result's audit trail.
type ContextualAdjustment struct {
	RuleCode string  `json:"rule_code"`
	Delta    float64 `json:"delta"`
	Reason   string  `json:"reason"`
}

// ConfidenceLevel is the discrete confidence classification of a result.
type ConfidenceLevel string

// Confidence levels, from most to least certain.
const (
	ConfidenceVeryHigh ConfidenceLevel = "very_high"
	ConfidenceHigh     ConfidenceLevel = "high"
	ConfidenceMedium   ConfidenceLevel = "medium"
	ConfidenceLow      ConfidenceLevel = "low"
)

// ConfidenceInterval is a statistical interval around the adjusted score.
// Invariant: LowerBound <= PointEstimate <= UpperBound and MarginOfError >= 0.
type ConfidenceInterval struct {
	PointEstimate   float64 `json:"point_estimate"`
	MarginOfError   float64 `json:"margin_of_error"`
	LowerBound      float64 `json:"lower_bound"`
	UpperBound      float64 `json:"upper_bound"`
	ConfidenceLevel float64 `json:"confidence_level"` // 0.90, 0.95 or 0.99
}

// Confidence is the combined certainty signal for an assessment.
type Confidence struct {
	Score    float64            `json:"score"` // 0-1
	Level    ConfidenceLevel    `json:"level"`
	Interval ConfidenceInterval `json:"interval"`
}

// DataQuality classifies how complete the input records were.
type DataQuality string

// Data quality tiers by field completeness ratio.
const (
	QualityExcellent    DataQuality = "EXCELLENT"    // >= 90%
	QualityGood         DataQuality = "GOOD"         // >= 75%
	QualityFair         DataQuality = "FAIR"         // >= 60%
	QualityPoor         DataQuality = "POOR"         // >= 50%
	QualityUnacceptable DataQuality = "UNACCEPTABLE" // below 50% or missing critical fields
)

// CompletenessReport is the outcome of the data completeness gate.
type CompletenessReport struct {
	Quality          DataQuality `json:"quality"`
	Completeness     float64     `json:"completeness"` // 0-1 field coverage
	CriticalMissing  []string    `json:"critical_missing,omitempty"`
	ImportantMissing []string    `json:"important_missing,omitempty"`
}

// Blocking reports whether the missing data forbids scoring entirely.
func (r *CompletenessReport) Blocking() bool {
	return len(r.CriticalMissing) > 0
}

// AssessmentResult is the terminal output of the pipeline for one
// (candidate, job) pair. It is read-only once produced; re-assessment
// creates a new instance.
type AssessmentResult struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	JobID       string    `json:"job_id"`
	AssessedAt  time.Time `json:"assessed_at"`

	Quality CompletenessReport `json:"quality"`

	Rejected         bool     `json:"rejected"`
	RejectionReasons []string `json:"rejection_reasons,omitempty"`

	// RawScore is the weighted base score computed even for rejected
	// candidates, kept for transparency. TotalScore is the authoritative
	// decision score: 0 when rejected or when data was unacceptable.
	RawScore      float64 `json:"raw_score"`
	BaseScore     float64 `json:"base_score"`
	AdjustedScore float64 `json:"adjusted_score"`
	TotalScore    float64 `json:"total_score"`

	Sections     []SectionAssessment    `json:"sections,omitempty"`
	Adjustments  []ContextualAdjustment `json:"adjustments,omitempty"`
	Interactions []ContextualAdjustment `json:"interactions,omitempty"`

	Confidence     Confidence           `json:"confidence"`
	Growth         *GrowthPotential     `json:"growth,omitempty"`
	Insights       *Insights            `json:"insights,omitempty"`
	Recommendation *SmartRecommendation `json:"recommendation,omitempty"`

	Explanation string `json:"explanation,omitempty"`
}

// Section returns the named section assessment, or nil if absent.
func (r *AssessmentResult) Section(name string) *SectionAssessment {
	for i := range r.Sections {
		if r.Sections[i].Name == name {
			return &r.Sections[i]
		}
	}
	return nil
}

// SectionScores returns the per-section scores keyed by section name.
func (r *AssessmentResult) SectionScores() map[string]float64 {
	scores := make(map[string]float64, len(r.Sections))
	for _, s := range r.Sections {
		scores[s.Name] = s.Score
	}
	return scores
}
