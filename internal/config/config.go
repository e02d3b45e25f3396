// Package config provides the engine configuration: weight profiles, rule
// thresholds, confidence z-table, decision thresholds and the skills
// taxonomy. Configuration is data, loaded once and passed read-only into the
// pipeline, never module-level mutable state.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/talentops/candidate-assessor/internal/types"
)

// Configuration errors are fatal at call time. Silent defaults would corrupt
// every downstream score, so loading and validation fail loudly instead.
var (
	ErrBadWeightProfile = errors.New("weight profile does not sum to 1.0")
	ErrUnknownJobLevel  = errors.New("unknown job level")
)

const weightSumTolerance = 1e-6

// WeightProfile maps section names to weight fractions. Weights must sum
// to 1.0.
type WeightProfile map[string]float64

// Sum returns the total of all section weights.
func (p WeightProfile) Sum() float64 {
	total := 0.0
	for _, w := range p {
		total += w
	}
	return total
}

// Config is the full, read-only engine configuration.
type Config struct {
	WeightProfiles map[string]WeightProfile `mapstructure:"weight_profiles" validate:"required,min=1"`
	Rules          RulesConfig              `mapstructure:"rules"`
	Interactions   InteractionsConfig       `mapstructure:"interactions"`
	Confidence     ConfidenceConfig         `mapstructure:"confidence"`
	Growth         GrowthConfig             `mapstructure:"growth"`
	Decision       DecisionConfig           `mapstructure:"decision"`
	Ranking        RankingConfig            `mapstructure:"ranking"`
	Taxonomy       TaxonomyConfig           `mapstructure:"taxonomy"`
}

// RulesConfig holds the hand-tuned thresholds and point values of the
// contextual adjustment rules. The defaults come from the original
// deployment's tuning and are starting points, not validated ground truth.
type RulesConfig struct {
	GCCBonusYears          float64 `mapstructure:"gcc_bonus_years" validate:"gte=0"`
	GCCBonus               float64 `mapstructure:"gcc_bonus"`
	SkillsAmplifyThreshold float64 `mapstructure:"skills_amplify_threshold" validate:"gte=0,lte=100"`
	SkillsAmplifyBonus     float64 `mapstructure:"skills_amplify_bonus"`
	MustHavePenalty        float64 `mapstructure:"must_have_penalty"`
	JobHopTenureMonths     int     `mapstructure:"job_hop_tenure_months" validate:"gte=0"`
	JobHopPenalty          float64 `mapstructure:"job_hop_penalty"`
	SweetSpotLowFrac       float64 `mapstructure:"sweet_spot_low_frac" validate:"gte=0,lte=1"`
	SweetSpotHighFrac      float64 `mapstructure:"sweet_spot_high_frac" validate:"gte=0,lte=2"`
	SweetSpotBonus         float64 `mapstructure:"sweet_spot_bonus"`
}

// InteractionsConfig holds thresholds for the non-linear cross-field
// corrections applied after the contextual rules.
type InteractionsConfig struct {
	StrongSkillsThreshold  float64 `mapstructure:"strong_skills_threshold" validate:"gte=0,lte=100"`
	SkillsCompensateBonus  float64 `mapstructure:"skills_compensate_bonus"`
	SolidExperienceScore   float64 `mapstructure:"solid_experience_score" validate:"gte=0,lte=100"`
	MinorSkillGapLow       float64 `mapstructure:"minor_skill_gap_low" validate:"gte=0,lte=100"`
	MinorSkillGapHigh      float64 `mapstructure:"minor_skill_gap_high" validate:"gte=0,lte=100"`
	ExperienceCompensation float64 `mapstructure:"experience_compensation"`
	PerfectThreshold       float64 `mapstructure:"perfect_threshold" validate:"gte=0,lte=100"`
	PerfectBonus           float64 `mapstructure:"perfect_bonus"`
}

// ConfidenceConfig drives the confidence calculator. ZTable maps confidence
// levels (0.90, 0.95, 0.99) to standard z-values.
type ConfidenceConfig struct {
	CompletenessWeight float64             `mapstructure:"completeness_weight" validate:"gte=0,lte=1"`
	AgreementWeight    float64             `mapstructure:"agreement_weight" validate:"gte=0,lte=1"`
	BoundaryWeight     float64             `mapstructure:"boundary_weight" validate:"gte=0,lte=1"`
	VeryHighThreshold  float64             `mapstructure:"very_high_threshold" validate:"gte=0,lte=1"`
	HighThreshold      float64             `mapstructure:"high_threshold" validate:"gte=0,lte=1"`
	MediumThreshold    float64             `mapstructure:"medium_threshold" validate:"gte=0,lte=1"`
	BaseSpread         float64             `mapstructure:"base_spread" validate:"gt=0"`
	DefaultLevel       float64             `mapstructure:"default_level"`
	ZTable             map[float64]float64 `mapstructure:"z_table" validate:"required,min=1"`
}

// GrowthConfig holds the growth potential weights and tier thresholds.
// Component weights must sum to 1.0.
type GrowthConfig struct {
	SkillAcquisitionWeight float64 `mapstructure:"skill_acquisition_weight"`
	EducationWeight        float64 `mapstructure:"education_weight"`
	TrajectoryWeight       float64 `mapstructure:"trajectory_weight"`
	CertificationWeight    float64 `mapstructure:"certification_weight"`
	AdaptabilityWeight     float64 `mapstructure:"adaptability_weight"`

	HighPotentialThreshold float64 `mapstructure:"high_potential_threshold" validate:"gte=0,lte=100"`
	StandardThreshold      float64 `mapstructure:"standard_threshold" validate:"gte=0,lte=100"`

	// HiddenGemGrowth/Fit keep the "low current fit but strong trajectory"
	// promotion from the original tuning.
	HiddenGemGrowth float64 `mapstructure:"hidden_gem_growth" validate:"gte=0,lte=100"`
	HiddenGemFit    float64 `mapstructure:"hidden_gem_fit" validate:"gte=0,lte=100"`

	RecentCertWindowMonths int `mapstructure:"recent_cert_window_months" validate:"gt=0"`
}

// Weights returns the component weights in aggregation order.
func (g GrowthConfig) Weights() []float64 {
	return []float64{
		g.SkillAcquisitionWeight,
		g.EducationWeight,
		g.TrajectoryWeight,
		g.CertificationWeight,
		g.AdaptabilityWeight,
	}
}

// DecisionConfig holds the recommendation engine thresholds.
type DecisionConfig struct {
	ImmediateInterview float64 `mapstructure:"immediate_interview" validate:"gte=0,lte=100"`
	Shortlist          float64 `mapstructure:"shortlist" validate:"gte=0,lte=100"`
	Waitlist           float64 `mapstructure:"waitlist" validate:"gte=0,lte=100"`
	GrowthOffset       float64 `mapstructure:"growth_offset" validate:"gte=0"`
}

// RankingConfig holds the cross-candidate composite weights.
type RankingConfig struct {
	OverallWeight    float64 `mapstructure:"overall_weight"`
	SkillsWeight     float64 `mapstructure:"skills_weight"`
	ExperienceWeight float64 `mapstructure:"experience_weight"`
	SalaryWeight     float64 `mapstructure:"salary_weight"`
	GrowthWeight     float64 `mapstructure:"growth_weight"`
}

// TaxonomyConfig is the skills taxonomy: canonical skill names to synonyms,
// related-skill groups for partial credit, and technology era lists used by
// skill currency and growth scoring.
type TaxonomyConfig struct {
	Synonyms          map[string][]string `mapstructure:"synonyms"`
	Related           map[string][]string `mapstructure:"related"`
	SemanticThreshold float64             `mapstructure:"semantic_threshold" validate:"gte=0,lte=1"`
	ModernTech        []string            `mapstructure:"modern_tech"`
	LegacyTech        []string            `mapstructure:"legacy_tech"`
	PremiumCerts      []string            `mapstructure:"premium_certs"`
}

// Load reads a configuration file (YAML or JSON) and merges it over the
// defaults. An empty path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		v := viper.New()
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := v.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks structural constraints via struct tags and the semantic
// invariants the tags cannot express: every weight profile sums to 1.0 and
// covers only known sections, profile keys are known job levels, growth
// weights sum to 1.0, and the z-table covers the default level.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	knownSections := map[string]bool{
		types.SectionSkills:     true,
		types.SectionExperience: true,
		types.SectionEducation:  true,
		types.SectionSalary:     true,
		types.SectionDomain:     true,
	}

	for level, profile := range c.WeightProfiles {
		if !types.JobLevel(level).Valid() {
			return fmt.Errorf("%w: weight profile key %q", ErrUnknownJobLevel, level)
		}
		if math.Abs(profile.Sum()-1.0) > weightSumTolerance {
			return fmt.Errorf("%w: profile %q sums to %.4f", ErrBadWeightProfile, level, profile.Sum())
		}
		for section := range profile {
			if !knownSections[section] {
				return fmt.Errorf("%w: profile %q references unknown section %q", ErrBadWeightProfile, level, section)
			}
		}
	}

	growthSum := 0.0
	for _, w := range c.Growth.Weights() {
		growthSum += w
	}
	if math.Abs(growthSum-1.0) > weightSumTolerance {
		return fmt.Errorf("%w: growth weights sum to %.4f", ErrBadWeightProfile, growthSum)
	}

	if _, ok := c.Confidence.ZTable[c.Confidence.DefaultLevel]; !ok {
		return fmt.Errorf("config validation failed: z-table has no entry for default level %.2f", c.Confidence.DefaultLevel)
	}

	if c.Decision.Waitlist > c.Decision.Shortlist || c.Decision.Shortlist > c.Decision.ImmediateInterview {
		return fmt.Errorf("config validation failed: decision thresholds must be ordered waitlist <= shortlist <= immediate_interview")
	}

	if c.Rules.SweetSpotLowFrac > c.Rules.SweetSpotHighFrac {
		return fmt.Errorf("config validation failed: sweet spot band is inverted (%.2f > %.2f)",
			c.Rules.SweetSpotLowFrac, c.Rules.SweetSpotHighFrac)
	}

	return nil
}

// ProfileFor returns the weight profile for a job level, or
// ErrUnknownJobLevel when no profile is configured for it.
func (c *Config) ProfileFor(level types.JobLevel) (WeightProfile, error) {
	profile, ok := c.WeightProfiles[string(level)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownJobLevel, level)
	}
	return profile, nil
}
