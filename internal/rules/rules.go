// Package rules applies the contextual adjustments and cross-field
// interaction corrections that move the base score toward the final adjusted
// score. Rules are data: an ordered table evaluated top to bottom, each
// leaving an audit entry when it fires.
package rules

import (
	"fmt"
	"time"

	"github.com/talentops/candidate-assessor/internal/config"
	"github.com/talentops/candidate-assessor/internal/skills"
	"github.com/talentops/candidate-assessor/internal/types"
)

// Input carries everything a rule may inspect. Rules never recompute section
// scores, they only read them.
type Input struct {
	Candidate *types.Candidate
	Job       *types.Job
	Sections  map[string]float64
	Skills    skills.Report
	Now       time.Time
}

// Engine evaluates the adjustment and interaction tables.
type Engine struct {
	cfg *config.Config
}

func NewEngine(cfg *config.Config) *Engine {
	return &Engine{cfg: cfg}
}

// adjustmentRule is one contextual rule. apply returns nil when the rule
// does not fire.
type adjustmentRule struct {
	code  string
	apply func(e *Engine, in Input) *types.ContextualAdjustment
}

// The table order is the application order and therefore the audit order.
var adjustmentRules = []adjustmentRule{
	{"gcc_experience_bonus", func(e *Engine, in Input) *types.ContextualAdjustment {
		years := in.Candidate.GCCExperienceYears()
		if years < e.cfg.Rules.GCCBonusYears {
			return nil
		}
		return &types.ContextualAdjustment{
			Delta:  e.cfg.Rules.GCCBonus,
			Reason: fmt.Sprintf("%.1f years of GCC market experience", years),
		}
	}},
	{"exceptional_skills_amplifier", func(e *Engine, in Input) *types.ContextualAdjustment {
		score := in.Sections[types.SectionSkills]
		if score < e.cfg.Rules.SkillsAmplifyThreshold {
			return nil
		}
		return &types.ContextualAdjustment{
			Delta:  e.cfg.Rules.SkillsAmplifyBonus,
			Reason: fmt.Sprintf("skills score %.0f is exceptional", score),
		}
	}},
	{"missing_must_have_skills", func(e *Engine, in Input) *types.ContextualAdjustment {
		n := len(in.Skills.MissingRequired)
		if n == 0 {
			return nil
		}
		return &types.ContextualAdjustment{
			Delta:  e.cfg.Rules.MustHavePenalty,
			Reason: fmt.Sprintf("%d required skill(s) not found", n),
		}
	}},
	{"job_hopping_penalty", func(e *Engine, in Input) *types.ContextualAdjustment {
		avg, jobs := averageTenureMonths(in.Candidate, in.Now)
		if jobs < 2 || avg >= float64(e.cfg.Rules.JobHopTenureMonths) {
			return nil
		}
		return &types.ContextualAdjustment{
			Delta:  e.cfg.Rules.JobHopPenalty,
			Reason: fmt.Sprintf("average tenure %.0f months across %d jobs", avg, jobs),
		}
	}},
	{"salary_sweet_spot", func(e *Engine, in Input) *types.ContextualAdjustment {
		max := in.Job.SalaryMax
		expected := in.Candidate.ExpectedSalary
		if max <= 0 || expected <= 0 {
			return nil
		}
		low := max * e.cfg.Rules.SweetSpotLowFrac
		high := max * e.cfg.Rules.SweetSpotHighFrac
		if expected < low || expected > high {
			return nil
		}
		return &types.ContextualAdjustment{
			Delta:  e.cfg.Rules.SweetSpotBonus,
			Reason: "salary expectation aligns closely with the budget",
		}
	}},
}

// Adjust runs the contextual rule table over the base score. The returned
// score is clamped to [0,100].
func (e *Engine) Adjust(base float64, in Input) (float64, []types.ContextualAdjustment) {
	score := base
	var applied []types.ContextualAdjustment
	for _, rule := range adjustmentRules {
		adj := rule.apply(e, in)
		if adj == nil {
			continue
		}
		adj.RuleCode = rule.code
		score += adj.Delta
		applied = append(applied, *adj)
	}
	return Clamp(score), applied
}

// averageTenureMonths computes mean employment duration over completed and
// current positions.
func averageTenureMonths(c *types.Candidate, now time.Time) (float64, int) {
	if len(c.Employment) == 0 {
		return 0, 0
	}
	total := 0.0
	for i := range c.Employment {
		total += c.Employment[i].TenureMonths(now)
	}
	return total / float64(len(c.Employment)), len(c.Employment)
}

// Clamp bounds a score to [0,100].
func Clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
