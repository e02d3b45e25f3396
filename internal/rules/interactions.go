package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/talentops/candidate-assessor/internal/types"
)

// interactionRule detects one non-linear cross-field pattern.
type interactionRule struct {
	code  string
	apply func(e *Engine, in Input) *types.ContextualAdjustment
}

var interactionRules = []interactionRule{
	{"skills_compensate_experience", func(e *Engine, in Input) *types.ContextualAdjustment {
		skills := in.Sections[types.SectionSkills]
		experience := in.Sections[types.SectionExperience]
		if skills < e.cfg.Interactions.StrongSkillsThreshold || experience >= e.cfg.Interactions.SolidExperienceScore {
			return nil
		}
		return &types.ContextualAdjustment{
			Delta:  e.cfg.Interactions.SkillsCompensateBonus,
			Reason: fmt.Sprintf("strong skills (%.0f) offset a thin experience record (%.0f)", skills, experience),
		}
	}},
	{"experience_compensates_skill_gap", func(e *Engine, in Input) *types.ContextualAdjustment {
		skills := in.Sections[types.SectionSkills]
		experience := in.Sections[types.SectionExperience]
		if experience < e.cfg.Interactions.SolidExperienceScore {
			return nil
		}
		if skills < e.cfg.Interactions.MinorSkillGapLow || skills >= e.cfg.Interactions.MinorSkillGapHigh {
			return nil
		}
		return &types.ContextualAdjustment{
			Delta:  e.cfg.Interactions.ExperienceCompensation,
			Reason: fmt.Sprintf("solid experience (%.0f) offsets a minor skill gap (%.0f)", experience, skills),
		}
	}},
	{"career_changer", func(e *Engine, in Input) *types.ContextualAdjustment {
		from, to, ok := industrySwitch(in.Candidate)
		if !ok {
			return nil
		}
		// a note for the recruiter, not a penalty
		return &types.ContextualAdjustment{
			Delta:  0,
			Reason: fmt.Sprintf("recent industry change from %s to %s, probe transferable skills", from, to),
		}
	}},
	{"across_the_board_excellence", func(e *Engine, in Input) *types.ContextualAdjustment {
		threshold := e.cfg.Interactions.PerfectThreshold
		for _, section := range []string{types.SectionSkills, types.SectionExperience, types.SectionSalary} {
			if in.Sections[section] < threshold {
				return nil
			}
		}
		return &types.ContextualAdjustment{
			Delta:  e.cfg.Interactions.PerfectBonus,
			Reason: "skills, experience and salary all score in the top band",
		}
	}},
}

// industrySwitch reports the most recent cross-industry move in the
// employment history, in chronological order.
func industrySwitch(c *types.Candidate) (from, to string, ok bool) {
	if c == nil || len(c.Employment) < 2 {
		return "", "", false
	}
	ordered := make([]types.Employment, len(c.Employment))
	copy(ordered, c.Employment)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start.Before(ordered[j].Start)
	})

	var seen []string
	for _, e := range ordered {
		if e.Industry == "" {
			continue
		}
		if n := len(seen); n == 0 || !strings.EqualFold(seen[n-1], e.Industry) {
			seen = append(seen, e.Industry)
		}
	}
	if len(seen) < 2 {
		return "", "", false
	}
	return seen[len(seen)-2], seen[len(seen)-1], true
}

// Interact runs the interaction table over the adjusted score. The returned
// score is clamped to [0,100].
func (e *Engine) Interact(adjusted float64, in Input) (float64, []types.ContextualAdjustment) {
	score := adjusted
	var applied []types.ContextualAdjustment
	for _, rule := range interactionRules {
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
