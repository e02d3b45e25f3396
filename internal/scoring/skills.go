package scoring

import (
	"fmt"
	"strings"

	"github.com/talentops/candidate-assessor/internal/skills"
	"github.com/talentops/candidate-assessor/internal/types"
)

// ScoreSkills runs the tiered matcher and folds the result into a section
// assessment with one field per job skill. The report is returned alongside
// because later stages need the coverage and degraded signals.
func ScoreSkills(m *skills.Matcher, c *types.Candidate, j *types.Job) (types.SectionAssessment, skills.Report) {
	report := m.Score(c.Skills, j.RequiredSkills, j.PreferredSkills)

	fields := make([]types.FieldAssessment, 0, len(report.Matches))
	for _, match := range report.Matches {
		score := match.Credit * 100
		explanation := fmt.Sprintf("%s match", match.Tier)
		if match.MatchedWith != "" && match.MatchedWith != match.JobSkill {
			explanation = fmt.Sprintf("%s match via %q", match.Tier, match.MatchedWith)
		}
		if match.Tier == skills.TierNone {
			explanation = "not found in candidate skills"
		}
		fields = append(fields, types.FieldAssessment{
			FieldName:      match.JobSkill,
			Section:        types.SectionSkills,
			CandidateValue: match.MatchedWith,
			JobRequirement: match.JobSkill,
			Score:          score,
			MatchLevel:     types.MatchLevelFor(score),
			Explanation:    explanation,
			Weight:         1,
		})
	}

	section := types.SectionAssessment{
		Name:        types.SectionSkills,
		Fields:      fields,
		Score:       report.Score,
		MatchLevel:  types.MatchLevelFor(report.Score),
		Explanation: skillsExplanation(report),
	}
	return section, report
}

func skillsExplanation(r skills.Report) string {
	msg := fmt.Sprintf("required coverage %.0f%%, preferred coverage %.0f%%",
		r.RequiredCoverage*100, r.PreferredCoverage*100)
	if len(r.MissingRequired) > 0 {
		msg += "; missing: " + strings.Join(r.MissingRequired, ", ")
	}
	if r.Degraded {
		msg += " (similarity fallback in use)"
	}
	return msg
}
