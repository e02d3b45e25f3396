// Package eligibility applies the hard knockout rules that run after the
// completeness gate and before scoring. All rules are evaluated so a rejected
// candidate sees every reason at once, not just the first.
package eligibility

import (
	"fmt"
	"strings"

	"github.com/talentops/candidate-assessor/internal/types"
)

// Expectations this far above the posted maximum are treated as a hard
// mismatch rather than a negotiable gap.
const salaryOverBudgetFactor = 1.25

// Experience this many years past the posted maximum is a knockout unless
// the job explicitly allows overqualified applicants. Smaller overshoots
// only decay the experience score.
const overqualifiedRejectYears = 10.0

// rule is one knockout check. reason returns "" when the rule passes.
type rule struct {
	code   string
	reason func(c *types.Candidate, j *types.Job) string
}

// Rules are ordered by how definitive the mismatch is, which fixes the order
// of rejection reasons in the output.
var rules = []rule{
	{
		code: "min_experience",
		reason: func(c *types.Candidate, j *types.Job) string {
			if j.MinExperienceYears <= 0 {
				return ""
			}
			years := c.TotalExperienceYears()
			if years >= j.MinExperienceYears {
				return ""
			}
			return fmt.Sprintf("requires %.1f years of experience, candidate has %.1f", j.MinExperienceYears, years)
		},
	},
	{
		code: "overqualified_experience",
		reason: func(c *types.Candidate, j *types.Job) string {
			if j.MaxExperienceYears <= 0 || j.AllowOverqualified {
				return ""
			}
			years := c.TotalExperienceYears()
			if years <= j.MaxExperienceYears+overqualifiedRejectYears {
				return ""
			}
			return fmt.Sprintf("%.1f years of experience is far above the %.1f year maximum", years, j.MaxExperienceYears)
		},
	},
	{
		code: "gcc_experience",
		reason: func(c *types.Candidate, j *types.Job) string {
			if !j.RequireGCCExperience {
				return ""
			}
			years := c.GCCExperienceYears()
			needed := j.MinGCCExperienceYears
			if needed <= 0 && years > 0 {
				return ""
			}
			if years >= needed && years > 0 {
				return ""
			}
			return fmt.Sprintf("requires %.1f years of GCC experience, candidate has %.1f", needed, years)
		},
	},
	{
		code: "education_minimum",
		reason: func(c *types.Candidate, j *types.Job) string {
			required := types.DegreeRank(j.RequiredEducation)
			if required == 0 {
				return ""
			}
			if c.HighestDegreeRank() >= required {
				return ""
			}
			return fmt.Sprintf("requires %s or higher", j.RequiredEducation)
		},
	},
	{
		code: "salary_over_budget",
		reason: func(c *types.Candidate, j *types.Job) string {
			if j.SalaryMax <= 0 || c.ExpectedSalary <= 0 {
				return ""
			}
			ceiling := j.SalaryMax * salaryOverBudgetFactor
			if c.ExpectedSalary <= ceiling {
				return ""
			}
			return fmt.Sprintf("expected salary %.0f exceeds budget ceiling %.0f", c.ExpectedSalary, ceiling)
		},
	},
	{
		code: "location_mismatch",
		reason: func(c *types.Candidate, j *types.Job) string {
			want := strings.ToLower(strings.TrimSpace(j.Location))
			have := strings.ToLower(strings.TrimSpace(c.Location))
			if want == "" || have == "" {
				return ""
			}
			// "Dubai" and "Dubai, UAE" describe the same place
			if strings.Contains(want, have) || strings.Contains(have, want) {
				return ""
			}
			return fmt.Sprintf("role is based in %s, candidate is in %s", j.Location, c.Location)
		},
	},
}

// Check runs all knockout rules. An empty slice means the candidate is
// eligible for scoring.
func Check(c *types.Candidate, j *types.Job) []string {
	var reasons []string
	for _, r := range rules {
		if msg := r.reason(c, j); msg != "" {
			reasons = append(reasons, fmt.Sprintf("%s: %s", r.code, msg))
		}
	}
	return reasons
}
