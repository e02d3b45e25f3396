package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/candidate-assessor/internal/types"
)

func eligibleCandidate() *types.Candidate {
	return &types.Candidate{
		TotalExperienceMonths: 96, // 8 years
		GCCExperienceMonths:   36,
		ExpectedSalary:        20000,
		Education:             []types.Education{{Degree: "Bachelor of Science"}},
	}
}

func standardJob() *types.Job {
	return &types.Job{
		MinExperienceYears:    5,
		RequiredEducation:     "bachelor",
		SalaryMax:             22000,
		RequireGCCExperience:  true,
		MinGCCExperienceYears: 2,
	}
}

func TestCheckEligible(t *testing.T) {
	assert.Empty(t, Check(eligibleCandidate(), standardJob()))
}

func TestCheckMinExperience(t *testing.T) {
	c := eligibleCandidate()
	c.TotalExperienceMonths = 24

	reasons := Check(c, standardJob())
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "min_experience")
}

func TestCheckGCCExperience(t *testing.T) {
	c := eligibleCandidate()
	c.GCCExperienceMonths = 12 // 1 year, job wants 2

	reasons := Check(c, standardJob())
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "gcc_experience")
}

func TestCheckGCCRequiredWithoutMinimum(t *testing.T) {
	j := standardJob()
	j.MinGCCExperienceYears = 0

	c := eligibleCandidate()
	c.GCCExperienceMonths = 6
	assert.Empty(t, Check(c, j), "any GCC experience satisfies a bare requirement")

	c.GCCExperienceMonths = 0
	reasons := Check(c, j)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "gcc_experience")
}

func TestCheckOverqualifiedExperience(t *testing.T) {
	j := standardJob()
	j.MaxExperienceYears = 12

	c := eligibleCandidate()
	c.TotalExperienceMonths = 300 // 25 years against a 12 year maximum
	reasons := Check(c, j)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "overqualified_experience")

	c.TotalExperienceMonths = 240 // 20 years, within the tolerated overshoot
	assert.Empty(t, Check(c, j))
}

func TestCheckOverqualifiedAllowedByPosting(t *testing.T) {
	j := standardJob()
	j.MaxExperienceYears = 12
	j.AllowOverqualified = true

	c := eligibleCandidate()
	c.TotalExperienceMonths = 300
	assert.Empty(t, Check(c, j))
}

func TestCheckOverqualifiedNeedsPostedMaximum(t *testing.T) {
	c := eligibleCandidate()
	c.TotalExperienceMonths = 480 // open-ended posting, no knockout
	assert.Empty(t, Check(c, standardJob()))
}

func TestCheckLocationMismatch(t *testing.T) {
	j := standardJob()
	j.Location = "Dubai"

	c := eligibleCandidate()
	c.Location = "Cairo"
	reasons := Check(c, j)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "location_mismatch")
}

func TestCheckLocationContainmentMatches(t *testing.T) {
	j := standardJob()
	j.Location = "Dubai, UAE"

	c := eligibleCandidate()
	c.Location = "dubai"
	assert.Empty(t, Check(c, j))

	c.Location = ""
	assert.Empty(t, Check(c, j), "unknown location is not a knockout")
}

func TestCheckEducationMinimum(t *testing.T) {
	c := eligibleCandidate()
	c.Education = []types.Education{{Degree: "Diploma"}}

	reasons := Check(c, standardJob())
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "education_minimum")
}

func TestCheckHigherDegreeSatisfiesRequirement(t *testing.T) {
	c := eligibleCandidate()
	c.Education = []types.Education{{Degree: "PhD in Physics"}}
	assert.Empty(t, Check(c, standardJob()))
}

func TestCheckSalaryOverBudget(t *testing.T) {
	c := eligibleCandidate()
	c.ExpectedSalary = 30000 // ceiling is 22000 * 1.25 = 27500

	reasons := Check(c, standardJob())
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "salary_over_budget")
}

func TestCheckSalaryWithinNegotiableRange(t *testing.T) {
	c := eligibleCandidate()
	c.ExpectedSalary = 26000 // above max but under the ceiling
	assert.Empty(t, Check(c, standardJob()))
}

func TestCheckCollectsAllFailures(t *testing.T) {
	c := eligibleCandidate()
	c.TotalExperienceMonths = 12
	c.GCCExperienceMonths = 0
	c.ExpectedSalary = 50000

	reasons := Check(c, standardJob())
	require.Len(t, reasons, 3)
	assert.Contains(t, reasons[0], "min_experience")
	assert.Contains(t, reasons[1], "gcc_experience")
	assert.Contains(t, reasons[2], "salary_over_budget")
}

func TestCheckNoRequirementsNoRejections(t *testing.T) {
	assert.Empty(t, Check(&types.Candidate{}, &types.Job{}))
}
