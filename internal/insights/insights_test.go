package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/candidate-assessor/internal/config"
	"github.com/talentops/candidate-assessor/internal/skills"
	"github.com/talentops/candidate-assessor/internal/types"
)

var testNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func date(y, m int) time.Time {
	return time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
}

func cleanInput() Input {
	return Input{
		Candidate: &types.Candidate{
			TotalExperienceMonths: 72,
			ExpectedSalary:        20000,
			Employment: []types.Employment{
				{Title: "Engineer", Start: date(2019, 6), End: date(2022, 6)},
				{Title: "Senior Engineer", Start: date(2022, 7)},
			},
		},
		Job: &types.Job{
			MinExperienceYears: 5,
			MaxExperienceYears: 10,
			SalaryMax:          22000,
		},
		Sections: map[string]float64{
			types.SectionSkills:     75,
			types.SectionExperience: 75,
			types.SectionEducation:  75,
			types.SectionSalary:     75,
			types.SectionDomain:     75,
		},
		Now: testNow,
	}
}

func flagTypes(flags []types.RedFlag) []types.RedFlagType {
	out := make([]types.RedFlagType, len(flags))
	for i, f := range flags {
		out[i] = f.Type
	}
	return out
}

func TestGenerateCleanProfileHasNoFlags(t *testing.T) {
	g := NewGenerator(config.Default())
	in := cleanInput()

	out := g.Generate(in)
	assert.Empty(t, out.RedFlags)
	assert.Equal(t, types.ProgressionSteadyUpward, out.CareerProgression)
}

func TestEmploymentGapFlag(t *testing.T) {
	g := NewGenerator(config.Default())
	in := cleanInput()
	in.Candidate.Employment = []types.Employment{
		{Title: "Engineer", Start: date(2019, 1), End: date(2021, 1)},
		{Title: "Engineer", Start: date(2021, 9)}, // 8 month gap
	}

	out := g.Generate(in)
	require.Contains(t, flagTypes(out.RedFlags), types.FlagEmploymentGap)
	for _, f := range out.RedFlags {
		if f.Type == types.FlagEmploymentGap {
			assert.Equal(t, types.SeverityMedium, f.Severity)
		}
	}
}

func TestEmploymentGapLongIsHighSeverity(t *testing.T) {
	g := NewGenerator(config.Default())
	in := cleanInput()
	in.Candidate.Employment = []types.Employment{
		{Title: "Engineer", Start: date(2018, 1), End: date(2020, 1)},
		{Title: "Engineer", Start: date(2021, 6)}, // 17 month gap
	}

	out := g.Generate(in)
	require.Len(t, out.RedFlags, 1)
	assert.Equal(t, types.FlagEmploymentGap, out.RedFlags[0].Type)
	assert.Equal(t, types.SeverityHigh, out.RedFlags[0].Severity)
}

func TestJobHoppingFlag(t *testing.T) {
	g := NewGenerator(config.Default())
	in := cleanInput()
	in.Candidate.Employment = []types.Employment{
		{Title: "Engineer", Start: date(2022, 1), End: date(2022, 11)},
		{Title: "Engineer", Start: date(2022, 12), End: date(2023, 10)},
		{Title: "Engineer", Start: date(2023, 11), End: date(2024, 8)},
		{Title: "Engineer", Start: date(2024, 9)},
	}

	out := g.Generate(in)
	assert.Contains(t, flagTypes(out.RedFlags), types.FlagJobHopping)
}

func TestJobHoppingNeedsThreePositions(t *testing.T) {
	g := NewGenerator(config.Default())
	in := cleanInput()
	in.Candidate.Employment = []types.Employment{
		{Title: "Engineer", Start: date(2024, 1), End: date(2024, 10)},
		{Title: "Engineer", Start: date(2024, 11)},
	}

	out := g.Generate(in)
	assert.NotContains(t, flagTypes(out.RedFlags), types.FlagJobHopping)
}

func TestOverqualifiedFlag(t *testing.T) {
	g := NewGenerator(config.Default())
	in := cleanInput()
	in.Candidate.TotalExperienceMonths = 240 // 20 years for a 10 year ceiling

	out := g.Generate(in)
	assert.Contains(t, flagTypes(out.RedFlags), types.FlagOverqualified)
}

func TestSalaryMismatchFlag(t *testing.T) {
	g := NewGenerator(config.Default())
	in := cleanInput()
	in.Candidate.ExpectedSalary = 27000 // 22.7% above the 22000 maximum

	out := g.Generate(in)
	assert.Contains(t, flagTypes(out.RedFlags), types.FlagSalaryMismatch)
}

func TestSalaryModeratelyOverBudgetIsNotFlagged(t *testing.T) {
	g := NewGenerator(config.Default())
	in := cleanInput()
	in.Candidate.ExpectedSalary = 24000 // 9% over, negotiable

	out := g.Generate(in)
	assert.NotContains(t, flagTypes(out.RedFlags), types.FlagSalaryMismatch)
}

func TestUnderqualifiedFlag(t *testing.T) {
	g := NewGenerator(config.Default())

	in := cleanInput()
	in.Candidate.TotalExperienceMonths = 48 // 4 years against a 5 year minimum
	out := g.Generate(in)
	require.Contains(t, flagTypes(out.RedFlags), types.FlagUnderqualified)
	for _, f := range out.RedFlags {
		if f.Type == types.FlagUnderqualified {
			assert.Equal(t, types.SeverityMedium, f.Severity)
		}
	}

	in.Candidate.TotalExperienceMonths = 12 // far below the minimum
	out = g.Generate(in)
	for _, f := range out.RedFlags {
		if f.Type == types.FlagUnderqualified {
			assert.Equal(t, types.SeverityHigh, f.Severity)
		}
	}
}

func TestCriticalSkillGapSeverity(t *testing.T) {
	g := NewGenerator(config.Default())

	in := cleanInput()
	in.Skills = skills.Report{RequiredCoverage: 0.75, MissingRequired: []string{"rust"}}
	out := g.Generate(in)
	require.Len(t, out.RedFlags, 1)
	assert.Equal(t, types.SeverityMedium, out.RedFlags[0].Severity)

	in.Skills = skills.Report{RequiredCoverage: 0.25, MissingRequired: []string{"rust", "go", "k8s"}}
	out = g.Generate(in)
	require.Len(t, out.RedFlags, 1)
	assert.Equal(t, types.SeverityCritical, out.RedFlags[0].Severity)
}

func TestCareerRegressionFlag(t *testing.T) {
	g := NewGenerator(config.Default())
	in := cleanInput()
	in.Candidate.Employment = []types.Employment{
		{Title: "Engineering Manager", Start: date(2018, 1), End: date(2022, 1)},
		{Title: "Junior Engineer", Start: date(2022, 2)},
	}

	out := g.Generate(in)
	assert.Contains(t, flagTypes(out.RedFlags), types.FlagCareerRegression)
	assert.Equal(t, types.ProgressionDeclining, out.CareerProgression)
}

func TestMissingInfoFlag(t *testing.T) {
	g := NewGenerator(config.Default())
	in := cleanInput()
	in.Quality = types.CompletenessReport{
		ImportantMissing: []string{"email", "location", "languages"},
	}

	out := g.Generate(in)
	assert.Contains(t, flagTypes(out.RedFlags), types.FlagMissingInfo)
}

func TestCountBySeverity(t *testing.T) {
	in := &types.Insights{RedFlags: []types.RedFlag{
		{Severity: types.SeverityCritical},
		{Severity: types.SeverityHigh},
		{Severity: types.SeverityLow},
	}}
	assert.Equal(t, 1, in.CountBySeverity(types.SeverityCritical))
	assert.Equal(t, 2, in.CountBySeverity(types.SeverityHigh))
	assert.Equal(t, 3, in.CountBySeverity(types.SeverityLow))
}

func TestStrengthsAndWeaknesses(t *testing.T) {
	g := NewGenerator(config.Default())
	in := cleanInput()
	in.Sections[types.SectionSkills] = 95
	in.Sections[types.SectionSalary] = 30
	in.Skills = skills.Report{RequiredCoverage: 0.9}
	in.Candidate.GCCExperienceMonths = 48

	out := g.Generate(in)
	require.Len(t, out.Strengths, 2)
	assert.Contains(t, out.Strengths[0], "skills")
	assert.Contains(t, out.Strengths[1], "GCC")
	require.Len(t, out.Weaknesses, 1)
	assert.Contains(t, out.Weaknesses[0], "salary")
}

func TestSkillCurrency(t *testing.T) {
	g := NewGenerator(config.Default())
	tests := []struct {
		name     string
		skills   []string
		expected float64
	}{
		{"all modern", []string{"golang", "kubernetes"}, 100},
		{"all legacy", []string{"cobol", "flash"}, 0},
		{"mixed", []string{"golang", "cobol"}, 50},
		{"unclassified neutral", []string{"basket weaving"}, 50},
		{"no skills neutral", nil, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, g.skillCurrency(tt.skills))
		})
	}
}
