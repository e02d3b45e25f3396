// Package scoring turns candidate fields into 0-100 section scores and
// aggregates them into a weighted base score. Every score carries an
// explanation; nothing here mutates its inputs.
package scoring

import (
	"fmt"
	"strings"

	"github.com/talentops/candidate-assessor/internal/types"
)

// Neutral scores used when a job posts no requirement for a section.
const (
	neutralNoRequirement = 100.0
	neutralNoSalaryData  = 70.0
	neutralNoDomainData  = 70.0
)

// Experience curve constants. Overqualification decays gently rather than
// cliffing, since seniority above the ceiling is a soft concern.
const (
	belowMinimumCeiling  = 60.0
	overqualifiedPerYear = 8.0
	overqualifiedFloor   = 40.0
)

// ScoreExperience rates total experience against the job's posted range.
func ScoreExperience(c *types.Candidate, j *types.Job) types.FieldAssessment {
	years := c.TotalExperienceYears()
	min := j.MinExperienceYears
	ceiling := j.ExperienceCeiling()

	var score float64
	var explanation string

	switch {
	case min <= 0:
		score = neutralNoRequirement
		explanation = "no minimum experience posted"
	case years < min:
		score = belowMinimumCeiling * years / min
		explanation = fmt.Sprintf("%.1f years is below the %.1f year minimum", years, min)
	case years <= ceiling:
		score = 100
		explanation = fmt.Sprintf("%.1f years fits the %.1f-%.1f year range", years, min, ceiling)
	default:
		over := years - ceiling
		score = 100 - overqualifiedPerYear*over
		if score < overqualifiedFloor {
			score = overqualifiedFloor
		}
		explanation = fmt.Sprintf("%.1f years exceeds the range by %.1f years", years, over)
	}

	return newField("total_experience", types.SectionExperience,
		fmt.Sprintf("%.1f years", years),
		fmt.Sprintf("%.1f-%.1f years", min, ceiling),
		score, explanation)
}

// Education scores by degree rank relative to the requirement. Exceeding the
// requirement by one level is the ideal; larger gaps read as overqualified.
var educationByGap = map[int]float64{
	-2: 20, -1: 50, 0: 90, 1: 100, 2: 95,
}

// Absolute education scores when the job posts no requirement.
var educationByRank = map[int]float64{
	0:                   30,
	types.RankHighSchool: 45,
	types.RankDiploma:    60,
	types.RankBachelor:   75,
	types.RankMaster:     85,
	types.RankDoctorate:  90,
}

// ScoreEducation rates the candidate's best degree against the required one.
func ScoreEducation(c *types.Candidate, j *types.Job) types.FieldAssessment {
	have := c.HighestDegreeRank()
	want := types.DegreeRank(j.RequiredEducation)

	var score float64
	var explanation string

	if want == 0 {
		score = educationByRank[have]
		explanation = "no education requirement posted, scored on absolute level"
	} else {
		gap := have - want
		if gap < -2 {
			gap = -2
		}
		if gap > 2 {
			gap = 2
		}
		score = educationByGap[gap]
		switch {
		case gap < 0:
			explanation = fmt.Sprintf("degree is below the required %s", j.RequiredEducation)
		case gap == 0:
			explanation = fmt.Sprintf("degree meets the required %s", j.RequiredEducation)
		default:
			explanation = fmt.Sprintf("degree exceeds the required %s", j.RequiredEducation)
		}
	}

	return newField("education", types.SectionEducation,
		fmt.Sprintf("rank %d", have),
		j.RequiredEducation,
		score, explanation)
}

// Salary curve constants. Below-budget expectations score slightly under a
// perfect fit: cheap hires carry retention risk.
const (
	salaryBelowBudget = 90.0
	salaryOverMaxZero = 0.25 // fraction above max where the score bottoms out
	salaryOverMaxMin  = 50.0
)

// ScoreSalary rates the expected salary against the posted band.
func ScoreSalary(c *types.Candidate, j *types.Job) types.FieldAssessment {
	expected := c.ExpectedSalary
	requirement := fmt.Sprintf("%.0f-%.0f", j.SalaryMin, j.SalaryMax)

	var score float64
	var explanation string

	switch {
	case j.SalaryMax <= 0 || expected <= 0:
		score = neutralNoSalaryData
		explanation = "no salary band or expectation available"
	case expected < j.SalaryMin:
		score = salaryBelowBudget
		explanation = "expectation is below the posted band"
	case expected <= j.SalaryMax:
		score = 100
		explanation = "expectation fits the posted band"
	default:
		overFrac := (expected - j.SalaryMax) / j.SalaryMax
		if overFrac > salaryOverMaxZero {
			overFrac = salaryOverMaxZero
		}
		score = 100 - (100-salaryOverMaxMin)*(overFrac/salaryOverMaxZero)
		explanation = fmt.Sprintf("expectation is %.0f%% above the posted maximum", overFrac*100)
	}

	return newField("expected_salary", types.SectionSalary,
		fmt.Sprintf("%.0f", expected), requirement, score, explanation)
}

// Domain scoring constants.
const (
	domainBase          = 50.0
	domainIndustryBonus = 30.0
	domainGCCBonus      = 20.0
)

// ScoreDomain rates regional and industry familiarity: employment history in
// the job's industry plus GCC market exposure.
func ScoreDomain(c *types.Candidate, j *types.Job) types.FieldAssessment {
	industry := strings.ToLower(strings.TrimSpace(j.Industry))
	gccYears := c.GCCExperienceYears()

	if industry == "" && !j.RequireGCCExperience && j.MinGCCExperienceYears <= 0 {
		score := neutralNoDomainData
		if gccYears > 0 {
			score += domainGCCBonus
			if score > 100 {
				score = 100
			}
		}
		return newField("domain", types.SectionDomain,
			fmt.Sprintf("%.1f GCC years", gccYears), "none posted",
			score, "no industry or regional requirement posted")
	}

	score := domainBase
	var parts []string

	if industry != "" {
		if workedInIndustry(c, industry) {
			score += domainIndustryBonus
			parts = append(parts, fmt.Sprintf("has %s industry experience", j.Industry))
		} else {
			parts = append(parts, fmt.Sprintf("no %s industry experience", j.Industry))
		}
	} else {
		// only the regional requirement applies, re-weight the bonus
		score += domainIndustryBonus
	}

	wantGCC := j.MinGCCExperienceYears
	if wantGCC <= 0 {
		wantGCC = 1
	}
	switch {
	case gccYears >= wantGCC:
		score += domainGCCBonus
		parts = append(parts, fmt.Sprintf("%.1f years in GCC markets", gccYears))
	case gccYears > 0:
		score += domainGCCBonus * gccYears / wantGCC
		parts = append(parts, fmt.Sprintf("partial GCC exposure (%.1f years)", gccYears))
	default:
		parts = append(parts, "no GCC market exposure")
	}

	if score > 100 {
		score = 100
	}
	return newField("domain", types.SectionDomain,
		fmt.Sprintf("%.1f GCC years", gccYears),
		strings.TrimSpace(j.Industry+" industry"),
		score, strings.Join(parts, "; "))
}

func workedInIndustry(c *types.Candidate, industry string) bool {
	for _, e := range c.Employment {
		if strings.Contains(strings.ToLower(e.Industry), industry) {
			return true
		}
	}
	return false
}

func newField(name, section, value, requirement string, score float64, explanation string) types.FieldAssessment {
	return types.FieldAssessment{
		FieldName:      name,
		Section:        section,
		CandidateValue: value,
		JobRequirement: requirement,
		Score:          score,
		MatchLevel:     types.MatchLevelFor(score),
		Explanation:    explanation,
		Weight:         1,
	}
}
