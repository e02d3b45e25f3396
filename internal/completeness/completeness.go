// Package completeness implements the data quality gate that runs before any
// scoring. Candidates missing critical fields are blocked outright; missing
// important fields only lower the quality tier and, later, the confidence.
package completeness

import (
	"strings"

	"github.com/talentops/candidate-assessor/internal/types"
)

// requirement describes one checked candidate field. The table is ordered so
// reports list missing fields deterministically.
type requirement struct {
	name     string
	critical bool
	present  func(c *types.Candidate) bool
}

var requirements = []requirement{
	{"skills", true, func(c *types.Candidate) bool { return len(c.Skills) > 0 }},
	{"employment_history", true, func(c *types.Candidate) bool { return len(c.Employment) > 0 }},
	{"education", true, func(c *types.Candidate) bool { return len(c.Education) > 0 }},
	{"expected_salary", true, func(c *types.Candidate) bool { return c.ExpectedSalary > 0 }},
	{"cv_text", true, func(c *types.Candidate) bool { return strings.TrimSpace(c.CVText) != "" }},

	{"name", false, func(c *types.Candidate) bool { return strings.TrimSpace(c.Name) != "" }},
	{"email", false, func(c *types.Candidate) bool { return strings.TrimSpace(c.Email) != "" }},
	{"location", false, func(c *types.Candidate) bool { return strings.TrimSpace(c.Location) != "" }},
	{"total_experience", false, func(c *types.Candidate) bool { return c.TotalExperienceMonths > 0 }},
	{"current_salary", false, func(c *types.Candidate) bool { return c.CurrentSalary > 0 }},
	{"certifications", false, func(c *types.Candidate) bool { return len(c.Certifications) > 0 }},
	{"languages", false, func(c *types.Candidate) bool { return len(c.Languages) > 0 }},
}

// Quality tier cutoffs over the completeness ratio.
const (
	excellentCutoff = 0.90
	goodCutoff      = 0.75
	fairCutoff      = 0.60
	poorCutoff      = 0.50
)

// Check runs every field requirement and classifies the candidate's data
// quality. Any missing critical field forces UNACCEPTABLE regardless of the
// overall ratio.
func Check(c *types.Candidate) types.CompletenessReport {
	present := 0
	var criticalMissing, importantMissing []string

	for _, req := range requirements {
		if req.present(c) {
			present++
			continue
		}
		if req.critical {
			criticalMissing = append(criticalMissing, req.name)
		} else {
			importantMissing = append(importantMissing, req.name)
		}
	}

	ratio := float64(present) / float64(len(requirements))
	report := types.CompletenessReport{
		Completeness:     ratio,
		CriticalMissing:  criticalMissing,
		ImportantMissing: importantMissing,
	}

	if len(criticalMissing) > 0 {
		report.Quality = types.QualityUnacceptable
		return report
	}

	switch {
	case ratio >= excellentCutoff:
		report.Quality = types.QualityExcellent
	case ratio >= goodCutoff:
		report.Quality = types.QualityGood
	case ratio >= fairCutoff:
		report.Quality = types.QualityFair
	case ratio >= poorCutoff:
		report.Quality = types.QualityPoor
	default:
		report.Quality = types.QualityUnacceptable
	}
	return report
}
