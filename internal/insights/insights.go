// Package insights derives the qualitative layer of an assessment: red
// flags, strengths, weaknesses, career progression and skill currency.
// Detectors are ordered, so reports list findings deterministically.
package insights

import (
	"fmt"
	"sort"
	"time"

	"github.com/talentops/candidate-assessor/internal/config"
	"github.com/talentops/candidate-assessor/internal/skills"
	"github.com/talentops/candidate-assessor/internal/types"
)

// Generator produces the insight bundle for one assessment.
type Generator struct {
	cfg *config.Config
}

func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Input carries everything the detectors inspect.
type Input struct {
	Candidate *types.Candidate
	Job       *types.Job
	Sections  map[string]float64
	Skills    skills.Report
	Quality   types.CompletenessReport
	Now       time.Time
}

// Section score cutoffs for strengths and weaknesses.
const (
	strengthCutoff = 85.0
	weaknessCutoff = 50.0
)

// Generate runs all detectors.
func (g *Generator) Generate(in Input) *types.Insights {
	out := &types.Insights{
		CareerProgression: types.ClassifyProgression(in.Candidate.Employment, in.Now),
		SkillCurrency:     g.skillCurrency(in.Candidate.Skills),
	}
	out.RedFlags = g.redFlags(in, out.CareerProgression)
	out.Strengths = g.strengths(in)
	out.Weaknesses = g.weaknesses(in)
	return out
}

// Employment gap cutoffs in months.
const (
	gapNoticeMonths  = 6.0
	gapSeriousMonths = 12.0
)

// Job hopping needs at least this many positions before short stints count
// as a pattern.
const hopMinJobs = 3

// Overqualification margin in years above the posted ceiling.
const overqualifiedMarginYears = 5.0

// Salary expectations this far above the posted maximum, in percent, raise a
// mismatch flag.
const salaryMismatchPct = 20.0

// Missing important fields before a missing_info flag is raised.
const missingInfoCutoff = 3

func (g *Generator) redFlags(in Input, progression types.CareerProgression) []types.RedFlag {
	var flags []types.RedFlag

	if flag := g.employmentGap(in.Candidate, in.Now); flag != nil {
		flags = append(flags, *flag)
	}
	if flag := g.jobHopping(in.Candidate, in.Now); flag != nil {
		flags = append(flags, *flag)
	}
	if flag := g.overqualified(in.Candidate, in.Job); flag != nil {
		flags = append(flags, *flag)
	}
	if flag := g.underqualified(in.Candidate, in.Job); flag != nil {
		flags = append(flags, *flag)
	}
	if flag := g.salaryMismatch(in.Candidate, in.Job); flag != nil {
		flags = append(flags, *flag)
	}
	if flag := g.criticalSkillGap(in.Skills); flag != nil {
		flags = append(flags, *flag)
	}
	if progression == types.ProgressionDeclining {
		flags = append(flags, types.RedFlag{
			Type:           types.FlagCareerRegression,
			Severity:       types.SeverityHigh,
			Description:    "title history moves down the seniority ladder",
			Impact:         "may indicate performance issues or disengagement",
			Recommendation: "probe the reasons behind each transition",
		})
	}
	if len(in.Quality.ImportantMissing) >= missingInfoCutoff {
		flags = append(flags, types.RedFlag{
			Type:           types.FlagMissingInfo,
			Severity:       types.SeverityLow,
			Description:    fmt.Sprintf("%d profile fields are missing", len(in.Quality.ImportantMissing)),
			Impact:         "assessment confidence is reduced",
			Recommendation: "request the missing details before a final decision",
		})
	}
	return flags
}

// employmentGap finds the largest gap between consecutive positions.
func (g *Generator) employmentGap(c *types.Candidate, now time.Time) *types.RedFlag {
	if len(c.Employment) < 2 {
		return nil
	}
	ordered := make([]types.Employment, len(c.Employment))
	copy(ordered, c.Employment)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start.Before(ordered[j].Start)
	})

	largest := 0.0
	for i := 1; i < len(ordered); i++ {
		end := ordered[i-1].End
		if end.IsZero() {
			continue // still employed there, no gap can follow
		}
		gap := ordered[i].Start.Sub(end).Hours() / 24 / 30.44
		if gap > largest {
			largest = gap
		}
	}
	if largest < gapNoticeMonths {
		return nil
	}

	severity := types.SeverityMedium
	if largest >= gapSeriousMonths {
		severity = types.SeverityHigh
	}
	return &types.RedFlag{
		Type:           types.FlagEmploymentGap,
		Severity:       severity,
		Description:    fmt.Sprintf("%.0f month gap in the employment history", largest),
		Impact:         "skills may be stale after the break",
		Recommendation: "ask what the candidate did during the gap",
	}
}

func (g *Generator) jobHopping(c *types.Candidate, now time.Time) *types.RedFlag {
	if len(c.Employment) < hopMinJobs {
		return nil
	}
	total := 0.0
	for i := range c.Employment {
		total += c.Employment[i].TenureMonths(now)
	}
	avg := total / float64(len(c.Employment))
	if avg >= float64(g.cfg.Rules.JobHopTenureMonths) {
		return nil
	}
	return &types.RedFlag{
		Type:           types.FlagJobHopping,
		Severity:       types.SeverityHigh,
		Description:    fmt.Sprintf("average tenure of %.0f months across %d positions", avg, len(c.Employment)),
		Impact:         "retention risk; ramp-up cost may never be recovered",
		Recommendation: "discuss the reasons for leaving each role",
	}
}

func (g *Generator) overqualified(c *types.Candidate, j *types.Job) *types.RedFlag {
	if j.MinExperienceYears <= 0 {
		return nil
	}
	years := c.TotalExperienceYears()
	ceiling := j.ExperienceCeiling()
	if years <= ceiling+overqualifiedMarginYears {
		return nil
	}
	return &types.RedFlag{
		Type:           types.FlagOverqualified,
		Severity:       types.SeverityMedium,
		Description:    fmt.Sprintf("%.0f years of experience for a role capped at %.0f", years, ceiling),
		Impact:         "boredom and early attrition risk",
		Recommendation: "verify motivation for taking a role below their level",
	}
}

func (g *Generator) underqualified(c *types.Candidate, j *types.Job) *types.RedFlag {
	if j.MinExperienceYears <= 0 {
		return nil
	}
	years := c.TotalExperienceYears()
	if years >= j.MinExperienceYears {
		return nil
	}
	severity := types.SeverityMedium
	if years < j.MinExperienceYears/2 {
		severity = types.SeverityHigh
	}
	return &types.RedFlag{
		Type:           types.FlagUnderqualified,
		Severity:       severity,
		Description:    fmt.Sprintf("%.1f years of experience against a %.0f year minimum", years, j.MinExperienceYears),
		Impact:         "would need significant ramp-up time in the role",
		Recommendation: "consider for a more junior opening instead",
	}
}

func (g *Generator) salaryMismatch(c *types.Candidate, j *types.Job) *types.RedFlag {
	if j.SalaryMax <= 0 || c.ExpectedSalary <= 0 {
		return nil
	}
	overPct := 100 * (c.ExpectedSalary - j.SalaryMax) / j.SalaryMax
	if overPct <= salaryMismatchPct {
		return nil
	}
	return &types.RedFlag{
		Type:           types.FlagSalaryMismatch,
		Severity:       types.SeverityMedium,
		Description:    fmt.Sprintf("expectation is %.0f%% above the posted maximum", overPct),
		Impact:         "offer may be declined or renegotiated late",
		Recommendation: "align on compensation early in the process",
	}
}

func (g *Generator) criticalSkillGap(report skills.Report) *types.RedFlag {
	missing := len(report.MissingRequired)
	if missing == 0 {
		return nil
	}
	severity := types.SeverityMedium
	if report.RequiredCoverage <= 0.5 {
		severity = types.SeverityCritical
	}
	return &types.RedFlag{
		Type:           types.FlagCriticalSkillGap,
		Severity:       severity,
		Description:    fmt.Sprintf("%d required skill(s) unmatched", missing),
		Impact:         "core responsibilities would need training from day one",
		Recommendation: "test the adjacent skills for transferability",
	}
}

// strengths lists the sections the candidate excels in, best first.
func (g *Generator) strengths(in Input) []string {
	var out []string
	for _, name := range sectionOrder {
		if score, ok := in.Sections[name]; ok && score >= strengthCutoff {
			out = append(out, fmt.Sprintf("%s: %s match (%.0f)", name, types.MatchLevelFor(score), score))
		}
	}
	if in.Candidate.GCCExperienceYears() >= g.cfg.Rules.GCCBonusYears {
		out = append(out, fmt.Sprintf("regional: %.1f years of GCC market experience", in.Candidate.GCCExperienceYears()))
	}
	return out
}

func (g *Generator) weaknesses(in Input) []string {
	var out []string
	for _, name := range sectionOrder {
		if score, ok := in.Sections[name]; ok && score < weaknessCutoff {
			out = append(out, fmt.Sprintf("%s: %s match (%.0f)", name, types.MatchLevelFor(score), score))
		}
	}
	for _, missing := range in.Skills.MissingRequired {
		out = append(out, fmt.Sprintf("missing required skill: %s", missing))
	}
	return out
}

var sectionOrder = []string{
	types.SectionSkills,
	types.SectionExperience,
	types.SectionEducation,
	types.SectionSalary,
	types.SectionDomain,
}

// skillCurrency rates how modern the candidate's stack is: the share of
// era-classified skills that are on the modern list. Unclassified stacks are
// neutral.
func (g *Generator) skillCurrency(candidateSkills []string) float64 {
	modern := make(map[string]bool)
	for _, m := range g.cfg.Taxonomy.ModernTech {
		modern[skills.Normalize(m)] = true
	}
	legacy := make(map[string]bool)
	for _, l := range g.cfg.Taxonomy.LegacyTech {
		legacy[skills.Normalize(l)] = true
	}

	nModern, nLegacy := 0, 0
	for _, s := range candidateSkills {
		n := skills.Normalize(s)
		switch {
		case modern[n]:
			nModern++
		case legacy[n]:
			nLegacy++
		}
	}
	if nModern+nLegacy == 0 {
		return 50
	}
	return 100 * float64(nModern) / float64(nModern+nLegacy)
}
