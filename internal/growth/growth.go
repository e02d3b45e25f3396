// Package growth projects a candidate's future trajectory independently of
// their current fit. The score blends five signals: skill acquisition pace,
// education, career trajectory, certification habits and adaptability.
package growth

import (
	"fmt"
	"time"

	"github.com/talentops/candidate-assessor/internal/config"
	"github.com/talentops/candidate-assessor/internal/skills"
	"github.com/talentops/candidate-assessor/internal/types"
)

// Analyzer computes growth potential.
type Analyzer struct {
	cfg config.GrowthConfig
	tax config.TaxonomyConfig
}

func NewAnalyzer(cfg *config.Config) *Analyzer {
	return &Analyzer{cfg: cfg.Growth, tax: cfg.Taxonomy}
}

// Skill acquisition pacing: this many skills per year of experience earns a
// full score.
const fullPaceSkillsPerYear = 3.0

// Trajectory sub-scores by progression pattern.
var trajectoryScores = map[types.CareerProgression]float64{
	types.ProgressionStrongUpward: 100,
	types.ProgressionSteadyUpward: 80,
	types.ProgressionLateral:      55,
	types.ProgressionStagnant:     35,
	types.ProgressionDeclining:    20,
	types.ProgressionUnclear:      50,
}

// Education sub-scores by degree rank.
var educationScores = map[int]float64{
	0:                    20,
	types.RankHighSchool: 35,
	types.RankDiploma:    50,
	types.RankBachelor:   70,
	types.RankMaster:     85,
	types.RankDoctorate:  95,
}

// Analyze scores the candidate's growth potential. fitScore is the current
// assessment score, used only for the hidden gem promotion: strong growth
// with mediocre current fit still marks a candidate high potential.
func (a *Analyzer) Analyze(c *types.Candidate, fitScore float64, now time.Time) *types.GrowthPotential {
	acquisition := a.skillAcquisition(c)
	education := educationScores[c.HighestDegreeRank()]
	trajectory := trajectoryScores[types.ClassifyProgression(c.Employment, now)]
	certification := a.certifications(c, now)
	adaptability := a.adaptability(c)

	score := a.cfg.SkillAcquisitionWeight*acquisition +
		a.cfg.EducationWeight*education +
		a.cfg.TrajectoryWeight*trajectory +
		a.cfg.CertificationWeight*certification +
		a.cfg.AdaptabilityWeight*adaptability

	tier := a.tier(score)
	hiddenGem := score >= a.cfg.HiddenGemGrowth && fitScore < a.cfg.HiddenGemFit
	if hiddenGem {
		tier = types.GrowthHighPotential
	}

	result := &types.GrowthPotential{
		Score:                score,
		Tier:                 tier,
		LearningAgility:      (education + certification) / 2,
		CareerTrajectory:     trajectory,
		SkillAcquisitionRate: acquisition,
		Adaptability:         adaptability,
		Indicators:           a.indicators(c, acquisition, trajectory, hiddenGem),
		Recommendation:       recommendationFor(tier),
	}
	return result
}

func (a *Analyzer) tier(score float64) types.GrowthTier {
	switch {
	case score >= a.cfg.HighPotentialThreshold:
		return types.GrowthHighPotential
	case score >= a.cfg.StandardThreshold:
		return types.GrowthStandard
	default:
		return types.GrowthLimited
	}
}

// skillAcquisition rates how quickly the candidate accumulates skills
// relative to their tenure.
func (a *Analyzer) skillAcquisition(c *types.Candidate) float64 {
	years := c.TotalExperienceYears()
	if years < 1 {
		years = 1
	}
	pace := float64(len(c.Skills)) / years
	score := 100 * pace / fullPaceSkillsPerYear
	if score > 100 {
		return 100
	}
	return score
}

// certifications rates certification volume, prestige and recency.
func (a *Analyzer) certifications(c *types.Candidate, now time.Time) float64 {
	if len(c.Certifications) == 0 {
		return 20
	}
	score := 20.0 * float64(len(c.Certifications))
	if score > 40 {
		score = 40
	}

	window := now.AddDate(0, -a.cfg.RecentCertWindowMonths, 0)
	for _, cert := range c.Certifications {
		if a.isPremium(cert.Name) {
			score += 25
			break
		}
	}
	for _, cert := range c.Certifications {
		if !cert.IssuedAt.IsZero() && cert.IssuedAt.After(window) {
			score += 15
			break
		}
	}
	if score > 100 {
		return 100
	}
	return score
}

func (a *Analyzer) isPremium(name string) bool {
	n := skills.Normalize(name)
	for _, p := range a.tax.PremiumCerts {
		if n == skills.Normalize(p) {
			return true
		}
	}
	return false
}

// adaptability rates breadth of exposure: industry variety and how modern
// the candidate's stack is.
func (a *Analyzer) adaptability(c *types.Candidate) float64 {
	industries := make(map[string]bool)
	for _, e := range c.Employment {
		if n := skills.Normalize(e.Industry); n != "" {
			industries[n] = true
		}
	}
	score := 40.0
	if len(industries) > 1 {
		breadth := 15.0 * float64(len(industries)-1)
		if breadth > 30 {
			breadth = 30
		}
		score += breadth
	}
	score += 30 * a.modernShare(c.Skills)
	if score > 100 {
		return 100
	}
	return score
}

// modernShare is the fraction of candidate skills on the modern technology
// list.
func (a *Analyzer) modernShare(candidateSkills []string) float64 {
	if len(candidateSkills) == 0 {
		return 0
	}
	modern := make(map[string]bool, len(a.tax.ModernTech))
	for _, m := range a.tax.ModernTech {
		modern[skills.Normalize(m)] = true
	}
	n := 0
	for _, s := range candidateSkills {
		if modern[skills.Normalize(s)] {
			n++
		}
	}
	return float64(n) / float64(len(candidateSkills))
}

func (a *Analyzer) indicators(c *types.Candidate, acquisition, trajectory float64, hiddenGem bool) []string {
	var out []string
	if acquisition >= 80 {
		out = append(out, "rapid skill acquisition relative to tenure")
	}
	if trajectory >= 80 {
		out = append(out, "consistent upward career trajectory")
	}
	if len(c.Certifications) >= 2 {
		out = append(out, fmt.Sprintf("%d professional certifications", len(c.Certifications)))
	}
	if hiddenGem {
		out = append(out, "hidden gem: growth trajectory outpaces current fit")
	}
	return out
}

func recommendationFor(tier types.GrowthTier) string {
	switch tier {
	case types.GrowthHighPotential:
		return "invest in this candidate; trajectory suggests rapid ramp-up and long-term upside"
	case types.GrowthStandard:
		return "expected steady development with normal onboarding support"
	default:
		return "plan for a defined role; limited signals of growth beyond the current level"
	}
}
