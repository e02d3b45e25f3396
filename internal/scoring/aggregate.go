package scoring

import (
	"fmt"

	"github.com/talentops/candidate-assessor/internal/config"
	"github.com/talentops/candidate-assessor/internal/skills"
	"github.com/talentops/candidate-assessor/internal/types"
)

// Scorer computes all section assessments and the weighted base score for a
// candidate/job pair.
type Scorer struct {
	cfg     *config.Config
	matcher *skills.Matcher
}

// NewScorer builds a scorer. sim may be nil to use the built-in similarity.
func NewScorer(cfg *config.Config, sim skills.SimilarityFunc) *Scorer {
	return &Scorer{
		cfg:     cfg,
		matcher: skills.NewMatcher(cfg.Taxonomy, sim),
	}
}

// Result bundles the section assessments with the weighted base score.
type Result struct {
	Sections []types.SectionAssessment
	Skills   skills.Report
	// BaseScore is the profile-weighted average of the section scores,
	// in [0,100].
	BaseScore float64
}

// Score assesses every section and aggregates them with the weight profile
// of the job's level. Section order is fixed: skills, experience, education,
// salary, domain.
func (s *Scorer) Score(c *types.Candidate, j *types.Job) (*Result, error) {
	profile, err := s.cfg.ProfileFor(j.Level)
	if err != nil {
		return nil, fmt.Errorf("cannot score job %s: %w", j.ID, err)
	}

	skillsSection, report := ScoreSkills(s.matcher, c, j)
	sections := []types.SectionAssessment{
		skillsSection,
		sectionOf(ScoreExperience(c, j)),
		sectionOf(ScoreEducation(c, j)),
		sectionOf(ScoreSalary(c, j)),
		sectionOf(ScoreDomain(c, j)),
	}

	base := 0.0
	for _, section := range sections {
		base += profile[section.Name] * section.Score
	}

	return &Result{Sections: sections, Skills: report, BaseScore: base}, nil
}

// sectionOf wraps a single-field assessment into its section.
func sectionOf(f types.FieldAssessment) types.SectionAssessment {
	return types.SectionAssessment{
		Name:        f.Section,
		Fields:      []types.FieldAssessment{f},
		Score:       f.Score,
		MatchLevel:  f.MatchLevel,
		Explanation: f.Explanation,
	}
}
