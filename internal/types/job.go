package types

// JobLevel classifies the seniority of a job posting. Weight profiles are
// keyed by this value.
type JobLevel string

// Known job levels.
const (
	JobLevelEntry     JobLevel = "entry"
	JobLevelMid       JobLevel = "mid"
	JobLevelSenior    JobLevel = "senior"
	JobLevelExecutive JobLevel = "executive"
)

// Valid reports whether the level is one of the known job levels.
func (l JobLevel) Valid() bool {
	switch l {
	case JobLevelEntry, JobLevelMid, JobLevelSenior, JobLevelExecutive:
		return true
	}
	return false
}

// Job represents a normalized job posting supplied by an external
// collaborator. It is an immutable input for one assessment call.
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills,omitempty"`

	MinExperienceYears float64 `json:"min_experience_years"`
	MaxExperienceYears float64 `json:"max_experience_years,omitempty"` // zero means open-ended

	RequiredEducation string `json:"required_education,omitempty"`

	SalaryMin float64 `json:"salary_min,omitempty"`
	SalaryMax float64 `json:"salary_max,omitempty"`

	Location string   `json:"location,omitempty"`
	Level    JobLevel `json:"level"`
	Industry string   `json:"industry,omitempty"`

	RequireGCCExperience  bool    `json:"require_gcc_experience,omitempty"`
	MinGCCExperienceYears float64 `json:"min_gcc_experience_years,omitempty"`

	// AllowOverqualified suppresses the overqualification knockout for
	// postings that welcome very senior applicants.
	AllowOverqualified bool `json:"allow_overqualified,omitempty"`
}

// ExperienceCeiling returns the effective maximum experience for the job.
// When no maximum is posted, a window above the minimum is assumed so
// overqualification checks still have a reference point.
func (j *Job) ExperienceCeiling() float64 {
	if j.MaxExperienceYears > 0 {
		return j.MaxExperienceYears
	}
	return j.MinExperienceYears + 10
}
