// Package types provides type definitions for structured data used throughout the candidate-assessor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Candidate represents a normalized candidate profile supplied by an
// external collaborator. It is an immutable input for one assessment call.
type Candidate struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email,omitempty"`
	Location string   `json:"location,omitempty"`
	Skills   []string `json:"skills"`

	TotalExperienceMonths int `json:"total_experience_months"`
	GCCExperienceMonths   int `json:"gcc_experience_months,omitempty"`

	CurrentSalary  float64 `json:"current_salary,omitempty"`
	ExpectedSalary float64 `json:"expected_salary"`

	Education      []Education     `json:"education"`
	Employment     []Employment    `json:"employment"`
	Certifications []Certification `json:"certifications,omitempty"`
	Languages      []string        `json:"languages,omitempty"`

	CVText string `json:"cv_text,omitempty"`

	// AppliedAt is the application timestamp; it is only consulted as the
	// final ranking tie-break.
	AppliedAt time.Time `json:"applied_at,omitempty"`
}

// Education represents a single education entry.
type Education struct {
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        int    `json:"year,omitempty"`
}

// Employment represents a single employment history entry. Entries are
// expected in reverse-chronological order (most recent first); helpers
// tolerate unsorted input.
type Employment struct {
	Title            string    `json:"title"`
	Company          string    `json:"company,omitempty"`
	Industry         string    `json:"industry,omitempty"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end,omitempty"` // zero means current position
	Responsibilities []string  `json:"responsibilities,omitempty"`
}

// Certification represents a professional certification with its issue date.
type Certification struct {
	Name     string    `json:"name"`
	IssuedAt time.Time `json:"issued_at,omitempty"`
}

// TotalExperienceYears converts the candidate's total experience to years.
func (c *Candidate) TotalExperienceYears() float64 {
	return float64(c.TotalExperienceMonths) / 12.0
}

// GCCExperienceYears converts the candidate's GCC experience to years.
func (c *Candidate) GCCExperienceYears() float64 {
	return float64(c.GCCExperienceMonths) / 12.0
}

// TenureMonths returns the length of the employment entry in months, using
// now for open-ended positions.
func (e *Employment) TenureMonths(now time.Time) float64 {
	end := e.End
	if end.IsZero() {
		end = now
	}
	if end.Before(e.Start) {
		return 0
	}
	return end.Sub(e.Start).Hours() / (24 * 30.44)
}
