package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCandidate_Valid(t *testing.T) {
	doc := []byte(`{
		"id": "cand-1",
		"name": "Amina Hassan",
		"skills": ["python", "sql"],
		"total_experience_months": 72,
		"expected_salary": 21000,
		"education": [{"degree": "bachelor", "field": "computer science"}],
		"employment": [{"title": "Engineer", "start": "2019-03-01T00:00:00Z"}],
		"cv_text": "experienced engineer"
	}`)
	assert.NoError(t, ValidateCandidate(doc))
}

func TestValidateCandidate_MissingRequired(t *testing.T) {
	err := ValidateCandidate([]byte(`{"name": "No ID"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateCandidate_WrongType(t *testing.T) {
	err := ValidateCandidate([]byte(`{"id": "c1", "skills": "python"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "skills", validationErr.Errors[0].Field)
}

func TestValidateCandidate_UnknownField(t *testing.T) {
	err := ValidateCandidate([]byte(`{"id": "c1", "skills": ["go"], "favourite_color": "blue"}`))
	assert.Error(t, err)
}

func TestValidateJob_Valid(t *testing.T) {
	doc := []byte(`{
		"id": "job-1",
		"title": "Senior Platform Engineer",
		"required_skills": ["python", "kubernetes"],
		"level": "senior",
		"min_experience_years": 5,
		"salary_min": 15000,
		"salary_max": 22000
	}`)
	assert.NoError(t, ValidateJob(doc))
}

func TestValidateJob_BadLevel(t *testing.T) {
	doc := []byte(`{
		"id": "job-1",
		"title": "Wizard",
		"required_skills": ["magic"],
		"level": "archmage"
	}`)
	err := ValidateJob(doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "level", validationErr.Errors[0].Field)
}

func TestValidateJob_MalformedJSON(t *testing.T) {
	err := ValidateJob([]byte(`{not json`))
	assert.Error(t, err)
}
