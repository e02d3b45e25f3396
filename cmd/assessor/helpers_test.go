package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validCandidateDoc = `{
	"id": "cand-1",
	"name": "Amina Hassan",
	"skills": ["python", "sql"],
	"total_experience_months": 72,
	"expected_salary": 21000,
	"education": [{"degree": "bachelor"}],
	"employment": [{"title": "Engineer", "start": "2019-03-01T00:00:00Z"}],
	"cv_text": "experienced engineer"
}`

const validJobDoc = `{
	"id": "job-1",
	"title": "Senior Platform Engineer",
	"required_skills": ["python"],
	"level": "senior",
	"min_experience_years": 5,
	"salary_min": 15000,
	"salary_max": 22000
}`

func TestLoadCandidate(t *testing.T) {
	path := writeTemp(t, "candidate.json", validCandidateDoc)
	c, err := loadCandidate(path)
	require.NoError(t, err)
	assert.Equal(t, "cand-1", c.ID)
	assert.Equal(t, []string{"python", "sql"}, c.Skills)
}

func TestLoadCandidateRejectsInvalidDocument(t *testing.T) {
	path := writeTemp(t, "candidate.json", `{"name": "no id or skills"}`)
	_, err := loadCandidate(path)
	assert.Error(t, err)
}

func TestLoadCandidateMissingFile(t *testing.T) {
	_, err := loadCandidate(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadCandidates(t *testing.T) {
	path := writeTemp(t, "pool.json", "["+validCandidateDoc+"]")
	candidates, err := loadCandidates(path)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "cand-1", candidates[0].ID)
}

func TestLoadCandidatesRejectsNonArray(t *testing.T) {
	path := writeTemp(t, "pool.json", validCandidateDoc)
	_, err := loadCandidates(path)
	assert.Error(t, err)
}

func TestLoadCandidatesReportsBadIndex(t *testing.T) {
	path := writeTemp(t, "pool.json", "["+validCandidateDoc+`, {"bad": true}]`)
	_, err := loadCandidates(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 1")
}

func TestLoadJob(t *testing.T) {
	path := writeTemp(t, "job.json", validJobDoc)
	j, err := loadJob(path)
	require.NoError(t, err)
	assert.Equal(t, "job-1", j.ID)
	assert.Equal(t, 5.0, j.MinExperienceYears)
}

func TestLoadJobRejectsBadLevel(t *testing.T) {
	path := writeTemp(t, "job.json", `{"id":"j","title":"x","required_skills":["go"],"level":"galactic"}`)
	_, err := loadJob(path)
	assert.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, writeJSON(path, map[string]int{"answer": 42}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]int
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, 42, decoded["answer"])
}
