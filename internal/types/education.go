package types

import "strings"

// Degree ranks, lowest to highest. Unknown degrees rank 0.
const (
	RankHighSchool = 1
	RankDiploma    = 2
	RankBachelor   = 3
	RankMaster     = 4
	RankDoctorate  = 5
)

// DegreeRank maps a free-text degree name onto the ordinal ladder used for
// education comparisons.
func DegreeRank(degree string) int {
	d := strings.ToLower(strings.TrimSpace(degree))
	switch {
	case d == "":
		return 0
	case strings.Contains(d, "phd"), strings.Contains(d, "doctor"):
		return RankDoctorate
	case strings.Contains(d, "master"), strings.Contains(d, "mba"), strings.Contains(d, "msc"):
		return RankMaster
	case strings.Contains(d, "bachelor"), strings.Contains(d, "bsc"), strings.Contains(d, "beng"):
		return RankBachelor
	case strings.Contains(d, "diploma"), strings.Contains(d, "associate"):
		return RankDiploma
	case strings.Contains(d, "high school"), strings.Contains(d, "secondary"):
		return RankHighSchool
	}
	return 0
}

// HighestDegreeRank returns the best degree rank across the candidate's
// education records.
func (c *Candidate) HighestDegreeRank() int {
	best := 0
	for _, e := range c.Education {
		if r := DegreeRank(e.Degree); r > best {
			best = r
		}
	}
	return best
}
