package types

import (
	"sort"
	"strings"
	"time"
)

// Seniority ladder rungs inferred from job titles. Zero means the title gave
// no signal.
const (
	SeniorityIntern    = 1
	SeniorityJunior    = 2
	SeniorityStandard  = 3
	SenioritySenior    = 4
	SeniorityLead      = 5
	SeniorityManager   = 6
	SeniorityHead      = 7
	SeniorityDirector  = 8
	SeniorityVP        = 9
	SeniorityExecutive = 10
)

// titleLadder is checked top-down so the most senior marker in a title wins.
var titleLadder = []struct {
	markers []string
	level   int
}{
	// the short C-suite tokens keep a leading space so they only match as
	// whole words ("director" must not read as "cto")
	{[]string{"chief", " ceo", " cto", " cfo", " coo", " cio"}, SeniorityExecutive},
	{[]string{"vice president", "vp ", " vp", "svp", "evp"}, SeniorityVP},
	{[]string{"director"}, SeniorityDirector},
	{[]string{"head of", "head,"}, SeniorityHead},
	{[]string{"manager"}, SeniorityManager},
	{[]string{"lead", "principal", "staff"}, SeniorityLead},
	{[]string{"senior", "sr."}, SenioritySenior},
	{[]string{"junior", "jr.", "associate", "graduate"}, SeniorityJunior},
	{[]string{"intern", "trainee"}, SeniorityIntern},
}

// SeniorityLevel maps a job title onto the ladder. Titles without any marker
// rank as standard individual contributors; empty titles rank 0.
func SeniorityLevel(title string) int {
	t := " " + strings.ToLower(strings.TrimSpace(title)) + " "
	if strings.TrimSpace(t) == "" {
		return 0
	}
	for _, rung := range titleLadder {
		for _, marker := range rung.markers {
			if strings.Contains(t, marker) {
				return rung.level
			}
		}
	}
	return SeniorityStandard
}

// Progression is considered stagnant only after this long at one level.
const stagnationYears = 5.0

// ClassifyProgression reads the direction of a candidate's title history.
// Employment records are ordered by start date before comparison.
func ClassifyProgression(employment []Employment, now time.Time) CareerProgression {
	ordered := make([]Employment, len(employment))
	copy(ordered, employment)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start.Before(ordered[j].Start)
	})

	levels := make([]int, 0, len(ordered))
	for _, e := range ordered {
		if l := SeniorityLevel(e.Title); l > 0 {
			levels = append(levels, l)
		}
	}
	if len(levels) < 2 {
		return ProgressionUnclear
	}

	delta := levels[len(levels)-1] - levels[0]
	switch {
	case delta >= 3:
		return ProgressionStrongUpward
	case delta >= 1:
		return ProgressionSteadyUpward
	case delta < 0:
		return ProgressionDeclining
	}

	// flat overall: long spans at one level read as stagnation, shorter
	// spans as lateral movement
	total := 0.0
	for i := range ordered {
		total += ordered[i].TenureMonths(now)
	}
	if total/12 >= stagnationYears {
		return ProgressionStagnant
	}
	return ProgressionLateral
}
