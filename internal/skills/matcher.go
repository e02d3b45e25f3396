// Package skills matches candidate skills against job requirements using a
// tiered strategy: exact match, taxonomy synonym, related-skill partial
// credit, then string similarity as a last resort.
package skills

import (
	"sort"
	"strings"

	"github.com/talentops/candidate-assessor/internal/config"
)

// Match tier constants. Credit values express how much of a full match each
// tier is worth.
const (
	TierExact    = "exact"
	TierSynonym  = "synonym"
	TierRelated  = "related"
	TierSemantic = "semantic"
	TierNone     = "none"

	creditExact   = 1.0
	creditSynonym = 1.0
	creditRelated = 0.6
)

// Required skills dominate the blended coverage score.
const (
	requiredWeight  = 0.70
	preferredWeight = 0.30
)

// SimilarityFunc scores the similarity of two normalized skill names in
// [0,1]. Implementations may call out to an embedding service; an error makes
// the matcher fall back to its built-in lexical similarity and mark the
// result degraded.
type SimilarityFunc func(a, b string) (float64, error)

// SkillMatch records how one job skill was (or was not) satisfied.
type SkillMatch struct {
	JobSkill    string  `json:"job_skill"`
	MatchedWith string  `json:"matched_with,omitempty"`
	Tier        string  `json:"tier"`
	Credit      float64 `json:"credit"` // 0-1
}

// Report is the outcome of matching one candidate against one job's skill
// lists.
type Report struct {
	Score             float64      `json:"score"` // 0-100 blended coverage
	RequiredCoverage  float64      `json:"required_coverage"`
	PreferredCoverage float64      `json:"preferred_coverage"`
	Matches           []SkillMatch `json:"matches"`
	MissingRequired   []string     `json:"missing_required,omitempty"`
	Degraded          bool         `json:"degraded"` // similarity fallback was used
}

// Matcher resolves job skills against a candidate's skill list.
type Matcher struct {
	taxonomy config.TaxonomyConfig
	sim      SimilarityFunc

	// canonical form -> canonical name, e.g. "k8s" -> "kubernetes"
	synonymIndex map[string]string
}

// NewMatcher builds a matcher over the given taxonomy. sim may be nil, in
// which case the built-in bigram similarity is used directly (not degraded).
func NewMatcher(taxonomy config.TaxonomyConfig, sim SimilarityFunc) *Matcher {
	index := make(map[string]string)
	for canonical, aliases := range taxonomy.Synonyms {
		c := Normalize(canonical)
		index[c] = c
		for _, alias := range aliases {
			index[Normalize(alias)] = c
		}
	}
	return &Matcher{taxonomy: taxonomy, sim: sim, synonymIndex: index}
}

// Normalize canonicalizes a skill name for comparison: lowercase, trimmed,
// inner whitespace collapsed.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// canonical maps a normalized skill through the synonym index.
func (m *Matcher) canonical(s string) string {
	if c, ok := m.synonymIndex[s]; ok {
		return c
	}
	return s
}

// Match resolves the job skills against the candidate's skills. Matches are
// returned in the job's skill order.
func (m *Matcher) Match(candidateSkills, jobSkills []string) ([]SkillMatch, bool) {
	candidates := make([]string, 0, len(candidateSkills))
	seen := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		n := Normalize(s)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		candidates = append(candidates, n)
	}

	degraded := false
	matches := make([]SkillMatch, 0, len(jobSkills))
	for _, raw := range jobSkills {
		want := Normalize(raw)
		if want == "" {
			continue
		}
		match, deg := m.matchOne(want, candidates)
		match.JobSkill = want
		matches = append(matches, match)
		degraded = degraded || deg
	}
	return matches, degraded
}

func (m *Matcher) matchOne(want string, candidates []string) (SkillMatch, bool) {
	wantCanonical := m.canonical(want)

	// Tier 1/2: exact or synonym. Both resolve through the canonical index,
	// so "k8s" satisfies "kubernetes" and vice versa.
	for _, have := range candidates {
		if have == want {
			return SkillMatch{MatchedWith: have, Tier: TierExact, Credit: creditExact}, false
		}
		if m.canonical(have) == wantCanonical {
			return SkillMatch{MatchedWith: have, Tier: TierSynonym, Credit: creditSynonym}, false
		}
	}

	// Tier 3: related skills earn partial credit in either direction.
	for _, have := range candidates {
		if m.related(wantCanonical, m.canonical(have)) {
			return SkillMatch{MatchedWith: have, Tier: TierRelated, Credit: creditRelated}, false
		}
	}

	// Tier 4: similarity over the best candidate.
	best, bestScore, degraded := m.mostSimilar(wantCanonical, candidates)
	if bestScore >= m.taxonomy.SemanticThreshold {
		return SkillMatch{MatchedWith: best, Tier: TierSemantic, Credit: bestScore}, degraded
	}
	return SkillMatch{Tier: TierNone, Credit: 0}, degraded
}

func (m *Matcher) related(a, b string) bool {
	for _, r := range m.taxonomy.Related[a] {
		if Normalize(r) == b {
			return true
		}
	}
	for _, r := range m.taxonomy.Related[b] {
		if Normalize(r) == a {
			return true
		}
	}
	return false
}

func (m *Matcher) mostSimilar(want string, candidates []string) (string, float64, bool) {
	best := ""
	bestScore := 0.0
	degraded := false
	for _, have := range candidates {
		score, deg := m.similarity(want, have)
		degraded = degraded || deg
		if score > bestScore {
			best, bestScore = have, score
		}
	}
	return best, bestScore, degraded
}

// similarity applies the injected function, falling back to the built-in
// lexical measure when it fails. The fallback marks the match degraded so
// callers can lower their confidence.
func (m *Matcher) similarity(a, b string) (float64, bool) {
	if m.sim == nil {
		return DiceSimilarity(a, b), false
	}
	score, err := m.sim(a, b)
	if err != nil {
		return DiceSimilarity(a, b), true
	}
	return score, false
}

// Score matches the candidate against the job's required and preferred skill
// lists and blends the coverages. A job with no skill requirements scores a
// neutral 100.
func (m *Matcher) Score(candidateSkills, required, preferred []string) Report {
	reqMatches, reqDegraded := m.Match(candidateSkills, required)
	prefMatches, prefDegraded := m.Match(candidateSkills, preferred)

	report := Report{
		Matches:  append(reqMatches, prefMatches...),
		Degraded: reqDegraded || prefDegraded,
	}

	reqCoverage, missing := coverage(reqMatches)
	prefCoverage, _ := coverage(prefMatches)
	report.RequiredCoverage = reqCoverage
	report.PreferredCoverage = prefCoverage
	report.MissingRequired = missing

	switch {
	case len(reqMatches) == 0 && len(prefMatches) == 0:
		report.Score = 100
	case len(prefMatches) == 0:
		report.Score = 100 * reqCoverage
	case len(reqMatches) == 0:
		report.Score = 100 * prefCoverage
	default:
		report.Score = 100 * (requiredWeight*reqCoverage + preferredWeight*prefCoverage)
	}
	sort.Strings(report.MissingRequired)
	return report
}

// coverage averages match credits and collects the unmatched skills.
func coverage(matches []SkillMatch) (float64, []string) {
	if len(matches) == 0 {
		return 0, nil
	}
	total := 0.0
	var missing []string
	for _, m := range matches {
		total += m.Credit
		if m.Tier == TierNone {
			missing = append(missing, m.JobSkill)
		}
	}
	return total / float64(len(matches)), missing
}
