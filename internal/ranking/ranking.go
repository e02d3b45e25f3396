// Package ranking orders assessed candidates for one job, assigns percentile
// tiers and interview priorities, and builds the cross-candidate comparison
// views. Rankings are derived on demand from assessment results and are never
// authoritative state.
package ranking

import (
	"sort"

	"github.com/talentops/candidate-assessor/internal/config"
	"github.com/talentops/candidate-assessor/internal/types"
)

// Ranker ranks pools of assessed candidates.
type Ranker struct {
	cfg config.RankingConfig
}

func NewRanker(cfg *config.Config) *Ranker {
	return &Ranker{cfg: cfg.Ranking}
}

// Entry pairs an assessment with its candidate, since results carry only the
// candidate ID.
type Entry struct {
	Candidate *types.Candidate
	Result    *types.AssessmentResult
}

// Tier percentile boundaries: S holds the top 10%, A through 30%, B through
// 60%, C through 85%, D the rest.
var tierBoundaries = []struct {
	upTo float64
	tier types.RankTier
}{
	{0.10, types.TierS},
	{0.30, types.TierA},
	{0.60, types.TierB},
	{0.85, types.TierC},
	{1.01, types.TierD},
}

// Only this many candidates can be urgent at once; the overflow is still
// high priority.
const maxUrgent = 5

var priorityByTier = map[types.RankTier]types.InterviewPriority{
	types.TierS: types.InterviewUrgent,
	types.TierA: types.InterviewHigh,
	types.TierB: types.InterviewMedium,
	types.TierC: types.InterviewLow,
	types.TierD: types.InterviewLow,
}

// Strengths and concerns carried into the ranked view.
const maxKeyPoints = 3

// Rank orders the entries by composite score and derives all pool-level
// views. Rejected candidates sink to the bottom and are never interviewed.
func (r *Ranker) Rank(jobID string, entries []Entry) *types.RankingResult {
	ranked := make([]types.RankedCandidate, 0, len(entries))
	for _, e := range entries {
		ranked = append(ranked, r.build(e))
	}

	// order: composite desc, then fewer critical flags, then fewer flags
	// overall, then stronger growth, then first application
	appliedAt := make(map[string]int64, len(entries))
	for _, e := range entries {
		appliedAt[e.Candidate.ID] = e.Candidate.AppliedAt.UnixNano()
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.CompositeScore != b.CompositeScore {
			return a.CompositeScore > b.CompositeScore
		}
		if a.CriticalRedFlags != b.CriticalRedFlags {
			return a.CriticalRedFlags < b.CriticalRedFlags
		}
		if a.RedFlagCount != b.RedFlagCount {
			return a.RedFlagCount < b.RedFlagCount
		}
		if a.GrowthScore != b.GrowthScore {
			return a.GrowthScore > b.GrowthScore
		}
		return appliedAt[a.CandidateID] < appliedAt[b.CandidateID]
	})

	result := &types.RankingResult{
		JobID:            jobID,
		Ranked:           ranked,
		TierDistribution: make(map[types.RankTier]int),
		Priorities:       make(map[types.InterviewPriority]int),
	}

	urgentLeft := maxUrgent
	rejected := rejectedSet(entries)
	for i := range ranked {
		ranked[i].Rank = i + 1
		ranked[i].Tier = tierFor(i, len(ranked))

		switch {
		case rejected[ranked[i].CandidateID]:
			ranked[i].InterviewPriority = types.InterviewNever
		default:
			p := priorityByTier[ranked[i].Tier]
			if p == types.InterviewUrgent {
				if urgentLeft == 0 {
					p = types.InterviewHigh
				} else {
					urgentLeft--
				}
			}
			ranked[i].InterviewPriority = p
		}

		result.TierDistribution[ranked[i].Tier]++
		result.Priorities[ranked[i].InterviewPriority]++
	}

	result.ComparisonMatrix = comparisonMatrix(ranked)
	result.AverageScore, result.TopTenAverage = averages(ranked)
	return result
}

// build computes one candidate's composite score and carries over the
// dimension scores the comparison views need.
func (r *Ranker) build(e Entry) types.RankedCandidate {
	res := e.Result
	sections := res.SectionScores()

	growthScore := 0.0
	if res.Growth != nil {
		growthScore = res.Growth.Score
	}

	composite := r.cfg.OverallWeight*res.TotalScore +
		r.cfg.SkillsWeight*sections[types.SectionSkills] +
		r.cfg.ExperienceWeight*sections[types.SectionExperience] +
		r.cfg.SalaryWeight*sections[types.SectionSalary] +
		r.cfg.GrowthWeight*growthScore

	rc := types.RankedCandidate{
		CandidateID:     res.CandidateID,
		CandidateName:   e.Candidate.Name,
		CompositeScore:  composite,
		TotalScore:      res.TotalScore,
		SkillsScore:     sections[types.SectionSkills],
		ExperienceScore: sections[types.SectionExperience],
		SalaryScore:     sections[types.SectionSalary],
		GrowthScore:     growthScore,
	}
	if res.Insights != nil {
		rc.RedFlagCount = len(res.Insights.RedFlags)
		rc.CriticalRedFlags = res.Insights.CountBySeverity(types.SeverityCritical)
		rc.KeyStrengths = head(res.Insights.Strengths, maxKeyPoints)
		rc.KeyConcerns = head(res.Insights.Weaknesses, maxKeyPoints)
	}
	return rc
}

func tierFor(index, total int) types.RankTier {
	// fraction of the pool strictly ahead of this position, so the leader
	// of any pool is tier S
	pct := float64(index) / float64(total)
	for _, b := range tierBoundaries {
		if pct < b.upTo {
			return b.tier
		}
	}
	return types.TierD
}

func rejectedSet(entries []Entry) map[string]bool {
	out := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Result.Rejected || e.Result.Quality.Quality == types.QualityUnacceptable {
			out[e.Result.CandidateID] = true
		}
	}
	return out
}

func comparisonMatrix(ranked []types.RankedCandidate) map[string]types.DimensionBest {
	if len(ranked) == 0 {
		return map[string]types.DimensionBest{}
	}
	dims := map[string]func(c types.RankedCandidate) float64{
		"overall":               func(c types.RankedCandidate) float64 { return c.TotalScore },
		types.SectionSkills:     func(c types.RankedCandidate) float64 { return c.SkillsScore },
		types.SectionExperience: func(c types.RankedCandidate) float64 { return c.ExperienceScore },
		types.SectionSalary:     func(c types.RankedCandidate) float64 { return c.SalaryScore },
		"growth":                func(c types.RankedCandidate) float64 { return c.GrowthScore },
	}
	matrix := make(map[string]types.DimensionBest, len(dims))
	for name, score := range dims {
		best := ranked[0]
		for _, c := range ranked[1:] {
			if score(c) > score(best) {
				best = c
			}
		}
		matrix[name] = types.DimensionBest{CandidateID: best.CandidateID, Score: score(best)}
	}
	return matrix
}

func averages(ranked []types.RankedCandidate) (float64, float64) {
	if len(ranked) == 0 {
		return 0, 0
	}
	total := 0.0
	for _, c := range ranked {
		total += c.TotalScore
	}
	topN := 10
	if len(ranked) < topN {
		topN = len(ranked)
	}
	top := 0.0
	for _, c := range ranked[:topN] {
		top += c.TotalScore
	}
	return total / float64(len(ranked)), top / float64(topN)
}

func head(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
