package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/talentops/candidate-assessor/internal/ranking"
	"github.com/talentops/candidate-assessor/internal/types"
)

// defaultConcurrency bounds the number of candidates assessed in parallel
// during batch runs.
const defaultConcurrency = 8

// AssessBatch assesses every candidate against the job concurrently. Results
// come back in input order; the first failure cancels the remaining work.
func (a *Assessor) AssessBatch(ctx context.Context, candidates []*types.Candidate, j *types.Job, now time.Time) ([]*types.AssessmentResult, error) {
	results := make([]*types.AssessmentResult, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultConcurrency)
	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			result, err := a.Assess(ctx, c, j, now)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RankPool assesses the pool and ranks it in one call.
func (a *Assessor) RankPool(ctx context.Context, candidates []*types.Candidate, j *types.Job, now time.Time) (*types.RankingResult, []*types.AssessmentResult, error) {
	results, err := a.AssessBatch(ctx, candidates, j, now)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]ranking.Entry, len(candidates))
	for i := range candidates {
		entries[i] = ranking.Entry{Candidate: candidates[i], Result: results[i]}
	}
	ranked := a.ranker.Rank(j.ID, entries)

	a.log.Info("pool ranked",
		zap.String("job_id", j.ID),
		zap.Int("candidates", len(candidates)),
		zap.Float64("average_score", ranked.AverageScore))
	return ranked, results, nil
}
