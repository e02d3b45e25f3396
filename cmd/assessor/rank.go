package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/talentops/candidate-assessor/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Assess and rank a pool of candidates for a job",
	Long:  "Assesses every candidate in the pool concurrently, then ranks them: composite scores, percentile tiers, interview priorities and the cross-candidate comparison matrix.",
	RunE:  runRank,
}

var (
	rankCandidatesPath     string
	rankJobPath            string
	rankOutPath            string
	rankIncludeAssessments bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankCandidatesPath, "candidates", "c", "", "Path to a JSON array of candidate documents (required)")
	rankCmd.Flags().StringVarP(&rankJobPath, "job", "j", "", "Path to the job JSON document (required)")
	rankCmd.Flags().StringVarP(&rankOutPath, "out", "o", "", "Output path (stdout when omitted)")
	rankCmd.Flags().BoolVar(&rankIncludeAssessments, "include-assessments", false, "Include the full assessment result for every candidate")

	if err := rankCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}
	if err := rankCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

// rankOutput is the rank command's JSON document.
type rankOutput struct {
	Ranking     *types.RankingResult      `json:"ranking"`
	Assessments []*types.AssessmentResult `json:"assessments,omitempty"`
}

func runRank(_ *cobra.Command, _ []string) error {
	assessor, log, err := buildAssessor()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	candidates, err := loadCandidates(rankCandidatesPath)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return fmt.Errorf("candidates file %s holds no candidates", rankCandidatesPath)
	}
	job, err := loadJob(rankJobPath)
	if err != nil {
		return err
	}

	ranking, results, err := assessor.RankPool(context.Background(), candidates, job, time.Now().UTC())
	if err != nil {
		return err
	}

	out := rankOutput{Ranking: ranking}
	if rankIncludeAssessments {
		out.Assessments = results
	}
	return writeJSON(rankOutPath, out)
}
