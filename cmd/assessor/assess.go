package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Assess one candidate against a job",
	Long:  "Runs the full assessment pipeline for a single candidate/job pair and writes the result as JSON.",
	RunE:  runAssess,
}

var (
	assessCandidatePath string
	assessJobPath       string
	assessOutPath       string
)

func init() {
	assessCmd.Flags().StringVarP(&assessCandidatePath, "candidate", "c", "", "Path to the candidate JSON document (required)")
	assessCmd.Flags().StringVarP(&assessJobPath, "job", "j", "", "Path to the job JSON document (required)")
	assessCmd.Flags().StringVarP(&assessOutPath, "out", "o", "", "Output path (stdout when omitted)")

	if err := assessCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := assessCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(assessCmd)
}

func runAssess(_ *cobra.Command, _ []string) error {
	assessor, log, err := buildAssessor()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	candidate, err := loadCandidate(assessCandidatePath)
	if err != nil {
		return err
	}
	job, err := loadJob(assessJobPath)
	if err != nil {
		return err
	}

	result, err := assessor.Assess(context.Background(), candidate, job, time.Now().UTC())
	if err != nil {
		return err
	}
	return writeJSON(assessOutPath, result)
}
