package main

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/talentops/candidate-assessor/internal/config"
	"github.com/talentops/candidate-assessor/internal/logger"
	"github.com/talentops/candidate-assessor/internal/pipeline"
	"github.com/talentops/candidate-assessor/internal/schemas"
	"github.com/talentops/candidate-assessor/internal/types"
)

// buildAssessor wires configuration and logging into a ready pipeline.
func buildAssessor() (*pipeline.Assessor, *zap.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(flagJSONLogs, flagVerbose)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return pipeline.New(cfg, log, nil), log, nil
}

// loadCandidate reads, schema-validates and decodes one candidate document.
func loadCandidate(path string) (*types.Candidate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate file: %w", err)
	}
	if err := schemas.ValidateCandidate(raw); err != nil {
		return nil, fmt.Errorf("candidate document %s: %w", path, err)
	}
	var c types.Candidate
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("failed to decode candidate file: %w", err)
	}
	return &c, nil
}

// loadCandidates reads a JSON array of candidate documents, validating each.
func loadCandidates(path string) ([]*types.Candidate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file: %w", err)
	}
	var docs []json.RawMessage
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("candidates file must hold a JSON array: %w", err)
	}
	candidates := make([]*types.Candidate, 0, len(docs))
	for i, doc := range docs {
		if err := schemas.ValidateCandidate(doc); err != nil {
			return nil, fmt.Errorf("candidate at index %d: %w", i, err)
		}
		var c types.Candidate
		if err := json.Unmarshal(doc, &c); err != nil {
			return nil, fmt.Errorf("failed to decode candidate at index %d: %w", i, err)
		}
		candidates = append(candidates, &c)
	}
	return candidates, nil
}

// loadJob reads, schema-validates and decodes a job document.
func loadJob(path string) (*types.Job, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	if err := schemas.ValidateJob(raw); err != nil {
		return nil, fmt.Errorf("job document %s: %w", path, err)
	}
	var j types.Job
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, fmt.Errorf("failed to decode job file: %w", err)
	}
	return &j, nil
}

// writeJSON marshals v to the output path, or stdout when path is empty.
func writeJSON(path string, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if path == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
