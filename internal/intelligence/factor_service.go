// Package intelligence implements the two model-backed services of the
// scheduling pipeline: historical factor analysis and schedule generation.
//
// Neither service contains scheduling logic of its own. Each one builds a
// prompt from validated input, makes a single model call, and enforces the
// declared output schema on the response.
package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ewhitmore/dayweaver/internal/llm"
)

// FactorAnalysisService determines which historical factors most affect the
// user's productivity.
type FactorAnalysisService interface {
	// Determine analyzes past schedule and completion data. A single model
	// attempt; fails with llm.ErrValidation, llm.ErrService, or
	// llm.ErrSchemaViolation.
	Determine(ctx context.Context, input FactorAnalysisInput) (*FactorAnalysisResult, error)
}

type factorAnalysisService struct {
	client llm.Client
}

// NewFactorAnalysisService creates a FactorAnalysisService backed by an LLM client.
func NewFactorAnalysisService(client llm.Client) FactorAnalysisService {
	return &factorAnalysisService{client: client}
}

func (s *factorAnalysisService) Determine(ctx context.Context, input FactorAnalysisInput) (*FactorAnalysisResult, error) {
	if err := validateFactorAnalysisInput(input); err != nil {
		return nil, err
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskFactorAnalysis,
		SystemPrompt: factorAnalysisSystemPrompt,
		UserPrompt:   buildFactorAnalysisPrompt(input),
	})
	if err != nil {
		return nil, fmt.Errorf("factor analysis: %w", err)
	}

	result, err := llm.ExtractJSON[FactorAnalysisResult](resp.Text, validateFactorAnalysisResult)
	if err != nil {
		return nil, fmt.Errorf("factor analysis: %w", err)
	}
	return &result, nil
}

func validateFactorAnalysisInput(input FactorAnalysisInput) error {
	if strings.TrimSpace(input.ScheduleData) == "" {
		return fmt.Errorf("%w: scheduleData is required", llm.ErrValidation)
	}
	if strings.TrimSpace(input.TaskCompletionData) == "" {
		return fmt.Errorf("%w: taskCompletionData is required", llm.ErrValidation)
	}
	if !json.Valid([]byte(input.ScheduleData)) {
		return fmt.Errorf("%w: scheduleData is not valid JSON", llm.ErrValidation)
	}
	if !json.Valid([]byte(input.TaskCompletionData)) {
		return fmt.Errorf("%w: taskCompletionData is not valid JSON", llm.ErrValidation)
	}
	return nil
}

func buildFactorAnalysisPrompt(input FactorAnalysisInput) string {
	var b strings.Builder

	b.WriteString("Analyze the following schedule data and task completion data to determine the most significant factors influencing productivity. ")
	b.WriteString("Consider factors such as time of day, task priority, task duration, external interruptions, and user feedback.\n\n")

	b.WriteString("Schedule Data:\n")
	b.WriteString(input.ScheduleData)
	b.WriteString("\n\nTask Completion Data:\n")
	b.WriteString(input.TaskCompletionData)

	b.WriteString("\n\nBased on your analysis, identify the most significant factors and provide recommendations for optimizing future schedules.")

	return b.String()
}

func validateFactorAnalysisResult(r FactorAnalysisResult) error {
	if r.SignificantFactors == nil {
		return fmt.Errorf("significantFactors field is required")
	}
	for i, f := range r.SignificantFactors {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("significantFactors[%d] is empty", i)
		}
	}
	return nil
}
