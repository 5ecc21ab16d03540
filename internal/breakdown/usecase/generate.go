package usecase

import (
	"context"
	"strings"

	"tasktree/internal/breakdown"
	"tasktree/internal/metrics"
	"tasktree/internal/model"
	"tasktree/pkg/gemini"
)

const (
	// generationTemperature is kept low for deterministic JSON output.
	generationTemperature = 0.3
	maxOutputTokens       = 2048
)

// Generate asks the backend for subtask texts and parses the reply.
func (uc *implUseCase) Generate(ctx context.Context, input breakdown.GenerateInput) (breakdown.GenerateOutput, error) {
	if strings.TrimSpace(input.Task) == "" || input.Count < 1 || input.Count > model.MaxSubtasks {
		return breakdown.GenerateOutput{}, breakdown.ErrInvalidInput
	}
	if uc.llm == nil {
		return breakdown.GenerateOutput{}, breakdown.ErrMissingAPIKey
	}

	intensity := input.Intensity
	if intensity < 1 {
		intensity = 1
	}
	if intensity > 5 {
		intensity = 5
	}

	prompt := buildBreakdownPrompt(input.Task, input.SubtaskFlatten, input.Count, intensity)

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: breakdownSystemPrompt}},
		},
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     generationTemperature,
			MaxOutputTokens: maxOutputTokens,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "Generate: backend call failed: %v", err)
		metrics.GenerationFailures.Inc()
		return breakdown.GenerateOutput{}, breakdown.ErrUpstream
	}

	raw := resp.Text()
	if strings.TrimSpace(raw) == "" {
		uc.l.Errorf(ctx, "Generate: empty response from backend")
		metrics.GenerationFailures.Inc()
		return breakdown.GenerateOutput{}, breakdown.ErrUpstream
	}

	subtasks, tier := parseSubtasks(raw)
	if tier == breakdown.TierFallback {
		// The backend drifted off the JSON-array mandate; worth watching.
		uc.l.Warnf(ctx, "Generate: fallback parse fired, raw=%q", raw)
	}
	metrics.GenerationParses.WithLabelValues(tier).Inc()

	if len(subtasks) == 0 {
		metrics.GenerationFailures.Inc()
		return breakdown.GenerateOutput{}, breakdown.ErrUpstream
	}
	if len(subtasks) > input.Count {
		subtasks = subtasks[:input.Count]
	}

	uc.l.Infof(ctx, "Generate: %d subtasks via %s parse for task %q", len(subtasks), tier, input.Task)

	return breakdown.GenerateOutput{Subtasks: subtasks, ParseTier: tier}, nil
}
