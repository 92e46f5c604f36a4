package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmercier/orchestrator/internal/domain"
	"github.com/jmercier/orchestrator/internal/llm"
)

// ErrLLMDisabled is returned when suggestion generation is requested but
// the LLM subsystem is turned off in configuration.
var ErrLLMDisabled = errors.New("llm subsystem disabled")

// SuggestionService produces backlog feature suggestions from a free-text
// theme. The partial records it returns still need admission through the
// feature service, which applies the documented defaults.
type SuggestionService interface {
	Suggest(ctx context.Context, theme string, existing []*domain.Feature, activeSystem domain.System) ([]domain.FeatureSuggestion, error)
}

type suggestionService struct {
	client  llm.Client
	enabled bool
}

// NewSuggestionService creates a SuggestionService over the given client.
func NewSuggestionService(client llm.Client, enabled bool) SuggestionService {
	return &suggestionService{client: client, enabled: enabled}
}

func (s *suggestionService) Suggest(ctx context.Context, theme string, existing []*domain.Feature, activeSystem domain.System) ([]domain.FeatureSuggestion, error) {
	if !s.enabled {
		return nil, ErrLLMDisabled
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSuggest,
		SystemPrompt: suggestSystemPrompt,
		UserPrompt:   buildSuggestPrompt(theme, existing, activeSystem),
	})
	if err != nil {
		return nil, fmt.Errorf("generating suggestions: %w", err)
	}

	return llm.ExtractJSONArray[domain.FeatureSuggestion](resp.Text, validateSuggestions)
}

// validateSuggestions enforces the minimum shape: at least one entry and a
// non-blank name on each. Everything else defaults at admission time.
func validateSuggestions(items []domain.FeatureSuggestion) error {
	if len(items) == 0 {
		return errors.New("empty suggestion list")
	}
	for i, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("suggestion %d has no name", i)
		}
	}
	return nil
}
